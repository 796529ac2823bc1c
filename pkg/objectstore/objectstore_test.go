package objectstore_test

import (
	"path"
	"strings"
	"testing"

	"backoffice/pkg/objectstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		contentType string
		ext         string
	}{
		{contentType: "image/png", ext: ".png"},
		{contentType: "image/jpeg", ext: ".jpg"},
		{contentType: "video/mp4; codecs=avc1", ext: ".mp4"},
		{contentType: "not a mime type;;", ext: ""},
	}
	for _, tc := range tests {
		t.Run(tc.contentType, func(t *testing.T) {
			t.Parallel()

			key := objectstore.NewKey("specialists", tc.contentType)
			require.Equal(t, "specialists", path.Dir(key))
			require.Equal(t, tc.ext, path.Ext(key))

			_, err := uuid.Parse(strings.TrimSuffix(path.Base(key), tc.ext))
			require.NoError(t, err)
		})
	}

	require.NotEqual(t, objectstore.NewKey("", "image/png"), objectstore.NewKey("", "image/png"))
}
