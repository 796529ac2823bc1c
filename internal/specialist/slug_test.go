package specialist_test

import (
	"testing"

	"backoffice/internal/specialist"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Company Secretary Subscription":   "company-secretary-subscription",
		"CTC Delivery & Courier Handling":  "ctc-delivery-courier-handling",
		"  Opening of a   Bank Account  ":  "opening-of-a-bank-account",
		"Café Crème -- Déjà Vu":            "cafe-creme-deja-vu",
		"Access Company Records/SSM Forms": "access-company-recordsssm-forms",
		"100% Compliance!":                 "100-compliance",
		"日本語":                              "",
	}
	for title, want := range tests {
		t.Run(title, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, want, specialist.Slugify(title))
		})
	}
}
