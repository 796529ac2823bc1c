package specialist

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces       = regexp.MustCompile(`\s+`)
	slugDashes       = regexp.MustCompile(`-+`)
)

// Slugify derives the URL slug of a title: lower case, diacritics folded,
// anything but letters, digits, spaces and dashes dropped, spaces turned
// into single dashes.
func Slugify(title string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	s := strings.ToLower(title)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}

	s = slugInvalidChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = slugSpaces.ReplaceAllString(s, "-")

	return slugDashes.ReplaceAllString(s, "-")
}
