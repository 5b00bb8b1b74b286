package schemalabel

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	snakeJoin  = regexp.MustCompile(`([a-zA-Z\d])_([a-zA-Z\d])`)
	kebabJoin  = regexp.MustCompile(`([a-zA-Z\d])-([a-zA-Z\d])`)
	camelJoin  = regexp.MustCompile(`([a-z])([A-Z])`)
	asciiUpper = regexp.MustCompile(`[A-Z]`)

	entityEncoder = strings.NewReplacer(`<`, "&lt;", `>`, "&gt;", `"`, "&quot;", `'`, "&apos;")
	entityDecoder = strings.NewReplacer("&lt;", `<`, "&gt;", `>`, "&quot;", `"`, "&apos;", `'`)
)

// PrettifyString turns an identifier such as "fooBar", "foo_bar" or
// "foo-bar" into a label with spaces and an upper-case first letter.
// Numeric strings are returned unchanged.
func PrettifyString(s string) string { return Default().PrettifyString(s) }

// PrettifyString is the Formatter variant of PrettifyString; numeric detection
// uses the configured NumericFunc.
func (f *Formatter) PrettifyString(s string) string {
	if f.numeric(s) {
		return s
	}
	if utf8.RuneCountInString(s) < 2 {
		return s
	}
	switch {
	case strings.Contains(s, "_"):
		s = snakeJoin.ReplaceAllString(s, "$1 $2")
	case strings.Contains(s, "-"):
		s = kebabJoin.ReplaceAllString(s, "$1 $2")
	default:
		s = camelJoin.ReplaceAllString(s, "$1 $2")
	}
	return upperFirst(s)
}

// PrettifyAbbreviation upper-cases s when it has no upper-case ASCII letter
// ("url" -> "URL"). Mixed-case input is assumed intentional and returned as is.
func PrettifyAbbreviation(s string) string {
	if asciiUpper.MatchString(s) {
		return s
	}
	return cases.Upper(language.Und).String(s)
}

// HTMLEntities escapes <, >, " and ' as &lt;, &gt;, &quot; and &apos;.
// Ampersands are left alone.
func HTMLEntities(s string) string { return entityEncoder.Replace(s) }

// HTMLEntitiesDecode reverses HTMLEntities.
func HTMLEntitiesDecode(s string) string { return entityDecoder.Replace(s) }

func upperFirst(s string) string {
	_, n := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:n]) + s[n:]
}
