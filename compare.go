package schemalabel

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/reoring/schemalabel/i18n"
)

// CompareStringCaseInsensitive orders a and b ignoring case, using the
// collation selected through the i18n package. Non-string values are
// converted to their string form first (nil becomes "null").
func CompareStringCaseInsensitive(a, b any) int {
	lower := cases.Lower(language.Und)
	return i18n.Compare(lower.String(stringOf(a)), lower.String(stringOf(b)))
}

func stringOf(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	}
	return fmt.Sprint(v)
}
