package schemalabel

import (
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
)

// NumericFunc reports whether s should be treated as a number and left
// untouched by PrettifyString.
type NumericFunc func(s string) bool

// DefaultIgnoreRel lists the link relations FriendlyLinks drops by default.
var DefaultIgnoreRel = []string{"self"}

// Options configures a Formatter. Zero values select the defaults.
type Options struct {
	// Numeric detects numeric strings. Defaults to IsNumeric.
	Numeric NumericFunc
	// Logger receives debug output on fallback paths. Defaults to a no-op logger.
	Logger *zap.Logger
	// IgnoreRel is the default set of relations removed by FriendlyLinks.
	// Matching is case-insensitive. Defaults to DefaultIgnoreRel.
	IgnoreRel []string
}

// Formatter holds the injected collaborators used by the prettifiers.
// A Formatter is immutable after New and safe for concurrent use.
type Formatter struct {
	numeric   NumericFunc
	log       *zap.Logger
	ignoreRel []string
}

// New builds a Formatter from opts.
func New(opts Options) *Formatter {
	f := &Formatter{
		numeric: opts.Numeric,
		log:     opts.Logger,
	}
	if f.numeric == nil {
		f.numeric = IsNumeric
	}
	if f.log == nil {
		f.log = zap.NewNop()
	}
	rels := opts.IgnoreRel
	if rels == nil {
		rels = DefaultIgnoreRel
	}
	f.ignoreRel = lowerAll(rels)
	return f
}

var defaultFormatter atomic.Pointer[Formatter]

func init() { defaultFormatter.Store(New(Options{})) }

// Default returns the Formatter used by the package-level functions.
func Default() *Formatter { return defaultFormatter.Load() }

// SetDefault replaces the Formatter used by the package-level functions.
// Passing nil restores the built-in defaults.
func SetDefault(f *Formatter) {
	if f == nil {
		f = New(Options{})
	}
	defaultFormatter.Store(f)
}

func lowerAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(s)
	}
	return out
}
