package i18n

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator orders strings for display. Compare returns a negative number,
// zero or a positive number when a sorts before, equal to or after b.
type Collator interface {
	Compare(a, b string) int
}

// textCollator is the built-in x/text based Collator.
// collate.Collator keeps scratch buffers, so calls are serialized.
type textCollator struct {
	mu  sync.Mutex
	col *collate.Collator
}

func newTextCollator(tag language.Tag) *textCollator {
	return &textCollator{col: collate.New(tag)}
}

func (c *textCollator) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.col.CompareString(a, b)
}

var (
	mu      sync.RWMutex
	current Collator = newTextCollator(language.English)
)

// SetLanguage switches the built-in Collator to the given BCP 47 tag
// ("en", "de", "sv", ...). Unparseable tags fall back to English.
func SetLanguage(tag string) {
	t, err := language.Parse(tag)
	if err != nil {
		t = language.English
	}
	setCollator(newTextCollator(t))
}

// SetCollator replaces the Collator implementation. Passing nil restores the
// built-in English collation.
func SetCollator(c Collator) {
	if c == nil {
		c = newTextCollator(language.English)
	}
	setCollator(c)
}

func setCollator(c Collator) {
	mu.Lock()
	current = c
	mu.Unlock()
}

// Compare orders a and b using the current Collator.
func Compare(a, b string) int {
	mu.RLock()
	c := current
	mu.RUnlock()
	return c.Compare(a, b)
}
