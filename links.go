package schemalabel

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Link is a hypermedia link as found in STAC/OGC style documents.
// Members other than href, rel, title and type are kept in Extra.
type Link struct {
	Href  string         `json:"href" yaml:"href"`
	Rel   string         `json:"rel,omitempty" yaml:"rel,omitempty"`
	Title string         `json:"title,omitempty" yaml:"title,omitempty"`
	Type  string         `json:"type,omitempty" yaml:"type,omitempty"`
	Extra map[string]any `json:"-" yaml:"-"`

	// decoded href/rel members, including values that were not strings
	hrefSet bool
	relSet  bool
	raw     map[string]any
}

// linkFields lists the members stored in the named fields, never in Extra.
var linkFields = []string{"href", "rel", "title", "type"}

var (
	hrefScheme   = regexp.MustCompile(`(?i)^https?://(www.)?`)
	hrefTrailing = regexp.MustCompile(`/$`)
)

// Clone returns a copy of l whose Extra map is not shared with l.
func (l Link) Clone() Link {
	l.Extra = maps.Clone(l.Extra)
	l.raw = maps.Clone(l.raw)
	return l
}

// HasRel reports whether rel is set: either non-empty, or present as a
// string when the link was decoded.
func (l Link) HasRel() bool { return l.Rel != "" || l.relSet }

// Map returns the link as a flat object. Named fields take precedence over
// Extra; a named member decoded with a non-string value is written back as
// it was unless the field has been set since.
func (l Link) Map() map[string]any {
	m := make(map[string]any, len(l.Extra)+len(linkFields))
	for k, v := range l.Extra {
		if !slices.Contains(linkFields, k) {
			m[k] = v
		}
	}
	maps.Copy(m, l.raw)
	if l.Href != "" || l.hrefSet {
		m["href"] = l.Href
	}
	for k, v := range map[string]string{"rel": l.Rel, "title": l.Title, "type": l.Type} {
		if v != "" || (k == "rel" && l.relSet) {
			m[k] = v
		}
	}
	return m
}

// MarshalJSON writes the link as a flat object (see Map).
func (l Link) MarshalJSON() ([]byte, error) { return json.Marshal(l.Map()) }

// UnmarshalJSON reads a flat link object, collecting unknown members into Extra.
func (l *Link) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("schemalabel: decode link: %w", err)
	}
	*l = linkFromMap(m)
	return nil
}

// MarshalYAML writes the same flat object as MarshalJSON.
func (l Link) MarshalYAML() (any, error) { return l.Map(), nil }

// UnmarshalYAML reads a flat link mapping, collecting unknown members into Extra.
func (l *Link) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]any
	if err := value.Decode(&m); err != nil {
		return fmt.Errorf("schemalabel: decode link: %w", err)
	}
	*l = linkFromMap(m)
	return nil
}

// linkFromMap splits m into the named fields and Extra. Named members that
// are not strings are kept aside so they survive re-encoding.
func linkFromMap(m map[string]any) Link {
	var l Link
	for k, v := range m {
		if !slices.Contains(linkFields, k) {
			if l.Extra == nil {
				l.Extra = make(map[string]any)
			}
			l.Extra[k] = v
			continue
		}
		s, isString := v.(string)
		if !isString {
			if l.raw == nil {
				l.raw = make(map[string]any)
			}
			l.raw[k] = v
			continue
		}
		switch k {
		case "href":
			l.Href, l.hrefSet = s, true
		case "rel":
			l.Rel, l.relSet = s, true
		case "title":
			l.Title = s
		case "type":
			l.Type = s
		}
	}
	return l
}

// LinkOption customizes FriendlyLinks.
type LinkOption func(*linkConfig)

type linkConfig struct {
	sort      bool
	ignoreRel []string
}

// WithSort enables or disables sorting by title (enabled by default).
func WithSort(enabled bool) LinkOption { return func(c *linkConfig) { c.sort = enabled } }

// WithoutSort keeps the input order.
func WithoutSort() LinkOption { return WithSort(false) }

// WithIgnoreRel replaces the set of relations to drop. Matching is
// case-insensitive; calling it without arguments keeps every link. Links
// without a rel are never dropped (see Link.HasRel).
func WithIgnoreRel(rels ...string) LinkOption {
	return func(c *linkConfig) { c.ignoreRel = lowerAll(rels) }
}

// FriendlyLinks prepares a link list for display: links whose rel is ignored
// ("self" by default) are dropped, links without a title get one derived from
// rel or href, and the result is sorted by title unless WithoutSort is given.
// links may be []Link, []*Link, []map[string]any or []any of those. Anything
// else yields an empty list. Input links are never modified.
func FriendlyLinks(links any, opts ...LinkOption) []Link {
	return Default().FriendlyLinks(links, opts...)
}

// FriendlyLinks is the Formatter variant of FriendlyLinks; the default ignore
// list comes from Options.IgnoreRel.
func (f *Formatter) FriendlyLinks(links any, opts ...LinkOption) []Link {
	cfg := linkConfig{sort: true, ignoreRel: f.ignoreRel}
	for _, o := range opts {
		o(&cfg)
	}

	out := []Link{}
	items, ok := f.linkItems(links)
	if !ok {
		f.log.Debug("link list is not a sequence", zap.String("type", fmt.Sprintf("%T", links)))
		return out
	}
	for _, l := range items {
		if l.HasRel() && slices.Contains(cfg.ignoreRel, strings.ToLower(l.Rel)) {
			continue
		}
		if l.Title == "" {
			l.Title = f.linkTitle(l)
		}
		out = append(out, l)
	}
	if cfg.sort {
		slices.SortStableFunc(out, func(a, b Link) int {
			return CompareStringCaseInsensitive(a.Title, b.Title)
		})
	}
	return out
}

func (f *Formatter) linkTitle(l Link) string {
	if utf8.RuneCountInString(l.Rel) > 1 {
		return f.PrettifyString(l.Rel)
	}
	f.log.Debug("deriving link title from href", zap.String("href", l.Href))
	return hrefTrailing.ReplaceAllString(hrefScheme.ReplaceAllString(l.Href, ""), "")
}

// linkItems copies the supported link list shapes into fresh Link values.
func (f *Formatter) linkItems(links any) ([]Link, bool) {
	switch t := links.(type) {
	case []Link:
		out := make([]Link, len(t))
		for i, l := range t {
			out[i] = l.Clone()
		}
		return out, true
	case []*Link:
		out := make([]Link, 0, len(t))
		for _, l := range t {
			if l != nil {
				out = append(out, l.Clone())
			}
		}
		return out, true
	}

	seq, ok := normalize(links).([]any)
	if !ok {
		return nil, false
	}
	out := make([]Link, 0, len(seq))
	for i, v := range seq {
		switch l := v.(type) {
		case Link:
			out = append(out, l.Clone())
		case *Link:
			if l != nil {
				out = append(out, l.Clone())
			}
		default:
			m, ok := normalize(v).(map[string]any)
			if !ok {
				f.log.Debug("skipping link that is not an object", zap.Int("index", i))
				continue
			}
			out = append(out, linkFromMap(m))
		}
	}
	return out, true
}
