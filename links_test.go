package schemalabel_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gopkg.in/yaml.v3"

	"github.com/reoring/schemalabel"
)

// decode bookkeeping is not part of a link's value
var ignoreLinkState = cmpopts.IgnoreUnexported(schemalabel.Link{})

func titles(links []schemalabel.Link) []string {
	out := make([]string, len(links))
	for i, l := range links {
		out[i] = l.Title
	}
	return out
}

func TestFriendlyLinks_DropsSelfAndTitlesFromRel(t *testing.T) {
	in := []any{
		map[string]any{"href": "https://x.com/a", "rel": "self"},
		map[string]any{"href": "https://x.com/b", "rel": "data"},
	}
	got := schemalabel.FriendlyLinks(in)
	want := []schemalabel.Link{{Href: "https://x.com/b", Rel: "data", Title: "Data"}}
	if diff := cmp.Diff(want, got, ignoreLinkState); diff != "" {
		t.Fatalf("links mismatch (-want +got):\n%s", diff)
	}
}

func TestFriendlyLinks_TitleFallbacks(t *testing.T) {
	in := []schemalabel.Link{
		{Href: "https://www.example.com/", Rel: "x"},
		{Href: "HTTP://example.org/path/"},
		{Href: "ftp://files.example.net", Title: "Mirror"},
		{Href: "https://example.com/lic", Rel: "license_info"},
		{Href: "https://example.com/alt", Rel: "alternate", Title: ""},
	}
	got := schemalabel.FriendlyLinks(in, schemalabel.WithoutSort())
	want := []string{"example.com", "example.org/path", "Mirror", "License info", "Alternate"}
	if diff := cmp.Diff(want, titles(got)); diff != "" {
		t.Fatalf("titles mismatch (-want +got):\n%s", diff)
	}
}

func TestFriendlyLinks_SortIsCaseInsensitiveAndStable(t *testing.T) {
	in := []schemalabel.Link{
		{Href: "1", Title: "beta"},
		{Href: "2", Title: "Alpha"},
		{Href: "3", Title: "alpha"},
		{Href: "4", Title: "Gamma"},
	}
	got := schemalabel.FriendlyLinks(in)
	hrefs := make([]string, len(got))
	for i, l := range got {
		hrefs[i] = l.Href
	}
	if diff := cmp.Diff([]string{"2", "3", "1", "4"}, hrefs); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestFriendlyLinks_IgnoreRel(t *testing.T) {
	in := []schemalabel.Link{
		{Href: "a", Rel: "SELF"},
		{Href: "b", Rel: "root"},
		{Href: "c", Rel: "parent"},
	}
	if got := titles(schemalabel.FriendlyLinks(in)); !cmp.Equal(got, []string{"Parent", "Root"}) {
		t.Fatalf("default ignore: %v", got)
	}
	got := schemalabel.FriendlyLinks(in, schemalabel.WithIgnoreRel("Root", "parent"))
	// rel is prettified as written; upper-case rels stay upper-case
	if diff := cmp.Diff([]string{"SELF"}, titles(got)); diff != "" {
		t.Fatalf("custom ignore (-want +got):\n%s", diff)
	}
	if got := schemalabel.FriendlyLinks(in, schemalabel.WithIgnoreRel()); len(got) != 3 {
		t.Fatalf("empty ignore list should keep all links, got %d", len(got))
	}

	f := schemalabel.New(schemalabel.Options{IgnoreRel: []string{"ROOT"}})
	if diff := cmp.Diff([]string{"Parent", "SELF"}, titles(f.FriendlyLinks(in))); diff != "" {
		t.Fatalf("formatter ignore (-want +got):\n%s", diff)
	}
}

func TestFriendlyLinks_DoesNotMutateInput(t *testing.T) {
	extra := map[string]any{"method": "GET"}
	in := []schemalabel.Link{{Href: "https://x.com/", Rel: "item", Extra: extra}}
	m := map[string]any{"href": "https://y.com", "rel": "child"}

	got := schemalabel.FriendlyLinks(in)
	got[0].Extra["method"] = "POST"
	if in[0].Title != "" || extra["method"] != "GET" {
		t.Fatalf("input link modified: %#v", in[0])
	}

	_ = schemalabel.FriendlyLinks([]map[string]any{m})
	if _, ok := m["title"]; ok {
		t.Fatalf("input map modified: %#v", m)
	}
}

func TestFriendlyLinks_NonSequence(t *testing.T) {
	for _, in := range []any{nil, "links", 42, map[string]any{"href": "x"}} {
		got := schemalabel.FriendlyLinks(in)
		if got == nil || len(got) != 0 {
			t.Fatalf("FriendlyLinks(%#v) = %#v, want empty slice", in, got)
		}
	}
}

func TestFriendlyLinks_MixedElements(t *testing.T) {
	in := []any{
		&schemalabel.Link{Href: "https://a.io", Rel: "about"},
		schemalabel.Link{Href: "https://b.io", Rel: "blog"},
		"not a link",
		map[string]any{"href": "https://c.io", "rel": 7},
	}
	got := titles(schemalabel.FriendlyLinks(in))
	if diff := cmp.Diff([]string{"About", "Blog", "c.io"}, got); diff != "" {
		t.Fatalf("titles mismatch (-want +got):\n%s", diff)
	}
}

func TestLink_JSON(t *testing.T) {
	var l schemalabel.Link
	src := `{"href":"https://x.com","rel":"data","type":"application/json","method":"GET","hreflang":["en"]}`
	if err := json.Unmarshal([]byte(src), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := schemalabel.Link{
		Href:  "https://x.com",
		Rel:   "data",
		Type:  "application/json",
		Extra: map[string]any{"method": "GET", "hreflang": []any{"en"}},
	}
	if diff := cmp.Diff(want, l, ignoreLinkState); diff != "" {
		t.Fatalf("decoded link mismatch (-want +got):\n%s", diff)
	}

	b, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back map[string]any
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal map: %v", err)
	}
	if back["method"] != "GET" || back["rel"] != "data" || back["href"] != "https://x.com" {
		t.Fatalf("extras not flattened: %s", b)
	}
	if _, ok := back["title"]; ok {
		t.Fatalf("empty title should be omitted: %s", b)
	}

	if err := json.Unmarshal([]byte(`[1]`), &l); err == nil {
		t.Fatalf("expected error for non-object link")
	}
}

func TestLink_YAMLExtras(t *testing.T) {
	src := "href: https://x.com\nrel: license\nmethod: GET\n"
	var l schemalabel.Link
	if err := yaml.Unmarshal([]byte(src), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if l.Href != "https://x.com" || l.Rel != "license" || l.Extra["method"] != "GET" {
		t.Fatalf("unexpected link: %#v", l)
	}
	got := schemalabel.FriendlyLinks([]schemalabel.Link{l})
	if got[0].Title != "License" {
		t.Fatalf("unexpected title %q", got[0].Title)
	}
}

func TestFriendlyLinks_IgnoreEmptyRelOnlyMatchesPresentRel(t *testing.T) {
	var decoded schemalabel.Link
	if err := json.Unmarshal([]byte(`{"href":"https://b.io","rel":""}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	in := []schemalabel.Link{{Href: "https://a.io"}, decoded}

	got := schemalabel.FriendlyLinks(in, schemalabel.WithIgnoreRel(""))
	if len(got) != 1 || got[0].Href != "https://a.io" {
		t.Fatalf("expected only the link without rel to remain, got %#v", got)
	}
	if in[0].HasRel() || !decoded.HasRel() {
		t.Fatalf("HasRel: literal=%v decoded=%v", in[0].HasRel(), decoded.HasRel())
	}
}

func TestLink_NonStringNamedMembersRoundTrip(t *testing.T) {
	var l schemalabel.Link
	if err := json.Unmarshal([]byte(`{"href":5,"rel":"x"}`), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if l.Href != "" || l.Rel != "x" || len(l.Extra) != 0 {
		t.Fatalf("named members leaked into Extra or fields: %#v", l)
	}

	b, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("marshal json: %v", err)
	}
	var fromJSON map[string]any
	if err := json.Unmarshal(b, &fromJSON); err != nil {
		t.Fatalf("unmarshal map: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"href": float64(5), "rel": "x"}, fromJSON); diff != "" {
		t.Fatalf("json round trip (-want +got):\n%s", diff)
	}

	y, err := yaml.Marshal(l)
	if err != nil {
		t.Fatalf("marshal yaml: %v", err)
	}
	var fromYAML map[string]any
	if err := yaml.Unmarshal(y, &fromYAML); err != nil {
		t.Fatalf("unmarshal yaml: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"href": 5, "rel": "x"}, fromYAML); diff != "" {
		t.Fatalf("yaml round trip (-want +got):\n%s", diff)
	}
}

func TestLink_ExtraCannotShadowNamedFields(t *testing.T) {
	l := schemalabel.Link{Href: "h", Extra: map[string]any{"href": 5, "method": "GET"}}

	y, err := yaml.Marshal(l)
	if err != nil {
		t.Fatalf("marshal yaml: %v", err)
	}
	var fromYAML map[string]any
	if err := yaml.Unmarshal(y, &fromYAML); err != nil {
		t.Fatalf("unmarshal yaml: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"href": "h", "method": "GET"}, fromYAML); diff != "" {
		t.Fatalf("yaml output (-want +got):\n%s", diff)
	}

	b, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("marshal json: %v", err)
	}
	if string(b) != `{"href":"h","method":"GET"}` {
		t.Fatalf("json output: %s", b)
	}
}

func TestLink_HrefPresence(t *testing.T) {
	var l schemalabel.Link
	if err := json.Unmarshal([]byte(`{"href":"","rel":"x"}`), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := l.Map()["href"]; !ok {
		t.Fatalf("decoded empty href should be kept: %#v", l.Map())
	}
	if _, ok := (schemalabel.Link{Rel: "x"}).Map()["href"]; ok {
		t.Fatalf("unset href should be omitted")
	}
}
