package content

import "strings"

// Field is implemented by every locale-keyed field shape. Absence of a locale
// key and an empty value are equivalent "untranslated" states.
type Field interface {
	// Has reports whether the field carries an entry for the locale, empty or not.
	Has(code string) bool
	// NonEmpty reports whether the field carries a usable value for the locale.
	NonEmpty(code string) bool
}

// Text is a locale-keyed scalar text field.
type Text map[string]string

func (t Text) Has(code string) bool {
	_, ok := t[code]
	return ok
}

func (t Text) NonEmpty(code string) bool {
	return strings.TrimSpace(t[code]) != ""
}

// Get returns the stored value for code, which may be empty.
func (t Text) Get(code string) string {
	return t[code]
}

// Block is one unit of rich content. The engine treats block payloads as
// opaque beyond presence.
type Block struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data,omitempty"`
}

// Blocks is a locale-keyed ordered sequence of rich-content blocks.
type Blocks map[string][]Block

func (b Blocks) Has(code string) bool {
	_, ok := b[code]
	return ok
}

func (b Blocks) NonEmpty(code string) bool {
	return len(b[code]) > 0
}

// Keywords is a locale-keyed keyword list, used by SEO bundles.
type Keywords map[string][]string

func (k Keywords) Has(code string) bool {
	_, ok := k[code]
	return ok
}

func (k Keywords) NonEmpty(code string) bool {
	return len(k[code]) > 0
}

// SEO groups the localized SEO metadata for one entry. Resolution and
// validation apply to each inner field independently; there is no whole-bundle
// fallback.
type SEO struct {
	Title       Text     `json:"title,omitempty"`
	Description Text     `json:"description,omitempty"`
	Keywords    Keywords `json:"keywords,omitempty"`
	Image       string   `json:"image,omitempty"`
}

func (s SEO) Has(code string) bool {
	return s.Title.Has(code) || s.Description.Has(code) || s.Keywords.Has(code)
}

func (s SEO) NonEmpty(code string) bool {
	return s.Title.NonEmpty(code) || s.Description.NonEmpty(code) || s.Keywords.NonEmpty(code)
}

// ResolvedSEO is the display-ready projection of an SEO bundle for one locale.
type ResolvedSEO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
	Image       string   `json:"image,omitempty"`
}
