package content

import (
	"github.com/befpail737-glitch/litong-sub004/locale"
)

// Resolver produces display values for locale-keyed fields using a
// deterministic fallback chain: the requested locale, then the fallback locale
// (the registry default unless overridden), then the first non-empty entry in
// registry order. A field with no usable entry resolves to the shape's empty
// value; resolution never fails.
//
// Resolver holds only the immutable registry, so a single instance can serve
// concurrent resolutions.
type Resolver struct {
	locales *locale.Registry
}

// NewResolver builds a resolver bound to the supplied registry.
func NewResolver(locales *locale.Registry) (*Resolver, error) {
	if locales == nil {
		return nil, ErrRegistryRequired
	}
	return &Resolver{locales: locales}, nil
}

// Locales exposes the registry the resolver was built with.
func (r *Resolver) Locales() *locale.Registry {
	return r.locales
}

// Text resolves a scalar text field for the requested locale.
func (r *Resolver) Text(field Text, requested string) string {
	return r.TextWithFallback(field, requested, "")
}

// TextWithFallback resolves a scalar text field preferring requested, then
// fallback (the default locale when empty), then the registry scan.
func (r *Resolver) TextWithFallback(field Text, requested, fallback string) string {
	if code, ok := r.pick(requested, fallback, field.NonEmpty); ok {
		return field.Get(code)
	}
	return ""
}

// Blocks resolves a rich-content block sequence for the requested locale.
func (r *Resolver) Blocks(field Blocks, requested string) []Block {
	return r.BlocksWithFallback(field, requested, "")
}

// BlocksWithFallback resolves a block sequence with an explicit fallback locale.
func (r *Resolver) BlocksWithFallback(field Blocks, requested, fallback string) []Block {
	if code, ok := r.pick(requested, fallback, field.NonEmpty); ok {
		return field[code]
	}
	return nil
}

// Keywords resolves a keyword list for the requested locale.
func (r *Resolver) Keywords(field Keywords, requested string) []string {
	if code, ok := r.pick(requested, "", field.NonEmpty); ok {
		return field[code]
	}
	return nil
}

// SEO resolves each inner field of the bundle independently; there is no
// whole-bundle locale swap. The image reference passes through untouched.
func (r *Resolver) SEO(bundle SEO, requested string) ResolvedSEO {
	return ResolvedSEO{
		Title:       r.Text(bundle.Title, requested),
		Description: r.Text(bundle.Description, requested),
		Keywords:    r.Keywords(bundle.Keywords, requested),
		Image:       bundle.Image,
	}
}

// IsEmpty reports whether the field holds no usable value for any registered
// locale. Callers that require guaranteed non-empty resolution output should
// check this first.
func (r *Resolver) IsEmpty(field Field) bool {
	for _, code := range r.locales.Codes() {
		if field.NonEmpty(code) {
			return false
		}
	}
	return true
}

// AvailableLocales returns, in registry order, every locale the field holds a
// usable value for.
func (r *Resolver) AvailableLocales(field Field) []string {
	available := make([]string, 0, r.locales.Len())
	for _, code := range r.locales.Codes() {
		if field.NonEmpty(code) {
			available = append(available, code)
		}
	}
	return available
}

// pick walks the fallback chain and returns the locale whose value should be
// displayed. Unknown requested or fallback codes are skipped rather than
// rejected, keeping resolution total.
func (r *Resolver) pick(requested, fallback string, nonEmpty func(string) bool) (string, bool) {
	if code, err := r.locales.Canonical(requested); err == nil && nonEmpty(code) {
		return code, true
	}

	if fallback == "" {
		fallback = r.locales.DefaultCode()
	}
	if code, err := r.locales.Canonical(fallback); err == nil && nonEmpty(code) {
		return code, true
	}

	for _, code := range r.locales.Codes() {
		if nonEmpty(code) {
			return code, true
		}
	}
	return "", false
}
