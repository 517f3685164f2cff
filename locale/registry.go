package locale

import "strings"

// Locale represents one supported language/region variant of content.
type Locale struct {
	Code       string         `json:"code"`
	Display    string         `json:"display_name"`
	NativeName *string        `json:"native_name,omitempty"`
	IsDefault  bool           `json:"is_default"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Registry holds the ordered set of supported locales plus the single default
// locale. It is immutable after construction, so concurrent resolutions can
// share it without synchronization. The declared order is the fallback scan
// order used throughout resolution and auditing.
type Registry struct {
	locales []Locale
	codes   []string
	index   map[string]int
	def     int
}

// NewRegistry validates the configured locales and builds a registry.
// Construction fails when the set is empty, contains duplicate codes, or does
// not flag exactly one default locale.
func NewRegistry(locales []Locale) (*Registry, error) {
	cleaned := make([]Locale, 0, len(locales))
	for _, l := range locales {
		l.Code = strings.TrimSpace(l.Code)
		if l.Code == "" {
			continue
		}
		cleaned = append(cleaned, l)
	}
	if len(cleaned) == 0 {
		return nil, ErrNoLocales
	}

	reg := &Registry{
		locales: cleaned,
		codes:   make([]string, 0, len(cleaned)),
		index:   make(map[string]int, len(cleaned)),
		def:     -1,
	}
	for i, l := range cleaned {
		key := strings.ToLower(l.Code)
		if _, exists := reg.index[key]; exists {
			return nil, &DuplicateLocaleError{Code: l.Code}
		}
		reg.index[key] = i
		reg.codes = append(reg.codes, l.Code)
		if l.IsDefault {
			if reg.def >= 0 {
				return nil, ErrMultipleDefaultLocales
			}
			reg.def = i
		}
	}
	if reg.def < 0 {
		return nil, ErrNoDefaultLocale
	}
	return reg, nil
}

// MustNewRegistry panics when construction fails. Intended for fixed
// configuration known at compile time, mainly in tests.
func MustNewRegistry(locales []Locale) *Registry {
	reg, err := NewRegistry(locales)
	if err != nil {
		panic(err)
	}
	return reg
}

// Codes returns the locale codes in declared order. The slice is a copy.
func (r *Registry) Codes() []string {
	out := make([]string, len(r.codes))
	copy(out, r.codes)
	return out
}

// Locales returns the configured locales in declared order. The slice is a copy.
func (r *Registry) Locales() []Locale {
	out := make([]Locale, len(r.locales))
	copy(out, r.locales)
	return out
}

// Len reports how many locales the registry holds.
func (r *Registry) Len() int {
	return len(r.locales)
}

// Default returns the locale flagged as default.
func (r *Registry) Default() Locale {
	return r.locales[r.def]
}

// DefaultCode returns the default locale's code.
func (r *Registry) DefaultCode() string {
	return r.locales[r.def].Code
}

// Contains reports whether code names a registered locale. Matching is
// case-insensitive.
func (r *Registry) Contains(code string) bool {
	_, ok := r.index[strings.ToLower(strings.TrimSpace(code))]
	return ok
}

// Canonical maps code to its registered spelling so map lookups against
// locale-keyed fields stay deterministic. Unknown codes return a NotFoundError.
func (r *Registry) Canonical(code string) (string, error) {
	idx, ok := r.index[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return "", &NotFoundError{Code: code}
	}
	return r.locales[idx].Code, nil
}

// Get returns the registered locale for code.
func (r *Registry) Get(code string) (Locale, error) {
	idx, ok := r.index[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return Locale{}, &NotFoundError{Code: code}
	}
	return r.locales[idx], nil
}

// IsDefault reports whether code names the default locale.
func (r *Registry) IsDefault(code string) bool {
	idx, ok := r.index[strings.ToLower(strings.TrimSpace(code))]
	return ok && idx == r.def
}
