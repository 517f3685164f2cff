package content_test

import (
	"testing"

	"github.com/befpail737-glitch/litong-sub004/content"
	"github.com/befpail737-glitch/litong-sub004/locale"
)

func newResolver(t *testing.T) *content.Resolver {
	t.Helper()
	reg := locale.MustNewRegistry([]locale.Locale{
		{Code: "zh-CN", Display: "Chinese (Simplified)", IsDefault: true},
		{Code: "en", Display: "English"},
		{Code: "ja", Display: "Japanese"},
	})
	resolver, err := content.NewResolver(reg)
	if err != nil {
		t.Fatalf("NewResolver returned unexpected error: %v", err)
	}
	return resolver
}

func TestNewResolverRequiresRegistry(t *testing.T) {
	if _, err := content.NewResolver(nil); err != content.ErrRegistryRequired {
		t.Fatalf("expected ErrRegistryRequired, got %v", err)
	}
}

func TestTextPrefersRequestedLocale(t *testing.T) {
	resolver := newResolver(t)
	field := content.Text{"zh-CN": "芯片A", "en": "Chip A"}

	if got := resolver.Text(field, "en"); got != "Chip A" {
		t.Fatalf("expected requested locale value, got %q", got)
	}
}

func TestTextFallsBackToDefault(t *testing.T) {
	resolver := newResolver(t)
	field := content.Text{"zh-CN": "芯片A", "en": "", "ja": "チップB"}

	// en is empty, so the default locale wins regardless of other locales.
	if got := resolver.Text(field, "en"); got != "芯片A" {
		t.Fatalf("expected default locale value, got %q", got)
	}
}

func TestTextScanFallbackUsesRegistryOrder(t *testing.T) {
	resolver := newResolver(t)

	// Requested and default are both empty; en precedes ja in registry order.
	field := content.Text{"zh-CN": "", "en": "Chip A", "ja": "チップA"}
	if got := resolver.Text(field, "zh-CN"); got != "Chip A" {
		t.Fatalf("expected scan fallback to pick en, got %q", got)
	}

	only := content.Text{"ja": "チップA"}
	if got := resolver.Text(only, "zh-CN"); got != "チップA" {
		t.Fatalf("expected the only populated locale, got %q", got)
	}
}

func TestTextEmptyFieldResolvesToEmptyValue(t *testing.T) {
	resolver := newResolver(t)

	if got := resolver.Text(content.Text{}, "en"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := resolver.Text(content.Text{"zh-CN": "   "}, "en"); got != "" {
		t.Fatalf("whitespace-only values must resolve empty, got %q", got)
	}
}

func TestTextWithFallbackOverride(t *testing.T) {
	resolver := newResolver(t)
	field := content.Text{"zh-CN": "芯片A", "ja": "チップA"}

	if got := resolver.TextWithFallback(field, "en", "ja"); got != "チップA" {
		t.Fatalf("expected override fallback value, got %q", got)
	}
}

func TestTextUnknownRequestedLocaleStillResolves(t *testing.T) {
	resolver := newResolver(t)
	field := content.Text{"zh-CN": "芯片A"}

	if got := resolver.Text(field, "fr"); got != "芯片A" {
		t.Fatalf("expected default fallback for unknown locale, got %q", got)
	}
}

func TestTextResolutionIsDeterministic(t *testing.T) {
	resolver := newResolver(t)
	field := content.Text{"en": "Chip A", "ja": "チップA"}

	first := resolver.Text(field, "zh-CN")
	for i := 0; i < 50; i++ {
		if got := resolver.Text(field, "zh-CN"); got != first {
			t.Fatalf("resolution changed between calls: %q then %q", first, got)
		}
	}
}

func TestBlocksResolution(t *testing.T) {
	resolver := newResolver(t)
	body := content.Blocks{
		"zh-CN": {},
		"en":    {{Type: "paragraph", Data: map[string]any{"text": "data sheet"}}},
	}

	blocks := resolver.Blocks(body, "zh-CN")
	if len(blocks) != 1 || blocks[0].Type != "paragraph" {
		t.Fatalf("expected en block sequence, got %+v", blocks)
	}

	if got := resolver.Blocks(content.Blocks{}, "en"); got != nil {
		t.Fatalf("expected nil for empty blocks field, got %+v", got)
	}
}

func TestSEOInnerFieldsResolveIndependently(t *testing.T) {
	resolver := newResolver(t)
	bundle := content.SEO{
		Title:       content.Text{"zh-CN": "芯片A", "en": "Chip A"},
		Description: content.Text{"zh-CN": "描述"},
		Keywords:    content.Keywords{"en": {"chip", "ic"}},
		Image:       "media://chip-a.png",
	}

	resolved := resolver.SEO(bundle, "en")
	if resolved.Title != "Chip A" {
		t.Fatalf("expected en title, got %q", resolved.Title)
	}
	if resolved.Description != "描述" {
		t.Fatalf("expected default description fallback, got %q", resolved.Description)
	}
	if len(resolved.Keywords) != 2 {
		t.Fatalf("expected en keywords, got %+v", resolved.Keywords)
	}
	if resolved.Image != "media://chip-a.png" {
		t.Fatalf("expected image passthrough, got %q", resolved.Image)
	}
}

func TestIsEmpty(t *testing.T) {
	resolver := newResolver(t)

	if !resolver.IsEmpty(content.Text{}) {
		t.Fatalf("empty field must report empty")
	}
	if !resolver.IsEmpty(content.Text{"zh-CN": " ", "en": ""}) {
		t.Fatalf("whitespace-only field must report empty")
	}
	if resolver.IsEmpty(content.Text{"ja": "チップA"}) {
		t.Fatalf("populated field must not report empty")
	}
	if !resolver.IsEmpty(content.Blocks{"en": {}}) {
		t.Fatalf("zero-length block sequences must report empty")
	}
}

func TestIsEmptyFalseImpliesNonEmptyResolution(t *testing.T) {
	resolver := newResolver(t)
	fields := []content.Text{
		{"zh-CN": "芯片A"},
		{"en": "Chip A"},
		{"ja": "チップA"},
		{"en": "", "ja": "チップA"},
	}

	for _, field := range fields {
		if resolver.IsEmpty(field) {
			continue
		}
		for _, requested := range []string{"zh-CN", "en", "ja"} {
			if got := resolver.Text(field, requested); got == "" {
				t.Fatalf("non-empty field %v resolved empty for %s", field, requested)
			}
		}
	}
}

func TestAvailableLocales(t *testing.T) {
	resolver := newResolver(t)
	field := content.Text{"ja": "チップA", "en": "Chip A", "zh-CN": ""}

	got := resolver.AvailableLocales(field)
	want := []string{"en", "ja"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v in registry order, got %v", want, got)
		}
	}
}
