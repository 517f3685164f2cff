package audit

import (
	"errors"
	"sort"
	"time"

	"github.com/befpail737-glitch/litong-sub004/content"
	"github.com/befpail737-glitch/litong-sub004/locale"
	"github.com/befpail737-glitch/litong-sub004/validate"
	"github.com/google/uuid"
)

var ErrRegistryRequired = errors.New("audit: locale registry is required")

// Stats aggregates one audit run. Issues are deduplicated by
// (kind, field, locale); the first occurrence wins and relative order is
// preserved.
type Stats struct {
	TotalFieldSlots      int              `json:"total_field_slots"`
	TranslatedFieldSlots int              `json:"translated_field_slots"`
	CompletionRate       float64          `json:"completion_rate"`
	Issues               []validate.Issue `json:"issues"`
}

// LocaleCompletion reports per-locale translation coverage for one record.
type LocaleCompletion struct {
	Locale string  `json:"locale"`
	Rate   float64 `json:"rate"`
}

// Report wraps Stats with identity for consumers that persist or list audit
// results. The engine itself never stores reports.
type Report struct {
	ID          uuid.UUID `json:"id"`
	RecordRef   string    `json:"record_ref,omitempty"`
	Stats       Stats     `json:"stats"`
	GeneratedAt time.Time `json:"generated_at"`
}

// NewReport stamps stats with a fresh identity.
func NewReport(recordRef string, stats Stats) Report {
	return Report{
		ID:          uuid.New(),
		RecordRef:   recordRef,
		Stats:       stats,
		GeneratedAt: time.Now().UTC(),
	}
}

// Auditor runs the rule engine across every field of a record and aggregates
// the outcome. It holds only the immutable locale registry and is safe for
// concurrent use.
type Auditor struct {
	locales *locale.Registry
}

// New builds an auditor bound to the supplied registry.
func New(locales *locale.Registry) (*Auditor, error) {
	if locales == nil {
		return nil, ErrRegistryRequired
	}
	return &Auditor{locales: locales}, nil
}

// Locales exposes the registry the auditor was built with.
func (a *Auditor) Locales() *locale.Registry {
	return a.locales
}

// Record audits every field of a record against the supplied rules and
// returns aggregate statistics with a deduplicated issue list. Fields absent
// from the rules mapping are treated as optional: they still count toward
// completion statistics but carry no checks. SEO bundles are expanded into
// their inner fields (<name>.title, <name>.description, <name>.keywords)
// before auditing, so rules address the expanded names.
//
// Fields are processed in sorted name order so that two runs over identical
// inputs produce identical issue lists.
func (a *Auditor) Record(fields map[string]content.Field, rules map[string]validate.Rule) (Stats, error) {
	expanded := expandFields(fields)
	names := make([]string, 0, len(expanded))
	for name := range expanded {
		names = append(names, name)
	}
	sort.Strings(names)

	stats := Stats{
		TotalFieldSlots: len(expanded) * a.locales.Len(),
		Issues:          []validate.Issue{},
	}

	seen := make(map[validate.IssueKey]struct{})
	for _, name := range names {
		field := expanded[name]
		issues, err := validate.Field(field, name, rules[name], a.locales)
		if err != nil {
			return Stats{}, err
		}
		for _, issue := range issues {
			key := issue.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			stats.Issues = append(stats.Issues, issue)
		}
		for _, code := range a.locales.Codes() {
			if field.NonEmpty(code) {
				stats.TranslatedFieldSlots++
			}
		}
	}

	if stats.TotalFieldSlots > 0 {
		stats.CompletionRate = float64(stats.TranslatedFieldSlots) / float64(stats.TotalFieldSlots)
	}
	return stats, nil
}

// LocaleCompletion ranks locales by translation coverage, ascending, so the
// locale needing the most work comes first. Ties keep registry order.
func (a *Auditor) LocaleCompletion(fields map[string]content.Field) []LocaleCompletion {
	expanded := expandFields(fields)
	totals := len(expanded)

	out := make([]LocaleCompletion, 0, a.locales.Len())
	for _, code := range a.locales.Codes() {
		translated := 0
		for _, field := range expanded {
			if field.NonEmpty(code) {
				translated++
			}
		}
		rate := 0.0
		if totals > 0 {
			rate = float64(translated) / float64(totals)
		}
		out = append(out, LocaleCompletion{Locale: code, Rate: rate})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rate < out[j].Rate
	})
	return out
}

func expandFields(fields map[string]content.Field) map[string]content.Field {
	expanded := make(map[string]content.Field, len(fields))
	for name, field := range fields {
		if field == nil {
			continue
		}
		if bundle, ok := field.(content.SEO); ok {
			expanded[name+".title"] = bundle.Title
			expanded[name+".description"] = bundle.Description
			expanded[name+".keywords"] = bundle.Keywords
			continue
		}
		expanded[name] = field
	}
	return expanded
}
