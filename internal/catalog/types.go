package catalog

import (
	"time"

	"github.com/befpail737-glitch/litong-sub004/content"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Entry is a catalog record whose localized payloads live in
// locale-keyed JSONB columns. The well-known columns map onto the
// audit field names directly; Extras carries ad-hoc text fields
// (contact addresses, CTAs) keyed by field name.
type Entry struct {
	bun.BaseModel `bun:"table:catalog_entries,alias:ce"`

	ID        uuid.UUID               `bun:",pk,type:uuid"          json:"id"`
	Slug      string                  `bun:"slug,notnull"           json:"slug"`
	Titles    content.Text            `bun:"titles,type:jsonb,notnull" json:"titles"`
	Summaries content.Text            `bun:"summaries,type:jsonb"   json:"summaries,omitempty"`
	Bodies    content.Blocks          `bun:"bodies,type:jsonb"      json:"bodies,omitempty"`
	SEO       content.SEO             `bun:"seo,type:jsonb"         json:"seo"`
	Extras    map[string]content.Text `bun:"extras,type:jsonb"      json:"extras,omitempty"`
	CreatedAt time.Time               `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time               `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Fields projects the entry into the field map consumed by the audit
// layer. Nil payloads are skipped so absent columns never count as
// empty translations.
func (e *Entry) Fields() map[string]content.Field {
	fields := make(map[string]content.Field, 4+len(e.Extras))
	if e.Titles != nil {
		fields["title"] = e.Titles
	}
	if e.Summaries != nil {
		fields["summary"] = e.Summaries
	}
	if e.Bodies != nil {
		fields["body"] = e.Bodies
	}
	if !seoZero(e.SEO) {
		fields["seo"] = e.SEO
	}
	for name, text := range e.Extras {
		if text != nil {
			fields[name] = text
		}
	}
	return fields
}

func seoZero(seo content.SEO) bool {
	return len(seo.Title) == 0 && len(seo.Description) == 0 && len(seo.Keywords) == 0 && seo.Image == ""
}

func cloneEntry(src *Entry) *Entry {
	if src == nil {
		return nil
	}

	copied := *src
	copied.Titles = cloneText(src.Titles)
	copied.Summaries = cloneText(src.Summaries)
	copied.SEO = content.SEO{
		Title:       cloneText(src.SEO.Title),
		Description: cloneText(src.SEO.Description),
		Keywords:    cloneKeywords(src.SEO.Keywords),
		Image:       src.SEO.Image,
	}
	if src.Bodies != nil {
		copied.Bodies = make(content.Blocks, len(src.Bodies))
		for code, blocks := range src.Bodies {
			local := make([]content.Block, len(blocks))
			copy(local, blocks)
			copied.Bodies[code] = local
		}
	}
	if src.Extras != nil {
		copied.Extras = make(map[string]content.Text, len(src.Extras))
		for name, text := range src.Extras {
			copied.Extras[name] = cloneText(text)
		}
	}
	return &copied
}

func cloneText(src content.Text) content.Text {
	if src == nil {
		return nil
	}
	out := make(content.Text, len(src))
	for code, value := range src {
		out[code] = value
	}
	return out
}

func cloneKeywords(src content.Keywords) content.Keywords {
	if src == nil {
		return nil
	}
	out := make(content.Keywords, len(src))
	for code, words := range src {
		local := make([]string, len(words))
		copy(local, words)
		out[code] = local
	}
	return out
}
