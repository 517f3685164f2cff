package auditcmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	auditEntryMessageType   = "litong.audit.entry"
	auditCatalogMessageType = "litong.audit.catalog"
)

// AuditEntryCommand requests a translation audit of a single catalog
// entry addressed by slug.
type AuditEntryCommand struct {
	Slug string `json:"slug"`
}

// Type implements command.Message.
func (AuditEntryCommand) Type() string { return auditEntryMessageType }

// Validate ensures the message carries a target before reaching handlers.
func (m AuditEntryCommand) Validate() error {
	errs := validation.Errors{}
	if m.Slug == "" {
		errs["slug"] = validation.NewError("litong.audit.entry.slug_required", "slug is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AuditCatalogCommand requests an audit sweep over every stored entry.
type AuditCatalogCommand struct {
	// FailFast stops the sweep on the first entry whose audit cannot
	// run (for example a malformed rule). Issue-bearing reports never
	// stop the sweep.
	FailFast bool `json:"fail_fast,omitempty"`
}

// Type implements command.Message.
func (AuditCatalogCommand) Type() string { return auditCatalogMessageType }

// Validate implements command.Message; the sweep has no required fields.
func (AuditCatalogCommand) Validate() error { return nil }
