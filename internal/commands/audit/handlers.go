package auditcmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/befpail737-glitch/litong-sub004/audit"
	"github.com/befpail737-glitch/litong-sub004/internal/catalog"
	"github.com/befpail737-glitch/litong-sub004/internal/commands"
	"github.com/befpail737-glitch/litong-sub004/pkg/interfaces"
	"github.com/befpail737-glitch/litong-sub004/validate"
)

// ReportSink receives the report produced for each audited entry.
type ReportSink interface {
	Publish(ctx context.Context, report audit.Report) error
}

// ReportSinkFunc adapts a function to the ReportSink interface.
type ReportSinkFunc func(ctx context.Context, report audit.Report) error

// Publish implements ReportSink.
func (f ReportSinkFunc) Publish(ctx context.Context, report audit.Report) error {
	return f(ctx, report)
}

// AuditEntryHandler audits a single entry through the shared command
// handler foundation.
type AuditEntryHandler struct {
	inner *commands.Handler[AuditEntryCommand]
}

// NewAuditEntryHandler constructs a handler wired to the provided
// repository, auditor and rule set.
func NewAuditEntryHandler(repo catalog.Repository, auditor *audit.Auditor, rules map[string]validate.Rule, sink ReportSink, logger interfaces.Logger, opts ...commands.HandlerOption[AuditEntryCommand]) *AuditEntryHandler {
	exec := func(ctx context.Context, msg AuditEntryCommand) error {
		entry, err := repo.GetBySlug(ctx, msg.Slug)
		if err != nil {
			return err
		}
		report, err := auditEntry(auditor, entry, rules)
		if err != nil {
			return err
		}
		if sink == nil {
			return nil
		}
		return sink.Publish(ctx, report)
	}

	handlerOpts := []commands.HandlerOption[AuditEntryCommand]{
		commands.WithLogger[AuditEntryCommand](logger),
		commands.WithOperation[AuditEntryCommand]("audit.entry"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &AuditEntryHandler{
		inner: commands.NewHandler[AuditEntryCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[AuditEntryCommand].Execute.
func (h *AuditEntryHandler) Execute(ctx context.Context, msg AuditEntryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// AuditCatalogHandler sweeps every stored entry, publishing one report
// per entry.
type AuditCatalogHandler struct {
	inner *commands.Handler[AuditCatalogCommand]
}

// NewAuditCatalogHandler constructs the sweep handler.
func NewAuditCatalogHandler(repo catalog.Repository, auditor *audit.Auditor, rules map[string]validate.Rule, sink ReportSink, logger interfaces.Logger, opts ...commands.HandlerOption[AuditCatalogCommand]) *AuditCatalogHandler {
	exec := func(ctx context.Context, msg AuditCatalogCommand) error {
		entries, err := repo.List(ctx)
		if err != nil {
			return err
		}

		var failures []error
		for _, entry := range entries {
			report, err := auditEntry(auditor, entry, rules)
			if err == nil && sink != nil {
				err = sink.Publish(ctx, report)
			}
			if err == nil {
				continue
			}
			wrapped := fmt.Errorf("audit %q: %w", entry.Slug, err)
			if msg.FailFast {
				return wrapped
			}
			failures = append(failures, wrapped)
		}
		return errors.Join(failures...)
	}

	handlerOpts := []commands.HandlerOption[AuditCatalogCommand]{
		commands.WithLogger[AuditCatalogCommand](logger),
		commands.WithOperation[AuditCatalogCommand]("audit.catalog"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &AuditCatalogHandler{
		inner: commands.NewHandler[AuditCatalogCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[AuditCatalogCommand].Execute.
func (h *AuditCatalogHandler) Execute(ctx context.Context, msg AuditCatalogCommand) error {
	return h.inner.Execute(ctx, msg)
}

func auditEntry(auditor *audit.Auditor, entry *catalog.Entry, rules map[string]validate.Rule) (audit.Report, error) {
	stats, err := auditor.Record(entry.Fields(), rules)
	if err != nil {
		return audit.Report{}, err
	}
	return audit.NewReport(entry.Slug, stats), nil
}
