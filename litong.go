// Package litong assembles the localized content resolution and
// translation audit services behind a single configurable module.
package litong

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/befpail737-glitch/litong-sub004/audit"
	"github.com/befpail737-glitch/litong-sub004/content"
	"github.com/befpail737-glitch/litong-sub004/internal/catalog"
	auditcmd "github.com/befpail737-glitch/litong-sub004/internal/commands/audit"
	"github.com/befpail737-glitch/litong-sub004/internal/logging"
	"github.com/befpail737-glitch/litong-sub004/internal/logging/gologger"
	"github.com/befpail737-glitch/litong-sub004/internal/ruleconfig"
	"github.com/befpail737-glitch/litong-sub004/locale"
	"github.com/befpail737-glitch/litong-sub004/pkg/interfaces"
	"github.com/befpail737-glitch/litong-sub004/validate"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// CatalogRepository exports the entry storage contract for consumers of
// the litong package.
type CatalogRepository = catalog.Repository

// CatalogEntry exports the stored entry model.
type CatalogEntry = catalog.Entry

// Report exports the audit report type.
type Report = audit.Report

// Rule exports the field validation rule type.
type Rule = validate.Rule

// Issue exports the validation issue type.
type Issue = validate.Issue

// ReportSink exports the report delivery contract used by the command
// handlers.
type ReportSink = auditcmd.ReportSink

// ReportSinkFunc adapts a function to ReportSink.
type ReportSinkFunc = auditcmd.ReportSinkFunc

// AuditEntryCommand exports the single-entry audit message.
type AuditEntryCommand = auditcmd.AuditEntryCommand

// AuditCatalogCommand exports the catalog sweep message.
type AuditCatalogCommand = auditcmd.AuditCatalogCommand

// Module is the top level runtime facade. It owns the locale registry,
// the resolver and auditor built on it, the active rule set, and the
// configured entry storage.
type Module struct {
	cfg      Config
	locales  *locale.Registry
	resolver *content.Resolver
	auditor  *audit.Auditor
	rules    map[string]validate.Rule
	repo     catalog.Repository
	provider interfaces.LoggerProvider
	db       *bun.DB
}

// New constructs a module from the provided configuration. Rules come
// from the configured fixture path, falling back to the embedded
// defaults when no path is set.
func New(cfg Config) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider, err := buildLoggerProvider(cfg.Logging)
	if err != nil {
		return nil, err
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return nil, err
	}

	resolver, err := content.NewResolver(registry)
	if err != nil {
		return nil, err
	}

	auditor, err := audit.New(registry)
	if err != nil {
		return nil, err
	}

	rules, err := loadRules(cfg.Rules)
	if err != nil {
		return nil, err
	}

	m := &Module{
		cfg:      cfg,
		locales:  registry,
		resolver: resolver,
		auditor:  auditor,
		rules:    rules,
		provider: provider,
	}
	if err := m.buildStorage(cfg.Storage); err != nil {
		return nil, err
	}
	return m, nil
}

// Locales exposes the immutable locale registry.
func (m *Module) Locales() *locale.Registry { return m.locales }

// Resolver returns the configured content resolver.
func (m *Module) Resolver() *content.Resolver { return m.resolver }

// Auditor returns the configured translation auditor.
func (m *Module) Auditor() *audit.Auditor { return m.auditor }

// Rules returns a copy of the active rule set.
func (m *Module) Rules() map[string]validate.Rule {
	out := make(map[string]validate.Rule, len(m.rules))
	for name, rule := range m.rules {
		out[name] = rule
	}
	return out
}

// Catalog returns the configured entry repository.
func (m *Module) Catalog() CatalogRepository { return m.repo }

// Logger returns the namespaced logger for the given module, falling
// back to a no-op logger when no provider is configured.
func (m *Module) Logger(module string) interfaces.Logger {
	return logging.ModuleLogger(m.provider, module)
}

// AuditEntryHandler builds a command handler that audits one entry and
// publishes the report through sink. Returns nil when the commands
// feature is disabled.
func (m *Module) AuditEntryHandler(sink ReportSink) *auditcmd.AuditEntryHandler {
	if !m.cfg.Features.Commands {
		return nil
	}
	return auditcmd.NewAuditEntryHandler(m.repo, m.auditor, m.rules, sink, logging.AuditLogger(m.provider))
}

// AuditCatalogHandler builds a command handler that sweeps every stored
// entry. Returns nil when the commands feature is disabled.
func (m *Module) AuditCatalogHandler(sink ReportSink) *auditcmd.AuditCatalogHandler {
	if !m.cfg.Features.Commands {
		return nil
	}
	return auditcmd.NewAuditCatalogHandler(m.repo, m.auditor, m.rules, sink, logging.AuditLogger(m.provider))
}

// Close releases the underlying database when sqlite storage is active.
func (m *Module) Close() error {
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}

func buildRegistry(cfg Config) (*locale.Registry, error) {
	locales := make([]locale.Locale, 0, len(cfg.Locales))
	for _, code := range cfg.Locales {
		locales = append(locales, locale.Locale{
			Code:      code,
			IsDefault: strings.EqualFold(code, cfg.DefaultLocale),
		})
	}
	return locale.NewRegistry(locales)
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "noop":
		return nil, nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		return nil, ErrLoggingProviderUnknown
	}
}

func loadRules(cfg RulesConfig) (map[string]validate.Rule, error) {
	var (
		fixture *ruleconfig.Fixture
		err     error
	)
	if strings.TrimSpace(cfg.Path) != "" {
		fixture, err = ruleconfig.NewLoader(cfg.Path).Load(context.Background())
	} else {
		fixture, err = ruleconfig.DefaultFixture()
	}
	if err != nil {
		return nil, err
	}
	return fixture.RuleSet(), nil
}

func (m *Module) buildStorage(cfg StorageConfig) error {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "memory":
		m.repo = catalog.NewMemoryRepository()
		return nil
	case "sqlite":
		sqldb, err := sql.Open("sqlite3", cfg.DSN)
		if err != nil {
			return fmt.Errorf("litong: open sqlite storage: %w", err)
		}
		m.db = bun.NewDB(sqldb, sqlitedialect.New())
		m.repo = catalog.NewBunRepository(m.db)
		return nil
	default:
		return ErrStorageProviderUnknown
	}
}
