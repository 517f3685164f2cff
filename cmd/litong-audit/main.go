package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	litong "github.com/befpail737-glitch/litong-sub004"
	"github.com/befpail737-glitch/litong-sub004/internal/ruleconfig"
)

func main() {
	if err := runAudit(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("litong-audit: %v", err)
	}
}

func runAudit(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("litong-audit", flag.ExitOnError)
	rulesPath := fs.String("rules", "", "Path to a rules fixture (defaults to the embedded fixture)")
	recordsPath := fs.String("records", "", "Path to a JSON file holding the catalog entries to audit")
	slug := fs.String("slug", "", "Audit only the entry with this slug")
	format := fs.String("format", "json", "Output format: json or summary")
	verbose := fs.Bool("verbose", false, "Log command execution to stderr")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *recordsPath == "" {
		return fmt.Errorf("records file is required")
	}

	fixture, err := loadFixture(*rulesPath)
	if err != nil {
		return fmt.Errorf("load rules fixture: %w", err)
	}

	cfg := litong.DefaultConfig()
	cfg.Rules.Path = *rulesPath
	cfg.Locales = cfg.Locales[:0]
	cfg.DefaultLocale = ""
	for _, l := range fixture.Locales {
		cfg.Locales = append(cfg.Locales, l.Code)
		if l.IsDefault {
			cfg.DefaultLocale = l.Code
		}
	}
	if *verbose {
		cfg.Logging = litong.LoggingConfig{Provider: "gologger", Level: "debug", Format: "console"}
	}

	module, err := litong.New(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Close()

	ctx := context.Background()
	if err := seedEntries(ctx, module, *recordsPath); err != nil {
		return err
	}

	var reports []litong.Report
	sink := litong.ReportSinkFunc(func(_ context.Context, report litong.Report) error {
		reports = append(reports, report)
		return nil
	})

	if *slug != "" {
		err = module.AuditEntryHandler(sink).Execute(ctx, litong.AuditEntryCommand{Slug: *slug})
	} else {
		err = module.AuditCatalogHandler(sink).Execute(ctx, litong.AuditCatalogCommand{})
	}
	if err != nil {
		return fmt.Errorf("execute audit command: %w", err)
	}

	return writeReports(stdout, *format, reports)
}

func loadFixture(path string) (*ruleconfig.Fixture, error) {
	if path == "" {
		return ruleconfig.DefaultFixture()
	}
	return ruleconfig.NewLoader(path).Load(context.Background())
}

func seedEntries(ctx context.Context, module *litong.Module, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read records: %w", err)
	}

	var entries []*litong.CatalogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		var single litong.CatalogEntry
		if err := json.Unmarshal(raw, &single); err != nil {
			return fmt.Errorf("decode records: %w", err)
		}
		entries = []*litong.CatalogEntry{&single}
	}

	for _, entry := range entries {
		if entry.Slug == "" {
			return fmt.Errorf("decode records: entry without slug")
		}
		if _, err := module.Catalog().Create(ctx, entry); err != nil {
			return fmt.Errorf("store entry %q: %w", entry.Slug, err)
		}
	}
	return nil
}

func writeReports(w io.Writer, format string, reports []litong.Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "summary":
		for _, report := range reports {
			fmt.Fprintf(w, "%s\tcompletion=%.0f%%\tissues=%d\n",
				report.RecordRef,
				report.Stats.CompletionRate*100,
				len(report.Stats.Issues))
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
