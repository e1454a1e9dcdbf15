package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kls-dev/kls/internal/index"
)

type fileReport struct {
	Path         string   `json:"path"`
	Hash         string   `json:"hash,omitempty"`
	Declarations int      `json:"declarations"`
	Error        string   `json:"error,omitempty"`
	Warnings     []string `json:"warnings,omitempty"`
}

func RunIndex(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}

	root, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ix, err := index.Build(context.Background(), root)
	if err != nil {
		return fmt.Errorf("indexing %s: %w", root, err)
	}

	reports := make([]fileReport, 0, ix.Len())
	failed := 0
	for _, p := range ix.Paths() {
		entry, _ := ix.Entry(p)
		report := fileReport{Path: p, Hash: entry.Hash}
		switch {
		case entry.Err != nil:
			report.Error = entry.Err.Error()
			failed++
		default:
			report.Declarations = len(entry.File.Declarations)
			for _, w := range entry.File.Warnings {
				report.Warnings = append(report.Warnings, fmt.Sprintf("%s: %s", w.Span, w.Err))
			}
		}
		reports = append(reports, report)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	for _, report := range reports {
		rel, err := filepath.Rel(root, report.Path)
		if err != nil {
			rel = report.Path
		}
		switch {
		case report.Error != "":
			fmt.Printf("%-50s FAILED: %s\n", rel, report.Error)
		case len(report.Warnings) > 0:
			fmt.Printf("%-50s %d declaration(s), %d warning(s)\n", rel, report.Declarations, len(report.Warnings))
			for _, w := range report.Warnings {
				fmt.Printf("  warning: %s\n", w)
			}
		default:
			fmt.Printf("%-50s %d declaration(s)\n", rel, report.Declarations)
		}
	}
	fmt.Printf("indexed %d file(s), %d failed\n", ix.Len(), failed)
	return nil
}
