package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/udayashankhii/trekadmin-sub001/internal/core"
)

// errValidationFailed distinguishes "treks were rejected" from tool errors
// so the exit code is 1 without printing a redundant error chain.
var errValidationFailed = fmt.Errorf("validation failed")

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a catalog export without writing the envelope",
		Long: `Validate runs the full normalization pipeline and reports per-trek
findings, discarding the normalized payload.

Exit status is 1 when any trek has errors. With --strict, warnings are
also treated as failures.`,
		Example: `  # Validate and render findings as a table
  trekimport validate catalog.json

  # Validate for CI, treating warnings as failures
  trekimport validate catalog.json --strict -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as failures")

	return cmd
}

func runValidate(cmd *cobra.Command, path string, strict bool) error {
	raw, err := loadPayload(path)
	if err != nil {
		return err
	}

	envelope, reports, err := newNormalizer().BuildEnvelope(raw)
	if err != nil {
		return err
	}

	treks, _ := envelope["treks"].([]any)
	rows := buildFindingRows(treks, reports)

	if err := renderFindings(cmd.OutOrStdout(), rows, outputFormat); err != nil {
		return err
	}

	failed := false
	for _, report := range reports {
		if !report.Valid || (strict && len(report.Warnings) > 0) {
			failed = true
			break
		}
	}
	if failed {
		return errValidationFailed
	}
	return nil
}

// findingRow is one rendered line of the validation report.
type findingRow struct {
	Index    int      `json:"index"`
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// buildFindingRows joins normalized treks with their validation reports.
func buildFindingRows(treks []any, reports []core.ValidationReport) []findingRow {
	rows := make([]findingRow, len(reports))
	for i, report := range reports {
		row := findingRow{
			Index:    i + 1,
			Valid:    report.Valid,
			Errors:   report.Errors,
			Warnings: report.Warnings,
		}
		if i < len(treks) {
			if trek, ok := treks[i].(map[string]any); ok {
				row.Slug, _ = trek["slug"].(string)
				row.Title, _ = trek["title"].(string)
			}
		}
		rows[i] = row
	}
	return rows
}
