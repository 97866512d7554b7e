package cli

import (
	"github.com/spf13/cobra"
	"github.com/udayashankhii/trekadmin-sub001/internal/core"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Report aggregate counts for a catalog export",
		Long: `Stats normalizes the export and prints the aggregate counts that would
be stamped into meta.counts: regions, treks, itinerary days, highlights,
FAQs, gallery images, departures, and days with GPS coverage.`,
		Example: `  trekimport stats catalog.json
  trekimport stats catalog.yaml -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args[0])
		},
	}

	return cmd
}

func runStats(cmd *cobra.Command, path string) error {
	raw, err := loadPayload(path)
	if err != nil {
		return err
	}

	envelope, _, err := newNormalizer().BuildEnvelope(raw)
	if err != nil {
		return err
	}

	var stats core.Statistics
	if meta, ok := envelope["meta"].(map[string]any); ok {
		if s, ok := meta["counts"].(core.Statistics); ok {
			stats = s
		}
	}

	return renderStats(cmd.OutOrStdout(), stats, outputFormat)
}
