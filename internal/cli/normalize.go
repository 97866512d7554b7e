package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewNormalizeCommand creates the normalize command.
func NewNormalizeCommand() *cobra.Command {
	var (
		outFile string
		compact bool
		source  string
	)

	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Normalize a catalog export into the canonical import schema",
		Long: `Normalize reads a raw catalog export, rewrites legacy section keys and
field aliases into the canonical schema, and writes the full import
envelope (meta, regions, treks) as JSON.

Validation findings are printed to stderr; they never block output.
The command fails only when the payload itself is rejected.`,
		Example: `  # Normalize a JSON export to stdout
  trekimport normalize catalog.json

  # Normalize a YAML export into a file
  trekimport normalize catalog.yaml --out import.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(cmd, args[0], outFile, compact, source)
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "write the envelope to a file instead of stdout")
	cmd.Flags().BoolVar(&compact, "compact", false, "emit compact JSON instead of indented")
	cmd.Flags().StringVar(&source, "source", "", "source name recorded in meta.source.file")

	return cmd
}

func runNormalize(cmd *cobra.Command, path, outFile string, compact bool, source string) error {
	raw, err := loadPayload(path)
	if err != nil {
		return err
	}

	if source != "" {
		if payload, ok := raw.(map[string]any); ok {
			meta, _ := payload["meta"].(map[string]any)
			if meta == nil {
				meta = map[string]any{}
				payload["meta"] = meta
			}
			meta["source"] = map[string]any{"type": "file", "file": source}
		}
	}

	envelope, reports, err := newNormalizer().BuildEnvelope(raw)
	if err != nil {
		return err
	}

	// Findings go to stderr so the envelope on stdout stays parseable.
	for i, report := range reports {
		for _, e := range report.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "trek %d: error: %s\n", i+1, e)
		}
		for _, w := range report.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "trek %d: warning: %s\n", i+1, w)
		}
	}

	var data []byte
	if compact {
		data, err = json.Marshal(envelope)
	} else {
		data, err = json.MarshalIndent(envelope, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	data = append(data, '\n')

	if outFile != "" {
		if err := os.WriteFile(outFile, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outFile, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", outFile, len(data))
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
