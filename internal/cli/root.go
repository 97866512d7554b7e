// Package cli provides the command-line interface for the trek catalog
// import tooling.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/udayashankhii/trekadmin-sub001/internal/core"
	"gopkg.in/yaml.v3"
)

var (
	outputFormat string
	quiet        bool
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trekimport",
		Short: "Trek catalog import tooling",
		Long: `trekimport normalizes legacy trek catalog exports into the canonical
import schema, validates the result, and reports catalog statistics.

Input files may be JSON or YAML; format is detected from the file
extension (.yaml/.yml are parsed as YAML, everything else as JSON).`,
		Version:       core.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addOutputFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(NewNormalizeCommand())
	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewStatsCommand())

	return rootCmd
}

// addOutputFlags registers the flags shared by all subcommands.
func addOutputFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&outputFormat, "output", "o", "table",
		"output format: table, json, csv, markdown")
	fs.BoolVarP(&quiet, "quiet", "q", false,
		"suppress diagnostics emitted during normalization")
}

// Execute runs the root command and returns a process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newNormalizer builds the pipeline with diagnostics routed per the
// --quiet flag.
func newNormalizer() *core.Normalizer {
	if quiet {
		return core.NewNormalizer(core.NopSink())
	}
	return core.NewNormalizer(nil)
}

// loadPayload reads a catalog payload from path. YAML files are converted
// to the same generic structure JSON decoding produces.
func loadPayload(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raw any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse YAML %s: %w", path, err)
		}
		raw = normalizeYAML(raw)
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse JSON %s: %w", path, err)
		}
	}
	return raw, nil
}

// normalizeYAML rewrites yaml.v3 map keys to strings so the payload matches
// the shape encoding/json produces. Non-string keys are stringified.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalizeYAML(val)
		}
		return t
	default:
		return v
	}
}
