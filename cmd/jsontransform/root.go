package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	yamlMode     bool
	outputPath   string
	prettyOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "jsontransform",
	Short: "Apply transformation documents to JSON and YAML documents",
	Long: `jsontransform edits documents with transformation documents: JSON that
mirrors the shape of the data it changes, where plain properties merge in as
data and keys like "$remove:b" or "$copy:total" are commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&yamlMode, "yaml", false, "Read and write YAML instead of JSON")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Write to a file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&prettyOutput, "pretty", false, "Indent JSON output")
}

// loadDocument reads and parses one input file. YAML is accepted when --yaml
// is set or the file extension says so; everything else parses as JSON.
func loadDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if useYAML(path) {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return v, nil
	}
	v, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}

func useYAML(path string) bool {
	if yamlMode {
		return true
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// renderDocument encodes v for output: YAML under --yaml, otherwise JSON
// with sorted object keys so runs are reproducible.
func renderDocument(v any) ([]byte, error) {
	if yamlMode {
		return yaml.Marshal(v)
	}
	opts := &ojg.Options{Sort: true}
	if prettyOutput {
		opts.Indent = 2
	}
	return []byte(oj.JSON(v, opts) + "\n"), nil
}

// jsonBytes renders v as compact JSON no matter the output mode. RFC 6902
// patches are defined over JSON documents, so the diff and patch commands
// normalize through this form.
func jsonBytes(v any) []byte {
	return []byte(oj.JSON(v, &ojg.Options{Sort: true}))
}

func writeOut(data []byte) error {
	if outputPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
