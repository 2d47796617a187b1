package main

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

var patchCmd = &cobra.Command{
	Use:   "patch [source] [patch]",
	Short: "Apply an RFC 6902 patch to a document",
	Long: `patch applies a standard JSON Patch, the format diff emits, to a document.
It is the companion for tools that exchange patches rather than
transformation documents.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		patchDoc, err := loadDocument(args[1])
		if err != nil {
			return err
		}

		patch, err := jsonpatch.DecodePatch(jsonBytes(patchDoc))
		if err != nil {
			return fmt.Errorf("decode patch: %w", err)
		}
		patched, err := patch.Apply(jsonBytes(source))
		if err != nil {
			return fmt.Errorf("apply patch: %w", err)
		}

		// Reparse so the output honors --yaml and --pretty.
		doc, err := oj.Parse(patched)
		if err != nil {
			return fmt.Errorf("reparse patched document: %w", err)
		}
		out, err := renderDocument(doc)
		if err != nil {
			return err
		}
		return writeOut(out)
	},
}

func init() {
	rootCmd.AddCommand(patchCmd)
}
