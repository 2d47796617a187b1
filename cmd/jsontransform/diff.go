package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wI2L/jsondiff"

	jsontransform "github.com/Magicianred/JsonTransform"
)

var diffCmd = &cobra.Command{
	Use:   "diff [source] [transformation]",
	Short: "Show a transformation as an RFC 6902 patch",
	Long: `diff applies the transformation, then emits the JSON Patch that takes the
source document to the result. The patch itself is always JSON.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		transformation, err := loadDocument(args[1])
		if err != nil {
			return err
		}

		res := jsontransform.Transform(source, transformation)
		reportErrors(res.Errors)

		patch, err := jsondiff.CompareJSON(jsonBytes(source), jsonBytes(res.Document))
		if err != nil {
			return fmt.Errorf("diff source against result: %w", err)
		}

		var out []byte
		if prettyOutput {
			out, err = json.MarshalIndent(patch, "", "  ")
		} else {
			out, err = json.Marshal(patch)
		}
		if err != nil {
			return fmt.Errorf("encode patch: %w", err)
		}
		return writeOut(append(out, '\n'))
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
