package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/ohler55/ojg/jp"
	"github.com/spf13/cobra"

	jsontransform "github.com/Magicianred/JsonTransform"
)

var (
	selectExpr string
	strictMode bool
)

var applyCmd = &cobra.Command{
	Use:   "apply [source] [transformation]",
	Short: "Apply a transformation document to a source document",
	Args:  cobra.ExactArgs(2),
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

		doc := res.Document
		if selectExpr != "" {
			x, err := jp.ParseString(selectExpr)
			if err != nil {
				return fmt.Errorf("bad --select expression: %w", err)
			}
			matches := x.Get(doc)
			switch len(matches) {
			case 0:
				return fmt.Errorf("--select %q matched nothing", selectExpr)
			case 1:
				doc = matches[0]
			default:
				doc = matches
			}
		}

		out, err := renderDocument(doc)
		if err != nil {
			return err
		}
		if err := writeOut(out); err != nil {
			return err
		}
		if strictMode && len(res.Errors) > 0 {
			return fmt.Errorf("transformation finished with %d recorded errors", len(res.Errors))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVar(&selectExpr, "select", "", "Print only the JSONPath selection of the result")
	applyCmd.Flags().BoolVar(&strictMode, "strict", false, "Exit non-zero when any command failed")
}

// reportErrors prints recorded command failures to stderr, one red line per
// path, without interfering with the document on stdout.
func reportErrors(errs []jsontransform.Error) {
	if len(errs) == 0 {
		return
	}
	red := color.New(color.FgRed)
	for _, e := range errs {
		_, _ = red.Fprintf(color.Error, "%s: %v\n", e.Path, e.Err)
	}
}
