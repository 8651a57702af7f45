package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fnziad/ZeroTex/internal/document"
	"github.com/fnziad/ZeroTex/internal/ir"
	"github.com/fnziad/ZeroTex/pkg/models"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the resume as LaTeX, an HTML preview or a paged print document",
}

var renderLatexCmd = &cobra.Command{
	Use:   "latex",
	Short: "Generate LaTeX source",
	Example: `  zerotex render latex -o resume.tex
  zerotex render latex --file resume.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		doc, _, err := composeFromFlags(cmd)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("output")
		return writeOutput(out, func(w io.Writer) error { return a.LaTeX(w, doc) })
	},
}

var renderHTMLCmd = &cobra.Command{
	Use:   "html",
	Short: "Render the single-page screen preview",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		doc, tc, err := composeFromFlags(cmd)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("output")
		return writeOutput(out, func(w io.Writer) error { return a.HTML(w, doc, tc) })
	},
}

var renderPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Render the paged print document",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		doc, tc, err := composeFromFlags(cmd)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("output")
		return writeOutput(out, func(w io.Writer) error {
			res, err := a.PrintHTML(cmd.Context(), w, doc, tc)
			if err == nil && res.Fallback {
				fmt.Fprintln(os.Stderr, warnStyle.Render("Warning: page measurement failed, printing as a single page."))
			}
			return err
		})
	},
}

// composeFromFlags loads the document and template named by the common
// render flags and builds the document tree.
func composeFromFlags(cmd *cobra.Command) (*ir.Document, models.TemplateConfig, error) {
	a, err := getApp(cmd)
	if err != nil {
		return nil, models.TemplateConfig{}, err
	}
	data, err := sourceDocument(cmd, a)
	if err != nil {
		return nil, models.TemplateConfig{}, err
	}

	hidden, _ := cmd.Flags().GetBool("include-hidden")
	doc, issues := a.Compose(cmd.Context(), data, document.Options{IncludeHidden: hidden})
	printIssues(issues)

	id, _ := cmd.Flags().GetString("template")
	return doc, a.Template(id), nil
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringP("template", "t", "", "Template id (default from config)")
	cmd.Flags().StringP("file", "f", "", "Render a resume JSON file instead of the saved resume")
	cmd.Flags().Bool("include-hidden", false, "Render hidden sections too")
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.AddCommand(renderLatexCmd)
	renderCmd.AddCommand(renderHTMLCmd)
	renderCmd.AddCommand(renderPrintCmd)

	for _, c := range []*cobra.Command{renderLatexCmd, renderHTMLCmd, renderPrintCmd} {
		addRenderFlags(c)
	}
}
