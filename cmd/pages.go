package cmd

import (
	"fmt"

	"github.com/fnziad/ZeroTex/internal/ir"
	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Show how the resume splits into printed pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		doc, tc, err := composeFromFlags(cmd)
		if err != nil {
			return err
		}

		res, err := a.Paginate(cmd.Context(), doc, tc)
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("%d page(s) on %s", len(res.Pages), a.Config.Paper)))
		if res.Fallback {
			fmt.Println(warnStyle.Render(fmt.Sprintf("Measurement failed (%v); everything is on one page.", res.Err)))
		}

		i := 0
		for n, page := range res.Pages {
			var used float64
			fmt.Println(labelStyle.Render(fmt.Sprintf("Page %d", n+1)))
			for _, b := range page {
				desc := describeBlock(b)
				if res.Heights != nil {
					used += res.Heights[i]
					desc = fmt.Sprintf("%-50s %s", desc, mutedStyle.Render(fmt.Sprintf("%.0fpx", res.Heights[i])))
				}
				fmt.Printf("  %s\n", valueStyle.Render(desc))
				i++
			}
			if res.Heights != nil {
				fmt.Printf("  %s\n", mutedStyle.Render(fmt.Sprintf("%.0f / %.0fpx used", used, res.Budget)))
			}
		}
		return nil
	},
}

func describeBlock(b ir.FlatBlock) string {
	switch b.Kind {
	case ir.FlatHeader:
		return "header"
	case ir.FlatBanner:
		return "section: " + b.Section.Title
	}
	lines := b.Lines()
	if len(lines) == 0 {
		return "entry"
	}
	first := lines[0]
	if r := []rune(first); len(r) > 46 {
		first = string(r[:45]) + "…"
	}
	return "  " + first
}

func init() {
	rootCmd.AddCommand(pagesCmd)
	pagesCmd.Flags().StringP("template", "t", "", "Template id (default from config)")
	pagesCmd.Flags().StringP("file", "f", "", "Paginate a resume JSON file instead of the saved resume")
	pagesCmd.Flags().Bool("include-hidden", false, "Include hidden sections")
}
