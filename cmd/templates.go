package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fnziad/ZeroTex/internal/templates"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in visual templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render("Templates"))
		for _, tc := range templates.All() {
			swatch := ""
			for _, c := range []string{tc.Colors.Primary, tc.Colors.Secondary, tc.Colors.Accent} {
				swatch += lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("■")
			}
			name := tc.Name
			if tc.ID == a.Config.Template {
				name += " (default)"
			}
			fmt.Printf("%s %s %s\n", swatch, labelStyle.Render(fmt.Sprintf("%-10s", tc.ID)), valueStyle.Render(name))
			fmt.Printf("    %s\n", mutedStyle.Render(fmt.Sprintf("%s · %s · %s", tc.FontFamily, tc.Layout, tc.Description)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
