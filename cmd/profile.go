package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fnziad/ZeroTex/pkg/models"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the personal details in the resume header",
}

var showProfileCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the resume header fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		data, err := loadResume(cmd.Context(), a)
		if err != nil {
			return err
		}

		p := data.Personal
		fmt.Println(titleStyle.Render("Personal Information"))
		for _, f := range profileFields(&p) {
			v := *f.value
			if v == "" {
				v = mutedStyle.Render("(empty)")
			} else {
				v = valueStyle.Render(v)
			}
			fmt.Printf("%s %s\n", labelStyle.Render(f.label+":"), v)
		}
		if links := customLinks(p.CustomLinks); len(links) > 0 {
			fmt.Println(labelStyle.Render("Custom Links:"))
			for _, l := range links {
				fmt.Printf("  • %s\n", valueStyle.Render(l))
			}
		}
		return nil
	},
}

// customLinks splits the stored "label: url" lines, dropping blanks.
func customLinks(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// applyProfileFlags copies every changed flag onto p and reports whether
// anything changed. --link replaces all custom links.
func applyProfileFlags(cmd *cobra.Command, p *models.PersonalInfo) bool {
	updated := false
	for _, f := range profileFields(p) {
		if cmd.Flags().Changed(f.flag) {
			*f.value, _ = cmd.Flags().GetString(f.flag)
			updated = true
		}
	}
	if cmd.Flags().Changed("link") {
		links, _ := cmd.Flags().GetStringArray("link")
		p.CustomLinks = strings.Join(links, "\n")
		updated = true
	}
	return updated
}

type profileField struct {
	flag  string
	label string
	value *string
}

func profileFields(p *models.PersonalInfo) []profileField {
	return []profileField{
		{"name", "Full Name", &p.FullName},
		{"email", "Email", &p.Email},
		{"phone", "Phone", &p.Phone},
		{"location", "Location", &p.Location},
		{"website", "Website", &p.Website},
		{"linkedin", "LinkedIn", &p.LinkedIn},
		{"github", "GitHub", &p.GitHub},
	}
}

var editProfileCmd = &cobra.Command{
	Use:   "edit",
	Short: "Interactively edit the resume header",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		data, err := loadResume(cmd.Context(), a)
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render("Edit Personal Information"))
		fmt.Println("Press Enter to keep current value, or type a new value")

		reader := bufio.NewReader(os.Stdin)
		for _, f := range profileFields(&data.Personal) {
			fmt.Printf("%s [%s]: ", labelStyle.Render(f.label), *f.value)
			line, _ := reader.ReadString('\n')
			if line = strings.TrimSpace(line); line != "" {
				*f.value = line
			}
		}

		if err := a.SaveResume(cmd.Context(), data); err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		fmt.Println("\n✓ Profile updated successfully!")
		return nil
	},
}

var setProfileCmd = &cobra.Command{
	Use:   "set",
	Short: "Update header fields",
	Example: `  zerotex profile set --name "Ada Lovelace"
  zerotex profile set --email "ada@example.com" --github ada
  zerotex profile set --link "Portfolio: https://ada.dev"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		data, err := loadResume(cmd.Context(), a)
		if err != nil {
			return err
		}

		if !applyProfileFlags(cmd, &data.Personal) {
			fmt.Println("No fields to update. Use flags like --name, --email, etc.")
			return nil
		}

		if err := a.SaveResume(cmd.Context(), data); err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		fmt.Println("✓ Profile updated successfully!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(setProfileCmd)

	for _, f := range profileFields(&models.PersonalInfo{}) {
		setProfileCmd.Flags().String(f.flag, "", "Update "+f.label)
	}
	setProfileCmd.Flags().StringArray("link", nil, `Custom link as "Label: URL" (repeatable, replaces all)`)
}
