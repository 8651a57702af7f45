package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fnziad/ZeroTex/internal/app"
	"github.com/fnziad/ZeroTex/internal/payload"
	"github.com/fnziad/ZeroTex/pkg/models"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive section manager",
	Long:  "Browse sections, toggle visibility, reorder and remove them from an interactive prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		data, err := loadResume(cmd.Context(), a)
		if err != nil {
			return err
		}
		return runTUI(cmd, a, data)
	},
}

func runTUI(cmd *cobra.Command, a *app.App, data *models.ResumeData) error {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println(titleStyle.Render("Section Manager"))
		fmt.Println("Press 'q' to quit, 'a' to add a section, or enter a section number to edit it")
		fmt.Println()

		sections := data.SortedSections()
		for i, s := range sections {
			mark := "✓"
			if !s.Visible {
				mark = mutedStyle.Render("✗")
			}
			fmt.Printf("%d. %s %s %s\n", i+1, mark, s.Title, mutedStyle.Render(string(s.Type)))
		}

		fmt.Print("\n> ")
		input, err := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if err != nil && input == "" {
			return nil
		}

		switch strings.ToLower(input) {
		case "q":
			return nil
		case "a":
			if err := promptAddSection(cmd, a, data, reader); err != nil {
				fmt.Println(errorStyle.Render(err.Error()))
			}
			continue
		}

		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(sections) {
			fmt.Println("Invalid selection")
			continue
		}
		if err := editSection(cmd, a, data, sections[n-1].ID, reader); err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
		}
	}
}

func promptAddSection(cmd *cobra.Command, a *app.App, data *models.ResumeData, reader *bufio.Reader) error {
	fmt.Println(labelStyle.Render("\nSection types:"))
	for i, t := range models.SectionTypes {
		fmt.Printf("%2d. %s %s\n", i+1, models.SectionLabel(t), mutedStyle.Render(string(t)))
	}
	fmt.Print("\n> ")
	input, _ := reader.ReadString('\n')
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > len(models.SectionTypes) {
		return fmt.Errorf("invalid selection")
	}

	s := data.AddSection(models.SectionTypes[n-1], "")
	if err := a.SaveResume(cmd.Context(), data); err != nil {
		return err
	}
	fmt.Printf("✓ Added %s\n", s.Title)
	return nil
}

func editSection(cmd *cobra.Command, a *app.App, data *models.ResumeData, id string, reader *bufio.Reader) error {
	for {
		s, err := data.Section(id)
		if err != nil {
			return err
		}

		fmt.Println("\n" + strings.Repeat("=", 60))
		fmt.Println(titleStyle.Render(s.Title))
		fmt.Printf("%s %s\n", labelStyle.Render("Type:"), models.SectionLabel(s.Type))
		fmt.Printf("%s %s\n", labelStyle.Render("ID:"), s.ID)
		fmt.Printf("%s %t\n", labelStyle.Render("Visible:"), s.Visible)
		if _, issues := payload.Normalize(*s); len(issues) > 0 {
			fmt.Println(warnStyle.Render(fmt.Sprintf("%d data problem(s), see 'zerotex section show %s'", len(issues), s.ID)))
		}

		fmt.Println("\nOptions:")
		fmt.Println("  [t] Toggle visibility")
		fmt.Println("  [u] Move up")
		fmt.Println("  [d] Move down")
		fmt.Println("  [r] Remove")
		fmt.Println("  [b] Back to list")
		fmt.Print("\n> ")

		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(strings.ToLower(choice))

		pos := sectionPosition(data, id)
		switch choice {
		case "t":
			_, err = data.ToggleVisibility(id)
		case "u":
			err = data.MoveSection(id, pos-1)
		case "d":
			err = data.MoveSection(id, pos+1)
		case "r":
			if err := data.RemoveSection(id); err != nil {
				return err
			}
			if err := a.SaveResume(cmd.Context(), data); err != nil {
				return err
			}
			fmt.Println("✓ Section removed")
			return nil
		case "b", "":
			return nil
		default:
			fmt.Println("Invalid choice")
			continue
		}
		if err != nil {
			return err
		}
		if err := a.SaveResume(cmd.Context(), data); err != nil {
			return err
		}
	}
}

func sectionPosition(data *models.ResumeData, id string) int {
	for i, s := range data.SortedSections() {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
