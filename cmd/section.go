package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fnziad/ZeroTex/internal/app"
	"github.com/fnziad/ZeroTex/internal/freeform"
	"github.com/fnziad/ZeroTex/internal/payload"
	"github.com/fnziad/ZeroTex/pkg/models"
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Add, remove, reorder and edit resume sections",
}

var listSectionsCmd = &cobra.Command{
	Use:   "list",
	Short: "List sections in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		data, err := loadResume(cmd.Context(), a)
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render("Sections"))
		if len(data.Sections) == 0 {
			fmt.Println("No sections. Add one with 'zerotex section add <type>'.")
			return nil
		}
		for i, s := range data.SortedSections() {
			mark := "✓"
			if !s.Visible {
				mark = mutedStyle.Render("✗")
			}
			fmt.Printf("%2d. %s %s %s %s\n", i, mark,
				labelStyle.Render(s.Title),
				valueStyle.Render(string(s.Type)),
				mutedStyle.Render(s.ID))
		}
		return nil
	},
}

var addSectionCmd = &cobra.Command{
	Use:   "add <type>",
	Short: "Append a section with the default payload for its type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := models.SectionType(args[0])
		if !t.Known() {
			names := make([]string, len(models.SectionTypes))
			for i, k := range models.SectionTypes {
				names[i] = string(k)
			}
			return fmt.Errorf("%w: unknown section type %q, must be one of: %s", app.ErrInvalidArgument, args[0], strings.Join(names, ", "))
		}

		title, _ := cmd.Flags().GetString("title")
		var added models.ResumeSection
		err := updateResume(cmd, func(d *models.ResumeData) error {
			added = d.AddSection(t, title)
			return nil
		})
		if err != nil {
			return err
		}
		fmt.Printf("✓ Added %s (%s)\n", labelStyle.Render(added.Title), mutedStyle.Render(added.ID))
		return nil
	},
}

var removeSectionCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a section",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := updateResume(cmd, func(d *models.ResumeData) error {
			return d.RemoveSection(args[0])
		})
		if err != nil {
			return err
		}
		fmt.Printf("✓ Removed %s\n", args[0])
		return nil
	},
}

var toggleSectionCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Show or hide a section",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var visible bool
		err := updateResume(cmd, func(d *models.ResumeData) error {
			var err error
			visible, err = d.ToggleVisibility(args[0])
			return err
		})
		if err != nil {
			return err
		}
		state := "hidden"
		if visible {
			state = "visible"
		}
		fmt.Printf("✓ %s is now %s\n", args[0], state)
		return nil
	},
}

var moveSectionCmd = &cobra.Command{
	Use:     "move <id> <position>",
	Short:   "Move a section to a zero-based position",
	Example: `  zerotex section move projects-1a2b3c4d 0`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: position must be a number: %v", app.ErrInvalidArgument, err)
		}
		err = updateResume(cmd, func(d *models.ResumeData) error {
			return d.MoveSection(args[0], pos)
		})
		if err != nil {
			return err
		}
		fmt.Printf("✓ Moved %s\n", args[0])
		return nil
	},
}

var showSectionCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a section's stored data and any problems reading it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		data, err := loadResume(cmd.Context(), a)
		if err != nil {
			return err
		}
		s, err := data.Section(args[0])
		if err != nil {
			return notFound(err, args[0])
		}

		fmt.Println(titleStyle.Render(s.Title))
		fmt.Printf("%s %s\n", labelStyle.Render("Type:"), valueStyle.Render(fmt.Sprintf("%s (%s)", s.Type, models.SectionLabel(s.Type))))
		fmt.Printf("%s %s\n", labelStyle.Render("Order:"), valueStyle.Render(strconv.Itoa(s.Order)))
		fmt.Printf("%s %s\n", labelStyle.Render("Visible:"), valueStyle.Render(strconv.FormatBool(s.Visible)))

		pretty, err := json.MarshalIndent(s.Data, "", "  ")
		if err != nil {
			pretty = s.Data
		}
		fmt.Println(labelStyle.Render("Data:"))
		fmt.Println(string(pretty))

		_, issues := payload.Normalize(*s)
		printIssues(issues)
		return nil
	},
}

var setSectionCmd = &cobra.Command{
	Use:     "set <id> <json-file>",
	Short:   "Replace a section's data with the JSON in a file (- for stdin)",
	Example: `  zerotex section set experience-1 experience.json`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(args[1])
		if err != nil {
			return err
		}
		if !json.Valid(raw) {
			return fmt.Errorf("%w: %s is not valid JSON", app.ErrInvalidArgument, args[1])
		}

		var issues []payload.Issue
		err = updateResume(cmd, func(d *models.ResumeData) error {
			if err := d.SetSectionData(args[0], raw); err != nil {
				return err
			}
			s, _ := d.Section(args[0])
			_, issues = payload.Normalize(*s)
			return nil
		})
		if err != nil {
			return err
		}
		fmt.Printf("✓ Updated %s\n", args[0])
		printIssues(issues)
		return nil
	},
}

var setCustomSectionCmd = &cobra.Command{
	Use:   "set-custom <id> <text-file>",
	Short: "Parse free text into a custom section (- for stdin)",
	Long: `Parse free text into a custom section and store it in structured form.

Lines starting with "- " are bullets, a line ending in ":" opens a labelled
group, anything else is a paragraph. Blank lines separate blocks.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(args[1])
		if err != nil {
			return err
		}
		content := freeform.Parse(string(raw))
		content.Format = freeform.Version
		encoded, err := json.Marshal(content)
		if err != nil {
			return fmt.Errorf("failed to encode custom content: %w", err)
		}

		err = updateResume(cmd, func(d *models.ResumeData) error {
			s, err := d.Section(args[0])
			if err != nil {
				return err
			}
			if s.Type.Canonical() != models.SectionCustom {
				return fmt.Errorf("%w: %s is a %s section, not custom", app.ErrInvalidArgument, args[0], s.Type)
			}
			return d.SetSectionData(args[0], encoded)
		})
		if err != nil {
			return err
		}
		fmt.Printf("✓ Updated %s: %d block(s), %s\n", args[0], len(content.Blocks), content.Shape())
		return nil
	},
}

// updateResume loads, mutates and saves the stored document.
func updateResume(cmd *cobra.Command, mutate func(d *models.ResumeData) error) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}
	data, err := loadResume(cmd.Context(), a)
	if err != nil {
		return err
	}
	if err := mutate(data); err != nil {
		if errors.Is(err, models.ErrSectionNotFound) {
			return notFound(err, "")
		}
		return err
	}
	return a.SaveResume(cmd.Context(), data)
}

func notFound(err error, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %v", app.ErrNotFound, err)
	}
	return fmt.Errorf("%w: section %s", app.ErrNotFound, id)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return raw, nil
}

func init() {
	rootCmd.AddCommand(sectionCmd)
	sectionCmd.AddCommand(listSectionsCmd)
	sectionCmd.AddCommand(addSectionCmd)
	sectionCmd.AddCommand(removeSectionCmd)
	sectionCmd.AddCommand(toggleSectionCmd)
	sectionCmd.AddCommand(moveSectionCmd)
	sectionCmd.AddCommand(showSectionCmd)
	sectionCmd.AddCommand(setSectionCmd)
	sectionCmd.AddCommand(setCustomSectionCmd)

	addSectionCmd.Flags().String("title", "", "Section title (default: the type's label)")
}
