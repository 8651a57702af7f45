package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fnziad/ZeroTex/internal/database"
	"github.com/fnziad/ZeroTex/internal/schema"
	"github.com/fnziad/ZeroTex/pkg/models"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the saved resume with a validated JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		raw, err := readInput(args[0])
		if err != nil {
			return err
		}

		data, err := schema.Decode(raw)
		if err != nil {
			var verr *schema.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintln(os.Stderr, errorStyle.Render("The file is not a valid resume:"))
				for _, p := range verr.Problems {
					fmt.Fprintf(os.Stderr, "  • %s\n", p)
				}
			}
			return err
		}

		if err := a.SaveResume(cmd.Context(), data); err != nil {
			return err
		}
		fmt.Printf("✓ Imported %s with %d section(s)\n", args[0], len(data.Sections))
		return nil
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Replace the saved resume with a filled-in example",
	RunE: func(cmd *cobra.Command, args []string) error {
		return replaceResume(cmd, models.ExampleResumeData(), "✓ Loaded the example resume")
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the saved resume and start from the default document",
	RunE: func(cmd *cobra.Command, args []string) error {
		if force, _ := cmd.Flags().GetBool("force"); !force {
			fmt.Println("This discards the saved resume. Re-run with --force to confirm.")
			return nil
		}
		if _, err := getApp(cmd); err != nil {
			return err
		}
		if err := database.DeleteResume(); err != nil {
			return fmt.Errorf("failed to reset resume: %w", err)
		}
		fmt.Println("✓ Resume reset to the default document")
		return nil
	},
}

func replaceResume(cmd *cobra.Command, data models.ResumeData, done string) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}
	if err := a.SaveResume(cmd.Context(), &data); err != nil {
		return err
	}
	fmt.Println(done)
	return nil
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().Bool("force", false, "Confirm the reset")
}
