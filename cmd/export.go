package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the resume as PDF or JSON",
}

var exportPDFCmd = &cobra.Command{
	Use:     "pdf",
	Short:   "Print the paged resume to PDF with headless Chrome",
	Example: `  zerotex export pdf -o resume.pdf --template modern`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("output")
		if out == "" || out == "-" {
			return fmt.Errorf("--output is required for pdf export")
		}

		doc, tc, err := composeFromFlags(cmd)
		if err != nil {
			return err
		}

		pdf, err := a.PDF(cmd.Context(), doc, tc)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, pdf, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		fmt.Printf("✓ Wrote %s (%d bytes)\n", out, len(pdf))
		return nil
	},
}

var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Write the saved resume as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		data, err := loadResume(cmd.Context(), a)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("output")
		return writeOutput(out, func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(data)
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportPDFCmd)
	exportCmd.AddCommand(exportJSONCmd)

	addRenderFlags(exportPDFCmd)
	exportJSONCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
}
