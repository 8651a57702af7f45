package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fnziad/ZeroTex/internal/app"
	"github.com/fnziad/ZeroTex/internal/database"
	"github.com/fnziad/ZeroTex/internal/payload"
	"github.com/fnziad/ZeroTex/internal/schema"
	"github.com/fnziad/ZeroTex/pkg/models"
	"github.com/spf13/cobra"
)

func getApp(cmd *cobra.Command) (*app.App, error) {
	a := app.GetAppFromContext(cmd.Context())
	if a == nil {
		return nil, errors.New("app not initialized")
	}
	return a, nil
}

// loadResume reads the stored document. A corrupt row prints a warning and
// continues with the default document.
func loadResume(ctx context.Context, a *app.App) (*models.ResumeData, error) {
	data, err := a.LoadResume(ctx)
	if errors.Is(err, database.ErrCorruptDocument) {
		fmt.Fprintln(os.Stderr, warnStyle.Render("Warning: saved resume could not be read, starting from the default document."))
		return data, nil
	}
	return data, err
}

// sourceDocument returns the document named by --file, or the stored one.
func sourceDocument(cmd *cobra.Command, a *app.App) (*models.ResumeData, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return loadResume(cmd.Context(), a)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return schema.Decode(raw)
}

// writeOutput writes to path, or stdout when path is empty or "-".
func writeOutput(path string, write func(w io.Writer) error) error {
	if path == "" || path == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// printIssues lists payload problems on stderr.
func printIssues(issues []payload.Issue) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf("%d section data problem(s):", len(issues))))
	for _, is := range issues {
		fmt.Fprintf(os.Stderr, "  • %s\n", is.String())
	}
}
