package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fnziad/ZeroTex/internal/app"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zerotex",
	Short: "Resume builder that renders LaTeX, HTML previews and PDFs",
	Long: `ZeroTex keeps one structured resume and renders it three ways:
LaTeX source, a styled HTML preview, and a paged print document or PDF.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		cmd.SetContext(app.SetAppInContext(cmd.Context(), application))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if a := app.GetAppFromContext(cmd.Context()); a != nil {
			return a.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
		cancel()
		os.Exit(1)
	}
}
