// Package cli defines marquee's command tree.
package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/app"
	"github.com/five82/marquee/internal/demoapi"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

type rootFlags struct {
	configPath string
	apiURL     string
	prefsPath  string
}

func (f rootFlags) options() app.Options {
	return app.Options{ConfigPath: f.configPath, APIURL: f.apiURL, PrefsPath: f.prefsPath}
}

// NewRootCommand builds the command tree. Each call returns a fresh tree so
// flags never leak between invocations.
func NewRootCommand() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "marquee",
		Short: "Browse a movie catalog API from the terminal",
		Long: `marquee fetches the movie collection from a catalog API once and shows it
as cards. The API address comes from --api-url, MARQUEE_API_URL,
REACT_APP_API_URL or the config file, defaulting to http://localhost:3001.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), flags.options())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "config file (default is $HOME/.config/marquee/config.toml)")
	pf.StringVar(&flags.apiURL, "api-url", "", "catalog API base URL (overrides config and environment)")
	pf.StringVar(&flags.prefsPath, "prefs", "", "preferences file (default is $HOME/.config/marquee/prefs.toml)")

	root.AddCommand(
		newServeCommand(&flags),
		newHealthCommand(&flags),
		newLogsCommand(&flags),
		newVersionCommand(),
	)
	return root
}

func newServeCommand(flags *rootFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo catalog API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "demo api on http://%s (ctrl+c to stop)\n", addr)
			return app.Serve(cmd.Context(), flags.options(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", demoapi.DefaultAddr, "listen address")
	return cmd
}

func newHealthCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the catalog API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Health(cmd.Context(), flags.options(), cmd.OutOrStdout())
		},
	}
}

func newLogsCommand(flags *rootFlags) *cobra.Command {
	var lines int
	var raw bool
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent diagnostic log entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Logs(flags.options(), lines, raw, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of entries to show")
	cmd.Flags().BoolVar(&raw, "raw", false, "print JSON records unformatted")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "marquee %s\n", version)
			_, _ = fmt.Fprintf(out, "  Commit:     %s\n", commit)
			_, _ = fmt.Fprintf(out, "  Built:      %s\n", buildTime)
			_, _ = fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
		},
	}
}

// Execute runs the command tree with ctx attached.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
