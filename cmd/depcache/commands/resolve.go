package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/depcache/internal/app"
	"go.trai.ch/depcache/internal/core/domain"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [parts...]",
		Short: "Resolve the dependencies of project parts, all parts when none are named",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Resolve(cmd.Context(), args, resolveOptions(cmd))
		},
	}
	addResolveFlags(cmd)
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [parts...]",
		Short: "Resolve project parts again whenever files change",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Watch(cmd.Context(), args, resolveOptions(cmd))
		},
	}
	addResolveFlags(cmd)
	return cmd
}

func addResolveFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Print results as JSON")
	cmd.Flags().IntP("parallelism", "j", 0, "Number of project parts resolved concurrently (0 uses the configured value)")
	cmd.Flags().Bool("trace", false, "Log a trace span for every resolution")
}

func resolveOptions(cmd *cobra.Command) app.ResolveOptions {
	asJSON, _ := cmd.Flags().GetBool("json")
	parallelism, _ := cmd.Flags().GetInt("parallelism")
	trace, _ := cmd.Flags().GetBool("trace")

	opts := app.ResolveOptions{
		Format:      domain.OutputText,
		Parallelism: parallelism,
		Trace:       trace,
	}
	if asJSON {
		opts.Format = domain.OutputJSON
	}
	return opts
}
