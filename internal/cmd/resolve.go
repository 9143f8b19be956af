package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quantmind-br/pyconf/internal/config"
	"github.com/quantmind-br/pyconf/internal/discover"
	"github.com/quantmind-br/pyconf/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewResolveCmd creates the resolve command
func NewResolveCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		jsonOutput bool
		target     string
	)

	cmd := &cobra.Command{
		Use:   "resolve <python-version>",
		Short: "Discover build configuration for a Python version",
		Long:  `Run the discovery chain for the given Python version (e.g. 3.11) and print the include directories, library directories, and link libraries found.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version := args[0]

			resolver := discover.NewResolver(discover.Options{
				GOOS:         target,
				PkgConfigExe: cfg.Tools.PkgConfig,
				Logger:       log,
			})

			res, err := resolver.Resolve(cmd.Context(), version)
			if err != nil {
				ui.PrintError("Python %s: %v", version, err)
				return fmt.Errorf("resolve python %s: %w", version, err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			ui.PrintHeader(fmt.Sprintf("Python %s build configuration", version))
			printResultTable(cmd, res)

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	cmd.Flags().StringVar(&target, "target", "", "target OS tag (linux, darwin, windows); defaults to the host")

	return cmd
}

// printResultTable prints one row per discovered entry
func printResultTable(cmd *cobra.Command, res *discover.Result) {
	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithHeader([]string{"Kind", "Value"}),
		tablewriter.WithAlignment(tw.MakeAlign(2, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
	)

	for _, dir := range res.IncludeDirs {
		table.Append("include dir", dir)
	}
	for _, dir := range res.LibraryDirs {
		table.Append("library dir", dir)
	}
	for _, lib := range res.Libraries {
		table.Append("library", lib)
	}

	table.Render()
}
