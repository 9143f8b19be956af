package cmd

import (
	"github.com/quantmind-br/pyconf/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pyconf",
		Short:        "Discover CPython embedding build configuration",
		Long:         `Discovers the include paths, library paths, and link libraries needed to embed CPython, probing python-config, pkg-config, the interpreter itself, and platform conventions.`,
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewResolveCmd(cfg, log))
	cmd.AddCommand(NewCFlagsCmd(cfg, log))
	cmd.AddCommand(NewLDFlagsCmd(cfg, log))
	cmd.AddCommand(NewInterpretersCmd(cfg, log))
	cmd.AddCommand(NewDoctorCmd(cfg, log))
	cmd.AddCommand(NewCompletionCmd(cfg, log))
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}
