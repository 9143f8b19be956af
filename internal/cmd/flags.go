package cmd

import (
	"fmt"
	"strings"

	"github.com/quantmind-br/pyconf/internal/config"
	"github.com/quantmind-br/pyconf/internal/discover"
	"github.com/quantmind-br/pyconf/internal/pybuild"
	"github.com/quantmind-br/pyconf/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewCFlagsCmd creates the cflags command
func NewCFlagsCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cflags <python-version>",
		Short: "Print compiler flags for embedding Python",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, err := resolveVersion(cmd, cfg, log, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(pybuild.CFlags(res), " "))
			return nil
		},
	}

	return cmd
}

// NewLDFlagsCmd creates the ldflags command
func NewLDFlagsCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ldflags <python-version>",
		Short: "Print linker flags for embedding Python",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, token, err := resolveVersion(cmd, cfg, log, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(pybuild.LDFlags(res, token), " "))
			return nil
		},
	}

	return cmd
}

// resolveVersion runs the discovery chain for the flag-printing commands
func resolveVersion(cmd *cobra.Command, cfg *config.Config, log *zerolog.Logger, version string) (*discover.Result, string, error) {
	resolver := discover.NewResolver(discover.Options{
		PkgConfigExe: cfg.Tools.PkgConfig,
		Logger:       log,
	})

	res, err := resolver.Resolve(cmd.Context(), version)
	if err != nil {
		ui.PrintError("Python %s: %v", version, err)
		return nil, "", fmt.Errorf("resolve python %s: %w", version, err)
	}

	return res, resolver.Token(version), nil
}
