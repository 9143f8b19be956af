package cmd

import (
	"fmt"

	"github.com/quantmind-br/pyconf/internal/config"
	"github.com/quantmind-br/pyconf/internal/discover"
	"github.com/quantmind-br/pyconf/internal/helpers"
	"github.com/quantmind-br/pyconf/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewDoctorCmd creates the doctor command
func NewDoctorCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var probeVersion string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check which discovery sources are available on this host",
		Long:  `Check the host for the tools the discovery chain probes: the python-config helper, pkg-config, and the interpreter itself.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := helpers.NewOSCommandRunner()

			ui.PrintHeader("Discovery Sources")

			sources := []struct {
				name    string
				command string
				purpose string
			}{
				{"python-config", "python3-config", "Build-time helper queries"},
				{"pkg-config", cfg.Tools.PkgConfig, "Package database queries"},
				{"interpreter", "python3", "sysconfig introspection"},
			}

			available := 0
			for _, src := range sources {
				if runner.CommandExists(src.command) {
					ui.PrintSuccess("%s: found (%s)", ui.ColorizeSource(src.name), src.command)
					available++
				} else {
					ui.PrintWarning("%s: not found (%s - %s)", src.name, src.command, src.purpose)
				}
			}

			fmt.Println()
			ui.PrintSubheader("Configuration")
			ui.PrintKeyValue("pkg-config executable", cfg.Tools.PkgConfig)
			ui.PrintKeyValue("log file", cfg.Paths.LogFile)

			// Optional end-to-end probe
			if probeVersion != "" {
				fmt.Println()
				ui.PrintSubheader(fmt.Sprintf("Probe: Python %s", probeVersion))

				resolver := discover.NewResolver(discover.Options{
					Runner:       runner,
					PkgConfigExe: cfg.Tools.PkgConfig,
					Logger:       log,
				})
				res, err := resolver.Resolve(cmd.Context(), probeVersion)
				if err != nil {
					ui.PrintError("resolution failed: %v", err)
					return fmt.Errorf("probe python %s: %w", probeVersion, err)
				}
				ui.PrintSuccess("resolved: %d include dir(s), %d library dir(s), %d librar(ies)",
					len(res.IncludeDirs), len(res.LibraryDirs), len(res.Libraries))
			}

			fmt.Println()
			ui.PrintHeader("Summary")
			fmt.Println()

			if available == 0 {
				ui.PrintError("No discovery sources available; resolution will always fail")
				return fmt.Errorf("no discovery sources available")
			}

			ui.PrintSuccess("%d of %d discovery sources available", available, len(sources))
			return nil
		},
	}

	cmd.Flags().StringVar(&probeVersion, "probe", "", "run a full resolution for the given Python version")

	return cmd
}
