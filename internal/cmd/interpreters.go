package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quantmind-br/pyconf/internal/config"
	"github.com/quantmind-br/pyconf/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// interpreterName matches python, python3, python3.11, python311 and the
// .exe variants Windows distributions ship.
var interpreterName = regexp.MustCompile(`^python([0-9]+(\.[0-9]+)*)?(\.exe)?$`)

// Interpreter is one Python executable found on PATH
type Interpreter struct {
	Name    string
	Version string
	Path    string
}

// NewInterpretersCmd creates the interpreters command
func NewInterpretersCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interpreters [filter]",
		Short: "List Python interpreters found on PATH",
		Long:  `Scan every PATH directory for Python interpreter executables. An optional filter argument fuzzy-matches against the executable names.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found := scanInterpreters(afero.NewOsFs(), os.Getenv("PATH"))

			if len(args) == 1 {
				found = filterInterpreters(found, args[0])
			}

			if len(found) == 0 {
				ui.PrintWarning("No Python interpreters found on PATH")
				return nil
			}

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"Name", "Version", "Path"}),
				tablewriter.WithAlignment(tw.MakeAlign(3, tw.AlignLeft)),
				tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
			)
			for _, in := range found {
				version := in.Version
				if version == "" {
					version = "-"
				}
				table.Append(in.Name, version, in.Path)
			}
			table.Render()

			fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d interpreter(s)\n", len(found))
			return nil
		},
	}

	return cmd
}

// scanInterpreters walks the PATH directories in order and collects Python
// executables. The first occurrence of a name wins, matching how the shell
// would resolve it.
func scanInterpreters(fs afero.Fs, pathEnv string) []Interpreter {
	seen := make(map[string]bool)
	var found []Interpreter

	for _, dir := range filepath.SplitList(pathEnv) {
		if dir == "" {
			continue
		}
		entries, err := afero.ReadDir(fs, dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !interpreterName.MatchString(name) {
				continue
			}
			if seen[name] {
				continue
			}
			seen[name] = true
			found = append(found, Interpreter{
				Name:    name,
				Version: interpreterVersion(name),
				Path:    filepath.Join(dir, name),
			})
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Name < found[j].Name })
	return found
}

// interpreterVersion extracts the version suffix from an executable name
func interpreterVersion(name string) string {
	name = strings.TrimSuffix(name, ".exe")
	return strings.TrimPrefix(name, "python")
}

// filterInterpreters keeps interpreters whose name fuzzy-matches the filter,
// best matches first
func filterInterpreters(interpreters []Interpreter, filter string) []Interpreter {
	names := make([]string, len(interpreters))
	byName := make(map[string]Interpreter, len(interpreters))
	for i, in := range interpreters {
		names[i] = in.Name
		byName[in.Name] = in
	}

	ranks := fuzzy.RankFindNormalizedFold(filter, names)
	sort.Sort(ranks)

	filtered := make([]Interpreter, 0, len(ranks))
	for _, rank := range ranks {
		filtered = append(filtered, byName[rank.Target])
	}
	return filtered
}
