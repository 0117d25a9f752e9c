package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"retok/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a starter retok.toml",
	Long:  `Init writes a starter pipeline manifest documenting every processor and its settings`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

const starterManifest = `# retok pipeline manifest.
# Processor order is priority order: the first recognizer that matches at
# an offset wins, which is how ambiguity (comment marker vs. operator
# character) is resolved.

[pipeline]
processors = ["indent", "newline", "comment", "literals", "operator", "ident", "scope", "space"]

[comment]
marker = "#"

[scope]
start = "{"
end = "}"

[indent]
# Allow re-establishing the indent character after a same-depth line.
allow_mixed = false

[space]
# Spliced into a regex character class verbatim.
chars = ' \t'
`

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	path := filepath.Join(dir, config.ManifestName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	if err := os.WriteFile(path, []byte(starterManifest), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
	}
	return nil
}
