package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"retok/internal/config"
	"retok/internal/driver"
	"retok/internal/observ"
	"retok/internal/tokfmt"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file|dir|->...",
	Short: "Tokenize input files",
	Long:  `Tokenize runs the configured processor pipeline over files, directories of input files, or stdin ("-") and prints the resulting token stream`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().String("config", "", "path to retok.toml (default: discovered by upward walk)")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel workers for directory runs (0 = all CPUs)")
	tokenizeCmd.Flags().Bool("cache", false, "reuse cached token streams")
	tokenizeCmd.Flags().String("ext", driver.DefaultExt, "file extension for directory runs")
}

// fileOutput is the per-input unit the machine formats emit.
type fileOutput struct {
	Path   string          `json:"path" msgpack:"path"`
	Tokens []tokfmt.Record `json:"tokens" msgpack:"tokens"`
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	jobs, _ := cmd.Flags().GetInt("jobs")
	ext, _ := cmd.Flags().GetString("ext")
	opts := driver.Options{
		Config:         cfg,
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Ext:            ext,
	}

	if useCache, _ := cmd.Flags().GetBool("cache"); useCache {
		cache, err := driver.OpenCache("retok")
		if err != nil {
			return fmt.Errorf("failed to open token cache: %w", err)
		}
		opts.Cache = cache
	}

	timer := observ.NewTimer()
	endTokenize := timer.Begin("tokenize")

	var results []driver.FileResult
	for _, arg := range args {
		batch, err := tokenizeArg(cmd.Context(), arg, opts)
		if err != nil {
			return err
		}
		results = append(results, batch...)
	}
	endTokenize(strconv.Itoa(len(results)) + " inputs")

	// Diagnostics go to stderr so machine formats stay clean on stdout.
	failed := false
	colorErr := useColor(cmd, os.Stderr)
	for _, res := range results {
		if res.Bag.Len() == 0 {
			continue
		}
		res.Bag.Sort()
		tokfmt.PrintDiagnostics(os.Stderr, res.Path, res.Bag, colorErr)
		if res.Bag.HasErrors() {
			failed = true
		}
	}

	endFormat := timer.Begin("format")
	if err := writeOutput(cmd.OutOrStdout(), results, format, useColor(cmd, os.Stdout)); err != nil {
		return err
	}
	endFormat(format)

	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if failed {
		return fmt.Errorf("tokenization failed")
	}
	return nil
}

func tokenizeArg(ctx context.Context, arg string, opts driver.Options) ([]driver.FileResult, error) {
	if arg == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []driver.FileResult{driver.TokenizeBytes("<stdin>", content, opts)}, nil
	}

	info, err := os.Stat(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", arg, err)
	}
	if info.IsDir() {
		if ctx == nil {
			ctx = context.Background()
		}
		return driver.TokenizeDir(ctx, arg, opts)
	}
	return []driver.FileResult{driver.TokenizeFile(arg, opts)}, nil
}

func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.Load(path)
	}
	path, found, err := config.Find(".")
	if err != nil {
		return nil, err
	}
	if !found {
		return config.Default(), nil
	}
	return config.Load(path)
}

func writeOutput(w io.Writer, results []driver.FileResult, format string, colored bool) error {
	switch format {
	case "pretty":
		for _, res := range results {
			if len(results) > 1 {
				if _, err := fmt.Fprintf(w, "== %s ==\n", res.Path); err != nil {
					return err
				}
			}
			if err := tokfmt.FormatPretty(w, res.Records, tokfmt.PrettyOpts{Color: colored}); err != nil {
				return err
			}
		}
		return nil

	case "json":
		out := make([]fileOutput, 0, len(results))
		for _, res := range results {
			out = append(out, fileOutput{Path: res.Path, Tokens: res.Records})
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)

	case "msgpack":
		out := make([]fileOutput, 0, len(results))
		for _, res := range results {
			out = append(out, fileOutput{Path: res.Path, Tokens: res.Records})
		}
		return msgpack.NewEncoder(w).Encode(out)

	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
