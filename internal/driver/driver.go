// Package driver orchestrates tokenization runs for the CLI: loading
// inputs, building a fresh pipeline per input, fanning out over directory
// trees, and consulting the token cache.
package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"retok/internal/config"
	"retok/internal/diag"
	"retok/internal/source"
	"retok/internal/tokenizer"
	"retok/internal/tokfmt"
)

// DefaultExt is the extension directory walks look for.
const DefaultExt = ".rtk"

const defaultMaxDiagnostics = 100

// Options configures a tokenization run.
type Options struct {
	Config         *config.Config // nil means config.Default()
	MaxDiagnostics int
	Jobs           int    // parallel workers for directory runs; <=0 = GOMAXPROCS
	Ext            string // extension for directory walks; "" = DefaultExt
	Cache          *Cache // optional token cache
}

func (o Options) cfg() *config.Config {
	if o.Config != nil {
		return o.Config
	}
	return config.Default()
}

func (o Options) ext() string {
	if o.Ext != "" {
		return o.Ext
	}
	return DefaultExt
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics > 0 {
		return o.MaxDiagnostics
	}
	return defaultMaxDiagnostics
}

// FileResult holds the outcome of tokenizing a single input.
type FileResult struct {
	Path      string
	Records   []tokfmt.Record
	Bag       *diag.Bag
	FromCache bool
}

// TokenizeFile tokenizes one file from disk. Failures are reported through
// the result's bag rather than an error return, so directory runs can keep
// going past broken files.
func TokenizeFile(path string, opts Options) FileResult {
	bag := diag.NewBag(opts.maxDiagnostics())
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path)
	if err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOLoadFile,
			Message:  "failed to load file: " + err.Error(),
		})
		return FileResult{Path: path, Bag: bag}
	}
	records, cached := tokenizeInput(fileSet.Get(id), opts, bag)
	return FileResult{Path: path, Records: records, Bag: bag, FromCache: cached}
}

// TokenizeBytes tokenizes in-memory content (stdin, tests).
func TokenizeBytes(name string, content []byte, opts Options) FileResult {
	bag := diag.NewBag(opts.maxDiagnostics())
	fileSet := source.NewFileSet()
	id := fileSet.AddVirtual(name, content)
	records, cached := tokenizeInput(fileSet.Get(id), opts, bag)
	return FileResult{Path: name, Records: records, Bag: bag, FromCache: cached}
}

// TokenizeDir tokenizes every input file under dir in parallel. The
// returned results are in sorted path order regardless of scheduling.
func TokenizeDir(ctx context.Context, dir string, opts Options) ([]FileResult, error) {
	files, err := listInputFiles(dir, opts.ext())
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	// Preload serially: FileSet is not safe for concurrent mutation.
	fileSet := source.NewFileSet()
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine writes its own index; no mutex needed.
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.maxDiagnostics())
			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFile,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = FileResult{Path: path, Bag: bag}
				return nil
			}

			records, cached := tokenizeInput(fileSet.Get(fileIDs[path]), opts, bag)
			results[i] = FileResult{Path: path, Records: records, Bag: bag, FromCache: cached}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// tokenizeInput runs one input through a freshly built pipeline, consulting
// the cache first. The pipeline must be fresh: the indentation processor
// carries per-pass state.
func tokenizeInput(file *source.File, opts Options, bag *diag.Bag) (records []tokfmt.Record, fromCache bool) {
	cfg := opts.cfg()

	var key [32]byte
	if opts.Cache != nil {
		key = cacheKey(file.Hash, cfg.Fingerprint())
		var payload cachePayload
		if ok, err := opts.Cache.Get(key, cfg.Fingerprint(), &payload); err == nil && ok {
			return payload.Records, true
		}
	}

	procs, err := cfg.Build()
	if err != nil {
		bag.Add(diag.Describe(err))
		return nil, false
	}

	res, err := tokenizer.New(procs...).Tokenize(string(file.Content))
	if err != nil {
		bag.Add(diag.Describe(err))
		return nil, false
	}

	records, err = tokfmt.Records(res)
	if err != nil {
		bag.Add(diag.Describe(err))
		return nil, false
	}

	if opts.Cache != nil {
		// Best effort: a failed cache write must not fail the run.
		_ = opts.Cache.Put(key, &cachePayload{
			Schema:      cacheSchemaVersion,
			Fingerprint: cfg.Fingerprint(),
			Records:     records,
		})
	}
	return records, false
}

// listInputFiles returns the sorted list of files with the given extension
// under dir.
func listInputFiles(dir, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
