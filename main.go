// Package main implements vmwire, a view-model wiring code generator.
//
// vmwire scans Go packages for types named by the model-view-viewmodel convention
// and writes the explicit declarations the mvvm package resolves at start-up:
//
//   - FooViewModel is a view-model (any non-interface type ending in "ViewModel")
//   - FooView, built by NewFooView(vm), is its view; the pair becomes a template
//   - IFooViewModel, in the same package, is its interface; the pair becomes a
//     container binding
//
// Generation flow:
//
//  1. Read go.mod → module path
//  2. Read vmwire.yaml and generate.go → //vmwire:scan/exclude/output/catalog
//  3. Load the scanned packages (internal/ + pkg/ by default) with full type info
//  4. Apply the naming convention per package
//  5. Write zz_vmwire.go into every package with matches (DeclareViewModels)
//  6. Write the catalog package (internal/wiring by default) tying them together
//
// Usage:
//
//	//go:generate go run github.com/iVampireSP/vmwire@latest
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vmwire: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	verbose bool
	dryRun  bool
	root    string
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	generate := func(cmd *cobra.Command, args []string) error {
		return runGenerate(opts, stdout, newLogger(stderr, opts.verbose))
	}

	root := &cobra.Command{
		Use:           "vmwire",
		Short:         "Generate view-model wiring from naming conventions",
		Long:          "vmwire matches FooViewModel with FooView and IFooViewModel in each package and generates the mvvm catalog declarations for them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          generate,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.root, "root", "", "module root (default: nearest directory with go.mod)")
	root.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print generated code without writing")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the generated declaration files",
		Args:  cobra.NoArgs,
		RunE:  generate,
	}
	generateCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print generated code without writing")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show the view-models, views and interfaces vmwire would wire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(stderr, opts.verbose)
			_, cfg, scans, err := scanModule(opts, logger)
			if err != nil {
				return err
			}
			return renderMatches(stdout, scans, cfg.Module)
		},
	}

	root.AddCommand(generateCmd, listCmd)
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// scanModule resolves the module root, builds the config and scans the packages.
func scanModule(opts *options, logger *slog.Logger) (string, *Config, []*PackageScan, error) {
	moduleRoot := opts.root
	if moduleRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", nil, nil, fmt.Errorf("getwd: %w", err)
		}
		moduleRoot, err = findModuleRoot(wd)
		if err != nil {
			return "", nil, nil, err
		}
	}
	moduleRoot, err := filepath.Abs(moduleRoot)
	if err != nil {
		return "", nil, nil, err
	}

	cfg, err := BuildConfig(moduleRoot)
	if err != nil {
		return "", nil, nil, err
	}
	logger.Debug("config", "module", cfg.Module, "root", moduleRoot, "scan", cfg.Scan,
		"exclude", cfg.Exclude, "output", cfg.Output, "catalog", cfg.Catalog)

	scanner := NewScanner(cfg, moduleRoot, LoadGitignore(moduleRoot), logger)
	scans, err := scanner.Scan()
	if err != nil {
		return "", nil, nil, fmt.Errorf("scan: %w", err)
	}

	for _, scan := range scans {
		for _, w := range scan.Warnings {
			logger.Warn(w)
		}
		for _, n := range scan.Notes {
			logger.Debug(n)
		}
		for _, m := range scan.Matches {
			logger.Debug("view-model",
				"package", scan.PkgPath, "name", m.ViewModel,
				"view", m.View, "interface", m.Interface,
				"position", m.Position.String())
		}
	}
	return moduleRoot, cfg, scans, nil
}

func runGenerate(opts *options, stdout io.Writer, logger *slog.Logger) error {
	moduleRoot, cfg, scans, err := scanModule(opts, logger)
	if err != nil {
		return err
	}

	gen := NewCodeGen(cfg, scans, moduleRoot)
	files, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	written := 0
	for _, f := range files {
		path := filepath.Join(moduleRoot, filepath.FromSlash(f.Name))
		if opts.dryRun {
			if f.Remove() {
				fmt.Fprintf(stdout, "// === %s (removed) ===\n", f.Name)
				continue
			}
			fmt.Fprintf(stdout, "// === %s ===\n%s\n", f.Name, f.Content)
			continue
		}

		if f.Remove() {
			logger.Debug("removing stale file", "path", path)
			if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("remove %s: %w", path, err)
			}
			continue
		}

		logger.Debug("writing", "path", path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written++
	}

	if !opts.dryRun {
		logger.Info("generated files", "count", written)
	}
	return nil
}

// findModuleRoot walks up from dir to find the directory containing go.mod.
func findModuleRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("go.mod not found in any parent directory")
}
