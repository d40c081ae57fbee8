package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const configFileName = "vmwire.yaml"

// BuildConfig builds a Config from go.mod, vmwire.yaml and generate.go.
// Only go.mod is required.
func BuildConfig(moduleRoot string) (*Config, error) {
	module, err := parseModulePath(moduleRoot)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig(module)

	fileCfg, err := readConfigFile(moduleRoot)
	if err != nil {
		return nil, err
	}
	if fileCfg != nil {
		cfg.apply(*fileCfg)
	}

	if err := applyGenerateFile(moduleRoot, cfg); err != nil {
		return nil, err
	}

	if cfg.Output == "" || filepath.Base(cfg.Output) != cfg.Output || !strings.HasSuffix(cfg.Output, ".go") {
		return nil, fmt.Errorf("output %q must be a bare .go file name", cfg.Output)
	}
	cfg.Catalog = strings.Trim(filepath.ToSlash(cfg.Catalog), "/")
	return cfg, nil
}

func parseModulePath(root string) (string, error) {
	f, err := os.Open(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("open go.mod: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "module ") {
			module := strings.TrimSpace(strings.TrimPrefix(line, "module "))
			return strings.Trim(module, `"`), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read go.mod: %w", err)
	}
	return "", fmt.Errorf("module directive not found in go.mod")
}

func readConfigFile(root string) (*FileConfig, error) {
	data, err := os.ReadFile(filepath.Join(root, configFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", configFileName, err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFileName, err)
	}
	return &fc, nil
}

// applyGenerateFile reads //vmwire: directives from generate.go.
//
//	//vmwire:scan internal/ui/...      (repeatable; replaces the default scan list)
//	//vmwire:exclude internal/legacy   (repeatable)
//	//vmwire:output zz_mvvm.go
//	//vmwire:catalog internal/app/wiring
func applyGenerateFile(root string, cfg *Config) error {
	data, err := os.ReadFile(filepath.Join(root, "generate.go"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read generate.go: %w", err)
	}

	var scan []string
	for _, line := range strings.Split(string(data), "\n") {
		d, ok := parseDirective(line)
		if !ok {
			continue
		}

		switch d.Kind {
		case DirectiveScan:
			if d.Value != "" {
				scan = append(scan, d.Value)
			}
		case DirectiveExclude:
			if d.Value != "" {
				cfg.Exclude = append(cfg.Exclude, d.Value)
			}
		case DirectiveOutput:
			cfg.Output = d.Value
		case DirectiveCatalog:
			cfg.Catalog = d.Value
		}
	}
	if len(scan) > 0 {
		cfg.Scan = scan
	}
	return nil
}
