package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"metsverify/pkg/config"
	"metsverify/pkg/project"
	"metsverify/pkg/report"
	"metsverify/pkg/validate"
)

const version = "0.1.0"

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: metsverify <project-dir> [--metadata <export.csv>] [--json <output.json | ->] [--version]")
		os.Exit(2)
	}

	// Handle --version
	for _, arg := range args {
		if arg == "--version" {
			fmt.Printf("metsverify %s\n", version)
			os.Exit(0)
		}
	}

	projectDir := args[0]
	var metadataPath string
	var jsonOutput string

	for i := 1; i < len(args); i++ {
		switch {
		case args[i] == "--metadata" && i+1 < len(args):
			metadataPath = args[i+1]
			i++
		case args[i] == "--json" && i+1 < len(args):
			jsonOutput = args[i+1]
			i++
		}
	}

	// The project config supplies the metadata export path unless the flag
	// overrides it.
	if metadataPath == "" {
		cfg, err := config.Load(projectDir)
		if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
			fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
			os.Exit(2)
		}
		if cfg != nil && cfg.MetadataExport != "" {
			metadataPath = cfg.MetadataExport
			if !filepath.IsAbs(metadataPath) {
				metadataPath = filepath.Join(projectDir, metadataPath)
			}
		}
	}

	p, err := project.Load(projectDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(2)
	}

	if metadataPath != "" {
		md, err := project.LoadMetadata(metadataPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
			os.Exit(2)
		}
		p.Metadata = md
	}

	r := validate.Validate(p)

	// Text output to stderr
	r.WriteText(os.Stderr)

	// JSON output: always write to stdout for tool interop, and to file if --json specified
	if err := r.WriteJSON(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		os.Exit(2)
	}
	if jsonOutput != "" && jsonOutput != "-" {
		if err := writeJSON(r, jsonOutput); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
			os.Exit(2)
		}
	}

	// Exit codes: 0=valid, 1=errors, 2=fatal
	if r.FatalCount() > 0 {
		os.Exit(2)
	}
	if r.ErrorCount() > 0 {
		os.Exit(1)
	}
	os.Exit(0)
}

func writeJSON(r *report.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.WriteJSON(f)
}
