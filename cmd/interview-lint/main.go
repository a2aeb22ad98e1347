// Command interview-lint checks interview payload files. Session snapshots
// are decoded strictly and validated against the session invariants;
// definition documents (JSON or YAML) get their control trees validated.
// Mode is picked per file: -mode overrides, otherwise .yaml/.yml files and
// files named *definition* are treated as definitions.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-interview/pkg/definition"
	"github.com/goliatone/go-interview/pkg/session"
	"github.com/goliatone/go-interview/pkg/wire"
)

type finding struct {
	file    string
	path    string
	message string
}

func main() {
	mode := flag.String("mode", "auto", "payload kind: session, definition, or auto")
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-mode session|definition|auto] paths...\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint interview session snapshots and definition documents.\n"); err != nil {
			panic(err)
		}
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var findings []finding
	for _, path := range paths {
		linted, err := lintFile(path, *mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		findings = append(findings, linted...)
	}

	if len(findings) > 0 {
		sort.Slice(findings, func(i, j int) bool {
			if findings[i].file == findings[j].file {
				if findings[i].path == findings[j].path {
					return findings[i].message < findings[j].message
				}
				return findings[i].path < findings[j].path
			}
			return findings[i].file < findings[j].file
		})
		for _, f := range findings {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", f.file, f.path, f.message)
		}
		os.Exit(1)
	}
}

func lintFile(path, mode string) ([]finding, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	switch resolveMode(path, mode) {
	case "session":
		return lintSession(path, raw)
	case "definition":
		return lintDefinition(path, raw)
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

func resolveMode(path, mode string) string {
	if mode != "auto" {
		return mode
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "definition"
	}
	if strings.Contains(strings.ToLower(filepath.Base(path)), "definition") {
		return "definition"
	}
	return "session"
}

func lintSession(path string, raw []byte) ([]finding, error) {
	s, err := wire.DecodeSession(raw)
	if err != nil {
		return nil, err
	}

	var findings []finding
	for _, v := range session.Validate(s) {
		findings = append(findings, finding{file: path, path: v.Path, message: v.Message})
	}
	return findings, nil
}

func lintDefinition(path string, raw []byte) ([]finding, error) {
	def, err := definition.Parse(raw)
	if err != nil {
		return nil, err
	}

	if err := def.Validate(); err != nil {
		return []finding{{file: path, path: string(def.ID), message: err.Error()}}, nil
	}
	return nil, nil
}
