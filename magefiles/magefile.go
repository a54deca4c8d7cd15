//go:build mage

// Package main contains Mage build targets for bible-search developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "bible-search"
	cmdPkg  = "./cmd/bible-search"
	dataDir = "data"

	configFile = "bible-search.yaml"
)

// sampleConfig is written by Init when no config file exists yet.
const sampleConfig = `corpus:
  path: data/bible.txt
library:
  data_dir: data/library
  history_limit: 20
search:
  history_policy: matched
log:
  level: warn
  format: console
`

// Init creates the data directory and a starter bible-search.yaml.
func Init() error {
	for _, dir := range []string{dataDir, filepath.Join(dataDir, "library")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}

	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("%s already exists, leaving it alone.\n", configFile)
		return nil
	}
	if err := os.WriteFile(configFile, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", configFile, err)
	}
	fmt.Printf("Wrote %s. Put the verse text at %s.\n", configFile, filepath.Join(dataDir, "bible.txt"))
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs every package test.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Shell builds the binary and starts the interactive shell.
func Shell() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName))
}

// Search builds the binary and runs one query, e.g. mage search "Col 2:2,4-6".
func Search(query string) error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "search", "--all", query)
}

// Stats prints project metrics: Go production/test LOC and corpus size.
func Stats() error {
	prodLines, testLines, err := countGoLines(".")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)

	verses, err := countVerseLines(filepath.Join(dataDir, "bible.txt"))
	switch {
	case os.IsNotExist(err):
		fmt.Println("Verses (data/bible.txt):        not present")
	case err != nil:
		return err
	default:
		fmt.Printf("Verses (data/bible.txt):        %d\n", verses)
	}
	return nil
}

// countGoLines counts non-blank lines in Go files, split into production
// and _test.go files. Underscore-prefixed directories are skipped.
func countGoLines(root string) (prod, test int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := countNonBlank(data, "")
		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, test, err
}

// countVerseLines counts lines of the corpus file that are neither blank
// nor # comments.
func countVerseLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return countNonBlank(data, "#"), nil
}

func countNonBlank(data []byte, commentPrefix string) int {
	n := 0
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || (commentPrefix != "" && strings.HasPrefix(line, commentPrefix)) {
			continue
		}
		n++
	}
	return n
}
