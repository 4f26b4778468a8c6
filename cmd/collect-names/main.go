// Command collect-names walks anime library directories and collects
// video filenames for use in building test suites for filename parsing.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/vmunix/aniren/internal/scanner"
)

func main() {
	output := flag.String("output", "testdata/filenames.csv", "Output CSV file")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: collect-names [-output file.csv] <dir> [<dir>...]")
		os.Exit(1)
	}

	if err := run(flag.Args(), *output); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var leadingTag = regexp.MustCompile(`^\[([^\]]+)\]`)

func run(roots []string, output string) error {
	// Dedupe by base name so rescanning overlapping trees is harmless
	seen := make(map[string]bool)
	var results []record

	for _, root := range roots {
		fmt.Printf("Scanning %s...\n", root)

		files, err := scanner.New(true).Scan(root)
		if err != nil {
			fmt.Printf("  error: %v\n", err)
			continue
		}

		newCount := 0
		for i := 0; i < len(files); i++ {
			name := filepath.Base(files[i])
			if seen[name] {
				continue
			}
			seen[name] = true
			newCount++

			group := ""
			if m := leadingTag.FindStringSubmatch(name); m != nil {
				group = m[1]
			}

			results = append(results, record{Name: name, Group: group})
		}

		fmt.Printf("  %d files, %d new\n", len(files), newCount)
	}

	fmt.Printf("\nTotal unique names: %d\n", len(results))

	// Write CSV
	if err := writeCSV(output, results); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	fmt.Printf("Written to %s\n", output)
	return nil
}

type record struct {
	Name  string
	Group string
}

func writeCSV(path string, records []record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"name", "group"}); err != nil {
		return err
	}

	// Data
	for _, r := range records {
		if err := w.Write([]string{r.Name, r.Group}); err != nil {
			return err
		}
	}

	return w.Error()
}
