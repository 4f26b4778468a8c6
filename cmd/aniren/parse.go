package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/aniren/pkg/fansub"
)

// parseResultJSON is the JSON-friendly form of one parsed filename.
type parseResultJSON struct {
	Input            string   `json:"input"`
	Title            string   `json:"title,omitempty"`
	Episode          int      `json:"episode"`
	Season           int      `json:"season,omitempty"`
	Type             string   `json:"type,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	Ext              string   `json:"ext,omitempty"`
	AlreadyFormatted bool     `json:"already_formatted,omitempty"`
	Error            string   `json:"error,omitempty"`
}

// toParseResult flattens a parse outcome for output.
func toParseResult(name string, parsed *fansub.ParsedFile, err error) parseResultJSON {
	result := parseResultJSON{Input: name}
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Title = parsed.Title
	result.Episode = parsed.Episode
	if parsed.Season != nil {
		result.Season = *parsed.Season
	}
	result.Type = parsed.Type.String()
	result.Tags = parsed.Tags
	result.Ext = parsed.Ext
	result.AlreadyFormatted = parsed.AlreadyFormatted
	return result
}

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <filename>...",
	Short: "Parse release filenames (local, no network)",
	Long: `Parse fansub release filenames and show the extracted metadata.

Examples:
  aniren parse "[字幕组] 鬼灭之刃 - 26 [1080p].mkv"
  aniren parse "[DBD-RAWS]妖精的尾巴_S001[1080].mkv" --json
  aniren parse --file names.txt --json`,
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("file", "f", "", "Read filenames from file (one per line)")
	// Note: --json is inherited from root as persistent flag
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	inputFile, _ := cmd.Flags().GetString("file")

	var names []string
	if inputFile != "" {
		read, err := readNameFile(inputFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		names = read
	} else if len(args) > 0 {
		names = args
	} else {
		return fmt.Errorf("usage: aniren parse <filename> or aniren parse --file <list>")
	}

	results := make([]parseResultJSON, 0, len(names))
	for _, name := range names {
		parsed, err := fansub.Parse(name)
		results = append(results, toParseResult(name, parsed, err))
	}

	if jsonOutput {
		outputJSON(results)
		return nil
	}

	for i, r := range results {
		if i > 0 {
			fmt.Println()
		}
		printParseResult(r)
	}
	return nil
}

// readNameFile reads filenames from a file, one per line. Blank lines
// and # comments are skipped.
func readNameFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			names = append(names, line)
		}
	}
	return names, scanner.Err()
}

// printParseResult outputs one result in a human-readable format.
func printParseResult(r parseResultJSON) {
	fmt.Printf("Input:       %s\n", r.Input)
	if r.Error != "" {
		fmt.Printf("Error:       %s\n", r.Error)
		return
	}
	fmt.Printf("Title:       %s\n", valueOrEmpty(r.Title))
	fmt.Printf("Episode:     %d\n", r.Episode)
	if r.Season > 0 {
		fmt.Printf("Season:      %d\n", r.Season)
	}
	fmt.Printf("Type:        %s\n", r.Type)
	if len(r.Tags) > 0 {
		fmt.Printf("Tags:        %s\n", strings.Join(r.Tags, ", "))
	}
	fmt.Printf("Ext:         %s\n", valueOrEmpty(r.Ext))
	fmt.Printf("Formatted:   %s\n", boolToYesNo(r.AlreadyFormatted))
}

// valueOrEmpty returns the value or an empty placeholder.
func valueOrEmpty(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// boolToYesNo converts a boolean to yes/no string.
func boolToYesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// outputJSON prints results as indented JSON. A single result prints as
// an object, multiple as an array.
func outputJSON(results []parseResultJSON) {
	var output any
	if len(results) == 1 {
		output = results[0]
	} else {
		output = results
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}
