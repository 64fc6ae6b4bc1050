// args.go - Argument and file list loading
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// loadArgsFromFileIfSpecified expands "-A file" in os.Args before flag
// parsing, so arguments from the file behave as if typed in its place.
func loadArgsFromFileIfSpecified() {
	for i := 1; i < len(os.Args)-1; i++ {
		if os.Args[i] != "-A" && os.Args[i] != "--A" {
			continue
		}
		fileArgs, err := loadArgsFile(os.Args[i+1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading argument file %s: %v\n", os.Args[i+1], err)
			os.Exit(1)
		}
		expanded := append([]string{}, os.Args[:i]...)
		expanded = append(expanded, fileArgs...)
		os.Args = append(expanded, os.Args[i+2:]...)
		return
	}
}

// loadArgsFile reads command-line arguments from a file. Blank lines and
// lines starting with '#' are ignored; quotes group words.
func loadArgsFile(path string) ([]string, error) {
	lines, err := readListFile(path)
	if err != nil {
		return nil, err
	}
	var args []string
	for _, line := range lines {
		args = append(args, splitArgsLine(line)...)
	}
	return args, nil
}

// loadFileList reads input file names, one per line.
func loadFileList(path string) ([]string, error) {
	return readListFile(path)
}

// readListFile returns the trimmed non-blank, non-comment lines of a file.
func readListFile(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// splitArgsLine splits a line on whitespace, keeping single- or
// double-quoted strings together.
func splitArgsLine(line string) []string {
	var args []string
	var current strings.Builder
	inArg := false
	var quote rune

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}
	return args
}
