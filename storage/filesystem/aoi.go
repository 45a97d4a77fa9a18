package filesystem

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultWordColumn is the CSV header column holding the AOI surface form
// in eye-tracker interest-area exports.
const DefaultWordColumn = "word"

// ReadAOI reads an AOI token list. Files with a .csv extension are read
// through the header column wordColumn (DefaultWordColumn when empty); any
// other file is treated as one token per line. Blank lines are skipped,
// token order is preserved.
func ReadAOI(path, wordColumn string) ([]string, error) {
	if filepath.Ext(path) == ".csv" {
		return readAOICSV(path, wordColumn)
	}

	return readAOILines(path)
}

func readAOILines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var tokens []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		tokens = append(tokens, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}

func readAOICSV(path, wordColumn string) ([]string, error) {
	if wordColumn == "" {
		wordColumn = DefaultWordColumn
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("CSV header: %w", err)
	}

	col := -1
	for i, name := range header {
		if name == wordColumn {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, fmt.Errorf("CSV column %q not found in %s", wordColumn, path)
	}

	var tokens []string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if col >= len(record) {
			continue
		}
		tokens = append(tokens, record[col])
	}

	return tokens, nil
}
