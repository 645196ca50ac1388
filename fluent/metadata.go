package fluent

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Metadata holds the key/value pairs of a run's metadata.txt.
type Metadata map[string]string

// ReadMetadata parses a metadata file of "Key: Value" lines. Lines
// without a colon are skipped.
func ReadMetadata(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m := Metadata{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		m[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Lookup returns the value for key, or "N/A" when the run never
// recorded it.
func (m Metadata) Lookup(key string) string {
	if v, ok := m[key]; ok && v != "" {
		return v
	}
	return "N/A"
}

// ReadWallShearAverage reads a WSS report file: the value is the last
// whitespace token of the last non-empty line.
func ReadWallShearAverage(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var last string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if text := strings.TrimSpace(scanner.Text()); text != "" {
			last = text
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if last == "" {
		return 0, fmt.Errorf("%s: empty report", path)
	}
	fields := strings.Fields(last)
	v, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return 0, fmt.Errorf("%s: parsing %q: %w", path, fields[len(fields)-1], err)
	}
	return v, nil
}
