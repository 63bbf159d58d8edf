// Package textio reads and writes the flat numeric text files the tools
// exchange: one value per line, or an axis and a value separated by a tab.
package textio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ReadColumn reads one float per line. Blank lines are skipped.
func ReadColumn(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	values, err := ParseColumn(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// ParseColumn is ReadColumn over an arbitrary reader.
func ParseColumn(r io.Reader) ([]float64, error) {
	var values []float64

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return values, nil
}

// ReadColumns reads tab or space separated columns and returns them
// transposed, one slice per column.
func ReadColumns(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cols, err := ParseColumns(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cols, nil
}

// ParseColumns is ReadColumns over an arbitrary reader. Every row must have
// the same number of fields as the first.
func ParseColumns(r io.Reader) ([][]float64, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var cols [][]float64
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row++

		fields := splitRecord(record)
		if len(fields) == 0 {
			continue
		}
		if cols == nil {
			cols = make([][]float64, len(fields))
		}
		if len(fields) != len(cols) {
			return nil, fmt.Errorf("line %d: %d fields, want %d", row, len(fields), len(cols))
		}

		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", row, err)
			}
			cols[i] = append(cols[i], v)
		}
	}

	return cols, nil
}

// splitRecord also accepts space separated rows, which csv leaves as a
// single field.
func splitRecord(record []string) []string {
	var fields []string
	for _, r := range record {
		fields = append(fields, strings.Fields(r)...)
	}
	return fields
}

// WriteColumn writes one value per line.
func WriteColumn(path string, values []float64) error {
	return writeFile(path, func(w *bufio.Writer) error {
		for _, v := range values {
			if _, err := w.WriteString(FormatFloat(v) + "\n"); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteColumns writes axis and values as tab separated pairs. Only the
// common prefix of the two slices is written.
func WriteColumns(path string, axis, values []float64) error {
	n := min(len(axis), len(values))
	return writeFile(path, func(w *bufio.Writer) error {
		for i := 0; i < n; i++ {
			if _, err := w.WriteString(FormatFloat(axis[i]) + "\t" + FormatFloat(values[i]) + "\n"); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeFile(path string, fill func(*bufio.Writer) error) error {
	txt, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(txt)
	if err := fill(w); err != nil {
		txt.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		txt.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return txt.Close()
}

// FormatFloat is the shortest representation that parses back to v.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// SiblingPath names a derived file next to path:
// "data/run1.txt" with tag "Flat" becomes "data/run1[Flat].txt".
func SiblingPath(path, tag string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return filepath.Join(dir, base+"["+tag+"].txt")
}

// StripMargin trims the quotes and whitespace that come with a path pasted
// into a terminal.
func StripMargin(s string) string {
	return strings.Trim(s, " \"'\n\t\r")
}
