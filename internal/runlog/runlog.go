// Package runlog keeps the plain-text record of a session that is written
// next to its saved figures.
package runlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Path returns the folder a session saves into: root/<date>/<time>, with
// the note appended to the time when given.
func Path(root, note string, now time.Time) string {
	name := now.Format("15-04-05")
	if note != "" {
		name += " " + note
	}
	return filepath.Join(root, now.Format("2006-Jan-02"), name)
}

// Log echoes every line to Out and keeps it for Write.
type Log struct {
	Out   io.Writer
	lines []string
}

func New() *Log {
	return &Log{Out: os.Stdout}
}

// Addf formats a line, prints it and records it.
func (l *Log) Addf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if l.Out != nil {
		fmt.Fprint(l.Out, line)
	}
	l.lines = append(l.lines, line)
}

// Lines returns the recorded lines.
func (l *Log) Lines() []string {
	return append([]string(nil), l.lines...)
}

// Write writes the recorded lines to dir/log.txt, creating dir if needed.
func (l *Log) Write(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	txt, err := os.Create(filepath.Join(dir, "log.txt"))
	if err != nil {
		return err
	}

	w := bufio.NewWriter(txt)
	for _, line := range l.lines {
		if _, err := w.WriteString(line); err != nil {
			txt.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		txt.Close()
		return err
	}
	return txt.Close()
}
