package textio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumn(t *testing.T) {
	values, err := ParseColumn(strings.NewReader("1.5\n\n-2\n3e-3\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2, 3e-3}, values)
}

func TestParseColumnReportsLine(t *testing.T) {
	_, err := ParseColumn(strings.NewReader("1\n2\nabc\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParseColumns(t *testing.T) {
	cols, err := ParseColumns(strings.NewReader("1\t10\n2\t20\n3 30\n"))
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, []float64{1, 2, 3}, cols[0])
	assert.Equal(t, []float64{10, 20, 30}, cols[1])
}

func TestParseColumnsRaggedRow(t *testing.T) {
	_, err := ParseColumns(strings.NewReader("1\t10\n2\n"))
	require.Error(t, err)
}

func TestWriteColumnRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "axis.txt")
	want := []float64{1550.125, 1e-9, -3}

	require.NoError(t, WriteColumn(path, want))
	got, err := ReadColumn(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteColumnsZipsShortest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.txt")
	require.NoError(t, WriteColumns(path, []float64{1, 2, 3}, []float64{0.5, 0.25}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1\t0.5\n2\t0.25\n", string(raw))
}

func TestSiblingPath(t *testing.T) {
	got := SiblingPath(filepath.Join("data", "run1.txt"), "WavelengthAxis")
	assert.Equal(t, filepath.Join("data", "run1[WavelengthAxis].txt"), got)

	got = SiblingPath("spectrum", "Flat")
	assert.Equal(t, "spectrum[Flat].txt", got)
}

func TestStripMargin(t *testing.T) {
	assert.Equal(t, "/tmp/a b.txt", StripMargin(" \"/tmp/a b.txt\"\n"))
	assert.Equal(t, "x", StripMargin("\t'x'"))
}
