package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/regpoly/internal/cli"
	"github.com/katalvlaran/regpoly/internal/config"
	"github.com/katalvlaran/regpoly/polygon"
	"github.com/katalvlaran/regpoly/sequence"
)

// run executes the root command with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// --- describe ---

func TestDescribe_Table(t *testing.T) {
	out, _, err := run(t, "describe", "-n", "6", "-r", "2", "--precision", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Polygon(n=6, R=2)")
	assert.Contains(t, out, "10.392")
	assert.Contains(t, out, "120.000")
}

func TestDescribe_MutationShowsRecompute(t *testing.T) {
	out, _, err := run(t, "describe", "-n", "6", "-r", "2", "--set-radius", "4", "--calls", "-o", "yaml")
	require.NoError(t, err)

	var got struct {
		Polygon      string            `yaml:"polygon"`
		Circumradius float64           `yaml:"circumradius"`
		Calls        map[string]uint64 `yaml:"calls"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Polygon(n=6, R=4)", got.Polygon)
	assert.Equal(t, 4.0, got.Circumradius)
	for _, prop := range polygon.Properties {
		assert.Equal(t, uint64(2), got.Calls[prop.String()], "%s computed before and after invalidation", prop)
	}
}

func TestDescribe_InvalidVertexCount(t *testing.T) {
	_, stderr, err := run(t, "describe", "-n", "2")
	assert.ErrorIs(t, err, polygon.ErrInvalidVertexCount)
	assert.Contains(t, stderr, "command failed")

	_, _, err = run(t, "describe", "-n", "5", "--set-vertices", "1")
	assert.ErrorIs(t, err, polygon.ErrInvalidVertexCount)
}

func TestDescribe_RequiresVertices(t *testing.T) {
	_, _, err := run(t, "describe")
	assert.Error(t, err)
}

// --- sequence / best ---

func TestSequence_Table(t *testing.T) {
	out, _, err := run(t, "sequence", "-m", "10", "-r", "1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 9, "header plus 8 polygons")
}

func TestSequence_InvalidMax(t *testing.T) {
	_, _, err := run(t, "sequence", "-m", "2")
	assert.ErrorIs(t, err, sequence.ErrInvalidMaxVertexCount)
}

func TestBest_PicksLargest(t *testing.T) {
	out, stderr, err := run(t, "best", "-m", "12", "-r", "3", "-o", "yaml")
	require.NoError(t, err)

	var got struct {
		VertexCount int `yaml:"vertex_count"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, 12, got.VertexCount)
	assert.Contains(t, stderr, "max efficiency")
}

func TestBest_ZeroRadius(t *testing.T) {
	_, _, err := run(t, "best", "-m", "5", "-r", "0")
	assert.ErrorIs(t, err, sequence.ErrZeroPerimeter)
}

// --- compare ---

func TestCompare(t *testing.T) {
	out, _, err := run(t, "compare", "10", "10", "15", "10")
	require.NoError(t, err)
	assert.Equal(t, "Polygon(n=10, R=10) < Polygon(n=15, R=10) (equal: false)\n", out)

	out, _, err = run(t, "compare", "15", "100", "15", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "= Polygon(n=15, R=100) (equal: true)")
}

func TestCompare_BadArgs(t *testing.T) {
	_, _, err := run(t, "compare", "x", "1", "3", "1")
	assert.Error(t, err)

	_, _, err = run(t, "compare", "3", "1", "2", "1")
	assert.ErrorIs(t, err, polygon.ErrInvalidVertexCount)

	_, _, err = run(t, "compare", "3", "1")
	assert.Error(t, err)
}

// --- config / logging ---

func TestConfigFile_SuppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regpoly.yaml")
	require.NoError(t, os.WriteFile(path, []byte("circumradius: 2\nmax_vertices: 6\noutput: yaml\n"), 0o644))

	out, _, err := run(t, "best", "--config", path)
	require.NoError(t, err)
	var got struct {
		Polygon string `yaml:"polygon"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Polygon(n=6, R=2)", got.Polygon)

	out, _, err = run(t, "describe", "-n", "4", "--config", path, "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Polygon(n=4, R=2)", "flag overrides file, file supplies radius")
}

func TestConfigFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: xml\n"), 0o644))

	_, _, err := run(t, "sequence", "--config", path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "sequence", "-o", "csv")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "describe", "-n", "5", "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "config resolved")
	assert.Contains(t, stderr, "cache counter")

	_, stderr, err = run(t, "describe", "-n", "5")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "config resolved")
}
