package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sublevel/arsample"
)

// run executes the CLI and returns stdout, stderr and the exit code.
func run(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)

	return stdout.String(), stderr.String(), code
}

func newGolden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "sublevel", cmd.Use)
	assert.Contains(t, cmd.Long, "persistence diagrams")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"diagram", "sample", "batch", "region"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()
	for name, def := range map[string]string{
		"config":          "",
		"format":          "json",
		"log-level":       "info",
		"noise-threshold": "0.001",
		"no-canonical":    "false",
	} {
		f := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, def, f.DefValue, name)
	}
}

func TestGolden(t *testing.T) {
	g := newGolden(t)
	cases := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"diagram_json", "[1, 5, 1]", []string{"diagram"}},
		{"diagram_text", "0 0.4 0.1 3 -1\n", []string{"diagram", "--format", "text"}},
		{"region_positive_json", "", []string{"region", "--points", "3"}},
		{"region_both_text", "", []string{"region", "--mode", "both", "--points", "3", "--format", "text"}},
		{"batch_file_text", "[[1,5,1],[3,1,3]]", []string{"batch", "-", "--format", "text", "--log-level", "error"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr, code := run(t, tc.stdin, tc.args...)
			require.Equal(t, ExitSuccess, code, stderr)
			g.Assert(t, tc.name, []byte(stdout))
		})
	}
}

func TestDiagram_InputFormats(t *testing.T) {
	want := `[[[0,0,0],[1,5,0]]]`
	for name, tc := range map[string]struct {
		file, body string
		args       []string
	}{
		"yaml file":   {"s.yaml", "- 1\n- 5\n- 1\n", nil},
		"csv file":    {"s.csv", "1,5,1\n", nil},
		"json forced": {"s.dat", "[1,5,1]", []string{"--input-format", "json"}},
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o600))

			stdout, stderr, code := run(t, "", append([]string{"diagram", path}, tc.args...)...)
			require.Equal(t, ExitSuccess, code, stderr)

			var resp struct {
				Data struct {
					Diagram json.RawMessage `json:"diagram"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
			assert.JSONEq(t, want, string(resp.Data.Diagram))
		})
	}
}

func TestDiagram_OptionsFromFlagsAndConfig(t *testing.T) {
	stdout, _, code := run(t, "[0, 0.4, 0.1, 3, -1]", "diagram", "--noise-threshold", "0.5", "--no-canonical")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, `"diagram":[[[0,3,0]]]`)

	cfgPath := filepath.Join(t.TempDir(), "sublevel.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("noise_threshold: 0.5\nformat: yaml\n"), 0o600))
	stdout, _, code = run(t, "[0, 0.4, 0.1, 3, -1]", "diagram", "--config", cfgPath)
	require.Equal(t, ExitSuccess, code)

	var resp struct {
		Status string `yaml:"status"`
		Data   struct {
			Shape []int `yaml:"shape"`
		} `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []int{1, 2, 3}, resp.Data.Shape)
}

func TestDiagram_Errors(t *testing.T) {
	_, stderr, code := run(t, "[]", "diagram")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "compute diagram")

	_, _, code = run(t, "1 two 3", "diagram")
	assert.Equal(t, ExitCommandError, code)

	_, _, code = run(t, "", "diagram", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, ExitCommandError, code)

	_, _, code = run(t, "[1]", "diagram", "--input-format", "xml")
	assert.Equal(t, ExitCommandError, code)

	_, _, code = run(t, "[1]", "diagram", "--format", "xml")
	assert.Equal(t, ExitCommandError, code)

	_, _, code = run(t, "[1]", "diagram", "--bogus")
	assert.Equal(t, ExitCommandError, code)

	_, _, code = run(t, "[1]", "diagram", "--noise-threshold", "-1")
	assert.Equal(t, ExitCommandError, code)
}

func TestSample_Deterministic(t *testing.T) {
	args := []string{"sample", "--seed", "7", "--length", "32", "--mode", "negative", "--oscillatory"}
	first, stderr, code := run(t, "", args...)
	require.Equal(t, ExitSuccess, code, stderr)
	second, _, _ := run(t, "", args...)
	assert.Equal(t, first, second)

	var resp struct {
		Data SampleResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(first), &resp))
	assert.Equal(t, int64(7), resp.Data.Seed)
	assert.Equal(t, arsample.Negative, resp.Data.Mode)
	assert.Len(t, resp.Data.Series, 32)

	region, _ := arsample.RegionOf(arsample.Negative)
	assert.True(t, region.Contains(resp.Data.Coeffs, true))
}

func TestSample_Text(t *testing.T) {
	stdout, _, code := run(t, "", "sample", "--length", "4", "--noise", "0", "--mean", "2.5", "--format", "text")
	require.Equal(t, ExitSuccess, code)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "# seed=1 mode=positive"))
	assert.Equal(t, []string{"2.5", "2.5", "2.5", "2.5"}, lines[1:])
}

func TestSample_Errors(t *testing.T) {
	_, _, code := run(t, "", "sample", "--length", "0")
	assert.Equal(t, ExitCommandError, code)
	_, _, code = run(t, "", "sample", "--mode", "sideways")
	assert.Equal(t, ExitCommandError, code)
	_, _, code = run(t, "", "sample", "--burn-in", "-3")
	assert.Equal(t, ExitCommandError, code)
}

func TestBatch_Generated(t *testing.T) {
	args := []string{"batch", "--count", "5", "--length", "64", "--seed", "11", "--log-level", "error"}
	one, stderr, code := run(t, "", append(args, "--workers", "1")...)
	require.Equal(t, ExitSuccess, code, stderr)
	four, _, code := run(t, "", append(args, "--workers", "4")...)
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, one, four)

	var resp struct {
		Data struct {
			Series []struct {
				Index  int              `json:"index"`
				Seed   *int64           `json:"seed"`
				Coeffs *arsample.Coeffs `json:"coeffs"`
				Shape  [3]int           `json:"shape"`
			} `json:"series"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(one), &resp))
	require.Len(t, resp.Data.Series, 5)
	for i, item := range resp.Data.Series {
		assert.Equal(t, i, item.Index)
		require.NotNil(t, item.Seed)
		assert.Equal(t, int64(11+i), *item.Seed)
		require.NotNil(t, item.Coeffs)
		assert.True(t, item.Coeffs.Stationary())
		assert.Equal(t, 1, item.Shape[0])
		assert.GreaterOrEqual(t, item.Shape[1], 1)
	}
}

func TestBatch_Metrics(t *testing.T) {
	_, stderr, code := run(t, "[[1,5,1],[2,2]]", "batch", "-", "--metrics", "--log-level", "error")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stderr, `sublevel_batch_series_total{result="ok"} 2`)
	assert.Contains(t, stderr, "sublevel_batch_diagram_points_count 2")
}

func TestBatch_Errors(t *testing.T) {
	_, _, code := run(t, "[[1,2],[]]", "batch", "-", "--log-level", "panic")
	assert.Equal(t, ExitFailure, code)
	_, _, code = run(t, "1 2 3", "batch", "-")
	assert.Equal(t, ExitCommandError, code)
	_, _, code = run(t, "", "batch", "--count", "0")
	assert.Equal(t, ExitCommandError, code)
	_, _, code = run(t, "", "batch", "--workers", "0")
	assert.Equal(t, ExitCommandError, code)
}

func TestRegion_Errors(t *testing.T) {
	_, _, code := run(t, "", "region", "--points", "1")
	assert.Equal(t, ExitCommandError, code)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	err := WrapExitError(ExitCommandError, "read", assert.AnError)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "read: "+assert.AnError.Error(), err.Error())
	assert.Equal(t, "plain", NewExitError(ExitFailure, "plain").Error())
}
