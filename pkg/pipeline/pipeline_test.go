package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dotuml/pkg/config"
	apperr "github.com/matzehuels/dotuml/pkg/errors"
	"github.com/matzehuels/dotuml/pkg/observability"
)

const classesDOT = `digraph "classes" {
rankdir=BT
"pkg.Foo" [label=<{Foo|x: int|+get(): 'int'}>];
"pkg.Foo" -> "pkg.Bar" [label="uses"];
}
`

func newTestRunner(t *testing.T, buf *bytes.Buffer) *Runner {
	t.Helper()
	return NewRunner(config.Default(), log.NewWithOptions(buf, log.Options{Level: log.DebugLevel}))
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classes.dot")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvertFile(t *testing.T) {
	var logs bytes.Buffer
	input := writeInput(t, classesDOT)
	output := filepath.Join(t.TempDir(), "classes.puml")

	result, err := newTestRunner(t, &logs).ConvertFile(input, output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, result.Output, data)

	text := string(data)
	assert.Contains(t, text, "package \"pkg\" {\n")
	assert.Contains(t, text, "  class \"Foo\" as pkg_Foo {\n    x: int\n    +get(): int\n  }\n")
	assert.Contains(t, text, "pkg_Foo --> pkg_Bar : uses\n@enduml\n")

	assert.Equal(t, Stats{
		Classes:     1,
		Edges:       1,
		Packages:    1,
		MaxDepth:    1,
		ExtractTime: result.Stats.ExtractTime,
		BuildTime:   result.Stats.BuildTime,
		RenderTime:  result.Stats.RenderTime,
	}, result.Stats)
	assert.Contains(t, logs.String(), "extracted diagram")
	assert.Contains(t, logs.String(), "edge endpoint has no class node id=pkg.Bar")
	assert.NotContains(t, logs.String(), "id=pkg.Foo")
}

func TestConvertFile_MissingInput(t *testing.T) {
	var logs bytes.Buffer
	dir := t.TempDir()
	output := filepath.Join(dir, "out.puml")

	_, err := newTestRunner(t, &logs).ConvertFile(filepath.Join(dir, "missing.dot"), output)

	assert.True(t, apperr.Is(err, apperr.ErrCodeFileNotFound), "err = %v", err)
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "output file must not be created")
}

func TestConvertFile_UnwritableOutput(t *testing.T) {
	var logs bytes.Buffer
	input := writeInput(t, classesDOT)
	output := filepath.Join(t.TempDir(), "no", "such", "dir", "out.puml")

	_, err := newTestRunner(t, &logs).ConvertFile(input, output)

	assert.True(t, apperr.Is(err, apperr.ErrCodeWriteFailed), "err = %v", err)
}

func TestLoad_CollisionsWarned(t *testing.T) {
	var logs bytes.Buffer
	input := writeInput(t, `"a.b" [label=<{B}>];
"a_b" [label=<{B2}>];`)

	result, err := newTestRunner(t, &logs).Load(input)
	require.NoError(t, err)

	require.Len(t, result.Collisions, 1)
	assert.Equal(t, "a_b", result.Collisions[0].Alias)
	assert.Equal(t, []string{"a.b", "a_b"}, result.Collisions[0].IDs)
	assert.Contains(t, logs.String(), "share an alias")
	assert.Nil(t, result.Output)
}

func TestLoad_EmptyInputWarns(t *testing.T) {
	var logs bytes.Buffer
	input := writeInput(t, "digraph G {}\n")

	result, err := newTestRunner(t, &logs).Load(input)
	require.NoError(t, err)

	assert.Zero(t, result.Stats.Classes)
	assert.Empty(t, result.Tree.Children())
	assert.Contains(t, logs.String(), "no class nodes")
}

func TestConvert_CustomFallback(t *testing.T) {
	var logs bytes.Buffer
	cfg := config.Default()
	cfg.FallbackPackage = "misc"
	runner := NewRunner(cfg, log.New(&logs))

	result, err := runner.Convert(writeInput(t, `"Helper" [label=<{Helper}>];`))
	require.NoError(t, err)

	assert.Contains(t, string(result.Output), "package \"misc\" {\n")
	assert.Contains(t, string(result.Output), "class \"Helper\" as Helper {\n")
}

func TestNewRunner_DefaultLogger(t *testing.T) {
	r := NewRunner(config.Default(), nil)
	assert.NotNil(t, r.Logger)
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	events []string
	err    error
}

func (h *recordingHooks) OnExtractStart(string) { h.events = append(h.events, "extract-start") }

func (h *recordingHooks) OnExtractComplete(_ string, _, _ int, _ time.Duration, err error) {
	h.events = append(h.events, "extract")
	h.err = err
}

func (h *recordingHooks) OnBuildComplete(int, int, time.Duration) {
	h.events = append(h.events, "build")
}

func (h *recordingHooks) OnRenderComplete(int, time.Duration) {
	h.events = append(h.events, "render")
}

func TestConvert_CallsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	var logs bytes.Buffer
	_, err := newTestRunner(t, &logs).Convert(writeInput(t, classesDOT))
	require.NoError(t, err)

	assert.Equal(t, []string{"extract-start", "extract", "build", "render"}, hooks.events)
}

func TestLoad_HooksSeeReadError(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	var logs bytes.Buffer
	_, err := newTestRunner(t, &logs).Load(filepath.Join(t.TempDir(), "missing.dot"))
	require.Error(t, err)

	assert.Equal(t, []string{"extract-start", "extract"}, hooks.events)
	assert.ErrorIs(t, hooks.err, err)
}
