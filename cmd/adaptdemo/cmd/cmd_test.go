package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(t *testing.T) (*Env, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	for _, key := range []string{"ADAPT_APP_NAME", "ADAPT_THEME", "ADAPT_LOG_LEVEL", "ADAPT_LOG_FORMAT", "ADAPT_LOG_FILE"} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "adapt.yaml"), []byte("app:\n  name: demo\nlog:\n  format: json\n"), 0o644))

	var stdout, stderr bytes.Buffer
	return &Env{Stdout: &stdout, Stderr: &stderr, Dir: dir}, &stdout, &stderr
}

func TestExecute_Help(t *testing.T) {
	env, stdout, _ := testEnv(t)
	require.NoError(t, Execute(env, nil))
	assert.Contains(t, stdout.String(), "Commands:")
	for _, name := range []string{"run", "snapshot", "version"} {
		assert.Contains(t, stdout.String(), name)
	}
}

func TestExecute_Version(t *testing.T) {
	env, stdout, _ := testEnv(t)
	require.NoError(t, Execute(env, []string{"--version"}))
	assert.Contains(t, stdout.String(), "adaptdemo version "+Version)
}

func TestExecute_UnknownCommand(t *testing.T) {
	env, _, stderr := testEnv(t)
	err := Execute(env, []string{"fly"})
	assert.EqualError(t, err, "unknown command: fly")
	assert.Contains(t, stderr.String(), `unknown command "fly"`)
}

func TestExecute_CommandHelp(t *testing.T) {
	env, stdout, _ := testEnv(t)
	require.NoError(t, Execute(env, []string{"run", "--help"}))
	assert.Contains(t, stdout.String(), "adaptdemo run [--press KEYS]")
}

func TestRun_Plain(t *testing.T) {
	env, stdout, stderr := testEnv(t)
	require.NoError(t, Execute(env, []string{"run"}))

	out := stdout.String()
	assert.Contains(t, out, "demo")
	assert.Contains(t, out, "mode: light")
	assert.Contains(t, out, "[ Dark mode ] (t)")
	assert.Contains(t, out, "count: 0")
	assert.NotContains(t, stderr.String(), `"level":"error"`)
}

func TestRun_Press(t *testing.T) {
	env, stdout, _ := testEnv(t)
	env.IsTTY = true
	require.NoError(t, Execute(env, []string{"--dir", env.Dir, "run", "--press", "t+++-"}))

	out := stdout.String()
	assert.Contains(t, out, "mode: dark")
	assert.Contains(t, out, "count: 2")
}

func TestRun_ThemeFlag(t *testing.T) {
	env, stdout, _ := testEnv(t)
	require.NoError(t, Execute(env, []string{"run", "--theme", "dark"}))
	assert.Contains(t, stdout.String(), "mode: dark")

	err := Execute(env, []string{"run", "--theme", "sepia"})
	assert.ErrorContains(t, err, "unknown brightness")
}

func TestRun_BadFlags(t *testing.T) {
	env, _, _ := testEnv(t)
	assert.ErrorContains(t, Execute(env, []string{"run", "--fast"}), `unknown flag "--fast"`)
	assert.ErrorContains(t, Execute(env, []string{"run", "--press"}), "--press requires a value")
}

func TestRun_EnvOverridesTheme(t *testing.T) {
	env, stdout, _ := testEnv(t)
	t.Setenv("ADAPT_THEME", "dark")
	require.NoError(t, Execute(env, []string{"run"}))
	assert.Contains(t, stdout.String(), "mode: dark")
}

func TestRun_LogFile(t *testing.T) {
	env, _, stderr := testEnv(t)
	logFile := filepath.Join(env.Dir, "adapt.log")
	t.Setenv("ADAPT_LOG_FILE", logFile)
	t.Setenv("ADAPT_LOG_LEVEL", "debug")

	require.NoError(t, Execute(env, []string{"run", "--press", "t"}))

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"session started"`)
	assert.Contains(t, string(data), `"action":"toggle"`)
	assert.Empty(t, stderr.String())
}

func TestSnapshot(t *testing.T) {
	env, _, stderr := testEnv(t)
	output := filepath.Join(env.Dir, "shot.png")

	require.NoError(t, Execute(env, []string{"snapshot", "-o", output, "--press", "t"}))

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 0)
	assert.Contains(t, stderr.String(), `"message":"snapshot written"`)
}

func TestSnapshot_Stdout(t *testing.T) {
	env, stdout, _ := testEnv(t)
	require.NoError(t, Execute(env, []string{"snapshot", "--output", "-"}))

	_, err := png.Decode(stdout)
	require.NoError(t, err)
}

func TestSnapshot_MissingOutput(t *testing.T) {
	env, _, _ := testEnv(t)
	assert.ErrorContains(t, Execute(env, []string{"snapshot", "-o"}), "-o requires a file path")
}
