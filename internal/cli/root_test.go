package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
	"pomodoro/internal/platform"
	"pomodoro/internal/session"
	"pomodoro/internal/storage"
)

type testEnv struct {
	app        *App
	configPath string
	statePath  string
	stderr     *bytes.Buffer
	guiCalls   []string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	env := &testEnv{
		configPath: filepath.Join(dir, "config.yaml"),
		statePath:  filepath.Join(dir, "state.json"),
		stderr:     &bytes.Buffer{},
	}
	require.NoError(t, os.WriteFile(env.configPath, []byte("state_file: "+env.statePath+"\nlog_level: debug\n"), 0o644))
	env.app = &App{
		Stderr: env.stderr,
		RunGUI: func(_ *App, variantName string) error {
			env.guiCalls = append(env.guiCalls, variantName)
			return nil
		},
	}
	return env
}

func (env *testEnv) execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(env.app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestRoot_RunsGUIWithConfiguredVariant(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.execute(t)
	require.NoError(t, err)
	_, err = env.execute(t, "--variant", "mobile")
	require.NoError(t, err)
	_, err = env.execute(t, "desktop")
	require.NoError(t, err)
	_, err = env.execute(t, "mobile")
	require.NoError(t, err)

	assert.Equal(t, []string{"auto", "mobile", "desktop", "mobile"}, env.guiCalls)
}

func TestRoot_RejectsBadFlags(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.execute(t, "--variant", "watch", "status")
	assert.Error(t, err)

	_, err = env.execute(t, "--log-level", "loud", "status")
	assert.Error(t, err)
}

func TestRoot_LogsToStderr(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.execute(t, "status")

	require.NoError(t, err)
	assert.Contains(t, env.stderr.String(), "config loaded")
}

func TestRoot_FailingCommandLeavesLogForClose(t *testing.T) {
	env := newTestEnv(t)
	logPath := filepath.Join(t.TempDir(), "pomodoro.log")
	require.NoError(t, os.WriteFile(env.configPath, []byte("state_file: "+env.statePath+"\nlog_file: "+logPath+"\n"), 0o644))

	_, err := env.execute(t, "settings", "--break", "0")
	require.Error(t, err)
	assert.NotNil(t, env.app.closeLog)

	require.NoError(t, env.app.Close())
	assert.Nil(t, env.app.closeLog)
	assert.NoError(t, env.app.Close())

	_, err = os.Stat(logPath)
	assert.NoError(t, err)
}

func TestStatus_Defaults(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.execute(t, "status")

	require.NoError(t, err)
	assert.Contains(t, out, "desktop")
	assert.Contains(t, out, "25 min")
	assert.Contains(t, out, "5 min")
	assert.Contains(t, out, "Completed sessions")
	assert.NotContains(t, out, "Vibration")
}

func TestStatus_MobileShowsSuspendedSession(t *testing.T) {
	env := newTestEnv(t)
	store := storage.OpenFileStore(env.statePath, nil)
	storage.NewSnapshotStore(store).Save(model.Snapshot{
		SuspendedAt:      time.Now(),
		RemainingSeconds: 600,
		WasRunning:       true,
	})

	out, err := env.execute(t, "--variant", "mobile", "status")

	require.NoError(t, err)
	assert.Contains(t, out, "Vibration")
	assert.Contains(t, out, "Suspended session")
	assert.Regexp(t, `(10:00|09:5\d) left`, out)
}

func TestSettings_FlagsPersist(t *testing.T) {
	env := newTestEnv(t)
	store := storage.OpenFileStore(env.statePath, nil)
	require.NoError(t, storage.NewSettingsStore(store, storage.DesktopLayout, nil).Save(model.DefaultConfig(), 7))

	out, err := env.execute(t, "settings", "--work", "50", "--auto-start=false")

	require.NoError(t, err)
	assert.Contains(t, out, "50 min")

	loaded := storage.NewSettingsStore(storage.OpenFileStore(env.statePath, nil), storage.DesktopLayout, nil).Load()
	assert.Equal(t, 50, loaded.Config.WorkMinutes)
	assert.Equal(t, 5, loaded.Config.BreakMinutes)
	assert.False(t, loaded.Config.AutoStartNext)
	assert.Equal(t, 7, loaded.CompletedWorkSessions)
}

func TestSettings_RejectsInvalidFlags(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.execute(t, "settings", "--break", "0")

	assert.ErrorIs(t, err, model.ErrInvalidDuration)
	_, statErr := os.Stat(env.statePath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSettings_FormNeedsTerminal(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.execute(t, "settings")

	assert.ErrorIs(t, err, errNotInteractive)
}

func TestValidateMinutes(t *testing.T) {
	assert.NoError(t, validateMinutes("25"))
	assert.Error(t, validateMinutes("0"))
	assert.Error(t, validateMinutes("ten"))
}

func TestTUI_RequiresTerminal(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.execute(t, "tui")

	assert.Error(t, err)
}

func TestTUI_MobileSuspendsOnExit(t *testing.T) {
	env := newTestEnv(t)
	env.app.IsInteractive = func() bool { return true }
	env.app.RunTUI = func(controller *session.Controller) error {
		controller.Start()
		return nil
	}

	_, err := env.execute(t, "--variant", "mobile", "tui")

	require.NoError(t, err)
	snapshot, ok := storage.NewSnapshotStore(storage.OpenFileStore(env.statePath, nil)).Load()
	require.True(t, ok)
	assert.True(t, snapshot.WasRunning)
	assert.Equal(t, 1500, snapshot.RemainingSeconds)
}

func TestVariantFor(t *testing.T) {
	variant, err := variantFor("auto", true)
	require.NoError(t, err)
	assert.Equal(t, session.Mobile, variant)

	variant, err = variantFor("", false)
	require.NoError(t, err)
	assert.Equal(t, session.Desktop, variant)

	_, err = variantFor("watch", false)
	assert.Error(t, err)
}

type fakeAutostart struct {
	enabled bool
	entry   platform.AutostartEntry
}

func (service *fakeAutostart) GetConfigDir() (string, error) { return "", nil }

func (service *fakeAutostart) EnableAutostart(entry platform.AutostartEntry) error {
	service.enabled = true
	service.entry = entry
	return nil
}

func (service *fakeAutostart) DisableAutostart(string) error {
	service.enabled = false
	return nil
}

func (service *fakeAutostart) AutostartEnabled(string) (bool, error) {
	return service.enabled, nil
}

func TestAutostartCmd(t *testing.T) {
	app := &App{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	service := &fakeAutostart{}

	run := func(args ...string) string {
		cmd := newAutostartCmdWithService(app, service)
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute())
		return out.String()
	}

	assert.Equal(t, "Autostart: off\n", run("status"))
	assert.Equal(t, "Autostart enabled\n", run("enable"))
	assert.Equal(t, []string{"desktop"}, service.entry.Args)
	assert.Equal(t, appName, service.entry.AppName)
	assert.Equal(t, "Autostart: on\n", run("status"))
	assert.Equal(t, "Autostart disabled\n", run("disable"))
	assert.False(t, service.enabled)
}
