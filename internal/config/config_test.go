package config

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func isolatedEnv(t *testing.T, extra ...string) []string {
	t.Helper()
	dir := t.TempDir()
	return append([]string{
		"HOME=" + dir,
		"XDG_CONFIG_HOME=" + filepath.Join(dir, "config"),
		"XDG_CACHE_HOME=" + filepath.Join(dir, "cache"),
	}, extra...)
}

func writeConfig(t *testing.T, env []string, body string) string {
	t.Helper()
	path := defaultConfigPath(parseEnv(env))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadArgsDefaults(t *testing.T) {
	env := isolatedEnv(t)
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg.App.MusicDirs, []string{"~/Music"}) {
		t.Fatalf("expected default music dir, got %v", cfg.App.MusicDirs)
	}
	wantCache := filepath.Join(parseEnv(env)["XDG_CACHE_HOME"], "mineral")
	if cfg.App.CacheDir != wantCache {
		t.Fatalf("expected cache dir %q, got %q", wantCache, cfg.App.CacheDir)
	}
	if !reflect.DeepEqual(cfg.App.Player, []string{"mpv", "--no-video", "--really-quiet"}) {
		t.Fatalf("unexpected default player %v", cfg.App.Player)
	}
	if cfg.App.TickInterval != 33*time.Millisecond {
		t.Fatalf("expected 33ms tick, got %s", cfg.App.TickInterval)
	}
	if cfg.App.LoadTimeout != 5*time.Second {
		t.Fatalf("expected 5s load timeout, got %s", cfg.App.LoadTimeout)
	}
	if cfg.App.CoverWidth != 32 || cfg.App.CoverHeight != 16 {
		t.Fatalf("expected 32x16 cover box, got %dx%d", cfg.App.CoverWidth, cfg.App.CoverHeight)
	}
	if cfg.File != "" {
		t.Fatalf("expected no config file, got %q", cfg.File)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate: %v", err)
	}
}

func TestPrecedenceFlagOverEnvOverFile(t *testing.T) {
	env := isolatedEnv(t, "MINERAL_TICK_MS=50", "MINERAL_COVER_WIDTH=20")
	path := writeConfig(t, env, "tick_ms = 100\ncover_width = 10\nload_timeout_ms = 700\ncache_dir = \"/covers\"\n")

	cfg, err := LoadArgs([]string{"--tick-ms", "16"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.File != path {
		t.Fatalf("expected config file %q, got %q", path, cfg.File)
	}
	if cfg.App.TickInterval != 16*time.Millisecond {
		t.Fatalf("expected flag to win, got %s", cfg.App.TickInterval)
	}
	if cfg.App.CoverWidth != 20 {
		t.Fatalf("expected env to beat file, got %d", cfg.App.CoverWidth)
	}
	if cfg.App.LoadTimeout != 700*time.Millisecond {
		t.Fatalf("expected file to beat default, got %s", cfg.App.LoadTimeout)
	}
	if cfg.App.CacheDir != "/covers" {
		t.Fatalf("expected cache dir from file, got %q", cfg.App.CacheDir)
	}
	if cfg.Flags["tick-ms"] != "16" || len(cfg.Flags) != 1 {
		t.Fatalf("expected only tick-ms recorded as a flag, got %v", cfg.Flags)
	}
}

func TestMusicDirsFromFlagsAndEnv(t *testing.T) {
	env := isolatedEnv(t, "MINERAL_MUSIC_DIRS=/a"+string(os.PathListSeparator)+"/b")
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg.App.MusicDirs, []string{"/a", "/b"}) {
		t.Fatalf("expected env music dirs, got %v", cfg.App.MusicDirs)
	}

	cfg, err = LoadArgs([]string{"--music-dir", "/x", "--music-dir", "/y"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg.App.MusicDirs, []string{"/x", "/y"}) {
		t.Fatalf("expected flag music dirs, got %v", cfg.App.MusicDirs)
	}
}

func TestLoggingAndPlayerOptions(t *testing.T) {
	env := isolatedEnv(t, "MINERAL_TRACE=true")
	cfg, err := LoadArgs([]string{"--log-file", "trace.log", "--debug", "--player", "ffplay -nodisp"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Logging.Trace || !cfg.Logging.Debug || !cfg.App.Debug {
		t.Fatalf("expected trace and debug enabled, got %#v", cfg.Logging)
	}
	if cfg.Logging.FilePath != "trace.log" {
		t.Fatalf("expected log file trace.log, got %q", cfg.Logging.FilePath)
	}
	if !reflect.DeepEqual(cfg.App.Player, []string{"ffplay", "-nodisp"}) {
		t.Fatalf("expected split player command, got %v", cfg.App.Player)
	}
}

func TestLoadArgsErrors(t *testing.T) {
	env := isolatedEnv(t)
	if _, err := LoadArgs([]string{"--tick-ms", "fast"}, env); err == nil {
		t.Fatalf("expected error for non-numeric flag")
	}
	if _, err := LoadArgs(nil, isolatedEnv(t, "MINERAL_COVER_WIDTH=wide")); err == nil || !strings.Contains(err.Error(), "MINERAL_COVER_WIDTH") {
		t.Fatalf("expected env parse error naming the variable, got %v", err)
	}
	if _, err := LoadArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")}, env); err == nil {
		t.Fatalf("expected error for explicit missing config file")
	}
	writeConfig(t, env, "tick_ms = [")
	if _, err := LoadArgs(nil, env); err == nil {
		t.Fatalf("expected error for malformed config file")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg, err := LoadArgs([]string{"--tick-ms=-1", "--cover-width=1", "--cover-height=0"}, isolatedEnv(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = Validate(cfg)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"tick interval", "cover width", "cover height"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}

func TestDumpWritesYAML(t *testing.T) {
	cfg, err := LoadArgs([]string{"--music-dir", "/music"}, isolatedEnv(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := Dump(&buf, cfg); err != nil {
		t.Fatalf("dump: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"- /music", "tick_ms: 33", "player: mpv --no-video --really-quiet"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "config_file") {
		t.Fatalf("expected config_file omitted without a file:\n%s", out)
	}
}
