package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/mineral/internal/app"
	"github.com/atomicstack/mineral/internal/playback"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
	// File is the config file that was read, empty when none was found.
	File string
}

type Logging struct {
	FilePath string
	Trace    bool
	Debug    bool
}

const envPrefix = "MINERAL"

const (
	keyMusicDirs     = "music_dirs"
	keyCacheDir      = "cache_dir"
	keyPlayer        = "player"
	keyTickMS        = "tick_ms"
	keyLoadTimeoutMS = "load_timeout_ms"
	keyCoverWidth    = "cover_width"
	keyCoverHeight   = "cover_height"
	keyLogFile       = "log_file"
	keyTrace         = "trace"
	keyDebug         = "debug"
)

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"music-dir":       keyMusicDirs,
	"cache-dir":       keyCacheDir,
	"player":          keyPlayer,
	"tick-ms":         keyTickMS,
	"load-timeout-ms": keyLoadTimeoutMS,
	"cover-width":     keyCoverWidth,
	"cover-height":    keyCoverHeight,
	"log-file":        keyLogFile,
	"trace":           keyTrace,
	"debug":           keyDebug,
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringSlice("music-dir", nil, "music location to scan (repeatable)")
	fs.String("cache-dir", "", "directory holding images/{kind}/{id}.* covers")
	fs.String("player", "", "playback command; the track path is appended")
	fs.Int("tick-ms", 0, "render tick interval in milliseconds")
	fs.Int("load-timeout-ms", 0, "cover load timeout in milliseconds (negative disables)")
	fs.Int("cover-width", 0, "cover width in terminal cells")
	fs.Int("cover-height", 0, "maximum cover height in terminal rows")
	fs.String("log-file", "", "path to the log file")
	fs.Bool("trace", false, "enable verbose JSON trace logging")
	fs.Bool("debug", false, "enable debug logging and the test notification key")
	fs.String("config", "", "path to a TOML config file")
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("mineral", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg, err := FromFlags(fs, environ)
	if err != nil {
		return Config{}, err
	}
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

// FromFlags resolves configuration from parsed flags, environ, the config
// file and defaults, in that order of precedence.
func FromFlags(fs *pflag.FlagSet, environ []string) (Config, error) {
	env := parseEnv(environ)
	v := viper.New()
	setDefaults(v, env)

	explicit, _ := fs.GetString("config")
	path := explicit
	if path == "" {
		path = defaultConfigPath(env)
	}
	file := ""
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		file = path
	} else if explicit != "" {
		return Config{}, fmt.Errorf("config file: %w", err)
	}

	overrides, err := envOverrides(env)
	if err != nil {
		return Config{}, err
	}
	if len(overrides) > 0 {
		if err := v.MergeConfigMap(overrides); err != nil {
			return Config{}, fmt.Errorf("merge environment: %w", err)
		}
	}

	flags := make(map[string]string, len(flagKeys))
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
		if f.Changed {
			flags[name] = f.Value.String()
		}
	}

	cfg := Config{
		App: app.Config{
			MusicDirs:    v.GetStringSlice(keyMusicDirs),
			CacheDir:     v.GetString(keyCacheDir),
			Player:       strings.Fields(v.GetString(keyPlayer)),
			TickInterval: time.Duration(v.GetInt(keyTickMS)) * time.Millisecond,
			LoadTimeout:  time.Duration(v.GetInt(keyLoadTimeoutMS)) * time.Millisecond,
			CoverWidth:   v.GetInt(keyCoverWidth),
			CoverHeight:  v.GetInt(keyCoverHeight),
			Debug:        v.GetBool(keyDebug),
		},
		Logging: Logging{
			FilePath: v.GetString(keyLogFile),
			Trace:    v.GetBool(keyTrace),
			Debug:    v.GetBool(keyDebug),
		},
		Flags: flags,
		File:  file,
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, env map[string]string) {
	v.SetDefault(keyMusicDirs, []string{"~/Music"})
	v.SetDefault(keyCacheDir, filepath.Join(xdgDir(env, "XDG_CACHE_HOME", ".cache"), "mineral"))
	v.SetDefault(keyPlayer, strings.Join(playback.DefaultCommand, " "))
	v.SetDefault(keyTickMS, 33)
	v.SetDefault(keyLoadTimeoutMS, 5000)
	v.SetDefault(keyCoverWidth, 32)
	v.SetDefault(keyCoverHeight, 16)
	v.SetDefault(keyLogFile, "")
	v.SetDefault(keyTrace, false)
	v.SetDefault(keyDebug, false)
}

// envOverrides picks MINERAL_* values out of env. MINERAL_MUSIC_DIRS is a
// path list.
func envOverrides(env map[string]string) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	for _, key := range []string{keyMusicDirs, keyCacheDir, keyPlayer, keyTickMS, keyLoadTimeoutMS, keyCoverWidth, keyCoverHeight, keyLogFile, keyTrace, keyDebug} {
		name := envPrefix + "_" + strings.ToUpper(key)
		raw, ok := env[name]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		switch key {
		case keyMusicDirs:
			out[key] = filepath.SplitList(raw)
		case keyTickMS, keyLoadTimeoutMS, keyCoverWidth, keyCoverHeight:
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			out[key] = n
		case keyTrace, keyDebug:
			b, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			out[key] = b
		default:
			out[key] = raw
		}
	}
	return out, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func xdgDir(env map[string]string, name, fallback string) string {
	if dir := env[name]; dir != "" {
		return dir
	}
	home := env["HOME"]
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return filepath.Join(home, fallback)
}

func defaultConfigPath(env map[string]string) string {
	return filepath.Join(xdgDir(env, "XDG_CONFIG_HOME", ".config"), "mineral", "config.toml")
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	var errs []error
	if len(cfg.App.MusicDirs) == 0 {
		errs = append(errs, errors.New("at least one music directory is required"))
	}
	if len(cfg.App.Player) == 0 {
		errs = append(errs, errors.New("player command must not be empty"))
	}
	if cfg.App.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick interval must be > 0 (got %s)", cfg.App.TickInterval))
	}
	if cfg.App.CoverWidth < 2 {
		errs = append(errs, fmt.Errorf("cover width must be >= 2 (got %d)", cfg.App.CoverWidth))
	}
	if cfg.App.CoverHeight < 1 {
		errs = append(errs, fmt.Errorf("cover height must be >= 1 (got %d)", cfg.App.CoverHeight))
	}
	return errors.Join(errs...)
}

// Dump renders the resolved configuration as YAML using the file's key names.
func Dump(w io.Writer, cfg Config) error {
	doc := struct {
		File          string   `yaml:"config_file,omitempty"`
		MusicDirs     []string `yaml:"music_dirs"`
		CacheDir      string   `yaml:"cache_dir"`
		Player        string   `yaml:"player"`
		TickMS        int64    `yaml:"tick_ms"`
		LoadTimeoutMS int64    `yaml:"load_timeout_ms"`
		CoverWidth    int      `yaml:"cover_width"`
		CoverHeight   int      `yaml:"cover_height"`
		LogFile       string   `yaml:"log_file"`
		Trace         bool     `yaml:"trace"`
		Debug         bool     `yaml:"debug"`
	}{
		File:          cfg.File,
		MusicDirs:     cfg.App.MusicDirs,
		CacheDir:      cfg.App.CacheDir,
		Player:        strings.Join(cfg.App.Player, " "),
		TickMS:        cfg.App.TickInterval.Milliseconds(),
		LoadTimeoutMS: cfg.App.LoadTimeout.Milliseconds(),
		CoverWidth:    cfg.App.CoverWidth,
		CoverHeight:   cfg.App.CoverHeight,
		LogFile:       cfg.Logging.FilePath,
		Trace:         cfg.Logging.Trace,
		Debug:         cfg.Logging.Debug,
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
