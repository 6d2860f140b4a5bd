// Package config loads parallax settings from defaults, PARALLAX_*
// environment variables and a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cristianoliveira/parallax/internal/colors"
	"github.com/pelletier/go-toml/v2"
)

// File permission constants.
const (
	FileModeDir  os.FileMode = 0755
	FileModeFile os.FileMode = 0644

	// FileExtTOML is the extension of configuration and state files.
	FileExtTOML = ".toml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "PARALLAX_"
)

// DefaultUserAgent is sent by the probe unless probe_user_agent is set.
const DefaultUserAgent = "Mozilla/5.0 (compatible; parallax/1.0; +https://github.com/cristianoliveira/parallax)"

var (
	config   map[string]string
	defaults map[string]string
	mu       sync.RWMutex
)

func init() {
	initValidators()
}

// Load resets configuration and reads it again. Environment variables win
// over the config file, which wins over defaults.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	config = make(map[string]string)
	defaults = make(map[string]string)

	setDefaults()
	loadFromEnv()
	loadFromFile()
	loadFromEnv()
	validate()
	createSampleConfig()
}

func setDefaults() {
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		xdgStateHome = filepath.Join(home, ".local", "state")
	}

	setDefault("config_dir", filepath.Join(xdgConfigHome, "parallax"))
	setDefault("state_dir", filepath.Join(xdgStateHome, "parallax"))
	setDefault("storage_backend", "sqlite")
	setDefault("logging_enabled", "false")
	setDefault("logging_level", "info")
	setDefault("logging_max_files", "10")
	setDefault("debug", "false")
	setDefault("probe_enabled", "true")
	setDefault("probe_user_agent", DefaultUserAgent)
	setDefault("open_command", "")
	setDefault("status_format", "detailed")
}

func setDefault(key, value string) {
	config[key] = value
	defaults[key] = value
}

// configPath returns the file to read, or "" when there is none.
func configPath() string {
	if p := os.Getenv(EnvPrefix + "CONFIG_PATH"); p != "" {
		return p
	}
	p := filepath.Join(config["config_dir"], "config"+FileExtTOML)
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

func loadFromFile() {
	path := configPath()
	if path == "" || !strings.EqualFold(filepath.Ext(path), FileExtTOML) {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", path, err))
		return
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", path, err))
		return
	}
	for k, v := range raw {
		key := strings.ToLower(k)
		converted, ok := coerceConfigValue(v)
		if !ok {
			colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", key, v))
			continue
		}
		config[key] = converted
	}
}

// coerceConfigValue converts a decoded TOML scalar to its string form.
func coerceConfigValue(value any) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case int:
		return strconv.Itoa(typed), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}

func loadFromEnv() {
	for _, env := range os.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) || name == EnvPrefix+"CONFIG_PATH" {
			continue
		}
		config[strings.ToLower(strings.TrimPrefix(name, EnvPrefix))] = value
	}
}

func validate() {
	for key, value := range config {
		validator := getValidator(key)
		if validator == nil {
			continue
		}
		normalized, err := validator(key, value, defaults[key])
		if err != nil {
			colors.Warning(fmt.Sprintf("validation error for %s: %v, using default: %s", key, err, defaults[key]))
			normalized = defaults[key]
		}
		config[key] = normalized
	}
}

// createSampleConfig writes the defaults to {config_dir}/config.toml on first run.
func createSampleConfig() {
	configDir := config["config_dir"]
	if configDir == "" {
		return
	}
	path := filepath.Join(configDir, "config"+FileExtTOML)
	if _, err := os.Stat(path); err == nil {
		return
	}
	if err := os.MkdirAll(configDir, FileModeDir); err != nil {
		colors.Debug(fmt.Sprintf("unable to create config dir %s: %v", configDir, err))
		return
	}

	typed := make(map[string]any, len(defaults))
	for k, v := range defaults {
		// Directories follow XDG at runtime; pinning them would defeat overrides.
		if k == "config_dir" || k == "state_dir" {
			continue
		}
		typed[k] = typedValue(v)
	}
	data, err := toml.Marshal(typed)
	if err != nil {
		colors.Warning(fmt.Sprintf("unable to marshal sample config: %v", err))
		return
	}
	header := "# parallax configuration\n# Environment variables (PARALLAX_<KEY>) override these values.\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), FileModeFile); err != nil {
		colors.Warning(fmt.Sprintf("unable to write sample config to %s: %v", path, err))
	}
}

func typedValue(val string) any {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return val
}

// Get returns a configuration value or defaultValue.
func Get(key, defaultValue string) string {
	mu.RLock()
	defer mu.RUnlock()
	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

// GetInt returns a configuration value as an integer, or defaultValue.
func GetInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(Get(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBool returns a configuration value as a boolean, or defaultValue.
func GetBool(key string, defaultValue bool) bool {
	switch normalizeBool(Get(key, "")) {
	case "true":
		return true
	case "false":
		return false
	default:
		return defaultValue
	}
}

// Keys returns the loaded keys in sorted order.
func Keys() []string {
	mu.RLock()
	defer mu.RUnlock()
	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// reset clears loaded values. Tests use it to observe defaults-only state.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	config = nil
	defaults = nil
}
