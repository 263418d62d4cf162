// Package config layers goKeyStuffer settings from defaults, a JSON file,
// the environment and command-line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mstoykov/envconfig"
	"github.com/sirupsen/logrus"
	"gopkg.in/guregu/null.v3"

	"github.com/goKeyStuffer/layout"
)

// Config holds every setting. Unset fields are not Valid and leave lower
// layers in place when applied.
type Config struct {
	// Layout names a built-in layout description. When neither it nor
	// LayoutFile is set the host's active layout is used.
	Layout     null.String `json:"layout" envconfig:"KEYSTUFFER_LAYOUT"`
	LayoutFile null.String `json:"layoutFile" envconfig:"KEYSTUFFER_LAYOUT_FILE"`

	ProbeAllStates null.Bool `json:"probeAllStates" envconfig:"KEYSTUFFER_PROBE_ALL_STATES"`

	LogLevel null.String `json:"logLevel" envconfig:"KEYSTUFFER_LOG_LEVEL"`
	LogFile  null.String `json:"logFile" envconfig:"KEYSTUFFER_LOG_FILE"`

	// Linux virtual device settings
	UinputPath null.String `json:"uinputPath" envconfig:"KEYSTUFFER_UINPUT_PATH"`
	DeviceName null.String `json:"deviceName" envconfig:"KEYSTUFFER_DEVICE_NAME"`

	DryRun    null.Bool   `json:"dryRun" envconfig:"KEYSTUFFER_DRY_RUN"`
	Message   null.String `json:"message" envconfig:"KEYSTUFFER_MESSAGE"`
	ChunkSize null.Int    `json:"chunkSize" envconfig:"KEYSTUFFER_CHUNK_SIZE"`
}

// NewConfig returns the defaults.
func NewConfig() Config {
	return Config{
		ProbeAllStates: null.NewBool(false, false),
		LogLevel:       null.NewString("info", false),
		UinputPath:     null.NewString("/dev/uinput", false),
		DeviceName:     null.NewString("goKeyStuffer", false),
		DryRun:         null.NewBool(false, false),
		ChunkSize:      null.NewInt(0, false),
	}
}

// Apply returns c with every valid field of cfg copied over it.
func (c Config) Apply(cfg Config) Config {
	if cfg.Layout.Valid {
		c.Layout = cfg.Layout
	}
	if cfg.LayoutFile.Valid {
		c.LayoutFile = cfg.LayoutFile
	}
	if cfg.ProbeAllStates.Valid {
		c.ProbeAllStates = cfg.ProbeAllStates
	}
	if cfg.LogLevel.Valid && cfg.LogLevel.String != "" {
		c.LogLevel = cfg.LogLevel
	}
	if cfg.LogFile.Valid {
		c.LogFile = cfg.LogFile
	}
	if cfg.UinputPath.Valid && cfg.UinputPath.String != "" {
		c.UinputPath = cfg.UinputPath
	}
	if cfg.DeviceName.Valid && cfg.DeviceName.String != "" {
		c.DeviceName = cfg.DeviceName
	}
	if cfg.DryRun.Valid {
		c.DryRun = cfg.DryRun
	}
	if cfg.Message.Valid {
		c.Message = cfg.Message
	}
	if cfg.ChunkSize.Valid {
		c.ChunkSize = cfg.ChunkSize
	}
	return c
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	var errs []error
	if c.Layout.String != "" && c.LayoutFile.String != "" {
		errs = append(errs, errors.New("layout and layoutFile are mutually exclusive"))
	}
	if _, err := logrus.ParseLevel(c.LogLevel.String); err != nil {
		errs = append(errs, fmt.Errorf("logLevel: %w", err))
	}
	if c.ChunkSize.Int64 < 0 {
		errs = append(errs, fmt.Errorf("chunkSize must not be negative, got %d", c.ChunkSize.Int64))
	}
	if c.Message.Valid && c.Message.String == "" {
		errs = append(errs, errors.New("message must not be empty when set"))
	}
	return errors.Join(errs...)
}

// ProbePolicy returns the layout probing policy the config selects.
func (c Config) ProbePolicy() layout.ProbePolicy {
	if c.ProbeAllStates.Bool {
		return layout.ProbeAllStates
	}
	return layout.ProbeDefault
}

// Consolidate combines the defaults with the JSON config, the environment
// and the flag values, each layer overriding the previous one.
func Consolidate(jsonConf []byte, env map[string]string, flags Config) (Config, error) {
	result := NewConfig()
	if len(jsonConf) > 0 {
		var fileConf Config
		if err := json.Unmarshal(jsonConf, &fileConf); err != nil {
			return result, fmt.Errorf("parsing config file: %w", err)
		}
		result = result.Apply(fileConf)
	}

	var envConf Config
	if err := envconfig.Process("", &envConf, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}); err != nil {
		return result, fmt.Errorf("reading environment: %w", err)
	}
	result = result.Apply(envConf).Apply(flags)

	return result, result.Validate()
}

// ReadFile returns the contents of the JSON config at path. A missing file
// is an error only when required is set.
func ReadFile(path string, required bool) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return data, nil
}

// EnvMap turns KEY=value pairs, as from os.Environ, into a map.
func EnvMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, _ := strings.Cut(kv, "=")
		env[k] = v
	}
	return env
}
