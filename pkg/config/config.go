package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	// DefaultEndpoint is the local Ollama generate endpoint.
	DefaultEndpoint = "http://localhost:11434/api/generate"
	// DefaultModel is the model the endpoint is asked to run.
	DefaultModel = "mistral:instruct"
	// DefaultFont is the font family used for every rendered paragraph.
	DefaultFont = "Times New Roman"

	// EnvEndpoint overrides Model.Endpoint.
	EnvEndpoint = "DOCX_TAILOR_ENDPOINT"
	// EnvModel overrides Model.Name.
	EnvModel = "DOCX_TAILOR_MODEL"
)

// Config represents the application configuration.
type Config struct {
	Paths   PathsConfig   `json:"paths"`
	Model   ModelConfig   `json:"model"`
	Profile ProfileConfig `json:"profile"`
	Layout  LayoutConfig  `json:"layout"`
}

// PathsConfig holds the input and output locations.
type PathsConfig struct {
	Resume         string `json:"resume" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
	Output         string `json:"output" validate:"required"`
}

// ModelConfig describes the completion endpoint.
type ModelConfig struct {
	Endpoint string `json:"endpoint" validate:"required,url"`
	Name     string `json:"name" validate:"required"`
	// Timeout is a Go duration string. Empty means no timeout.
	Timeout string `json:"timeout,omitempty"`
}

// ProfileConfig is the static personal header printed at the top of the output.
type ProfileConfig struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}

// LayoutConfig drives line classification and typography in the renderer.
type LayoutConfig struct {
	Font              string   `json:"font" validate:"required"`
	SectionHeaders    []string `json:"section_headers" validate:"required,min=1,dive,required"`
	SubHeaderPrefixes []string `json:"sub_header_prefixes" validate:"dive,required"`
}

// Default returns the configuration used when nothing else is specified.
func Default() (cfg Config) {
	cfg = Config{
		Paths: PathsConfig{
			Resume:         "Resume.docx",
			JobDescription: "job_description.txt",
			Output:         "Tailored Resume.docx",
		},
		Model: ModelConfig{
			Endpoint: DefaultEndpoint,
			Name:     DefaultModel,
		},
		Profile: ProfileConfig{
			Name:    "Your Name",
			Address: "123 Main Street, Ottawa, ON K1A 0A1",
			Contact: "Phone: (555)-555-5555   E-mail: you@example.com",
		},
		Layout: LayoutConfig{
			Font: DefaultFont,
			SectionHeaders: []string{
				"Professional Summary",
				"Education",
				"Experience",
				"Projects",
				"Key Skills",
			},
			SubHeaderPrefixes: []string{
				"University of Ottawa",
				"Knak",
				"Solace",
				"FINTRAC",
				"Club Website Platform",
			},
		},
	}
	return cfg
}

// RequestTimeout parses Model.Timeout. Zero means no timeout.
func (c *Config) RequestTimeout() (timeout time.Duration, err error) {
	if c.Model.Timeout == "" {
		return timeout, err
	}

	timeout, err = time.ParseDuration(c.Model.Timeout)
	if err != nil {
		err = errors.Wrapf(err, "invalid model.timeout: %s", c.Model.Timeout)
		return timeout, err
	}

	if timeout < 0 {
		err = errors.Errorf("model.timeout must not be negative: %s", c.Model.Timeout)
		return timeout, err
	}

	return timeout, err
}

// DefaultPath returns $HOME/.docx-tailor/config.json.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".docx-tailor", "config.json")
	return path, err
}

// Load builds the configuration from defaults, the config file and the environment.
// An explicit configPath must exist; the default location is optional.
func Load(configPath string) (cfg Config, err error) {
	cfg = Default()

	// .env is optional
	_ = godotenv.Load()

	explicit := configPath != ""
	path := configPath
	if !explicit {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && !explicit:
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'docx-tailor init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	if endpoint := os.Getenv(EnvEndpoint); endpoint != "" {
		cfg.Model.Endpoint = endpoint
	}

	if model := os.Getenv(EnvModel); model != "" {
		cfg.Model.Name = model
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks that all required configuration is present.
func (c *Config) Validate() (err error) {
	validate := validator.New()
	err = validate.Struct(c)
	if err != nil {
		return err
	}

	_, err = c.RequestTimeout()
	return err
}

// InitConfig writes the default configuration to configPath (or the default location).
func InitConfig(configPath string) (path string, err error) {
	path = configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return path, err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return path, err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return path, err
	}

	var data []byte
	data, err = json.MarshalIndent(Default(), "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return path, err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return path, err
	}

	return path, err
}
