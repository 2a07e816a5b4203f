package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yaml"
	DefaultEnvPath    = ".env"
)

// Config is read from YAML and overridden by SECTION_FIELD environment
// variables. Leaf fields use split_words instead of an envconfig tag, since a
// tag is also looked up without its prefix.
type Config struct {
	App          AppConfig          `yaml:"app" envconfig:"APP"`
	Server       ServerConfig       `yaml:"server" envconfig:"SERVER"`
	Log          LogConfig          `yaml:"log" envconfig:"LOG"`
	Weatherstack WeatherstackConfig `yaml:"weatherstack" envconfig:"WEATHERSTACK"`
	Sessions     SessionsConfig     `yaml:"sessions" envconfig:"SESSIONS"`
	Sentry       SentryConfig       `yaml:"sentry" envconfig:"SENTRY"`
}

type AppConfig struct {
	Name    string `yaml:"name" split_words:"true" validate:"required"`
	Version string `yaml:"version" split_words:"true" validate:"required"`
	Env     string `yaml:"env" split_words:"true" validate:"omitempty,oneof=development staging production test"`
}

type ServerConfig struct {
	Port         string `yaml:"port" split_words:"true" validate:"required,numeric"`
	ReadTimeout  int    `yaml:"read_timeout" split_words:"true" validate:"gte=0"`
	WriteTimeout int    `yaml:"write_timeout" split_words:"true" validate:"gte=0"`
	IdleTimeout  int    `yaml:"idle_timeout" split_words:"true" validate:"gte=0"`
}

type LogConfig struct {
	Level string `yaml:"level" split_words:"true" validate:"oneof=debug info warn error"`
}

type WeatherstackConfig struct {
	AccessKey string `yaml:"access_key,omitempty" split_words:"true"`
	Host      string `yaml:"host" split_words:"true" validate:"required,hostname_port|hostname"`
	// Scheme is used unless the request that triggered the fetch arrived over https.
	Scheme       string `yaml:"scheme" split_words:"true" validate:"oneof=http https"`
	ForecastDays int    `yaml:"forecast_days" split_words:"true" validate:"gte=1,lte=14"`
	// Timeout in seconds; 0 keeps the transport default.
	Timeout int `yaml:"timeout" split_words:"true" validate:"gte=0"`
}

// SessionsConfig bounds the in-memory session store. Zero disables a limit.
type SessionsConfig struct {
	Max int `yaml:"max" split_words:"true" validate:"gte=0"`
	// IdleTTL in minutes; sessions unused for longer are dropped.
	IdleTTL int `yaml:"idle_ttl" split_words:"true" validate:"gte=0"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn,omitempty" split_words:"true" validate:"omitempty,url"`
	Debug bool   `yaml:"debug" split_words:"true"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider reads an optional .env file, then an optional YAML file,
// then lets environment variables override both.
type FileConfigProvider struct {
	path     string
	envPath  string
	validate *validator.Validate
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return name
	})

	return &FileConfigProvider{
		path:     path,
		envPath:  DefaultEnvPath,
		validate: v,
	}
}

// WithEnvFile points the provider at a different dotenv file.
func (p *FileConfigProvider) WithEnvFile(path string) *FileConfigProvider {
	p.envPath = path
	return p
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-dashboard",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Log: LogConfig{
			Level: "info",
		},
		Weatherstack: WeatherstackConfig{
			Host:         "api.weatherstack.com",
			Scheme:       "http",
			ForecastDays: 5,
		},
		Sessions: SessionsConfig{
			Max:     10000,
			IdleTTL: 120,
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cfg := defaultConfig()

	if err := godotenv.Load(p.envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrapf(err, "load env file %s", p.envPath)
	}

	if err := p.loadFromFile(cfg); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, errors.Wrap(err, "environment variable parsing")
	}

	return cfg, nil
}

func (p *FileConfigProvider) loadFromFile(cfg *Config) error {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "read config file %s", p.path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "parse YAML config %s", p.path)
	}
	return nil
}

func (p *FileConfigProvider) Validate(cfg *Config) error {
	err := p.validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate config")
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s fails %s validation", field, fe.Tag()))
		}
	}
	return errors.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(DefaultConfigPath))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cfg, err := provider.Load()
	if err != nil {
		return nil, err
	}
	if err := provider.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// HasAccessKey reports whether a Weatherstack key is configured. Without one
// the service rejects every request.
func (c *Config) HasAccessKey() bool {
	return strings.TrimSpace(c.Weatherstack.AccessKey) != ""
}
