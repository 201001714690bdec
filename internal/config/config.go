package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"qrgen/pkg/domain"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It contains settings for the environment, logging, the HTTP server, QR
// rendering and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development or production)
	Environment string `env:"ENVIRONMENT" env-default:"development" validate:"oneof=development production" yaml:"environment"` //nolint: lll

	// Log contains logger settings
	Log struct {
		// Level overrides the environment's default log level
		Level string `env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error" yaml:"level"`
		// File enables an additional rotating JSON log file
		File string `env:"LOG_FILE" yaml:"file"`
		// MaxSizeMB is the size at which the log file is rotated
		MaxSizeMB int `env:"LOG_MAX_SIZE_MB" env-default:"100" validate:"min=1" yaml:"maxSizeMB"`
		// MaxBackups is the number of rotated log files kept
		MaxBackups int `env:"LOG_MAX_BACKUPS" env-default:"3" validate:"min=0" yaml:"maxBackups"`
		// MaxAgeDays is the number of days rotated log files are kept
		MaxAgeDays int `env:"LOG_MAX_AGE_DAYS" env-default:"28" validate:"min=0" yaml:"maxAgeDays"`
	} `yaml:"log"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" validate:"required" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" validate:"gt=0" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes limits the size of JSON request bodies
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"65536" validate:"min=1" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" validate:"startswith=/" yaml:"metricsPath"`
	} `yaml:"http"`

	// QR contains QR rendering settings
	QR struct {
		// RecoveryLevel is the error-correction level (low, medium, quartile, highest)
		RecoveryLevel string `env:"QR_RECOVERY_LEVEL" env-default:"highest" validate:"recoverylevel" yaml:"recoveryLevel"`
		// ModuleScale is the default side length of one module in pixels
		ModuleScale int `env:"QR_MODULE_SCALE" env-default:"8" validate:"min=1,ltefield=MaxModuleScale" yaml:"moduleScale"`
		// MaxModuleScale caps per-request module scale overrides
		MaxModuleScale int `env:"QR_MAX_MODULE_SCALE" env-default:"64" validate:"min=1" yaml:"maxModuleScale"`
		// DisableBorder drops the quiet zone around symbols
		DisableBorder bool `env:"QR_DISABLE_BORDER" env-default:"false" yaml:"disableBorder"`
		// Canonicalize lower-cases the host and drops default ports before encoding
		Canonicalize bool `env:"QR_CANONICALIZE" env-default:"false" yaml:"canonicalize"`
	} `yaml:"qr"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: values then come from the environment and defaults.
func Load(configPath string) (*Config, error) {
	var cfg Config

	_, err := os.Stat(configPath)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(configPath, &cfg)
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its validate tags.
func Validate(cfg *Config) error {
	v := validator.New()
	_ = v.RegisterValidation("recoverylevel", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseRecoveryLevel(fl.Field().String())

		return err == nil
	})

	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Dump renders cfg as YAML.
func Dump(cfg *Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not marshal config: %w", err)
	}

	return out, nil
}
