package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the storefront service.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Backend holds the store backend API configuration.
	Backend BackendConfig `mapstructure:",squash"`

	// Redis holds the session storage configuration.
	Redis RedisConfig `mapstructure:",squash"`

	// Session holds the lifetimes of per-browser state.
	Session SessionConfig `mapstructure:",squash"`
}

// BackendConfig holds the connection details for the store backend REST API.
type BackendConfig struct {
	// URL is the base URL of the backend API.
	URL string `mapstructure:"BACKEND_URL" required:"true"`
	// TimeoutSeconds is the request timeout for backend calls.
	TimeoutSeconds int `mapstructure:"BACKEND_TIMEOUT_SECONDS" default:"10"`
}

// RedisConfig holds the redis connection details.
type RedisConfig struct {
	// URL is the redis connection string, e.g. redis://localhost:6379/0.
	URL string `mapstructure:"REDIS_URL" required:"true"`
}

// SessionConfig holds TTLs for session-scoped state kept in redis.
type SessionConfig struct {
	// CartTTLHours is how long an untouched cart snapshot survives.
	CartTTLHours int `mapstructure:"CART_TTL_HOURS" default:"720"`
	// CustomerTTLHours is how long a customer session survives.
	CustomerTTLHours int `mapstructure:"SESSION_TTL_HOURS" default:"168"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := walkFields(&config, func(field reflect.StructField, _ reflect.Value) error {
		key := field.Tag.Get("mapstructure")
		if key == "" {
			return nil
		}
		v.BindEnv(key)
		if def := field.Tag.Get("default"); def != "" {
			v.SetDefault(key, def)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := walkFields(&config, func(field reflect.StructField, value reflect.Value) error {
		if field.Tag.Get("required") == "true" && value.IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return &config, nil
}

// walkFields visits every non-struct field of a (possibly nested) config struct.
func walkFields(config interface{}, visit func(reflect.StructField, reflect.Value) error) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := walkFields(val.Field(i).Addr().Interface(), visit); err != nil {
				return err
			}
			continue
		}

		if err := visit(field, val.Field(i)); err != nil {
			return err
		}
	}
	return nil
}
