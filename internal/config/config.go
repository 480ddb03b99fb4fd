// Package config loads server settings from flags, the environment, an
// optional .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrMissingSecret is returned when JWT_SECRET is not configured.
var ErrMissingSecret = errors.New("config: JWT_SECRET is required")

type Config struct {
	Addr            string
	JWTSecret       string
	PreviousSecrets []string
	AuthAPI         string
	ProjectAPI      string
	TaskAPI         string
	EmailDomain     string
	DatabaseURL     string // empty disables the activity log
	LogLevel        string
	LogFormat       string
	LoginRateLimit  int // login attempts per client per minute
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string // extra origins trusted to submit forms
}

// ActivityLogEnabled reports whether a database is configured.
func (c *Config) ActivityLogEnabled() bool {
	return c.DatabaseURL != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("auth_api", "http://localhost:3000")
	v.SetDefault("project_api", "http://localhost:3001")
	v.SetDefault("task_api", "http://localhost:3002")
	v.SetDefault("email_domain", "company.co.th")
	v.SetDefault("log_level", "INFO")
	v.SetDefault("log_format", "json")
	v.SetDefault("login_rate_limit", 20)
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("shutdown_timeout", 10*time.Second)
}

// Load parses args (without the program name) and resolves every setting.
// Precedence: flags, then environment (including the env file), then the
// config file, then defaults.
func Load(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("panel", pflag.ContinueOnError)
	flags.String("addr", "", "listen address (ADDR)")
	flags.String("log-level", "", "log level: DEBUG, INFO, WARN, ERROR (LOG_LEVEL)")
	envFile := flags.String("env-file", ".env", "dotenv file to load if present")
	configFile := flags.String("config", "", "optional YAML/TOML/JSON config file")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if err := loadEnvFile(*envFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	if err := bindFlag(v, flags, "addr", "addr"); err != nil {
		return nil, err
	}
	if err := bindFlag(v, flags, "log_level", "log-level"); err != nil {
		return nil, err
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", *configFile, err)
		}
	}

	cfg := &Config{
		Addr:            v.GetString("addr"),
		JWTSecret:       v.GetString("jwt_secret"),
		PreviousSecrets: splitList(v.GetString("jwt_secret_previous")),
		AuthAPI:         v.GetString("auth_api"),
		ProjectAPI:      v.GetString("project_api"),
		TaskAPI:         v.GetString("task_api"),
		EmailDomain:     v.GetString("email_domain"),
		DatabaseURL:     v.GetString("database_url"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		LoginRateLimit:  v.GetInt("login_rate_limit"),
		RequestTimeout:  v.GetDuration("request_timeout"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		AllowedOrigins:  splitList(v.GetString("allowed_origins")),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return ErrMissingSecret
	}
	for name, u := range map[string]string{"AUTH_API": c.AuthAPI, "PROJECT_API": c.ProjectAPI, "TASK_API": c.TaskAPI} {
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			return fmt.Errorf("config: %s must be an http(s) URL, got %q", name, u)
		}
	}
	if c.LoginRateLimit <= 0 {
		return fmt.Errorf("config: LOGIN_RATE_LIMIT must be positive, got %d", c.LoginRateLimit)
	}
	return nil
}

// loadEnvFile loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

func bindFlag(v *viper.Viper, flags *pflag.FlagSet, key, flag string) error {
	f := flags.Lookup(flag)
	if f == nil {
		return fmt.Errorf("config: unknown flag %q", flag)
	}
	// an empty flag default would shadow the viper default
	if !f.Changed {
		return nil
	}
	return v.BindPFlag(key, f)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
