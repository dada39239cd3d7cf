package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"timeboard/internal/timer"

	"github.com/spf13/viper"
)

const (
	envPrefix      = "TIMEBOARD"
	defaultName    = "config"
	defaultDirPath = "configs"
)

// Config is the whole application configuration.
type Config struct {
	Port    string        `mapstructure:"port"`
	Log     LogConfig     `mapstructure:"log"`
	DB      DBConfig      `mapstructure:"db"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Server  ServerConfig  `mapstructure:"server"`
	Timer   TimerConfig   `mapstructure:"timer"`
	Alarm   AlarmConfig   `mapstructure:"alarm"`
	Storage StorageConfig `mapstructure:"storage"`
	Board   BoardConfig   `mapstructure:"board"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`

	// AllowedOrigins limits which pages may open the display stream. Empty
	// allows any origin.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// TimerConfig carries the panel arithmetic settings plus engine tuning.
type TimerConfig struct {
	timer.Config    `mapstructure:",squash"`
	InitialHours    int           `mapstructure:"initial_hours"`
	InitialMinutes  int           `mapstructure:"initial_minutes"`
	InitialSeconds  int           `mapstructure:"initial_seconds"`
	MaxElapsed      time.Duration `mapstructure:"max_elapsed"`
	FrameInterval   time.Duration `mapstructure:"frame_interval"`
	AutoloadOnStart bool          `mapstructure:"autoload_on_start"`
}

type AlarmConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	MaxDuration time.Duration `mapstructure:"max_duration"`
	FrequencyHz float64       `mapstructure:"frequency_hz"`
	Volume      float64       `mapstructure:"volume"`
	SoundFile   string        `mapstructure:"sound_file"`
}

type StorageConfig struct {
	DefaultKey string `mapstructure:"default_key"`
}

type BoardConfig struct {
	StartHidden bool `mapstructure:"start_hidden"`
}

var errFrameInterval = errors.New("timer.frame_interval must be positive")

// setDefaults registers a value for every key so env overrides work without
// a config file.
func setDefaults(v *viper.Viper) {
	d := timer.DefaultConfig()

	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "app.db")

	v.SetDefault("auth.signing_key", "change-me")
	v.SetDefault("auth.token_ttl", time.Hour)

	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.allowed_origins", []string{})

	v.SetDefault("timer.max_hours", d.MaxHours)
	v.SetDefault("timer.wrap", d.Wrap)
	v.SetDefault("timer.minute_step", d.MinuteStep)
	v.SetDefault("timer.second_step", d.SecondStep)
	v.SetDefault("timer.initial_hours", 0)
	v.SetDefault("timer.initial_minutes", 0)
	v.SetDefault("timer.initial_seconds", 0)
	v.SetDefault("timer.max_elapsed", 2*time.Second)
	v.SetDefault("timer.frame_interval", 50*time.Millisecond)
	v.SetDefault("timer.autoload_on_start", false)

	v.SetDefault("alarm.enabled", true)
	v.SetDefault("alarm.max_duration", 3*time.Second)
	v.SetDefault("alarm.frequency_hz", 880.0)
	v.SetDefault("alarm.volume", 0.0)
	v.SetDefault("alarm.sound_file", "")

	v.SetDefault("storage.default_key", "timerSaved")
	v.SetDefault("board.start_hidden", false)
}

// Load reads configs/config.yml (or the file at path when non-empty) with
// TIMEBOARD_* environment overrides. A missing default config file is not an
// error; a missing explicit path is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(defaultDirPath)
		v.SetConfigName(defaultName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate fails fast on settings the timer core rejects.
func (c *Config) Validate() error {
	if err := c.Timer.Config.Validate(); err != nil {
		return err
	}
	if _, err := timer.New(c.Timer.InitialHours, c.Timer.InitialMinutes, c.Timer.InitialSeconds, c.Timer.Config); err != nil {
		return fmt.Errorf("timer.initial_*: %w", err)
	}
	if c.Timer.FrameInterval <= 0 {
		return errFrameInterval
	}
	return nil
}
