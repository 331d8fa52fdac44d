package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"iis_schedule/model"
)

// Config is the configuration of the schedule fetcher and its outputs.
type Config struct {
	EndpointURL     string         `mapstructure:"endpoint_url"`
	GroupID         string         `mapstructure:"group_id"`
	DataDir         string         `mapstructure:"data_dir"`
	RawCachePath    string         `mapstructure:"raw_cache_path"`
	ParsedCachePath string         `mapstructure:"parsed_cache_path"`
	DayOrder        []string       `mapstructure:"day_order"`
	HTTP            HTTPConfig     `mapstructure:"http"`
	Log             LogConfig      `mapstructure:"log"`
	Firebase        FirebaseConfig `mapstructure:"firebase"`
}

type HTTPConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"` // 0 means no timeout
	UserAgent string        `mapstructure:"user_agent"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type FirebaseConfig struct {
	DatabaseURL     string `mapstructure:"database_url"`
	CredentialsFile string `mapstructure:"credentials_file"`
	Root            string `mapstructure:"root"`
}

// ScheduleURL returns the endpoint URL with the group query parameter.
func (c *Config) ScheduleURL() string {
	sep := "?"
	if strings.Contains(c.EndpointURL, "?") {
		sep = "&"
	}
	return c.EndpointURL + sep + "studentGroup=" + c.GroupID
}

func (c *Config) Days() (model.DayOrder, error) {
	return model.NewDayOrder(c.DayOrder)
}

// Load reads the configuration: defaults, then the config file, then SCHEDULE_* env vars.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("endpoint_url", "https://iis.bsuir.by/api/v1/schedule")
	v.SetDefault("group_id", "124402")
	v.SetDefault("data_dir", "data")
	v.SetDefault("raw_cache_path", "")
	v.SetDefault("parsed_cache_path", "")
	v.SetDefault("day_order", model.DefaultDays)

	v.SetDefault("http.timeout", "0s")
	v.SetDefault("http.user_agent", "iis_schedule/1.0")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("firebase.database_url", "")
	v.SetDefault("firebase.credentials_file", "creds.json")
	v.SetDefault("firebase.root", "schedules")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("SCHEDULE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.RawCachePath == "" {
		cfg.RawCachePath = filepath.Join(cfg.DataDir, "schedule_raw.json")
	}
	if cfg.ParsedCachePath == "" {
		cfg.ParsedCachePath = filepath.Join(cfg.DataDir, "schedule_parsed.json")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.EndpointURL == "" {
		return fmt.Errorf("invalid config: endpoint_url must not be empty")
	}
	if c.GroupID == "" {
		return fmt.Errorf("invalid config: group_id must not be empty")
	}
	if len(c.DayOrder) == 0 {
		return fmt.Errorf("invalid config: day_order must not be empty")
	}
	if _, err := c.Days(); err != nil {
		return fmt.Errorf("invalid config: day_order: %w", err)
	}
	if c.HTTP.Timeout < 0 {
		return fmt.Errorf("invalid config: http.timeout must not be negative")
	}
	return nil
}
