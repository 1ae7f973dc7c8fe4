package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Data      DataConfig      `mapstructure:"data"`
	Inventory InventoryConfig `mapstructure:"inventory"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Actor     ActorConfig     `mapstructure:"actor"`
	Output    OutputConfig    `mapstructure:"output"`
}

// DataConfig lists the definitions documents to load
type DataConfig struct {
	Paths []string `mapstructure:"paths"`
}

// InventoryConfig selects where inventory stacks come from
type InventoryConfig struct {
	// Source: csv or database
	Source   string `mapstructure:"source" validate:"required,oneof=csv database"`
	Path     string `mapstructure:"path"`
	Location string `mapstructure:"location" validate:"required"`
}

// ActorConfig describes the character doing the crafting
type ActorConfig struct {
	Traits []string `mapstructure:"traits"`
	Hunger int      `mapstructure:"hunger" validate:"min=0"`
}

type OutputConfig struct {
	// Format: text or json
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
	Width  int    `mapstructure:"width" validate:"min=20"`
	// Color: style (terminal colors), tags (color tags) or none
	Color string `mapstructure:"color" validate:"required,oneof=style tags none"`
}

// envKeys are bound explicitly so env vars work without a config file
var envKeys = []string{
	"data.paths",
	"inventory.source",
	"inventory.path",
	"inventory.location",
	"database.type",
	"database.url",
	"database.path",
	"logging.level",
	"logging.format",
	"logging.output",
	"actor.traits",
	"actor.hunger",
	"output.format",
	"output.width",
	"output.color",
}

// LoadConfig loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Config file (craftreq.yaml)
// 3. Defaults (lowest priority)
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("craftreq")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/craftreq")
		}
	}

	v.SetEnvPrefix("CRAFTREQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	// Read config file (optional - don't error if missing)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		v.Set("database.url", dbURL)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration holding only defaults
func Default() *Config {
	cfg := &Config{}
	SetDefaults(cfg)
	return cfg
}
