package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	if len(cfg.Data.Paths) == 0 {
		cfg.Data.Paths = []string{"data/definitions.yaml"}
	}

	if cfg.Inventory.Source == "" {
		cfg.Inventory.Source = "csv"
	}
	if cfg.Inventory.Path == "" {
		cfg.Inventory.Path = "data/inventory.csv"
	}
	if cfg.Inventory.Location == "" {
		cfg.Inventory.Location = "workshop"
	}

	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "craftreq.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "craftreq"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "craftreq"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
	if cfg.Output.Width == 0 {
		cfg.Output.Width = 80
	}
	if cfg.Output.Color == "" {
		cfg.Output.Color = "style"
	}
}
