package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/vsinha/craftreq/pkg/application/services"
	"github.com/vsinha/craftreq/pkg/domain/repositories"
	engine "github.com/vsinha/craftreq/pkg/domain/services"
	"github.com/vsinha/craftreq/pkg/infrastructure/config"
	"github.com/vsinha/craftreq/pkg/infrastructure/database"
	"github.com/vsinha/craftreq/pkg/infrastructure/events"
	"github.com/vsinha/craftreq/pkg/infrastructure/logging"
	"github.com/vsinha/craftreq/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/craftreq/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/craftreq/pkg/infrastructure/repositories/persistence"
	"github.com/vsinha/craftreq/pkg/infrastructure/repositories/yaml"
	"github.com/vsinha/craftreq/pkg/interfaces/cli/output"
)

// app holds everything a subcommand needs once configuration is resolved
type app struct {
	cfg       *config.Config
	opts      *Options
	logger    *slog.Logger
	items     *memory.ItemTypeRepository
	qualities *memory.QualityRepository
	catalog   *memory.RequirementRepository
	events    *events.InMemoryEventStore
	service   *services.RequirementService
}

// loadConfig merges explicitly set flags over the file and env configuration
func loadConfig(cmd *cobra.Command, opts *Options) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data.Paths = opts.DataPaths
	}
	if flags.Changed("inventory") {
		cfg.Inventory.Source = "csv"
		cfg.Inventory.Path = opts.InventoryPath
	}
	if flags.Changed("location") {
		cfg.Inventory.Location = opts.Location
	}
	if flags.Changed("format") {
		cfg.Output.Format = opts.Format
	}
	if flags.Changed("width") {
		cfg.Output.Width = opts.Width
	}
	if flags.Changed("color") {
		cfg.Output.Color = opts.Color
	}
	if opts.Verbose {
		cfg.Logging.Level = "debug"
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newApp loads configuration and definitions and wires the service
func newApp(cmd *cobra.Command, opts *Options) (*app, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.Logging)

	a := &app{
		cfg:       cfg,
		opts:      opts,
		logger:    logger,
		items:     memory.NewItemTypeRepository(0),
		qualities: memory.NewQualityRepository(),
		events:    events.NewInMemoryEventStore(logger),
	}
	a.catalog = memory.NewRequirementRepository(logger).WithEventStore(a.events)
	err = a.events.Subscribe([]string{events.RequirementUpdatedEvent}, events.HandlerFunc(func(e events.Event) error {
		if change, ok := events.PayloadAs[events.RequirementUpdated](e); ok {
			logger.Info("Requirement redefined by a later definition",
				"id", change.RequirementID,
				"old_groups", change.OldGroups,
				"new_groups", change.NewGroups)
		}
		return nil
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to catalog events: %w", err)
	}

	defs, err := yaml.NewLoader().LoadFiles(cfg.Data.Paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load definitions: %w", err)
	}
	if err := defs.Register(a.items, a.qualities, a.catalog); err != nil {
		return nil, err
	}

	var substitute engine.SubstituteRule
	if len(cfg.Actor.Traits) > 0 {
		substitute = engine.WebRopeRule{Actor: engine.StaticActor{
			Traits:      cfg.Actor.Traits,
			HungerLevel: cfg.Actor.Hunger,
		}}
	}
	a.service = services.NewRequirementService(a.catalog, a.items, a.qualities, substitute, logger)

	logger.Debug("Catalog loaded",
		"files", len(cfg.Data.Paths),
		"requirements", len(a.catalog.IDs()),
		"item_types", len(defs.ItemTypes),
		"qualities", len(defs.Qualities),
		"changes", a.events.Len())

	return a, nil
}

// openDatabase connects to the configured database and migrates it
func openDatabase(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := database.NewConnection(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// inventory builds the query view for the configured location
func (a *app) inventory(ctx context.Context) (repositories.Inventory, error) {
	location := a.cfg.Inventory.Location

	switch a.cfg.Inventory.Source {
	case "database":
		db, err := openDatabase(&a.cfg.Database)
		if err != nil {
			return nil, err
		}
		defer database.Close(db)
		inv, err := persistence.NewGormInventoryRepository(db).Snapshot(ctx, location, a.items)
		if err != nil {
			return nil, err
		}
		return inv, nil

	default:
		stacks, err := csv.NewLoader().LoadInventory(a.cfg.Inventory.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load inventory: %w", err)
		}
		repo := memory.NewInventoryRepository()
		if err := repo.LoadStacks(stacks); err != nil {
			return nil, err
		}
		local, err := repo.GetStacks(location)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("Inventory loaded", "path", a.cfg.Inventory.Path, "location", location, "stacks", len(local))
		return memory.NewInventory(local, a.items), nil
	}
}

// outputConfig builds the renderer configuration for cmd's writer
func (a *app) outputConfig(cmd *cobra.Command) (output.Config, error) {
	painter, err := output.NewPainter(a.cfg.Output.Color)
	if err != nil {
		return output.Config{}, err
	}
	return output.Config{
		Format:  a.cfg.Output.Format,
		Width:   a.cfg.Output.Width,
		Painter: painter,
		Verbose: a.opts.Verbose,
		Writer:  cmd.OutOrStdout(),
	}, nil
}
