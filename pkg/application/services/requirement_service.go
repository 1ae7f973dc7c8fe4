package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vsinha/craftreq/pkg/application/dto"
	"github.com/vsinha/craftreq/pkg/domain/entities"
	"github.com/vsinha/craftreq/pkg/domain/repositories"
	engine "github.com/vsinha/craftreq/pkg/domain/services"
)

// ErrRequirementNotFound is returned for ids the catalog does not hold
var ErrRequirementNotFound = errors.New("requirement not found")

// NotFoundError carries the id that could not be resolved
type NotFoundError struct {
	ID entities.RequirementID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRequirementNotFound, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrRequirementNotFound
}

// RequirementService answers requirement questions against the loaded catalog
type RequirementService struct {
	catalog   repositories.RequirementRepository
	checker   *engine.RequirementChecker
	describer *engine.Describer
	deriver   *engine.DisassemblyDeriver
	validator *engine.RequirementValidator
	selector  *AlternativeSelector
	logger    *slog.Logger
}

// NewRequirementService wires the domain engine to the given registries.
// A nil substitute rule disables substitutes.
func NewRequirementService(
	catalog repositories.RequirementRepository,
	items repositories.ItemTypeRepository,
	qualities repositories.QualityRepository,
	substitute engine.SubstituteRule,
	logger *slog.Logger,
) *RequirementService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RequirementService{
		catalog:   catalog,
		checker:   engine.NewRequirementChecker(items, substitute),
		describer: engine.NewDescriber(items, qualities),
		deriver:   engine.NewDisassemblyDeriver(items),
		validator: engine.NewRequirementValidator(items, qualities, logger),
		selector:  NewAlternativeSelector(),
		logger:    logger,
	}
}

// Get returns a copy of a registered set
func (s *RequirementService) Get(ctx context.Context, id entities.RequirementID) (*entities.RequirementSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.catalog.Has(id) {
		return nil, &NotFoundError{ID: id}
	}
	return s.catalog.Lookup(id), nil
}

// Check runs a satisfiability check of a registered set
func (s *RequirementService) Check(
	ctx context.Context,
	id entities.RequirementID,
	inv repositories.Inventory,
	batch int,
) (*dto.CheckReport, error) {
	set, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.CheckSet(ctx, set, inv, batch)
}

// CheckSet runs a satisfiability check of an arbitrary set
func (s *RequirementService) CheckSet(
	ctx context.Context,
	set *entities.RequirementSet,
	inv repositories.Inventory,
	batch int,
) (*dto.CheckReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if batch < 1 {
		return nil, fmt.Errorf("batch must be positive, got %d", batch)
	}

	start := time.Now()
	result := s.checker.CanSatisfy(set, inv, batch)

	report := &dto.CheckReport{
		RunID:         uuid.New(),
		RequirementID: set.ID,
		Batch:         result.Batch,
		Satisfied:     result.Satisfied(),
		QualitiesMet:  result.QualitiesMet,
		ToolsMet:      result.ToolsMet,
		ComponentsMet: result.ComponentsMet,
		MaterialsMet:  result.MaterialsMet,
		Missing:       engine.ListMissing(set, result, s.describer),
		CheckedAt:     start,
	}
	report.Qualities = reportGroups(s, set, result, inv, entities.TierQualities, set.Qualities,
		func(q entities.QualityRequirement) string { return string(q.Type) })
	report.Tools = reportGroups(s, set, result, inv, entities.TierTools, set.Tools,
		func(t entities.ToolComponent) string { return string(t.Type) })
	report.Components = reportGroups(s, set, result, inv, entities.TierComponents, set.Components,
		func(c entities.ItemComponent) string { return string(c.Type) })

	for _, ref := range result.Insufficient() {
		if comp, ok := componentAt(set, ref); ok {
			report.Insufficient = append(report.Insufficient, s.describer.DescribeComponent(comp, result.Batch))
		}
	}
	s.selector.Select(report)
	report.ComputeCoverage()

	s.logger.Debug("Checked requirement",
		"id", set.ID,
		"batch", result.Batch,
		"satisfied", report.Satisfied,
		"coverage", report.Coverage.String(),
		"run_id", report.RunID,
		"duration", time.Since(start))
	return report, nil
}

// Disassembly derives what taking a registered product apart needs
func (s *RequirementService) Disassembly(ctx context.Context, id entities.RequirementID) (*entities.RequirementSet, error) {
	set, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.deriver.Derive(set), nil
}

// Combine concatenates the groups of the given sets in order
func (s *RequirementService) Combine(ctx context.Context, ids ...entities.RequirementID) (*entities.RequirementSet, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("combine needs at least one requirement id")
	}
	combined := entities.NullRequirementSet()
	for _, id := range ids {
		set, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		combined = combined.Combine(set)
	}
	return combined, nil
}

// Scale multiplies a registered set's tool and component counts by n
func (s *RequirementService) Scale(ctx context.Context, id entities.RequirementID, n int) (*entities.RequirementSet, error) {
	set, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	scaled, err := set.Scale(n)
	if err != nil {
		return nil, fmt.Errorf("failed to scale %s: %w", id, err)
	}
	return scaled, nil
}

// Validate reports dangling references across the whole catalog
func (s *RequirementService) Validate(ctx context.Context) (*engine.ValidationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.validator.ValidateCatalog(s.catalog), nil
}

// Describe renders one alternative for a batch
func (s *RequirementService) Describe(req entities.Requirement, batch int) string {
	return s.describer.Describe(req, batch)
}

func reportGroups[T entities.Requirement](
	s *RequirementService,
	set *entities.RequirementSet,
	result *entities.CheckResult,
	inv repositories.Inventory,
	tier entities.Tier,
	groups [][]T,
	id func(T) string,
) []dto.GroupReport {
	reports := make([]dto.GroupReport, 0, len(groups))
	for g, group := range groups {
		report := dto.GroupReport{
			Available:    result.GroupHasAvailable(tier, g),
			Alternatives: make([]dto.AlternativeReport, 0, len(group)),
		}
		for i, alt := range group {
			ref := entities.ItemRef{Tier: tier, Group: g, Index: i}
			color := s.checker.Color(set, result, ref, inv)
			report.Alternatives = append(report.Alternatives, dto.AlternativeReport{
				ID:          id(alt),
				Description: s.describer.Describe(alt, result.Batch),
				State:       result.State(ref).String(),
				Color:       color.String(),
				Tag:         color,
			})
		}
		reports = append(reports, report)
	}
	return reports
}

func componentAt(set *entities.RequirementSet, ref entities.ItemRef) (entities.ItemComponent, bool) {
	if ref.Tier != entities.TierComponents || ref.Group >= len(set.Components) {
		return entities.ItemComponent{}, false
	}
	group := set.Components[ref.Group]
	if ref.Index >= len(group) {
		return entities.ItemComponent{}, false
	}
	return group[ref.Index], true
}
