package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vsinha/craftreq/pkg/domain/entities"
)

// CheckReport summarises one satisfiability check of a requirement set
type CheckReport struct {
	RunID         uuid.UUID              `json:"run_id"`
	RequirementID entities.RequirementID `json:"requirement_id"`
	Batch         int                    `json:"batch"`
	Satisfied     bool                   `json:"satisfied"`
	QualitiesMet  bool                   `json:"qualities_met"`
	ToolsMet      bool                   `json:"tools_met"`
	ComponentsMet bool                   `json:"components_met"`
	MaterialsMet  bool                   `json:"materials_met"`
	// Coverage is the fraction of groups with an available alternative
	Coverage     decimal.Decimal `json:"coverage"`
	Missing      string          `json:"missing,omitempty"`
	Insufficient []string        `json:"insufficient,omitempty"`
	Qualities    []GroupReport   `json:"qualities"`
	Tools        []GroupReport   `json:"tools"`
	Components   []GroupReport   `json:"components"`
	CheckedAt    time.Time       `json:"checked_at"`
}

// GroupReport is one AND-ed group of alternatives
type GroupReport struct {
	Available bool `json:"available"`
	// Selected is the index of the alternative a craft would use, -1 for none
	Selected     int                 `json:"selected"`
	Alternatives []AlternativeReport `json:"alternatives"`
}

// AlternativeReport is one rendered alternative
type AlternativeReport struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	State       string            `json:"state"`
	Color       string            `json:"color"`
	Tag         entities.ColorTag `json:"-"`
}

// GroupCount returns the total number of groups across all tiers
func (r *CheckReport) GroupCount() int {
	return len(r.Qualities) + len(r.Tools) + len(r.Components)
}

// AvailableGroups returns how many groups have an available alternative
func (r *CheckReport) AvailableGroups() int {
	n := 0
	for _, groups := range [][]GroupReport{r.Qualities, r.Tools, r.Components} {
		for _, g := range groups {
			if g.Available {
				n++
			}
		}
	}
	return n
}

// ComputeCoverage sets Coverage from the group reports; an empty set is fully covered
func (r *CheckReport) ComputeCoverage() {
	total := r.GroupCount()
	if total == 0 {
		r.Coverage = decimal.NewFromInt(1)
		return
	}
	r.Coverage = decimal.NewFromInt(int64(r.AvailableGroups())).
		Div(decimal.NewFromInt(int64(total))).
		Round(4)
}
