package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vsinha/craftreq/pkg/application/dto"
	"github.com/vsinha/craftreq/pkg/domain/entities"
)

func group(tags ...entities.ColorTag) dto.GroupReport {
	g := dto.GroupReport{}
	for _, tag := range tags {
		g.Alternatives = append(g.Alternatives, dto.AlternativeReport{Tag: tag, Color: tag.String()})
	}
	return g
}

func TestAlternativeSelector_SelectAlternative(t *testing.T) {
	tests := []struct {
		name     string
		group    dto.GroupReport
		expected int
	}{
		{"first available", group(entities.ColorGood, entities.ColorNeutral), 0},
		{"later available", group(entities.ColorBad, entities.ColorWarning, entities.ColorGood), 2},
		{"inventory beats substitute", group(entities.ColorAssisted, entities.ColorGood), 1},
		{"substitute only", group(entities.ColorBad, entities.ColorAssisted), 1},
		{"nothing available", group(entities.ColorBad, entities.ColorWarning), -1},
		{"empty group", dto.GroupReport{}, -1},
	}

	selector := NewAlternativeSelector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, selector.SelectAlternative(tt.group))
		})
	}
}

func TestAlternativeSelector_Select(t *testing.T) {
	report := &dto.CheckReport{
		Tools:      []dto.GroupReport{group(entities.ColorNeutral, entities.ColorGood)},
		Components: []dto.GroupReport{group(entities.ColorBad)},
	}

	NewAlternativeSelector().Select(report)

	assert.Equal(t, 1, report.Tools[0].Selected)
	assert.Equal(t, -1, report.Components[0].Selected)
}
