package services

import (
	"github.com/vsinha/craftreq/pkg/application/dto"
	"github.com/vsinha/craftreq/pkg/domain/entities"
)

// AlternativeSelector picks the alternative of each group a craft would use
type AlternativeSelector struct{}

// NewAlternativeSelector creates a new alternative selector
func NewAlternativeSelector() *AlternativeSelector {
	return &AlternativeSelector{}
}

// SelectAlternative returns the index of the alternative to use, or -1 when
// none is available. Definition order is priority; alternatives the inventory
// covers directly win over ones only a substitute covers.
func (s *AlternativeSelector) SelectAlternative(group dto.GroupReport) int {
	assisted := -1
	for i, alt := range group.Alternatives {
		switch alt.Tag {
		case entities.ColorGood:
			return i
		case entities.ColorAssisted:
			if assisted < 0 {
				assisted = i
			}
		}
	}
	return assisted
}

// Select fills Selected for every group of the report
func (s *AlternativeSelector) Select(report *dto.CheckReport) {
	for _, groups := range [][]dto.GroupReport{report.Qualities, report.Tools, report.Components} {
		for g := range groups {
			groups[g].Selected = s.SelectAlternative(groups[g])
		}
	}
}
