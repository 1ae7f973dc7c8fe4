package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vsinha/craftreq/pkg/application/dto"
	"github.com/vsinha/craftreq/pkg/domain/entities"
)

const (
	groupPrefix        = "> "
	continuationPrefix = "  "
	alternativeJoiner  = "OR"
)

// word is one unbreakable piece of a folded line
type word struct {
	text string
	tag  entities.ColorTag
}

// FoldedToolsList lists quality groups then tool groups, one group per "> " line.
// Lines longer than width continue on lines indented by two spaces.
func FoldedToolsList(report *dto.CheckReport, width int, base entities.ColorTag, p Painter) []string {
	lines := []string{p.Paint(base, "Tools required:")}
	if len(report.Qualities) == 0 && len(report.Tools) == 0 {
		return append(lines, p.Paint(base, groupPrefix+"NONE"))
	}
	for _, group := range report.Qualities {
		lines = append(lines, foldGroup(group, width, p)...)
	}
	for _, group := range report.Tools {
		lines = append(lines, foldGroup(group, width, p)...)
	}
	return lines
}

// FoldedComponentsList lists component groups; nothing is returned when there are none
func FoldedComponentsList(report *dto.CheckReport, width int, base entities.ColorTag, p Painter) []string {
	if len(report.Components) == 0 {
		return nil
	}
	lines := []string{p.Paint(base, "Components required:")}
	for _, group := range report.Components {
		lines = append(lines, foldGroup(group, width, p)...)
	}
	return lines
}

func foldGroup(group dto.GroupReport, width int, p Painter) []string {
	var words []word
	for i, alt := range group.Alternatives {
		if i > 0 {
			words = append(words, word{text: alternativeJoiner, tag: entities.ColorPlain})
		}
		for _, w := range strings.Fields(alt.Description) {
			words = append(words, word{text: w, tag: alt.Tag})
		}
	}

	var lines []string
	var line []word
	prefix := groupPrefix
	used := lipgloss.Width(prefix)
	for _, w := range words {
		need := lipgloss.Width(w.text)
		if len(line) > 0 {
			need++
		}
		if len(line) > 0 && used+need > width {
			lines = append(lines, prefix+paintLine(line, p))
			line = nil
			prefix = continuationPrefix
			used = lipgloss.Width(prefix)
			need = lipgloss.Width(w.text)
		}
		line = append(line, w)
		used += need
	}
	lines = append(lines, prefix+paintLine(line, p))
	return lines
}

// paintLine paints runs of same-colored words at once
func paintLine(line []word, p Painter) string {
	var sb strings.Builder
	for start := 0; start < len(line); {
		end := start
		texts := []string{}
		for end < len(line) && line[end].tag == line[start].tag {
			texts = append(texts, line[end].text)
			end++
		}
		if start > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(p.Paint(line[start].tag, strings.Join(texts, " ")))
		start = end
	}
	return sb.String()
}
