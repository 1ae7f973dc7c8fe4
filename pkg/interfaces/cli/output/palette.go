package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vsinha/craftreq/pkg/domain/entities"
)

// Workshop palette
var (
	ColorGood     = lipgloss.Color("#2ECC71") // available
	ColorNeutral  = lipgloss.Color("#5D6D7E") // covered by another alternative
	ColorBad      = lipgloss.Color("#E74C3C") // missing
	ColorWarning  = lipgloss.Color("#B9770E") // present but double claimed
	ColorAssisted = lipgloss.Color("#82E0AA") // covered by a substitute
	ColorPlain    = lipgloss.Color("#ECF0F1")
)

// Painter colors a run of text according to its tag
type Painter interface {
	Paint(tag entities.ColorTag, text string) string
}

// TagPainter wraps text in <color_name>...</color> markup
type TagPainter struct{}

func (TagPainter) Paint(tag entities.ColorTag, text string) string {
	return fmt.Sprintf("<color_%s>%s</color>", tag, text)
}

// PlainPainter leaves text untouched
type PlainPainter struct{}

func (PlainPainter) Paint(_ entities.ColorTag, text string) string {
	return text
}

// StylePainter renders terminal colors through lipgloss
type StylePainter struct {
	styles map[entities.ColorTag]lipgloss.Style
}

func NewStylePainter() *StylePainter {
	return &StylePainter{
		styles: map[entities.ColorTag]lipgloss.Style{
			entities.ColorPlain:    lipgloss.NewStyle().Foreground(ColorPlain),
			entities.ColorGood:     lipgloss.NewStyle().Foreground(ColorGood),
			entities.ColorNeutral:  lipgloss.NewStyle().Foreground(ColorNeutral),
			entities.ColorBad:      lipgloss.NewStyle().Foreground(ColorBad).Bold(true),
			entities.ColorWarning:  lipgloss.NewStyle().Foreground(ColorWarning),
			entities.ColorAssisted: lipgloss.NewStyle().Foreground(ColorAssisted).Italic(true),
		},
	}
}

func (p *StylePainter) Paint(tag entities.ColorTag, text string) string {
	style, ok := p.styles[tag]
	if !ok {
		return text
	}
	return style.Render(text)
}

// NewPainter picks a painter by name: style, tags or none
func NewPainter(name string) (Painter, error) {
	switch name {
	case "style", "":
		return NewStylePainter(), nil
	case "tags":
		return TagPainter{}, nil
	case "none":
		return PlainPainter{}, nil
	default:
		return nil, fmt.Errorf("unsupported color mode: %s", name)
	}
}
