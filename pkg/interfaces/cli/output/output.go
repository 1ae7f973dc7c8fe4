package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vsinha/craftreq/pkg/application/dto"
	"github.com/vsinha/craftreq/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format  string
	Width   int
	Painter Painter
	Verbose bool
	Writer  io.Writer
}

// Generate writes the report in the configured format
func Generate(report *dto.CheckReport, config Config) error {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	if config.Painter == nil {
		config.Painter = PlainPainter{}
	}
	if config.Width <= 0 {
		config.Width = 80
	}

	switch config.Format {
	case "text", "":
		return generateTextOutput(report, config)
	case "json":
		return generateJSONOutput(report, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func generateTextOutput(report *dto.CheckReport, config Config) error {
	p := config.Painter
	var sb strings.Builder

	status := p.Paint(entities.ColorGood, "can be crafted")
	if !report.Satisfied {
		status = p.Paint(entities.ColorBad, "cannot be crafted")
	}
	fmt.Fprintf(&sb, "%s x%d %s\n", report.RequirementID, report.Batch, status)
	fmt.Fprintf(&sb, "Coverage: %s%%\n\n", report.Coverage.Shift(2).StringFixed(2))

	for _, line := range FoldedToolsList(report, config.Width, entities.ColorPlain, p) {
		sb.WriteString(line + "\n")
	}
	if components := FoldedComponentsList(report, config.Width, entities.ColorPlain, p); len(components) > 0 {
		sb.WriteString("\n")
		for _, line := range components {
			sb.WriteString(line + "\n")
		}
	}

	if report.Missing != "" {
		sb.WriteString("\n" + report.Missing)
	}
	if len(report.Insufficient) > 0 {
		sb.WriteString("\n" + p.Paint(entities.ColorWarning, "Needed in more than one role:") + "\n")
		for _, desc := range report.Insufficient {
			sb.WriteString("  " + desc + "\n")
		}
	}
	if config.Verbose {
		fmt.Fprintf(&sb, "\nRun %s at %s\n", report.RunID, report.CheckedAt.Format("2006-01-02 15:04:05"))
	}

	_, err := io.WriteString(config.Writer, sb.String())
	return err
}

func generateJSONOutput(report *dto.CheckReport, config Config) error {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := fmt.Fprintln(config.Writer, string(jsonData)); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
