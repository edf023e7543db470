package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/prefixsum/explore"
	"golang.org/x/term"
)

// wideLine is the line width from which on buffer contents are printed.
const wideLine = 80

// Config configures text output.
type Config struct {
	// LineWidth limits the width of lines; 0 means unlimited.
	LineWidth int
	// NoColor suppresses colouring of outcomes.
	NoColor bool
	// Palette maps outcomes to colours. nil selects DefaultPalette.
	Palette map[explore.Outcome]*color.Color
}

// DefaultPalette colours passing tests green and every defect class in a
// colour of its own.
func DefaultPalette() map[explore.Outcome]*color.Color {
	return map[explore.Outcome]*color.Color{
		explore.Pass:       color.New(color.FgGreen),
		explore.OutOfRange: color.New(color.FgRed, color.Bold),
		explore.Overflow:   color.New(color.FgMagenta, color.Bold),
		explore.Mismatch:   color.New(color.FgYellow, color.Bold),
	}
}

// ConfigFromTerminal is a simple helper for creating a text Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and enables colouring. Otherwise output is monochrome and unlimited in width.
func ConfigFromTerminal() *Config {
	config := &Config{NoColor: true}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.NoColor = false
		if w, _, err := term.GetSize(fd); err == nil {
			config.LineWidth = w
		}
	}
	T().P("report", "text").Infof("line width %d, colour %v", config.LineWidth, !config.NoColor)
	return config
}

// Text writes one line per generated test of rep to w, followed by a summary
// line. A nil config writes monochrome lines of unlimited width.
func Text(w io.Writer, rep *explore.Report, config *Config) error {
	if config == nil {
		config = &Config{NoColor: true}
	}
	palette := config.Palette
	if palette == nil {
		palette = DefaultPalette()
	}
	compact := config.LineWidth > 0 && config.LineWidth < wideLine
	for i, c := range rep.Tests {
		var line strings.Builder
		fmt.Fprintf(&line, "test%06d n=%-3d path=%-11s -> %-6s %s",
			i+1, c.Length, c.Path, result(c), outcome(c.Outcome, palette, config.NoColor))
		if !compact {
			fmt.Fprintf(&line, " buf=%v", c.Buffer)
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, Summary(rep)+"\n")
	return err
}

// Summary returns a one-line summary of rep.
func Summary(rep *explore.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d cases, %d paths, %d tests", rep.Subject, rep.Cases,
		len(rep.Paths()), len(rep.Tests))
	for _, o := range []explore.Outcome{explore.Pass, explore.OutOfRange, explore.Overflow, explore.Mismatch} {
		if n := rep.Totals[o]; n > 0 {
			fmt.Fprintf(&sb, ", %s=%d", o, n)
		}
	}
	return sb.String()
}

func result(c explore.Case) string {
	if c.Outcome == explore.OutOfRange {
		return "panic"
	}
	return fmt.Sprintf("%d", c.Result)
}

func outcome(o explore.Outcome, palette map[explore.Outcome]*color.Color, nocolor bool) string {
	if c, ok := palette[o]; ok && !nocolor {
		return c.Sprint(o.String())
	}
	return o.String()
}
