package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sporadisk/mylog/config"
)

// ANSI palette positions for the color names a work type may carry.
var colorCodes = map[string]string{
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
}

// Client prints day breakdowns and run summaries as colored tables.
type Client struct {
	Conf *config.Config

	// Sort orders aggregate rows by descending duration instead of the
	// file's narrative order.
	Sort bool

	// MinLabelMinutes hides label rows below this duration in the
	// cross-day summary, keeping long runs readable. Scaled by the
	// number of days in the run.
	MinLabelMinutes int

	styles map[string]lipgloss.Style
}

func (c *Client) Init() error {
	if c.MinLabelMinutes == 0 {
		c.MinLabelMinutes = 5
	}

	c.styles = map[string]lipgloss.Style{}
	for name, code := range colorCodes {
		c.styles[name] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return nil
}

// paint tints a line with a named color, passing unknown names through
// unstyled.
func (c *Client) paint(color, line string) string {
	style, ok := c.styles[color]
	if !ok {
		return line
	}
	return style.Render(line)
}
