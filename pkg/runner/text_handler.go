package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/fsmlab/automata/pkg/domain"
)

// TextHandler implements the standard text-based interface, one line per
// notification, severity-colored when the output profile supports it.
type TextHandler struct {
	Writer io.Writer

	// Headless disables colors and decoration for pipes and tests.
	Headless bool

	// Renderer transforms the conclusion before output (e.g. markdown to
	// ANSI). Nil prints it verbatim.
	Renderer ContentRenderer

	profile termenv.Profile
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(w io.Writer, headless bool) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	profile := termenv.Ascii
	if !headless {
		profile = termenv.ColorProfile()
	}
	return &TextHandler{
		Writer:   w,
		Headless: headless,
		profile:  profile,
	}
}

func (h *TextHandler) Notify(ctx context.Context, event domain.EventBase) error {
	_, err := fmt.Fprintln(h.Writer, h.colorize(event.Severity, event.Message))
	return err
}

func (h *TextHandler) Conclude(ctx context.Context, record *domain.RunRecord) error {
	verdict := record.Conclusion
	if h.Renderer != nil {
		if rendered, err := h.Renderer(verdict); err == nil {
			verdict = strings.TrimSpace(rendered)
		}
	}

	severity := domain.SeverityError
	if record.Accepted() {
		severity = domain.SeveritySuccess
	}
	_, err := fmt.Fprintf(h.Writer, "%s %s\n",
		h.colorize(severity, fmt.Sprintf("[%s]", record.Outcome)), verdict)
	return err
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintln(h.Writer, h.colorize(domain.SeveritySystem, msg))
	return err
}

func (h *TextHandler) colorize(severity domain.Severity, msg string) string {
	if h.Headless {
		return msg
	}
	s := termenv.String(msg)
	switch severity {
	case domain.SeveritySuccess:
		s = s.Foreground(h.profile.Color("#22c55e"))
	case domain.SeverityError:
		s = s.Foreground(h.profile.Color("#ef4444"))
	case domain.SeveritySystem:
		s = s.Faint()
	default:
		s = s.Foreground(h.profile.Color("#38bdf8"))
	}
	return s.String()
}
