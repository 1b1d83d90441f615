package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/fracview/internal/render"
	"github.com/san-kum/fracview/internal/viewport"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(9)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	panelStyle  = lipgloss.NewStyle().Padding(0, 2).Width(sidebarWidth)
)

func (m Model) View() string {
	if m.scr.frame == nil {
		return "sizing viewport..."
	}
	image := renderFrame(m.scr.frame, m.scr.overlay)
	panel := m.sidebar()
	return lipgloss.JoinHorizontal(lipgloss.Top, image, panel)
}

func (m Model) sidebar() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("fracview") + "\n\n")

	bounds := m.ctrl.Bounds()
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("x", fmt.Sprintf("[%.6g, %.6g]", bounds.XMin, bounds.XMax))
	row("y", fmt.Sprintf("[%.6g, %.6g]", bounds.YMin, bounds.YMax))
	row("iters", fmt.Sprintf("%d", m.cfg.MaxIter))
	row("palette", m.palName)
	row("zoom", fmt.Sprintf("%d", m.zoomSteps))
	if m.ctrl.Selecting() {
		row("state", "selecting")
	} else {
		row("state", "idle")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + errStyle.Render(m.err.Error()) + "\n")
	}

	if m.showHelp {
		b.WriteString("\n" + helpStyle.Render(helpText))
	} else {
		b.WriteString("\n" + helpStyle.Render("? help  q quit"))
	}
	return panelStyle.Render(b.String())
}

const helpText = `drag   select zoom region
z      zoom out
r      reset view
p      cycle palette
s      save snapshot
1-5    landmark regions
q      quit`

// renderFrame paints two pixel rows per character cell with the upper
// half block: foreground carries the top pixel, background the bottom.
func renderFrame(f *render.Frame, overlay *viewport.Rect) string {
	var b strings.Builder
	for row := 0; row+1 < f.Height; row += 2 {
		for col := 0; col < f.Width; col++ {
			tr, tg, tb := framePixel(f, overlay, col, row)
			br, bg, bb := framePixel(f, overlay, col, row+1)
			fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb)
		}
		b.WriteString("\x1b[0m\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func framePixel(f *render.Frame, overlay *viewport.Rect, x, y int) (byte, byte, byte) {
	if overlay != nil && onStroke(*overlay, x, y) {
		return 255, 255, 255
	}
	r, g, b, _ := f.RGBAAt(x, y)
	return r, g, b
}

// onStroke reports whether (x, y) lies on the selection rectangle's
// one-pixel border.
func onStroke(rect viewport.Rect, x, y int) bool {
	x0, x1 := order(rect.Start.X, rect.End.X)
	y0, y1 := order(rect.Start.Y, rect.End.Y)
	fx, fy := float64(x), float64(y)
	if fx < x0 || fx > x1 || fy < y0 || fy > y1 {
		return false
	}
	return fx-x0 < 1 || x1-fx < 1 || fy-y0 < 1 || y1-fy < 1
}

func order(a, b float64) (float64, float64) {
	return math.Min(a, b), math.Max(a, b)
}
