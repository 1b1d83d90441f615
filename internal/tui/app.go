// Package tui is the interactive terminal explorer. It implements the
// viewport's Surface port over half-block truecolor cells and feeds
// pointer and key events from Bubble Tea into the controller.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/fracview/internal/config"
	"github.com/san-kum/fracview/internal/mandel"
	"github.com/san-kum/fracview/internal/palette"
	"github.com/san-kum/fracview/internal/render"
	"github.com/san-kum/fracview/internal/storage"
	"github.com/san-kum/fracview/internal/viewport"
)

const sidebarWidth = 34

// screen holds what the next View call paints. It satisfies
// viewport.Surface; Present replaces the frame and clears any overlay,
// DrawOverlayRect marks a transient rectangle stroked over the frame.
type screen struct {
	frame   *render.Frame
	overlay *viewport.Rect
}

func (s *screen) Present(f *render.Frame) {
	s.frame = f
	s.overlay = nil
}

func (s *screen) DrawOverlayRect(r viewport.Rect) {
	s.overlay = &r
}

// Model is the Bubble Tea model for the explorer. All controller calls
// happen inside Update, one event at a time; each render completes
// before the next event is processed.
type Model struct {
	cfg   *config.Config
	store *storage.Store

	comp    *render.Composer
	ctrl    *viewport.Controller
	scr     *screen
	palName string

	termWidth  int
	termHeight int
	zoomSteps  int
	showHelp   bool
	status     string
	err        error
}

// New creates the explorer. The pixel grid is sized from the first
// window-size message; until then the model is inert.
func New(cfg *config.Config, store *storage.Store) Model {
	return Model{cfg: cfg, store: store, scr: &screen{}, palName: cfg.Palette}
}

// Run starts the explorer with mouse tracking enabled.
func Run(cfg *config.Config, store *storage.Store) error {
	p := tea.NewProgram(New(cfg, store), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		return m.resize()
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// resize builds a composer and controller for the current terminal
// size. Each character cell covers one pixel column and two pixel rows.
func (m Model) resize() (tea.Model, tea.Cmd) {
	w := m.termWidth - sidebarWidth
	h := (m.termHeight - 1) * 2
	if w < 2 || h < 2 {
		return m, nil
	}

	bounds := m.cfg.GetRegion()
	if m.ctrl != nil {
		bounds = m.ctrl.Bounds()
	}

	pal, err := palette.ByName(m.palName)
	if err != nil {
		m.err = err
		return m, nil
	}
	comp, err := render.New(w, h, m.cfg.MaxIter, pal)
	if err != nil {
		m.err = err
		return m, nil
	}
	ctrl, err := viewport.New(comp, m.scr, bounds)
	if err != nil {
		m.err = err
		return m, nil
	}

	m.comp, m.ctrl = comp, ctrl
	m.err = m.ctrl.Render()
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ctrl == nil || msg.X >= m.comp.Width {
		return m, nil
	}
	px, py := float64(msg.X), float64(msg.Y*2)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.ctrl.PointerDown(px, py)
		}
	case tea.MouseActionMotion:
		m.ctrl.PointerMove(px, py)
	case tea.MouseActionRelease:
		before := m.ctrl.Bounds()
		if err := m.ctrl.PointerUp(px, py); err != nil {
			m.err = err
			return m, nil
		}
		if m.ctrl.Bounds() != before {
			m.zoomSteps++
			m.status = ""
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
	}

	if m.ctrl == nil {
		return m, nil
	}

	switch msg.String() {
	case "z":
		m.err = m.ctrl.ZoomOut()
		m.zoomSteps--
	case "r":
		m.err = m.ctrl.Jump(mandel.Home(m.comp.Width, m.comp.Height))
		m.zoomSteps = 0
	case "p":
		m.cyclePalette()
	case "s":
		m.saveSnapshot()
	case "1", "2", "3", "4", "5":
		m.jumpLandmark(msg.String())
	}
	return m, nil
}

func (m *Model) cyclePalette() {
	names := palette.Names()
	for i, n := range names {
		if n == m.palName {
			m.palName = names[(i+1)%len(names)]
			break
		}
	}
	pal, err := palette.ByName(m.palName)
	if err != nil {
		m.err = err
		return
	}
	m.comp.Pal = pal
	m.err = m.ctrl.Render()
}

func (m *Model) saveSnapshot() {
	if m.scr.frame == nil {
		return
	}
	if err := m.store.Init(); err != nil {
		m.err = err
		return
	}
	id, err := m.store.Save(m.scr.frame, m.cfg.MaxIter, m.palName, m.ctrl.Bounds())
	if err != nil {
		m.err = err
		return
	}
	m.status = fmt.Sprintf("saved %s", id)
}

var landmarkKeys = map[string]string{
	"1": "seahorse", "2": "elephant", "3": "minibrot", "4": "triple", "5": "dragon",
}

func (m *Model) jumpLandmark(key string) {
	name := landmarkKeys[key]
	region, ok := mandel.Landmarks[name]
	if !ok {
		return
	}
	m.err = m.ctrl.Jump(region)
	m.zoomSteps = 0
	m.status = name
}
