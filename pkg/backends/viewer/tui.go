package viewer

import (
	"context"
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/render/sink"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/scene"
)

// Terminal viewer styles. The pick hint shares the hover color so the
// readout matches the highlight convention.
var (
	styleToolbar   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleActive    = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	styleStatus    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	styleStatusErr = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	stylePickHint  = lipgloss.NewStyle().Foreground(lipgloss.Color(scene.ColorHover))
)

// Camera motion per keypress.
const (
	orbitStep = 0.15 // radians
	panStep   = 0.05 // fraction of the view
	zoomStep  = 1.2
)

// model is the bubbletea model of the interactive viewer. Each cell
// row shows two pixel rows via the upper half block, so the raster is
// terminal-width x 2*(terminal-height - chrome).
type model struct {
	v *Viewer

	width  int // terminal cells
	height int

	pickMode bool
	cursorX  int // cell coordinates while picking
	cursorY  int

	hover  string
	errMsg string
	err    error
}

func newModel(v *Viewer) model {
	return model{v: v, width: 80, height: 24}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursor()
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.cursorX, m.cursorY = msg.X, msg.Y
			m.pickAtCursor()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	cam := m.v.Camera()

	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "p":
		m.pickMode = !m.pickMode
		m.hover = ""
		if m.pickMode {
			m.cursorX, m.cursorY = m.width/2, m.rasterRows()/2
			m.updateHover()
		}

	case "up", "down", "left", "right":
		if m.pickMode {
			m.moveCursor(key)
			m.updateHover()
		} else {
			switch key {
			case "up":
				cam.Orbit(0, orbitStep)
			case "down":
				cam.Orbit(0, -orbitStep)
			case "left":
				cam.Orbit(orbitStep, 0)
			case "right":
				cam.Orbit(-orbitStep, 0)
			}
		}

	case "enter", " ":
		if m.pickMode {
			m.pickAtCursor()
		}

	case "+", "=":
		cam.Zoom(zoomStep)
	case "-", "_":
		cam.Zoom(1 / zoomStep)

	case "H":
		cam.Pan(-panStep, 0)
	case "L":
		cam.Pan(panStep, 0)
	case "K":
		cam.Pan(0, panStep)
	case "J":
		cam.Pan(0, -panStep)

	case "f":
		b := m.v.sc.Bounds()
		if !b.IsEmpty() {
			cam.Fit(b)
		}

	case "[":
		m.v.slider.Step(m.v, -1)
	case "]":
		m.v.slider.Step(m.v, 1)

	default:
		if w, ok := m.v.set.ByKey(firstRune(key)); ok {
			if err := w.Toggle(m.v); err != nil {
				m.errMsg = err.Error()
			}
		}
	}
	return m, nil
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func (m *model) moveCursor(key string) {
	switch key {
	case "up":
		m.cursorY--
	case "down":
		m.cursorY++
	case "left":
		m.cursorX--
	case "right":
		m.cursorX++
	}
	m.clampCursor()
}

func (m *model) clampCursor() {
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorX >= m.width {
		m.cursorX = m.width - 1
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if rows := m.rasterRows(); m.cursorY >= rows {
		m.cursorY = rows - 1
	}
}

// rasterRows is the number of terminal rows left for the raster after
// the toolbar and status lines.
func (m *model) rasterRows() int {
	rows := m.height - m.chromeRows()
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *model) chromeRows() int {
	if m.v.toolbarHidden {
		return 1 // status bar only
	}
	return 2
}

// pixel converts the cursor cell to raster pixel coordinates (cell
// center, upper half).
func (m *model) pixel() (float64, float64) {
	return float64(m.cursorX) + 0.5, float64(m.cursorY*2) + 0.5
}

func (m *model) pickAtCursor() {
	px, py := m.pixel()
	a, ok := m.v.picker.PickAt(context.Background(), m.width, m.rasterRows()*2, px, py)
	if !ok {
		m.v.status = "nothing under cursor"
		return
	}
	if m.v.picker.IsPicked(a.Name) {
		m.v.status = "picked " + a.Name
	} else {
		m.v.status = "unpicked " + a.Name
	}
}

func (m *model) updateHover() {
	px, py := m.pixel()
	if a, ok := m.v.picker.HoverAt(m.width, m.rasterRows()*2, px, py); ok {
		m.hover = a.Name
	} else {
		m.hover = ""
	}
}

// ============================================================================
// View
// ============================================================================

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	rasterRows := m.rasterRows()
	frame, err := m.v.renderFrame(context.Background(), m.width, rasterRows*2)
	if err != nil {
		return styleStatusErr.Render("render failed: " + err.Error())
	}

	img, err := sink.Rasterize(frame, 1.0)
	if err != nil {
		return styleStatusErr.Render("raster failed: " + err.Error())
	}

	var b strings.Builder
	m.writeRaster(&b, img, rasterRows)
	if !m.v.toolbarHidden {
		b.WriteString(m.toolbarLine())
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())
	return b.String()
}

// writeRaster draws the image with upper half blocks: the glyph's
// foreground is the upper pixel, its background the lower pixel.
func (m model) writeRaster(b *strings.Builder, img image.Image, rows int) {
	cursorCell := -1
	if m.pickMode {
		cursorCell = m.cursorY*m.width + m.cursorX
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < m.width; col++ {
			ur, ug, ub, _ := img.At(col, row*2).RGBA()
			lr, lg, lb, _ := img.At(col, row*2+1).RGBA()

			if row*m.width+col == cursorCell {
				b.WriteString("\x1b[7m+\x1b[0m")
				continue
			}
			fmt.Fprintf(b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				ur>>8, ug>>8, ub>>8, lr>>8, lg>>8, lb>>8)
		}
		b.WriteString("\x1b[0m\n")
	}
}

func (m model) toolbarLine() string {
	parts := make([]string, 0, len(m.v.set.All()))
	for _, w := range m.v.set.All() {
		label := fmt.Sprintf("%c:%s", w.Key(), w.Name())
		if w.Active() {
			parts = append(parts, styleActive.Render(label))
		} else {
			parts = append(parts, styleToolbar.Render(label))
		}
	}
	return truncate(strings.Join(parts, "  "), m.width)
}

func (m model) statusLine() string {
	var parts []string
	if m.errMsg != "" {
		parts = append(parts, styleStatusErr.Render(m.errMsg))
	}
	if m.pickMode {
		hint := "pick: arrows move, enter selects"
		if m.hover != "" {
			hint = "over " + m.hover
		}
		parts = append(parts, stylePickHint.Render(hint))
	}
	if n := len(m.v.picker.Picked()); n > 0 {
		parts = append(parts, styleStatus.Render(fmt.Sprintf("%d picked", n)))
	}
	if m.v.status != "" {
		parts = append(parts, styleStatus.Render(m.v.status))
	}
	if len(parts) == 0 {
		parts = append(parts, styleToolbar.Render("arrows orbit  +/- zoom  f fit  p pick  q quit"))
	}
	return truncate(strings.Join(parts, "  |  "), m.width)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	// Crude but safe: cut on rune boundary; styling resets at EOL.
	runes := []rune(s)
	if len(runes) > width {
		runes = runes[:width]
	}
	return string(runes)
}
