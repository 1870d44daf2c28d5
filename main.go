package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	exportFormat := flag.String("export", "", "Export format (svg, png, txt); skips the interactive view")
	outputFile := flag.String("o", "", "Output file path for -export (default: stdout)")
	logFile := flag.String("log", "", "Write diagnostics to this file while the interactive view runs")
	flag.Parse()

	config, err := loadConfig()
	if err != nil {
		log.Printf("Warning: %v, using defaults", err)
	}

	scene := defaultScene()
	sceneName := "plotbox"
	if flag.NArg() > 0 {
		scene, err = LoadScene(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		sceneName = strings.TrimSuffix(filepath.Base(flag.Arg(0)), filepath.Ext(flag.Arg(0)))
	}

	chart, err := scene.Build(config)
	if err != nil {
		log.Fatalf("Error building scene: %v", err)
	}

	if *exportFormat != "" {
		if err := runExport(chart, config, *exportFormat, *outputFile); err != nil {
			log.Fatal(err)
		}
		return
	}

	switch {
	case *logFile != "":
		f, err := tea.LogToFile(*logFile, "plotbox")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	case os.Getenv("PLOTBOX_DEBUG") != "":
		f, err := tea.LogToFile("plotbox.log", "plotbox")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	default:
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(
		initialModel(chart, config, sceneName),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func runExport(chart *Chart, config *Config, format, outputFile string) error {
	ef, err := parseExportFormat(format)
	if err != nil {
		return err
	}
	chart.Draw()
	if outputFile == "" {
		return chart.WriteExport(os.Stdout, ef, config)
	}
	if err := chart.Export(outputFile, ef, config); err != nil {
		return err
	}
	log.Printf("Output saved to: %s", outputFile)
	return nil
}

func initialModel(chart *Chart, config *Config, sceneName string) model {
	if config == nil {
		config = defaultConfig()
	}
	return model{
		chart:       chart,
		config:      config,
		sceneName:   sceneName,
		mode:        ModeNormal,
		selectedBox: -1,
		dragBox:     -1,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// resize maps the terminal to chart pixels, keeping the last row for the
// status line, and redraws so every box is clamped to the new plot area.
func (m *model) resize(width, height int) {
	m.width = width
	m.height = height
	rows := height - 1
	if rows < 1 {
		rows = 1
	}
	m.chart.Resize(float64(width)*m.config.CellWidth, float64(rows)*m.config.CellHeight)
	m.chart.Draw()
}

func (m *model) pointer(x, y int) Point {
	return Point{
		X: (float64(x) + 0.5) * m.config.CellWidth,
		Y: (float64(y) + 0.5) * m.config.CellHeight,
	}
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		key := msg.String()
		switch m.mode {
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil

		case ModeMove:
			switch key {
			case "enter":
				if box := m.chart.Box(m.selectedBox); box != nil {
					to, _ := box.Position()
					m.recordMove(m.selectedBox, Point{X: m.originalMoveX, Y: m.originalMoveY}, to)
				}
				m.chart.Draw()
				m.mode = ModeNormal
			case "escape", "esc":
				if box := m.chart.Box(m.selectedBox); box != nil {
					box.MoveTo(Point{X: m.originalMoveX, Y: m.originalMoveY})
				}
				m.chart.Draw()
				m.mode = ModeNormal
			case "h", "left", "H", "shift+left", "l", "right", "L", "shift+right",
				"k", "up", "K", "shift+up", "j", "down", "J", "shift+down":
				return m.handleMove(key, m.getMoveSpeed(key))
			}
			return m, nil
		}

		m.clearMessages()
		switch key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "?":
			m.mode = ModeHelp
		case "tab":
			m.selectNext()
		case "m", "enter":
			if box := m.chart.Box(m.selectedBox); box != nil {
				pos, _ := box.Position()
				m.originalMoveX, m.originalMoveY = pos.X, pos.Y
				m.mode = ModeMove
			}
		case "r":
			m.chart.Draw()
		case "u":
			m.undo()
		case "U", "ctrl+r":
			m.redo()
		case "s":
			m.save(ExportSVG)
		case "p":
			m.save(ExportPNG)
		case "t":
			m.save(ExportTXT)
		case "y":
			if err := m.chart.CopySVG(); err != nil {
				m.errorMessage = fmt.Sprintf("copy failed: %v", err)
			} else {
				m.successMessage = "SVG copied to clipboard"
			}
		}
		return m, nil
	}
	return m, nil
}

// handleMouse turns terminal mouse events into drag gestures on the box
// under the pointer.
func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := m.pointer(msg.X, msg.Y)
	switch msg.Type {
	case tea.MouseLeft, tea.MouseMotion:
		if m.dragBox >= 0 {
			if d := m.chart.Surface(m.dragBox).Drag(); d != nil {
				d.Move(p)
			}
			return m, nil
		}
		if msg.Type != tea.MouseLeft {
			return m, nil
		}
		id := m.chart.BoxAt(p)
		if id < 0 {
			return m, nil
		}
		d := m.chart.Surface(id).Drag()
		if d == nil {
			return m, nil
		}
		pos, _ := m.chart.Box(id).Position()
		m.originalMoveX, m.originalMoveY = pos.X, pos.Y
		m.selectedBox = id
		m.dragBox = id
		m.mode = ModeDrag
		d.Start(p)
	case tea.MouseRelease:
		if m.dragBox < 0 {
			return m, nil
		}
		id := m.dragBox
		if d := m.chart.Surface(id).Drag(); d != nil {
			d.End()
		}
		to, _ := m.chart.Box(id).Position()
		m.recordMove(id, Point{X: m.originalMoveX, Y: m.originalMoveY}, to)
		m.dragBox = -1
		m.mode = ModeNormal
		m.chart.Draw()
	}
	return m, nil
}

func (m *model) save(format ExportFormat) {
	filename := m.config.GetSavePath(m.sceneName + format.Ext())
	if err := m.chart.Export(filename, format, m.config); err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.successMessage = fmt.Sprintf("Saved %s", filename)
}

var (
	statusStyle = lipgloss.NewStyle().Reverse(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

func (m model) View() string {
	if m.mode == ModeHelp {
		return m.helpView()
	}

	rows := m.height - 1
	if rows < 1 {
		rows = 1
	}
	selected := -1
	if m.mode == ModeMove || m.mode == ModeDrag {
		selected = m.selectedBox
	}
	lines := m.chart.Render(max(m.width, 1), rows, m.config.CellWidth, m.config.CellHeight, selected)

	var result strings.Builder
	result.WriteString(strings.Join(lines, "\n"))
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) statusLine() string {
	status := fmt.Sprintf("Mode: %s", m.modeString())
	if box := m.chart.Box(m.selectedBox); box != nil {
		pos, _ := box.Position()
		status += fmt.Sprintf(" | %s @ (%.0f,%.0f)", box.Name(), pos.X, pos.Y)
	}
	area := m.chart.Area()
	status += fmt.Sprintf(" | Plot %.0fx%.0f", area.Width(), area.Height())
	status = statusStyle.Render(status)
	switch {
	case m.errorMessage != "":
		status += " " + errorStyle.Render("ERROR: "+m.errorMessage)
	case m.successMessage != "":
		status += " " + okStyle.Render(m.successMessage)
	default:
		status += " ? for help | q to quit"
	}
	return status
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeDrag:
		return "DRAG"
	case ModeMove:
		return "MOVE"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpView() string {
	helpLines := []string{
		titleStyle.Render("plotbox help"),
		"",
		"Mouse:",
		"  drag a box       Move it; it snaps back inside the plot when released",
		"",
		"Keys:",
		"  tab              Select next box",
		"  m / enter        Move selected box with h/j/k/l or arrows",
		"  Shift+h/j/k/l    Move 2x faster",
		"  enter / esc      Confirm / cancel move",
		"  u / U            Undo / redo move",
		"  r                Redraw",
		"  s / p / t        Save SVG / PNG / text",
		"  y                Copy SVG to clipboard",
		"  q                Quit",
		"",
		"Press any key to return",
	}
	return strings.Join(helpLines, "\n")
}
