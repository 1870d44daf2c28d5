package main

import tea "github.com/charmbracelet/bubbletea"

// handleMove nudges the selected box one cell per key press. Each nudge is
// a short drag gesture, so it goes through the same path as the mouse and
// is not clamped until the move is confirmed.
func (m *model) handleMove(key string, speed int) (tea.Model, tea.Cmd) {
	s := m.chart.Surface(m.selectedBox)
	if s == nil || s.Drag() == nil {
		return m, nil
	}
	dx, dy := 0.0, 0.0
	step := float64(speed)
	switch key {
	case "h", "left", "H", "shift+left":
		dx = -step * m.config.CellWidth
	case "l", "right", "L", "shift+right":
		dx = step * m.config.CellWidth
	case "k", "up", "K", "shift+up":
		dy = -step * m.config.CellHeight
	case "j", "down", "J", "shift+down":
		dy = step * m.config.CellHeight
	}
	d := s.Drag()
	d.Start(Point{})
	d.Move(Point{X: dx, Y: dy})
	d.End()
	return m, nil
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func (m *model) selectNext() {
	n := m.chart.Len()
	if n == 0 {
		m.selectedBox = -1
		return
	}
	m.selectedBox = (m.selectedBox + 1) % n
}
