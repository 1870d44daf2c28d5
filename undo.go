package main

func (m *model) recordAction(actionType ActionType, data, inverse interface{}) {
	action := Action{
		Type:    actionType,
		Data:    data,
		Inverse: inverse,
	}
	m.undoStack = append(m.undoStack, action)
	m.redoStack = m.redoStack[:0]
}

// recordMove stores a finished move of box id, skipping moves that ended
// where they started.
func (m *model) recordMove(id int, from, to Point) {
	if from == to {
		return
	}
	m.recordAction(ActionMoveBox,
		MoveBoxData{ID: id, X: to.X, Y: to.Y},
		MoveBoxData{ID: id, X: from.X, Y: from.Y})
}

func (m *model) applyMove(data MoveBoxData) {
	box := m.chart.Box(data.ID)
	if box == nil {
		return
	}
	box.MoveTo(Point{X: data.X, Y: data.Y})
	m.chart.Draw()
}

func (m *model) undo() {
	if len(m.undoStack) == 0 {
		return
	}

	lastIndex := len(m.undoStack) - 1
	action := m.undoStack[lastIndex]
	m.undoStack = m.undoStack[:lastIndex]

	switch action.Type {
	case ActionMoveBox:
		m.applyMove(action.Inverse.(MoveBoxData))
	}

	m.redoStack = append(m.redoStack, action)
}

func (m *model) redo() {
	if len(m.redoStack) == 0 {
		return
	}

	lastIndex := len(m.redoStack) - 1
	action := m.redoStack[lastIndex]
	m.redoStack = m.redoStack[:lastIndex]

	switch action.Type {
	case ActionMoveBox:
		m.applyMove(action.Data.(MoveBoxData))
	}

	m.undoStack = append(m.undoStack, action)
}
