package main

type model struct {
	width          int
	height         int
	chart          *Chart
	config         *Config
	sceneName      string
	mode           Mode
	selectedBox    int
	dragBox        int
	originalMoveX  float64
	originalMoveY  float64
	undoStack      []Action
	redoStack      []Action
	errorMessage   string
	successMessage string
}

type Action struct {
	Type    ActionType
	Data    interface{}
	Inverse interface{}
}

type MoveBoxData struct {
	ID int
	X  float64
	Y  float64
}
