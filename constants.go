package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeDrag
	ModeMove
	ModeHelp
)

type ExportFormat int

const (
	ExportSVG ExportFormat = iota
	ExportPNG
	ExportTXT
)

func (f ExportFormat) Ext() string {
	switch f {
	case ExportPNG:
		return ".png"
	case ExportTXT:
		return ".txt"
	default:
		return ".svg"
	}
}

type ActionType int

const (
	ActionMoveBox ActionType = iota
)

const (
	defaultFontSize  = 16.0
	defaultTextColor = "#000000"
	defaultLabelX    = 0.0
	defaultLabelY    = 20.0

	defaultCellWidth  = 8.0
	defaultCellHeight = 16.0
)
