package component

// Input stores the input snapshot for the current frame.
type Input struct {
	MoveX    float64
	MoveY    float64
	Fire     bool
	PanX     float64
	PanY     float64
	Recenter bool
}

var InputComponent = NewComponent[Input]()

// Cursor is the mouse position in world space.
type Cursor struct {
	X     float64
	Y     float64
	Valid bool
}

var CursorComponent = NewComponent[Cursor]()
