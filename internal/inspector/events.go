package inspector

import "image-inspector/internal/imaging"

// Edge selects which side of a channel's bounds an AdjustBound event moves.
type Edge int

const (
	Lower Edge = iota
	Upper
)

func (e Edge) String() string {
	if e == Upper {
		return "upper"
	}
	return "lower"
}

// Event is a user action on one inspector window. The concrete types below
// are the only implementations; Controller.Dispatch switches on them.
type Event interface {
	event()
}

type AdjustBound struct {
	Channel int
	Edge    Edge
	Value   int
}

type ToggleChannel struct {
	Channel int
	Enabled bool
}

type ResetToOriginal struct{}

type IsolateChannel struct {
	Channel int
}

type ConvertColorspace struct {
	Kind imaging.Conversion
}

// Undo reverts the last isolate or conversion.
type Undo struct{}

// RestoreSource goes back to the image the window was opened with.
type RestoreSource struct{}

func (AdjustBound) event()       {}
func (ToggleChannel) event()     {}
func (ResetToOriginal) event()   {}
func (IsolateChannel) event()    {}
func (ConvertColorspace) event() {}
func (Undo) event()              {}
func (RestoreSource) event()     {}
