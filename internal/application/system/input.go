package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventType identifies the kind of input or system event.
type EventType int

const (
	// EventQuit is emitted when the user asks to close the window.
	EventQuit EventType = iota
	// EventKeyDown is emitted once when a key goes down.
	EventKeyDown
	// EventKeyUp is emitted once when a key is released.
	EventKeyUp
	// EventMouseDown is emitted once when a mouse button goes down.
	EventMouseDown
	// EventMouseUp is emitted once when a mouse button is released.
	EventMouseUp
)

// String returns the string representation of the event type.
func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventMouseDown:
		return "MouseDown"
	case EventMouseUp:
		return "MouseUp"
	default:
		return "Unknown"
	}
}

// Event is a single input or system event delivered to scenes.
// Key is set for key events, Button for mouse events; CursorX/CursorY
// hold the cursor position at poll time for mouse events.
type Event struct {
	Type    EventType
	Key     ebiten.Key
	Button  ebiten.MouseButton
	CursorX int
	CursorY int
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// InputSystem converts the backend's polled input state into a per-frame
// batch of edge-triggered events.
type InputSystem struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

// NewInputSystem creates a new input system.
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll gathers all events that occurred since the previous call.
// It never blocks; an empty batch means nothing happened this frame.
func (s *InputSystem) Poll() []Event {
	var events []Event

	if ebiten.IsWindowBeingClosed() {
		events = append(events, Event{Type: EventQuit})
	}

	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
	for _, k := range s.pressed {
		events = append(events, Event{Type: EventKeyDown, Key: k})
	}

	s.released = inpututil.AppendJustReleasedKeys(s.released[:0])
	for _, k := range s.released {
		events = append(events, Event{Type: EventKeyUp, Key: k})
	}

	cx, cy := ebiten.CursorPosition()
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			events = append(events, Event{Type: EventMouseDown, Button: b, CursorX: cx, CursorY: cy})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			events = append(events, Event{Type: EventMouseUp, Button: b, CursorX: cx, CursorY: cy})
		}
	}

	return events
}
