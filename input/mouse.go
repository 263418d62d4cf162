package input

import "fmt"

// MouseButton names a mouse button.
type MouseButton uint8

// Mouse buttons
const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonX1:
		return "x1"
	case ButtonX2:
		return "x2"
	}
	return fmt.Sprintf("button(%d)", uint8(b))
}

// MouseAction is what a MouseInput does.
type MouseAction uint8

// Mouse actions
const (
	MouseButtonAction MouseAction = iota
	MouseMove
	MouseWheel
)

// Movement says how DX and DY of a move are read.
type Movement uint8

const (
	// MoveRelative moves by DX, DY. Positive values go right and down.
	MoveRelative Movement = iota
	// MoveAbsolutePrimary moves to DX, DY where 0,0 is the top left and
	// 65535,65535 the bottom right of the primary monitor.
	MoveAbsolutePrimary
	// MoveAbsoluteVirtualDesktop is MoveAbsolutePrimary over all monitors.
	MoveAbsoluteVirtualDesktop
)

// MouseInput is a button, move or wheel event.
type MouseInput struct {
	Action MouseAction

	Button   MouseButton
	ButtonUp bool

	Movement Movement
	DX, DY   int32
	// Coalesce lets the system merge this move with pending ones.
	Coalesce bool

	// Horizontal selects the tilt wheel. Positive Wheel values scroll away
	// from the user, or right when horizontal; one notch is WheelDelta.
	Horizontal bool
	Wheel      int32

	Message WindowMessage
	Time    uint32
}

func (MouseInput) isInput() {}

// ButtonEvent presses or releases b.
func ButtonEvent(b MouseButton, up bool) MouseInput {
	return MouseInput{Action: MouseButtonAction, Button: b, ButtonUp: up}
}

// MoveBy moves the pointer relative to its position.
func MoveBy(dx, dy int32) MouseInput {
	return MouseInput{Action: MouseMove, Movement: MoveRelative, DX: dx, DY: dy, Coalesce: true}
}

// MoveTo moves the pointer to normalized absolute coordinates.
func MoveTo(x, y uint16, virtualDesktop bool) MouseInput {
	m := MoveAbsolutePrimary
	if virtualDesktop {
		m = MoveAbsoluteVirtualDesktop
	}
	return MouseInput{Action: MouseMove, Movement: m, DX: int32(x), DY: int32(y), Coalesce: true}
}

// WheelEvent scrolls by amount, in units of WheelDelta per notch.
func WheelEvent(horizontal bool, amount int32) MouseInput {
	return MouseInput{Action: MouseWheel, Horizontal: horizontal, Wheel: amount}
}

func (m MouseInput) String() string {
	switch m.Action {
	case MouseButtonAction:
		if m.ButtonUp {
			return fmt.Sprintf("Mouse %s up", m.Button)
		}
		return fmt.Sprintf("Mouse %s down", m.Button)
	case MouseMove:
		if m.Movement == MoveRelative {
			return fmt.Sprintf("Mouse move by %d,%d", m.DX, m.DY)
		}
		return fmt.Sprintf("Mouse move to %d,%d", m.DX, m.DY)
	default:
		if m.Horizontal {
			return fmt.Sprintf("Mouse hwheel %d", m.Wheel)
		}
		return fmt.Sprintf("Mouse wheel %d", m.Wheel)
	}
}
