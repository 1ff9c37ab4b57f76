package touchpad

import (
	"errors"
	"fmt"
)

// ErrNoTouchpad is returned by FindFirst and Find when device
// enumeration yields no touchpad.
var ErrNoTouchpad = errors.New("no touchpad found")

// InvalidWireTypeError is returned when a binding is declared with a
// wire type outside the four recognized kinds. With the built-in
// attribute catalog this is a programming error, caught at package
// initialization rather than at first device access.
type InvalidWireTypeError struct {
	Wire WireType
}

func (e *InvalidWireTypeError) Error() string {
	return fmt.Sprintf("invalid wire type %d", int(e.Wire))
}

// SlotIndexError is returned when the live driver reports a shorter
// value sequence than the binding expects, which points at a driver
// version mismatch.
type SlotIndexError struct {
	Property string
	Slot     int
	Length   int
}

func (e *SlotIndexError) Error() string {
	return fmt.Sprintf("property %q has %d values, slot %d out of range", e.Property, e.Length, e.Slot)
}

// UnknownAttributeError is returned by the attribute registry for a
// name it does not carry.
type UnknownAttributeError struct {
	Name string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown touchpad attribute %q", e.Name)
}
