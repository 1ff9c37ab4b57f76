// Package xinput talks to the X server's input extension and exposes
// device properties as flat value sequences. Everything above this
// package works in terms of the Device and Display interfaces, so tests
// and alternative transports can swap in their own implementations.
package xinput

import (
	"errors"
	"fmt"
	"iter"
)

// RawValue is one scalar slot of a device property as it travels on the
// wire. A float64 holds every wire encoding exactly: 8- and 16-bit
// integers, 32-bit signed integers and IEEE 754 single-precision floats.
// Boolean properties travel as 0/1 integers.
type RawValue float64

// Bool reports the boolean reading of the value (nonzero means true).
func (v RawValue) Bool() bool { return v != 0 }

// BoolValue returns the 0/1 wire encoding of b.
func BoolValue(b bool) RawValue {
	if b {
		return 1
	}
	return 0
}

// Device is a single input device with named properties. A property is a
// fixed-length sequence of scalars; it can only be rewritten as a whole.
// One setter exists per wire encoding and the caller must pick the one
// matching the property's driver-defined type.
type Device interface {
	// Name returns the device name as reported by the server.
	Name() string

	// Property returns the full value sequence of the named property.
	Property(name string) ([]RawValue, error)

	SetIntProperty(name string, values []RawValue) error
	SetByteProperty(name string, values []RawValue) error
	SetFloatProperty(name string, values []RawValue) error
	SetBoolProperty(name string, values []RawValue) error
}

// Display enumerates input devices.
type Display interface {
	// DevicesWithProperty yields every input device that exposes the
	// named property, in server enumeration order. The sequence is lazy
	// and meant to be consumed once.
	DevicesWithProperty(property string) iter.Seq2[Device, error]
}

// ErrNoProperty is returned when a device does not carry the requested
// property. Wrapped errors include the property name.
var ErrNoProperty = errors.New("no such device property")

// VersionError is returned when the X server's input extension is too
// old for device property access.
type VersionError struct {
	Major, Minor uint16
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("X input extension version %d.%d is too old, need at least 2.0", e.Major, e.Minor)
}
