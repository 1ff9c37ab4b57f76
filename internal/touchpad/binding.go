// Package touchpad exposes the synaptics driver's device properties as
// typed, validated attributes. Each attribute is backed by a Binding
// that maps it onto one slot of one device property and converts
// between the domain value and the raw wire scalar.
package touchpad

import (
	"github.com/bnema/padctl/internal/xinput"
)

// WireType is the scalar encoding a device property uses on the wire.
type WireType int

const (
	Int WireType = iota
	Byte
	Float
	Bool
)

func (w WireType) valid() bool {
	return w >= Int && w <= Bool
}

func (w WireType) String() string {
	switch w {
	case Int:
		return "int"
	case Byte:
		return "byte"
	case Float:
		return "float"
	case Bool:
		return "bool"
	default:
		return "invalid"
	}
}

// Value constrains the domain types a binding can carry.
type Value interface {
	bool | int | float64
}

// Binding maps one typed attribute onto one slot of one device
// property. Bindings are immutable after construction; the built-in
// catalog declares one per attribute at package initialization.
type Binding[T Value] struct {
	property string
	wire     WireType
	slot     int
	toDomain func(xinput.RawValue) T
	toRaw    func(T) xinput.RawValue
}

// NewBinding declares a binding for the given slot of the named
// property, using the direct numeric conversion between the wire value
// and T. An unrecognized wire type fails with *InvalidWireTypeError
// before any device access.
func NewBinding[T Value](property string, wire WireType, slot int) (*Binding[T], error) {
	if !wire.valid() {
		return nil, &InvalidWireTypeError{Wire: wire}
	}
	return &Binding[T]{
		property: property,
		wire:     wire,
		slot:     slot,
		toDomain: defaultToDomain[T],
		toRaw:    defaultToRaw[T],
	}, nil
}

// WithConversion returns a copy of the binding using the given
// conversion pair. A nil function keeps the default for that direction,
// so either side can be overridden independently.
func (b *Binding[T]) WithConversion(toDomain func(xinput.RawValue) T, toRaw func(T) xinput.RawValue) *Binding[T] {
	converted := *b
	if toDomain != nil {
		converted.toDomain = toDomain
	}
	if toRaw != nil {
		converted.toRaw = toRaw
	}
	return &converted
}

// Property returns the device property name the binding is backed by.
func (b *Binding[T]) Property() string { return b.property }

// Slot returns the slot index within the property's value sequence.
func (b *Binding[T]) Slot() int { return b.slot }

// Get reads the bound slot from the device and converts it to the
// domain type.
func (b *Binding[T]) Get(dev xinput.Device) (T, error) {
	var zero T
	values, err := dev.Property(b.property)
	if err != nil {
		return zero, err
	}
	if b.wire == Bool {
		// The protocol types the whole sequence, so every slot gets
		// the 0/1 normalization, not just the one being read.
		for i, v := range values {
			values[i] = xinput.BoolValue(v.Bool())
		}
	}
	if b.slot >= len(values) {
		return zero, &SlotIndexError{Property: b.property, Slot: b.slot, Length: len(values)}
	}
	return b.toDomain(values[b.slot]), nil
}

// Set writes the bound slot, leaving sibling slots untouched. The
// current sequence is always fetched first; several attributes share
// one property and a synthesized sequence would clobber them.
func (b *Binding[T]) Set(dev xinput.Device, value T) error {
	values, err := dev.Property(b.property)
	if err != nil {
		return err
	}
	if b.slot >= len(values) {
		return &SlotIndexError{Property: b.property, Slot: b.slot, Length: len(values)}
	}
	values[b.slot] = b.toRaw(value)

	switch b.wire {
	case Int:
		return dev.SetIntProperty(b.property, values)
	case Byte:
		return dev.SetByteProperty(b.property, values)
	case Float:
		return dev.SetFloatProperty(b.property, values)
	case Bool:
		return dev.SetBoolProperty(b.property, values)
	}
	return &InvalidWireTypeError{Wire: b.wire}
}

// mustBinding backs the built-in catalog, where an invalid declaration
// is unrecoverable.
func mustBinding[T Value](property string, wire WireType, slot int) *Binding[T] {
	b, err := NewBinding[T](property, wire, slot)
	if err != nil {
		panic(err)
	}
	return b
}

// family returns a factory stamping out bindings for consecutive slots
// of a single property, for attribute groups like the move speed or
// tap action series.
func family[T Value](property string, wire WireType) func(slot int) *Binding[T] {
	return func(slot int) *Binding[T] {
		return mustBinding[T](property, wire, slot)
	}
}

func defaultToDomain[T Value](raw xinput.RawValue) T {
	var v T
	switch p := any(&v).(type) {
	case *bool:
		*p = raw.Bool()
	case *int:
		*p = int(raw)
	case *float64:
		*p = float64(raw)
	}
	return v
}

func defaultToRaw[T Value](v T) xinput.RawValue {
	switch v := any(v).(type) {
	case bool:
		return xinput.BoolValue(v)
	case int:
		return xinput.RawValue(v)
	case float64:
		return xinput.RawValue(v)
	}
	return 0
}
