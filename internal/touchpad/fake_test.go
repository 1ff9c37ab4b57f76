package touchpad

import (
	"fmt"
	"iter"
	"slices"

	"github.com/bnema/padctl/internal/xinput"
)

// fakeDevice implements xinput.Device in memory and records which wire
// setter each write went through.
type fakeDevice struct {
	name  string
	props map[string][]xinput.RawValue

	lastSetProperty string
	lastSetWire     WireType
}

func (d *fakeDevice) Name() string { return d.name }

func (d *fakeDevice) Property(name string) ([]xinput.RawValue, error) {
	values, ok := d.props[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", xinput.ErrNoProperty, name)
	}
	return slices.Clone(values), nil
}

func (d *fakeDevice) SetIntProperty(name string, values []xinput.RawValue) error {
	return d.set(name, Int, values)
}

func (d *fakeDevice) SetByteProperty(name string, values []xinput.RawValue) error {
	return d.set(name, Byte, values)
}

func (d *fakeDevice) SetFloatProperty(name string, values []xinput.RawValue) error {
	return d.set(name, Float, values)
}

func (d *fakeDevice) SetBoolProperty(name string, values []xinput.RawValue) error {
	normalized := make([]xinput.RawValue, len(values))
	for i, v := range values {
		normalized[i] = xinput.BoolValue(v.Bool())
	}
	return d.set(name, Bool, normalized)
}

func (d *fakeDevice) set(name string, wire WireType, values []xinput.RawValue) error {
	if _, ok := d.props[name]; !ok {
		return fmt.Errorf("%w: %q", xinput.ErrNoProperty, name)
	}
	d.props[name] = slices.Clone(values)
	d.lastSetProperty = name
	d.lastSetWire = wire
	return nil
}

// raw returns the stored wire sequence, bypassing the Device interface.
func (d *fakeDevice) raw(name string) []xinput.RawValue {
	return d.props[name]
}

// newFakeTouchpad returns a device preloaded with the full synaptics
// property surface and sensible defaults.
func newFakeTouchpad(name string) *fakeDevice {
	return &fakeDevice{
		name: name,
		props: map[string][]xinput.RawValue{
			propOff:                {0},
			propMoveSpeed:          {0.4, 0.7, 0.04, 40},
			propTapAction:          {0, 0, 0, 0, 1, 3, 2},
			propGestures:           {1},
			propLockedDrags:        {0},
			propLockedDragsTimeout: {5000},
			propEdgeScrolling:      {1, 0, 0},
			propScrollingDistance:  {100, 100},
			propCoastingSpeed:      {20},
			propTwoFingerScrolling: {0, 0},
			propCircularScrolling:  {0},
			propCircScrollTrigger:  {0},
			propCircScrollDistance: {0.1},
			propCapabilities:       {1, 0, 1, 1, 0, 1, 1},
		},
	}
}

// fakeDisplay enumerates fake devices, filtering on property presence
// like the server does.
type fakeDisplay struct {
	devices []*fakeDevice
}

func (d *fakeDisplay) DevicesWithProperty(property string) iter.Seq2[xinput.Device, error] {
	return func(yield func(xinput.Device, error) bool) {
		for _, dev := range d.devices {
			if _, ok := dev.props[property]; !ok {
				continue
			}
			if !yield(dev, nil) {
				return
			}
		}
	}
}

// failingDisplay yields a single transport error.
type failingDisplay struct {
	err error
}

func (d *failingDisplay) DevicesWithProperty(property string) iter.Seq2[xinput.Device, error] {
	return func(yield func(xinput.Device, error) bool) {
		yield(nil, d.err)
	}
}
