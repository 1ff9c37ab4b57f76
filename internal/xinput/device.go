package xinput

import (
	"fmt"

	xi "github.com/jezek/xgb/xinput"
	"github.com/jezek/xgb/xproto"
)

// Properties can hold at most a few dozen slots; 1000 32-bit units is
// the customary request length used by the xinput tool.
const maxPropertyLength = 1000

// inputDevice is a Device bound to one XI2 device id.
type inputDevice struct {
	conn *Conn
	id   xi.DeviceId
	name string
}

func (d *inputDevice) Name() string { return d.name }

// Property fetches the full value sequence of the named property.
func (d *inputDevice) Property(name string) ([]RawValue, error) {
	atom, err := d.conn.atom(name)
	if err != nil {
		return nil, err
	}

	// Type AtomNone means AnyPropertyType.
	reply, err := xi.XIGetProperty(d.conn.x, d.id, false, atom, xproto.AtomNone, 0, maxPropertyLength).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get property %q of device %q: %w", name, d.name, err)
	}
	if reply.Type == xproto.AtomNone {
		return nil, fmt.Errorf("%w: %q on device %q", ErrNoProperty, name, d.name)
	}

	isFloat := reply.Type == d.conn.atomFloat
	switch reply.Format {
	case 8:
		return decode8(reply.Items.Data8), nil
	case 16:
		return decode16(reply.Items.Data16), nil
	case 32:
		return decode32(reply.Items.Data32, isFloat), nil
	default:
		return nil, fmt.Errorf("property %q of device %q has unknown format %d", name, d.name, reply.Format)
	}
}

// SetIntProperty writes values as a 32-bit signed INTEGER property.
func (d *inputDevice) SetIntProperty(name string, values []RawValue) error {
	return d.change(name, xproto.AtomInteger, 32, xi.XIChangePropertyItems{Data32: encodeInt32(values)}, len(values))
}

// SetByteProperty writes values as an 8-bit INTEGER property.
func (d *inputDevice) SetByteProperty(name string, values []RawValue) error {
	return d.change(name, xproto.AtomInteger, 8, xi.XIChangePropertyItems{Data8: encode8(values)}, len(values))
}

// SetFloatProperty writes values as a single-precision FLOAT property.
func (d *inputDevice) SetFloatProperty(name string, values []RawValue) error {
	return d.change(name, d.conn.atomFloat, 32, xi.XIChangePropertyItems{Data32: encodeFloat32(values)}, len(values))
}

// SetBoolProperty writes values as an 8-bit INTEGER property holding
// 0/1; any nonzero value is normalized to 1.
func (d *inputDevice) SetBoolProperty(name string, values []RawValue) error {
	return d.change(name, xproto.AtomInteger, 8, xi.XIChangePropertyItems{Data8: encodeBool(values)}, len(values))
}

func (d *inputDevice) change(name string, typ xproto.Atom, format byte, items xi.XIChangePropertyItems, n int) error {
	atom, err := d.conn.atom(name)
	if err != nil {
		return err
	}
	err = xi.XIChangePropertyChecked(d.conn.x, d.id, xproto.PropModeReplace, format, atom, typ, uint32(n), items).Check()
	if err != nil {
		return fmt.Errorf("failed to set property %q of device %q: %w", name, d.name, err)
	}
	return nil
}
