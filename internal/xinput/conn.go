package xinput

import (
	"fmt"
	"iter"
	"slices"

	"github.com/jezek/xgb"
	xi "github.com/jezek/xgb/xinput"
	"github.com/jezek/xgb/xproto"

	"github.com/bnema/padctl/internal/logger"
)

// XIAllDevices in the XI2 protocol.
const deviceAll = 0

// Conn is a Display backed by a live X server connection.
type Conn struct {
	x *xgb.Conn

	// Interned atoms, cached per connection.
	atoms     map[string]xproto.Atom
	atomFloat xproto.Atom
}

// Connect opens the given X display (empty string means $DISPLAY),
// initializes the input extension and negotiates XI 2.x. A server
// answering with an older version yields a *VersionError.
func Connect(display string) (*Conn, error) {
	x, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X display: %w", err)
	}

	if err := xi.Init(x); err != nil {
		x.Close()
		return nil, fmt.Errorf("X input extension unavailable: %w", err)
	}

	version, err := xi.XIQueryVersion(x, 2, 2).Reply()
	if err != nil {
		x.Close()
		return nil, fmt.Errorf("failed to query X input extension version: %w", err)
	}
	if version.MajorVersion < 2 {
		x.Close()
		return nil, &VersionError{Major: version.MajorVersion, Minor: version.MinorVersion}
	}
	logger.Debugf("X input extension version %d.%d", version.MajorVersion, version.MinorVersion)

	c := &Conn{x: x, atoms: make(map[string]xproto.Atom)}

	// Floating point properties are typed with the FLOAT atom rather
	// than INTEGER; intern it once so reads can recognize them.
	c.atomFloat, err = c.atom("FLOAT")
	if err != nil {
		x.Close()
		return nil, err
	}

	return c, nil
}

// Close shuts down the X connection.
func (c *Conn) Close() {
	c.x.Close()
}

// DevicesWithProperty yields every input device exposing the named
// property, in server enumeration order.
func (c *Conn) DevicesWithProperty(property string) iter.Seq2[Device, error] {
	return func(yield func(Device, error) bool) {
		atom, err := c.atom(property)
		if err != nil {
			yield(nil, err)
			return
		}

		devices, err := xi.XIQueryDevice(c.x, deviceAll).Reply()
		if err != nil {
			yield(nil, fmt.Errorf("failed to query input devices: %w", err))
			return
		}

		for _, info := range devices.Infos {
			props, err := xi.XIListProperties(c.x, info.Deviceid).Reply()
			if err != nil {
				if !yield(nil, fmt.Errorf("failed to list properties of device %d: %w", info.Deviceid, err)) {
					return
				}
				continue
			}
			if !slices.Contains(props.Properties, atom) {
				continue
			}
			dev := &inputDevice{conn: c, id: info.Deviceid, name: info.Name}
			if !yield(dev, nil) {
				return
			}
		}
	}
}

// atom interns a name on the server, consulting the cache first.
func (c *Conn) atom(name string) (xproto.Atom, error) {
	if atom, ok := c.atoms[name]; ok {
		return atom, nil
	}
	reply, err := xproto.InternAtom(c.x, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to intern atom %q: %w", name, err)
	}
	c.atoms[name] = reply.Atom
	return reply.Atom, nil
}
