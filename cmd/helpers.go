package cmd

import (
	"fmt"
	"strconv"

	"github.com/bnema/padctl/internal/config"
	"github.com/bnema/padctl/internal/logger"
	"github.com/bnema/padctl/internal/touchpad"
	"github.com/bnema/padctl/internal/xinput"
)

// displayName resolves the X display from the flag or the config.
func displayName() string {
	if flagDisplay != "" {
		return flagDisplay
	}
	return config.Get().Device.Display
}

// openTouchpad connects to the X server and selects the touchpad named
// by the --device flag or the config, falling back to the first
// touchpad found. The caller owns the returned connection.
func openTouchpad() (*touchpad.Touchpad, *xinput.Conn, error) {
	conn, err := xinput.Connect(displayName())
	if err != nil {
		return nil, nil, err
	}

	name := flagDevice
	if name == "" {
		name = config.Get().Device.Name
	}
	pad, err := touchpad.Find(conn, name)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	logger.Debugf("using touchpad %q", pad.Name())
	return pad, conn, nil
}

// formatValue renders an attribute value the way `set` accepts it back.
func formatValue(value any) string {
	switch v := value.(type) {
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
