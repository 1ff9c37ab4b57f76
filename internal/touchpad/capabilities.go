package touchpad

// Capability bit positions in the "Synaptics Capabilities" property.
const (
	CapLeftButton = iota
	CapMiddleButton
	CapRightButton
	CapTwoFingerDetect
	CapThreeFingerDetect
	CapPressureDetect
	CapWidthDetect

	// CapabilityCount is the fixed length of the capability sequence.
	CapabilityCount = 7
)

// Capabilities is the hardware capability snapshot of a touchpad.
type Capabilities [CapabilityCount]bool

// PhysicalButtons is a snapshot of which physical buttons a touchpad
// has.
type PhysicalButtons struct {
	Left   bool
	Middle bool
	Right  bool
}

// Buttons returns the physical buttons present on the hardware.
func (c Capabilities) Buttons() PhysicalButtons {
	return PhysicalButtons{
		Left:   c[CapLeftButton],
		Middle: c[CapMiddleButton],
		Right:  c[CapRightButton],
	}
}

// FingerDetection returns the number of fingers the hardware can detect
// independently. Every touchpad detects at least one finger; the two-
// and three-finger capability bits each add one. The bits are summed
// literally, with no assumption that three-finger detection implies
// two-finger detection.
func (c Capabilities) FingerDetection() int {
	fingers := 1
	if c[CapTwoFingerDetect] {
		fingers++
	}
	if c[CapThreeFingerDetect] {
		fingers++
	}
	return fingers
}

// HasPressureDetection reports whether the hardware senses the pressure
// of a touch.
func (c Capabilities) HasPressureDetection() bool { return c[CapPressureDetect] }

// HasFingerWidthDetection reports whether the hardware senses the width
// of a finger.
func (c Capabilities) HasFingerWidthDetection() bool { return c[CapWidthDetect] }

// HasTwoFingerEmulation reports whether the hardware can emulate
// independent two-finger detection. Touchpads without real multi-touch
// can approximate it when they sense both pressure and finger width.
func (c Capabilities) HasTwoFingerEmulation() bool {
	return c[CapPressureDetect] && c[CapWidthDetect]
}

// Capabilities reads the hardware capability bits from the device.
func (t *Touchpad) Capabilities() (Capabilities, error) {
	var caps Capabilities
	values, err := t.dev.Property(propCapabilities)
	if err != nil {
		return caps, err
	}
	if len(values) < CapabilityCount {
		return caps, &SlotIndexError{Property: propCapabilities, Slot: CapabilityCount - 1, Length: len(values)}
	}
	for i := range caps {
		caps[i] = values[i].Bool()
	}
	return caps, nil
}

// FingerDetection returns the finger count derived from the live
// capability bits.
func (t *Touchpad) FingerDetection() (int, error) {
	caps, err := t.Capabilities()
	if err != nil {
		return 0, err
	}
	return caps.FingerDetection(), nil
}

// Buttons returns the physical buttons of the touchpad.
func (t *Touchpad) Buttons() (PhysicalButtons, error) {
	caps, err := t.Capabilities()
	if err != nil {
		return PhysicalButtons{}, err
	}
	return caps.Buttons(), nil
}

// HasPressureDetection reports whether the touchpad senses touch
// pressure.
func (t *Touchpad) HasPressureDetection() (bool, error) {
	caps, err := t.Capabilities()
	if err != nil {
		return false, err
	}
	return caps.HasPressureDetection(), nil
}

// HasFingerWidthDetection reports whether the touchpad senses finger
// width.
func (t *Touchpad) HasFingerWidthDetection() (bool, error) {
	caps, err := t.Capabilities()
	if err != nil {
		return false, err
	}
	return caps.HasFingerWidthDetection(), nil
}

// HasTwoFingerEmulation reports whether the touchpad can emulate
// two-finger detection.
func (t *Touchpad) HasTwoFingerEmulation() (bool, error) {
	caps, err := t.Capabilities()
	if err != nil {
		return false, err
	}
	return caps.HasTwoFingerEmulation(), nil
}
