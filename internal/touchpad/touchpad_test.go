package touchpad

import (
	"errors"
	"testing"

	"github.com/bnema/padctl/internal/xinput"
)

func TestOffState(t *testing.T) {
	dev := newFakeTouchpad("pad")
	pad := New(dev)

	state, err := pad.Off()
	if err != nil {
		t.Fatal(err)
	}
	if state != TouchpadEnabled {
		t.Errorf("expected enabled, got %v", state)
	}

	if err := pad.SetOff(TapScrollDisabled); err != nil {
		t.Fatal(err)
	}
	state, err = pad.Off()
	if err != nil {
		t.Fatal(err)
	}
	if state != TapScrollDisabled {
		t.Errorf("expected tap/scroll disabled, got %v", state)
	}

	if err := pad.SetOff(OffState(3)); err == nil {
		t.Error("expected an error for an out-of-range off state")
	}
}

func TestScrollTriggerValidation(t *testing.T) {
	dev := newFakeTouchpad("pad")
	pad := New(dev)

	if err := pad.SetCircularScrollingTrigger(TriggerTopLeftCorner); err != nil {
		t.Fatal(err)
	}
	trigger, err := pad.CircularScrollingTrigger()
	if err != nil {
		t.Fatal(err)
	}
	if trigger != TriggerTopLeftCorner {
		t.Errorf("expected top left corner, got %v", trigger)
	}

	if err := pad.SetCircularScrollingTrigger(ScrollTrigger(9)); err == nil {
		t.Error("expected an error for trigger 9")
	}
}

func TestCapabilities(t *testing.T) {
	dev := newFakeTouchpad("pad")
	pad := New(dev)

	caps, err := pad.Capabilities()
	if err != nil {
		t.Fatal(err)
	}
	expected := Capabilities{true, false, true, true, false, true, true}
	if caps != expected {
		t.Errorf("expected %v, got %v", expected, caps)
	}
}

func TestCapabilitiesCoercesNonzero(t *testing.T) {
	dev := newFakeTouchpad("pad")
	dev.props[propCapabilities] = []xinput.RawValue{3, 0, 0, 0, 0, 0, 0}
	pad := New(dev)

	caps, err := pad.Capabilities()
	if err != nil {
		t.Fatal(err)
	}
	if !caps[CapLeftButton] {
		t.Error("nonzero capability value must read as true")
	}
}

func TestCapabilitiesShortSequence(t *testing.T) {
	dev := newFakeTouchpad("pad")
	dev.props[propCapabilities] = []xinput.RawValue{1, 1, 1}
	pad := New(dev)

	_, err := pad.Capabilities()
	var slotErr *SlotIndexError
	if !errors.As(err, &slotErr) {
		t.Fatalf("expected *SlotIndexError, got %v", err)
	}
}

func TestFingerDetection(t *testing.T) {
	tests := []struct {
		caps    []xinput.RawValue
		fingers int
	}{
		{[]xinput.RawValue{1, 1, 1, 0, 0, 0, 0}, 1},
		{[]xinput.RawValue{1, 1, 1, 1, 0, 0, 0}, 2},
		{[]xinput.RawValue{1, 1, 1, 1, 1, 0, 0}, 3},
		// The bits are summed literally even when three-finger
		// detection is flagged without two-finger detection.
		{[]xinput.RawValue{1, 1, 1, 0, 1, 0, 0}, 2},
	}
	for _, tt := range tests {
		dev := newFakeTouchpad("pad")
		dev.props[propCapabilities] = tt.caps
		fingers, err := New(dev).FingerDetection()
		if err != nil {
			t.Fatal(err)
		}
		if fingers != tt.fingers {
			t.Errorf("capabilities %v: expected %d fingers, got %d", tt.caps, tt.fingers, fingers)
		}
	}
}

func TestTwoFingerEmulation(t *testing.T) {
	tests := []struct {
		pressure, width xinput.RawValue
		emulation       bool
	}{
		{1, 1, true},
		{1, 0, false},
		{0, 1, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		dev := newFakeTouchpad("pad")
		dev.props[propCapabilities] = []xinput.RawValue{1, 1, 1, 0, 0, tt.pressure, tt.width}
		emulation, err := New(dev).HasTwoFingerEmulation()
		if err != nil {
			t.Fatal(err)
		}
		if emulation != tt.emulation {
			t.Errorf("pressure=%v width=%v: expected %v, got %v", tt.pressure, tt.width, tt.emulation, emulation)
		}
	}
}

func TestButtons(t *testing.T) {
	dev := newFakeTouchpad("pad")
	dev.props[propCapabilities] = []xinput.RawValue{1, 0, 1, 0, 0, 0, 0}
	buttons, err := New(dev).Buttons()
	if err != nil {
		t.Fatal(err)
	}
	expected := PhysicalButtons{Left: true, Middle: false, Right: true}
	if buttons != expected {
		t.Errorf("expected %+v, got %+v", expected, buttons)
	}
}

func TestCoastingDerivedFromSpeed(t *testing.T) {
	dev := newFakeTouchpad("pad")
	pad := New(dev)

	if err := pad.SetCoastingSpeed(0); err != nil {
		t.Fatal(err)
	}
	coasting, err := pad.Coasting()
	if err != nil {
		t.Fatal(err)
	}
	if coasting {
		t.Error("zero coasting speed must report coasting off")
	}

	if err := pad.SetCoastingSpeed(20); err != nil {
		t.Fatal(err)
	}
	coasting, err = pad.Coasting()
	if err != nil {
		t.Fatal(err)
	}
	if !coasting {
		t.Error("nonzero coasting speed must report coasting on")
	}
}
