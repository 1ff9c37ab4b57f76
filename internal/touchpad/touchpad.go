package touchpad

import (
	"fmt"
	"math"

	"github.com/bnema/padctl/internal/xinput"
)

// Property names defined by the synaptics driver.
const (
	propOff                = "Synaptics Off"
	propMoveSpeed          = "Synaptics Move Speed"
	propTapAction          = "Synaptics Tap Action"
	propGestures           = "Synaptics Gestures"
	propLockedDrags        = "Synaptics Locked Drags"
	propLockedDragsTimeout = "Synaptics Locked Drags Timeout"
	propEdgeScrolling      = "Synaptics Edge Scrolling"
	propScrollingDistance  = "Synaptics Scrolling Distance"
	propCoastingSpeed      = "Synaptics Coasting Speed"
	propTwoFingerScrolling = "Synaptics Two-Finger Scrolling"
	propCircularScrolling  = "Synaptics Circular Scrolling"
	propCircScrollTrigger  = "Synaptics Circular Scrolling Trigger"
	propCircScrollDistance = "Synaptics Circular Scrolling Distance"
	propCapabilities       = "Synaptics Capabilities"
)

// OffState is the tri-state of the "Synaptics Off" property.
type OffState int

const (
	// TouchpadEnabled means the touchpad is fully operational.
	TouchpadEnabled OffState = iota
	// TouchpadDisabled means the touchpad is switched off entirely.
	TouchpadDisabled
	// TapScrollDisabled means only tapping and scrolling are off.
	TapScrollDisabled
)

func (s OffState) String() string {
	switch s {
	case TouchpadEnabled:
		return "enabled"
	case TouchpadDisabled:
		return "disabled"
	case TapScrollDisabled:
		return "tapping and scrolling disabled"
	default:
		return fmt.Sprintf("OffState(%d)", int(s))
	}
}

// ScrollTrigger is the edge or corner area that starts circular
// scrolling; zero means any edge, the rest run clockwise from the top
// edge through the top left corner.
type ScrollTrigger int

const (
	TriggerAllEdges ScrollTrigger = iota
	TriggerTopEdge
	TriggerTopRightCorner
	TriggerRightEdge
	TriggerBottomRightCorner
	TriggerBottomEdge
	TriggerBottomLeftCorner
	TriggerLeftEdge
	TriggerTopLeftCorner
)

func (t ScrollTrigger) String() string {
	names := [...]string{
		"all edges",
		"top edge",
		"top right corner",
		"right edge",
		"bottom right corner",
		"bottom edge",
		"bottom left corner",
		"left edge",
		"top left corner",
	}
	if t < 0 || int(t) >= len(names) {
		return fmt.Sprintf("ScrollTrigger(%d)", int(t))
	}
	return names[t]
}

// The attribute catalog. One binding per tunable, declared once at
// package initialization. Bindings for consecutive slots of a shared
// property are stamped out by a family factory.
var (
	bindOff = mustBinding[int](propOff, Byte, 0)

	moveSpeed              = family[float64](propMoveSpeed, Float)
	bindMinimumSpeed       = moveSpeed(0)
	bindMaximumSpeed       = moveSpeed(1)
	bindAccelerationFactor = moveSpeed(2)

	tapAction          = family[int](propTapAction, Byte)
	bindRTCornerTap    = tapAction(0)
	bindRBCornerTap    = tapAction(1)
	bindLTCornerTap    = tapAction(2)
	bindLBCornerTap    = tapAction(3)
	bindOneFingerTap   = tapAction(4)
	bindTwoFingerTap   = tapAction(5)
	bindThreeFingerTap = tapAction(6)

	bindTapAndDragGesture = mustBinding[bool](propGestures, Bool, 0)
	bindLockedDrags       = mustBinding[bool](propLockedDrags, Bool, 0)

	// The driver stores the timeout in milliseconds; the attribute is
	// expressed in seconds.
	bindLockedDragsTimeout = mustBinding[float64](propLockedDragsTimeout, Int, 0).WithConversion(
		func(raw xinput.RawValue) float64 { return float64(raw) / 1000 },
		func(v float64) xinput.RawValue { return xinput.RawValue(int(1000 * v)) },
	)

	edgeScrolling               = family[bool](propEdgeScrolling, Bool)
	bindVerticalEdgeScrolling   = edgeScrolling(0)
	bindHorizontalEdgeScrolling = edgeScrolling(1)
	bindCornerCoasting          = edgeScrolling(2)

	scrollingDistance               = family[int](propScrollingDistance, Int)
	bindVerticalScrollingDistance   = scrollingDistance(0)
	bindHorizontalScrollingDistance = scrollingDistance(1)

	bindCoastingSpeed = mustBinding[float64](propCoastingSpeed, Float, 0)

	twoFingerScrolling               = family[bool](propTwoFingerScrolling, Bool)
	bindVerticalTwoFingerScrolling   = twoFingerScrolling(0)
	bindHorizontalTwoFingerScrolling = twoFingerScrolling(1)

	bindCircularScrolling        = mustBinding[bool](propCircularScrolling, Bool, 0)
	bindCircularScrollingTrigger = mustBinding[int](propCircScrollTrigger, Byte, 0)

	// The driver stores the scroll step in radians; the attribute is
	// expressed in degrees.
	bindCircularScrollingDistance = mustBinding[float64](propCircScrollDistance, Float, 0).WithConversion(
		func(raw xinput.RawValue) float64 { return float64(raw) * 180 / math.Pi },
		func(v float64) xinput.RawValue { return xinput.RawValue(float64(v) * math.Pi / 180) },
	)
)

// Touchpad is a synaptics touchpad registered on the X server. It holds
// no state of its own; every accessor is a live query or write against
// the underlying device.
type Touchpad struct {
	dev xinput.Device
}

// New wraps an input device already known to be a touchpad. Callers
// normally go through FindAll or FindFirst instead.
func New(dev xinput.Device) *Touchpad {
	return &Touchpad{dev: dev}
}

// Name returns the device name as reported by the server.
func (t *Touchpad) Name() string { return t.dev.Name() }

// Device returns the underlying input device for raw property access.
func (t *Touchpad) Device() xinput.Device { return t.dev }

// Off returns whether the touchpad or parts of it are switched off.
func (t *Touchpad) Off() (OffState, error) {
	v, err := bindOff.Get(t.dev)
	return OffState(v), err
}

// SetOff switches the touchpad state.
func (t *Touchpad) SetOff(state OffState) error {
	if state < TouchpadEnabled || state > TapScrollDisabled {
		return fmt.Errorf("invalid touchpad off state %d", int(state))
	}
	return bindOff.Set(t.dev, int(state))
}

// MinimumSpeed returns the minimum cursor movement speed.
func (t *Touchpad) MinimumSpeed() (float64, error) { return bindMinimumSpeed.Get(t.dev) }

func (t *Touchpad) SetMinimumSpeed(v float64) error { return bindMinimumSpeed.Set(t.dev, v) }

// MaximumSpeed returns the maximum cursor movement speed.
func (t *Touchpad) MaximumSpeed() (float64, error) { return bindMaximumSpeed.Get(t.dev) }

func (t *Touchpad) SetMaximumSpeed(v float64) error { return bindMaximumSpeed.Set(t.dev, v) }

// AccelerationFactor returns the cursor acceleration factor.
func (t *Touchpad) AccelerationFactor() (float64, error) { return bindAccelerationFactor.Get(t.dev) }

func (t *Touchpad) SetAccelerationFactor(v float64) error { return bindAccelerationFactor.Set(t.dev, v) }

// Tap actions are button numbers fired by taps in the four corners and
// by one-, two- and three-finger taps; zero disables the tap.

func (t *Touchpad) RTCornerTapAction() (int, error) { return bindRTCornerTap.Get(t.dev) }
func (t *Touchpad) SetRTCornerTapAction(v int) error { return bindRTCornerTap.Set(t.dev, v) }

func (t *Touchpad) RBCornerTapAction() (int, error) { return bindRBCornerTap.Get(t.dev) }
func (t *Touchpad) SetRBCornerTapAction(v int) error { return bindRBCornerTap.Set(t.dev, v) }

func (t *Touchpad) LTCornerTapAction() (int, error) { return bindLTCornerTap.Get(t.dev) }
func (t *Touchpad) SetLTCornerTapAction(v int) error { return bindLTCornerTap.Set(t.dev, v) }

func (t *Touchpad) LBCornerTapAction() (int, error) { return bindLBCornerTap.Get(t.dev) }
func (t *Touchpad) SetLBCornerTapAction(v int) error { return bindLBCornerTap.Set(t.dev, v) }

func (t *Touchpad) OneFingerTapAction() (int, error) { return bindOneFingerTap.Get(t.dev) }
func (t *Touchpad) SetOneFingerTapAction(v int) error { return bindOneFingerTap.Set(t.dev, v) }

func (t *Touchpad) TwoFingerTapAction() (int, error) { return bindTwoFingerTap.Get(t.dev) }
func (t *Touchpad) SetTwoFingerTapAction(v int) error { return bindTwoFingerTap.Set(t.dev, v) }

func (t *Touchpad) ThreeFingerTapAction() (int, error) { return bindThreeFingerTap.Get(t.dev) }
func (t *Touchpad) SetThreeFingerTapAction(v int) error { return bindThreeFingerTap.Set(t.dev, v) }

// TapAndDragGesture reports whether the tap-and-drag gesture is on.
func (t *Touchpad) TapAndDragGesture() (bool, error) { return bindTapAndDragGesture.Get(t.dev) }

func (t *Touchpad) SetTapAndDragGesture(v bool) error { return bindTapAndDragGesture.Set(t.dev, v) }

// LockedDrags reports whether drags stay locked after lifting the
// finger.
func (t *Touchpad) LockedDrags() (bool, error) { return bindLockedDrags.Get(t.dev) }

func (t *Touchpad) SetLockedDrags(v bool) error { return bindLockedDrags.Set(t.dev, v) }

// LockedDragsTimeout returns the locked drag timeout in seconds.
func (t *Touchpad) LockedDragsTimeout() (float64, error) { return bindLockedDragsTimeout.Get(t.dev) }

func (t *Touchpad) SetLockedDragsTimeout(seconds float64) error {
	return bindLockedDragsTimeout.Set(t.dev, seconds)
}

func (t *Touchpad) VerticalEdgeScrolling() (bool, error) { return bindVerticalEdgeScrolling.Get(t.dev) }
func (t *Touchpad) SetVerticalEdgeScrolling(v bool) error { return bindVerticalEdgeScrolling.Set(t.dev, v) }

func (t *Touchpad) HorizontalEdgeScrolling() (bool, error) {
	return bindHorizontalEdgeScrolling.Get(t.dev)
}

func (t *Touchpad) SetHorizontalEdgeScrolling(v bool) error {
	return bindHorizontalEdgeScrolling.Set(t.dev, v)
}

// CornerCoasting reports whether scrolling coasts on in the corner.
func (t *Touchpad) CornerCoasting() (bool, error) { return bindCornerCoasting.Get(t.dev) }
func (t *Touchpad) SetCornerCoasting(v bool) error { return bindCornerCoasting.Set(t.dev, v) }

func (t *Touchpad) VerticalScrollingDistance() (int, error) {
	return bindVerticalScrollingDistance.Get(t.dev)
}

func (t *Touchpad) SetVerticalScrollingDistance(v int) error {
	return bindVerticalScrollingDistance.Set(t.dev, v)
}

func (t *Touchpad) HorizontalScrollingDistance() (int, error) {
	return bindHorizontalScrollingDistance.Get(t.dev)
}

func (t *Touchpad) SetHorizontalScrollingDistance(v int) error {
	return bindHorizontalScrollingDistance.Set(t.dev, v)
}

// CoastingSpeed returns the scroll coasting speed; zero means coasting
// is off.
func (t *Touchpad) CoastingSpeed() (float64, error) { return bindCoastingSpeed.Get(t.dev) }

func (t *Touchpad) SetCoastingSpeed(v float64) error { return bindCoastingSpeed.Set(t.dev, v) }

// Coasting reports whether coasting is enabled. There is no direct
// switch; set a nonzero or zero coasting speed instead.
func (t *Touchpad) Coasting() (bool, error) {
	speed, err := t.CoastingSpeed()
	return speed != 0, err
}

func (t *Touchpad) VerticalTwoFingerScrolling() (bool, error) {
	return bindVerticalTwoFingerScrolling.Get(t.dev)
}

func (t *Touchpad) SetVerticalTwoFingerScrolling(v bool) error {
	return bindVerticalTwoFingerScrolling.Set(t.dev, v)
}

func (t *Touchpad) HorizontalTwoFingerScrolling() (bool, error) {
	return bindHorizontalTwoFingerScrolling.Get(t.dev)
}

func (t *Touchpad) SetHorizontalTwoFingerScrolling(v bool) error {
	return bindHorizontalTwoFingerScrolling.Set(t.dev, v)
}

// CircularScrolling reports whether circular scrolling is enabled.
func (t *Touchpad) CircularScrolling() (bool, error) { return bindCircularScrolling.Get(t.dev) }

func (t *Touchpad) SetCircularScrolling(v bool) error { return bindCircularScrolling.Set(t.dev, v) }

// CircularScrollingTrigger returns the area starting circular
// scrolling.
func (t *Touchpad) CircularScrollingTrigger() (ScrollTrigger, error) {
	v, err := bindCircularScrollingTrigger.Get(t.dev)
	return ScrollTrigger(v), err
}

func (t *Touchpad) SetCircularScrollingTrigger(trigger ScrollTrigger) error {
	if trigger < TriggerAllEdges || trigger > TriggerTopLeftCorner {
		return fmt.Errorf("invalid circular scrolling trigger %d", int(trigger))
	}
	return bindCircularScrollingTrigger.Set(t.dev, int(trigger))
}

// CircularScrollingDistance returns the angle in degrees a finger has
// to travel on the circle to generate one scroll event.
func (t *Touchpad) CircularScrollingDistance() (float64, error) {
	return bindCircularScrollingDistance.Get(t.dev)
}

func (t *Touchpad) SetCircularScrollingDistance(degrees float64) error {
	return bindCircularScrollingDistance.Set(t.dev, degrees)
}
