package touchpad

import (
	"fmt"

	"github.com/spf13/cast"
)

// Kind is the domain type of an attribute as seen by callers.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "invalid"
	}
}

// Attribute is one named entry of the attribute registry. The registry
// gives the CLI, the tune screen and profile application a uniform
// string-keyed view over the typed accessors.
type Attribute struct {
	Name     string
	Doc      string
	Kind     Kind
	ReadOnly bool

	get func(*Touchpad) (any, error)
	set func(*Touchpad, any) error
}

// Get reads the attribute from the device.
func (a *Attribute) Get(t *Touchpad) (any, error) {
	return a.get(t)
}

// Set writes the attribute. The value may be a string or any type the
// attribute's kind can be coerced from; read-only attributes reject
// writes.
func (a *Attribute) Set(t *Touchpad, value any) error {
	if a.ReadOnly {
		return fmt.Errorf("attribute %q is read-only", a.Name)
	}
	return a.set(t, value)
}

func boolAttr(name, doc string, get func(*Touchpad) (bool, error), set func(*Touchpad, bool) error) Attribute {
	return Attribute{
		Name: name,
		Doc:  doc,
		Kind: KindBool,
		get:  func(t *Touchpad) (any, error) { return get(t) },
		set: func(t *Touchpad, value any) error {
			v, err := cast.ToBoolE(value)
			if err != nil {
				return fmt.Errorf("attribute %q needs a boolean value: %w", name, err)
			}
			return set(t, v)
		},
	}
}

func intAttr(name, doc string, get func(*Touchpad) (int, error), set func(*Touchpad, int) error) Attribute {
	return Attribute{
		Name: name,
		Doc:  doc,
		Kind: KindInt,
		get:  func(t *Touchpad) (any, error) { return get(t) },
		set: func(t *Touchpad, value any) error {
			v, err := cast.ToIntE(value)
			if err != nil {
				return fmt.Errorf("attribute %q needs an integer value: %w", name, err)
			}
			return set(t, v)
		},
	}
}

func floatAttr(name, doc string, get func(*Touchpad) (float64, error), set func(*Touchpad, float64) error) Attribute {
	return Attribute{
		Name: name,
		Doc:  doc,
		Kind: KindFloat,
		get:  func(t *Touchpad) (any, error) { return get(t) },
		set: func(t *Touchpad, value any) error {
			v, err := cast.ToFloat64E(value)
			if err != nil {
				return fmt.Errorf("attribute %q needs a numeric value: %w", name, err)
			}
			return set(t, v)
		},
	}
}

func readOnly(a Attribute) Attribute {
	a.ReadOnly = true
	a.set = nil
	return a
}

// attributes is the fixed registry, in display order.
var attributes = []Attribute{
	intAttr("off", "0 enabled, 1 disabled, 2 tapping and scrolling disabled",
		func(t *Touchpad) (int, error) { v, err := t.Off(); return int(v), err },
		func(t *Touchpad, v int) error { return t.SetOff(OffState(v)) }),
	floatAttr("minimum_speed", "minimum cursor movement speed",
		(*Touchpad).MinimumSpeed, (*Touchpad).SetMinimumSpeed),
	floatAttr("maximum_speed", "maximum cursor movement speed",
		(*Touchpad).MaximumSpeed, (*Touchpad).SetMaximumSpeed),
	floatAttr("acceleration_factor", "cursor acceleration factor",
		(*Touchpad).AccelerationFactor, (*Touchpad).SetAccelerationFactor),
	intAttr("rt_tap_action", "button fired by a right top corner tap",
		(*Touchpad).RTCornerTapAction, (*Touchpad).SetRTCornerTapAction),
	intAttr("rb_tap_action", "button fired by a right bottom corner tap",
		(*Touchpad).RBCornerTapAction, (*Touchpad).SetRBCornerTapAction),
	intAttr("lt_tap_action", "button fired by a left top corner tap",
		(*Touchpad).LTCornerTapAction, (*Touchpad).SetLTCornerTapAction),
	intAttr("lb_tap_action", "button fired by a left bottom corner tap",
		(*Touchpad).LBCornerTapAction, (*Touchpad).SetLBCornerTapAction),
	intAttr("f1_tap_action", "button fired by a one-finger tap",
		(*Touchpad).OneFingerTapAction, (*Touchpad).SetOneFingerTapAction),
	intAttr("f2_tap_action", "button fired by a two-finger tap",
		(*Touchpad).TwoFingerTapAction, (*Touchpad).SetTwoFingerTapAction),
	intAttr("f3_tap_action", "button fired by a three-finger tap",
		(*Touchpad).ThreeFingerTapAction, (*Touchpad).SetThreeFingerTapAction),
	boolAttr("tap_and_drag_gesture", "tap and drag gesture",
		(*Touchpad).TapAndDragGesture, (*Touchpad).SetTapAndDragGesture),
	boolAttr("locked_drags", "drags stay locked after lifting the finger",
		(*Touchpad).LockedDrags, (*Touchpad).SetLockedDrags),
	floatAttr("locked_drags_timeout", "locked drag timeout in seconds",
		(*Touchpad).LockedDragsTimeout, (*Touchpad).SetLockedDragsTimeout),
	boolAttr("vertical_edge_scrolling", "scrolling along the right edge",
		(*Touchpad).VerticalEdgeScrolling, (*Touchpad).SetVerticalEdgeScrolling),
	boolAttr("horizontal_edge_scrolling", "scrolling along the bottom edge",
		(*Touchpad).HorizontalEdgeScrolling, (*Touchpad).SetHorizontalEdgeScrolling),
	boolAttr("corner_coasting", "scrolling coasts on in the corner",
		(*Touchpad).CornerCoasting, (*Touchpad).SetCornerCoasting),
	intAttr("vertical_scrolling_distance", "vertical scroll step",
		(*Touchpad).VerticalScrollingDistance, (*Touchpad).SetVerticalScrollingDistance),
	intAttr("horizontal_scrolling_distance", "horizontal scroll step",
		(*Touchpad).HorizontalScrollingDistance, (*Touchpad).SetHorizontalScrollingDistance),
	floatAttr("coasting_speed", "scroll coasting speed, zero disables coasting",
		(*Touchpad).CoastingSpeed, (*Touchpad).SetCoastingSpeed),
	boolAttr("vertical_two_finger_scrolling", "vertical two-finger scrolling",
		(*Touchpad).VerticalTwoFingerScrolling, (*Touchpad).SetVerticalTwoFingerScrolling),
	boolAttr("horizontal_two_finger_scrolling", "horizontal two-finger scrolling",
		(*Touchpad).HorizontalTwoFingerScrolling, (*Touchpad).SetHorizontalTwoFingerScrolling),
	boolAttr("circular_scrolling", "scrolling by moving the finger in circles",
		(*Touchpad).CircularScrolling, (*Touchpad).SetCircularScrolling),
	intAttr("circular_scrolling_trigger", "area starting circular scrolling, 0 any edge, 1-8 clockwise from the top edge",
		func(t *Touchpad) (int, error) { v, err := t.CircularScrollingTrigger(); return int(v), err },
		func(t *Touchpad, v int) error { return t.SetCircularScrollingTrigger(ScrollTrigger(v)) }),
	floatAttr("circular_scrolling_distance", "degrees of circle travel per scroll event",
		(*Touchpad).CircularScrollingDistance, (*Touchpad).SetCircularScrollingDistance),
	readOnly(boolAttr("coasting", "whether coasting is active, set coasting_speed instead",
		(*Touchpad).Coasting, nil)),
	readOnly(intAttr("finger_detection", "number of independently detectable fingers",
		(*Touchpad).FingerDetection, nil)),
	readOnly(boolAttr("pressure_detection", "hardware senses touch pressure",
		(*Touchpad).HasPressureDetection, nil)),
	readOnly(boolAttr("finger_width_detection", "hardware senses finger width",
		(*Touchpad).HasFingerWidthDetection, nil)),
	readOnly(boolAttr("two_finger_emulation", "pressure and width sensing emulate two-finger detection",
		(*Touchpad).HasTwoFingerEmulation, nil)),
}

// Attributes returns the registry in display order.
func Attributes() []Attribute {
	out := make([]Attribute, len(attributes))
	copy(out, attributes)
	return out
}

// LookupAttribute returns the named registry entry or an
// *UnknownAttributeError.
func LookupAttribute(name string) (*Attribute, error) {
	for i := range attributes {
		if attributes[i].Name == name {
			return &attributes[i], nil
		}
	}
	return nil, &UnknownAttributeError{Name: name}
}
