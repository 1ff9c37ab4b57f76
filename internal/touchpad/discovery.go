package touchpad

import (
	"fmt"
	"iter"
	"strings"

	"github.com/bnema/padctl/internal/xinput"
)

// Touchpads are recognized by the presence of the "Synaptics Off"
// property; only devices driven by the synaptics driver carry it.
const identifyingProperty = propOff

// FindAll yields every touchpad registered on the display, in server
// enumeration order. The sequence is lazy and meant to be consumed
// once; transport errors pass through unchanged.
func FindAll(display xinput.Display) iter.Seq2[*Touchpad, error] {
	return func(yield func(*Touchpad, error) bool) {
		for dev, err := range display.DevicesWithProperty(identifyingProperty) {
			if err != nil {
				if !yield(nil, err) {
					return
				}
				continue
			}
			if !yield(New(dev), nil) {
				return
			}
		}
	}
}

// FindFirst returns the first touchpad on the display, or ErrNoTouchpad
// when there is none.
func FindFirst(display xinput.Display) (*Touchpad, error) {
	for pad, err := range FindAll(display) {
		if err != nil {
			return nil, err
		}
		return pad, nil
	}
	return nil, ErrNoTouchpad
}

// Find returns the first touchpad whose device name contains the given
// substring, ignoring case. An empty name selects the first touchpad.
func Find(display xinput.Display, name string) (*Touchpad, error) {
	if name == "" {
		return FindFirst(display)
	}
	for pad, err := range FindAll(display) {
		if err != nil {
			return nil, err
		}
		if strings.Contains(strings.ToLower(pad.Name()), strings.ToLower(name)) {
			return pad, nil
		}
	}
	return nil, fmt.Errorf("%w matching %q", ErrNoTouchpad, name)
}
