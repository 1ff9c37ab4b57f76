package touchpad

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupAttribute(t *testing.T) {
	attr, err := LookupAttribute("coasting_speed")
	require.NoError(t, err)
	assert.Equal(t, "coasting_speed", attr.Name)
	assert.Equal(t, KindFloat, attr.Kind)
	assert.False(t, attr.ReadOnly)
}

func TestLookupAttributeUnknown(t *testing.T) {
	_, err := LookupAttribute("palm_detection")
	var unknownErr *UnknownAttributeError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "palm_detection", unknownErr.Name)
}

func TestAttributeSetFromStrings(t *testing.T) {
	dev := newFakeTouchpad("pad")
	pad := New(dev)

	tests := []struct {
		attribute string
		value     string
		check     func(t *testing.T)
	}{
		{"tap_and_drag_gesture", "false", func(t *testing.T) {
			v, err := pad.TapAndDragGesture()
			require.NoError(t, err)
			assert.False(t, v)
		}},
		{"locked_drags_timeout", "2.5", func(t *testing.T) {
			v, err := pad.LockedDragsTimeout()
			require.NoError(t, err)
			assert.InDelta(t, 2.5, v, 1e-9)
		}},
		{"vertical_scrolling_distance", "75", func(t *testing.T) {
			v, err := pad.VerticalScrollingDistance()
			require.NoError(t, err)
			assert.Equal(t, 75, v)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.attribute, func(t *testing.T) {
			attr, err := LookupAttribute(tt.attribute)
			require.NoError(t, err)
			require.NoError(t, attr.Set(pad, tt.value))
			tt.check(t)
		})
	}
}

func TestAttributeSetRejectsBadValues(t *testing.T) {
	dev := newFakeTouchpad("pad")
	pad := New(dev)

	attr, err := LookupAttribute("coasting_speed")
	require.NoError(t, err)
	assert.Error(t, attr.Set(pad, "fast"))
}

func TestAttributeSetRejectsReadOnly(t *testing.T) {
	dev := newFakeTouchpad("pad")
	pad := New(dev)

	attr, err := LookupAttribute("coasting")
	require.NoError(t, err)
	require.True(t, attr.ReadOnly)
	assert.Error(t, attr.Set(pad, true))
}

func TestAllAttributesReadable(t *testing.T) {
	dev := newFakeTouchpad("pad")
	pad := New(dev)

	for _, attr := range Attributes() {
		value, err := attr.Get(pad)
		require.NoError(t, err, "attribute %q", attr.Name)
		require.NotNil(t, value, "attribute %q", attr.Name)
	}
}

func TestAttributeNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, attr := range Attributes() {
		if seen[attr.Name] {
			t.Errorf("duplicate attribute name %q", attr.Name)
		}
		seen[attr.Name] = true
	}
}

func TestReadOnlyAttributesHaveNoSetter(t *testing.T) {
	dev := newFakeTouchpad("pad")
	pad := New(dev)

	for _, attr := range Attributes() {
		if !attr.ReadOnly {
			continue
		}
		err := attr.Set(pad, 1)
		if err == nil {
			t.Errorf("read-only attribute %q accepted a write", attr.Name)
		}
		if errors.Is(err, ErrNoTouchpad) {
			t.Errorf("unexpected error kind for %q: %v", attr.Name, err)
		}
	}
}
