package xinput

import "math"

// Wire codecs shared by the property getters and setters. Sequences are
// decoded into RawValue slices on read and encoded back into the
// format-specific item arrays on write.

func decode8(items []byte) []RawValue {
	values := make([]RawValue, len(items))
	for i, v := range items {
		values[i] = RawValue(v)
	}
	return values
}

func decode16(items []uint16) []RawValue {
	values := make([]RawValue, len(items))
	for i, v := range items {
		values[i] = RawValue(int16(v))
	}
	return values
}

// decode32 interprets items either as signed integers or, for FLOAT
// typed properties, as IEEE 754 single-precision bit patterns.
func decode32(items []uint32, isFloat bool) []RawValue {
	values := make([]RawValue, len(items))
	for i, v := range items {
		if isFloat {
			values[i] = RawValue(math.Float32frombits(v))
		} else {
			values[i] = RawValue(int32(v))
		}
	}
	return values
}

func encode8(values []RawValue) []byte {
	items := make([]byte, len(values))
	for i, v := range values {
		items[i] = byte(int64(v))
	}
	return items
}

func encodeInt32(values []RawValue) []uint32 {
	items := make([]uint32, len(values))
	for i, v := range values {
		items[i] = uint32(int32(v))
	}
	return items
}

func encodeFloat32(values []RawValue) []uint32 {
	items := make([]uint32, len(values))
	for i, v := range values {
		items[i] = math.Float32bits(float32(v))
	}
	return items
}

func encodeBool(values []RawValue) []byte {
	items := make([]byte, len(values))
	for i, v := range values {
		if v != 0 {
			items[i] = 1
		}
	}
	return items
}
