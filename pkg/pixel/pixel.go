// Package pixel provides a three channel record and the sequencers that walk its fields.
//
// # Access modes
//
// A Pixel can be traversed in three ways, each with a different access contract:
//
//   - IntoIter consumes the record. It yields copies and the caller must not use the source value again.
//   - Iter is a shared view. It yields copies and the record stays readable while and after it is walked.
//   - IterMut is an exclusive view. It yields handles to the fields,
//     and while it is alive it must be the sole access path to the record.
//
// The compiler does not verify these contracts.
// When they need to be checked, wrap the record into a Cell, which enforces them at runtime.
//
// All sequencers yield the fields in the fixed R, G, B order, and then they are exhausted for good.
package pixel

import (
	"fmt"
	"strconv"
)

// Pixel is a fixed-arity record of three signed 8-bit colour channels.
type Pixel struct {
	R int8
	G int8
	B int8
}

func (p Pixel) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", p.R, p.G, p.B)
}

// Field returns the address of the field that belongs to the given channel.
// For an unknown channel it returns nil.
func (p *Pixel) Field(c Channel) *int8 {
	switch c {
	case R:
		return &p.R
	case G:
		return &p.G
	case B:
		return &p.B
	default:
		return nil
	}
}

// Channel is the position of a field in the Pixel record.
type Channel int

const (
	R Channel = iota
	G
	B
)

// Channels lists every channel in field order.
var Channels = []Channel{R, G, B}

func (c Channel) String() string {
	switch c {
	case R:
		return "r"
	case G:
		return "g"
	case B:
		return "b"
	default:
		return "Channel(" + strconv.Itoa(int(c)) + ")"
	}
}

// fieldCount is the length of every sequence and the terminal cursor position.
const fieldCount = 3
