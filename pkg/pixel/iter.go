package pixel

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

var (
	_ iterkit.PullIter[int8]  = (*IntoIterator)(nil)
	_ iterkit.PullIter[int8]  = (*Iterator)(nil)
	_ iterkit.PullIter[*int8] = (*MutIterator)(nil)
)

// IntoIter takes the pixel by value and walks its own copy of it.
// The caller hands the record over and must not use the source value again.
// To have this enforced, use Cell.IntoIter.
func IntoIter(p Pixel) *IntoIterator {
	return &IntoIterator{pixel: p}
}

// IntoIterator is the consuming sequencer of a Pixel.
type IntoIterator struct {
	pixel  Pixel
	cursor cursor
	value  int8
}

func (i *IntoIterator) Next() bool {
	c, ok := i.cursor.next()
	if !ok {
		i.value = 0
		return false
	}
	i.value = *i.pixel.Field(c)
	return true
}

// Value returns a copy of the current field.
func (i *IntoIterator) Value() int8 {
	return i.value
}

func (i *IntoIterator) Err() error {
	return nil
}

func (i *IntoIterator) Close() error {
	i.value = 0
	i.cursor.close()
	return nil
}

// Iter returns a shared view over the pixel.
// Every step reads the field through the pointer and yields a copy of it,
// so the record remains valid for the caller during and after the iteration.
func Iter(p *Pixel) *Iterator {
	return &Iterator{pixel: p}
}

// Iterator is the shared view sequencer of a Pixel.
type Iterator struct {
	pixel  *Pixel
	cursor cursor
	value  int8
}

func (i *Iterator) Next() bool {
	c, ok := i.cursor.next()
	if !ok {
		i.value = 0
		return false
	}
	i.value = *i.pixel.Field(c)
	return true
}

// Value returns a copy of the current field.
func (i *Iterator) Value() int8 {
	return i.value
}

func (i *Iterator) Err() error {
	return nil
}

func (i *Iterator) Close() error {
	i.value = 0
	i.cursor.close()
	return nil
}

// IterMut returns an exclusive view over the pixel.
// Every step yields a handle to one field, and writing through the handle changes the record in place.
// While the MutIterator is in use, the record must not be accessed by any other means.
// To have this enforced, use Cell.IterMut.
func IterMut(p *Pixel) *MutIterator {
	return &MutIterator{pixel: p}
}

// MutIterator is the exclusive view sequencer of a Pixel.
type MutIterator struct {
	pixel  *Pixel
	cursor cursor
	value  *int8
}

func (i *MutIterator) Next() bool {
	c, ok := i.cursor.next()
	if !ok {
		i.value = nil
		return false
	}
	i.value = i.pixel.Field(c)
	return true
}

// Value returns the handle of the current field.
// Before the first Next and after exhaustion it is nil.
func (i *MutIterator) Value() *int8 {
	return i.value
}

func (i *MutIterator) Err() error {
	return nil
}

func (i *MutIterator) Close() error {
	i.value = nil
	i.cursor.close()
	return nil
}

// cursor is the state machine shared by the sequencers.
// The index moves from 0 up to fieldCount, and once it reaches fieldCount it never moves again.
type cursor struct {
	index   int
	release func()
}

func (c *cursor) next() (Channel, bool) {
	if fieldCount <= c.index {
		return 0, false
	}
	ch := Channel(c.index)
	c.index++
	return ch, true
}

func (c *cursor) close() {
	c.index = fieldCount
	if c.release != nil {
		release := c.release
		c.release = nil
		release()
	}
}

// Seq turns a pull iterator into a range-over-func sequence.
// The pull iterator is closed when the loop ends, including on an early break.
// The returned sequence is single use, just like the pull iterator behind it.
func Seq[T any](itr iterkit.PullIter[T]) iterkit.SingleUseSeq[T] {
	return func(yield func(T) bool) {
		defer itr.Close()
		for itr.Next() {
			if !yield(itr.Value()) {
				return
			}
		}
	}
}

// Values walks a copy of the pixel, the receiver is consumed by value.
func (p Pixel) Values() iter.Seq[int8] {
	return func(yield func(int8) bool) {
		for v := range Seq[int8](IntoIter(p)) {
			if !yield(v) {
				return
			}
		}
	}
}

// All is the shared view of the pixel as channel and value pairs.
func (p *Pixel) All() iter.Seq2[Channel, int8] {
	return func(yield func(Channel, int8) bool) {
		itr := Iter(p)
		defer itr.Close()
		for c := R; itr.Next(); c++ {
			if !yield(c, itr.Value()) {
				return
			}
		}
	}
}

// Refs is the exclusive view of the pixel as channel and field handle pairs.
func (p *Pixel) Refs() iter.Seq2[Channel, *int8] {
	return func(yield func(Channel, *int8) bool) {
		itr := IterMut(p)
		defer itr.Close()
		for c := R; itr.Next(); c++ {
			if !yield(c, itr.Value()) {
				return
			}
		}
	}
}
