package pixel

import (
	"sync"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	// ErrBorrowed is returned when exclusive access or ownership is requested
	// while the Cell is still borrowed.
	ErrBorrowed errorkit.Error = "ErrBorrowed"
	// ErrMutablyBorrowed is returned when shared access is requested during an exclusive borrow.
	ErrMutablyBorrowed errorkit.Error = "ErrMutablyBorrowed"
	// ErrMoved is returned by every access after the Cell's pixel was moved out with IntoIter.
	ErrMoved errorkit.Error = "ErrMoved"
)

// Cell holds a Pixel and checks the access contracts of the sequencers at runtime.
//
// Any number of shared borrows may coexist.
// An exclusive borrow must be the only active borrow.
// Once the pixel is moved out, the Cell stays empty for good.
//
// Borrows are released by closing the sequencer that was returned for them.
// Cell is safe for concurrent use.
type Cell struct {
	m         sync.Mutex
	pixel     Pixel
	shared    int
	exclusive bool
	moved     bool
}

func NewCell(p Pixel) *Cell {
	return &Cell{pixel: p}
}

// Get returns a snapshot of the pixel.
func (c *Cell) Get() (Pixel, error) {
	c.m.Lock()
	defer c.m.Unlock()
	if err := c.checkShared(); err != nil {
		return Pixel{}, err
	}
	return c.pixel, nil
}

// Iter acquires a shared borrow, which is released when the returned Iterator is closed.
func (c *Cell) Iter() (*Iterator, error) {
	c.m.Lock()
	defer c.m.Unlock()
	if err := c.checkShared(); err != nil {
		return nil, err
	}
	c.shared++
	itr := Iter(&c.pixel)
	itr.cursor.release = c.releaser(func() { c.shared-- })
	return itr, nil
}

// IterMut acquires the exclusive borrow, which is released when the returned MutIterator is closed.
//
// The Cell can only track the MutIterator, not the handles it yielded.
// A handle stays writable after Close, and writing through it once the borrow is released
// races with every later borrow. Drop the handles before closing the MutIterator.
func (c *Cell) IterMut() (*MutIterator, error) {
	c.m.Lock()
	defer c.m.Unlock()
	if err := c.checkExclusive(); err != nil {
		return nil, err
	}
	c.exclusive = true
	itr := IterMut(&c.pixel)
	itr.cursor.release = c.releaser(func() { c.exclusive = false })
	return itr, nil
}

// IntoIter moves the pixel out of the Cell.
// After a successful call, every further access on the Cell fails with ErrMoved.
func (c *Cell) IntoIter() (*IntoIterator, error) {
	c.m.Lock()
	defer c.m.Unlock()
	if err := c.checkExclusive(); err != nil {
		return nil, err
	}
	c.moved = true
	itr := IntoIter(c.pixel)
	c.pixel = Pixel{}
	return itr, nil
}

func (c *Cell) checkShared() error {
	if c.moved {
		return ErrMoved
	}
	if c.exclusive {
		return ErrMutablyBorrowed.F("the pixel is exclusively borrowed")
	}
	return nil
}

func (c *Cell) checkExclusive() error {
	if c.moved {
		return ErrMoved
	}
	if c.exclusive {
		return ErrBorrowed.F("the pixel is exclusively borrowed")
	}
	if 0 < c.shared {
		return ErrBorrowed.F("the pixel has %d active shared borrow(s)", c.shared)
	}
	return nil
}

func (c *Cell) releaser(fn func()) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			c.m.Lock()
			defer c.m.Unlock()
			fn()
		})
	}
}
