//go:build unix && !freebsd

package sys

import (
	"reflect"

	"golang.org/x/sys/unix"
)

var nFdBits = (uint)(reflect.TypeOf(unix.FdSet{}.Bits[0]).Size() * 8)

// FdSet wraps unix.FdSet for use with Select.
type FdSet unix.FdSet

func (fs *FdSet) s() *unix.FdSet {
	return (*unix.FdSet)(fs)
}

// NewFdSet creates a new FdSet containing the given fds.
func NewFdSet(fds ...int) *FdSet {
	fs := &FdSet{}
	fs.Set(fds...)
	return fs
}

// Clear removes fds from the set.
func (fs *FdSet) Clear(fds ...int) {
	for _, fd := range fds {
		u := uint(fd)
		fs.Bits[u/nFdBits] &= ^(1 << (u % nFdBits))
	}
}

// IsSet reports whether fd is in the set.
func (fs *FdSet) IsSet(fd int) bool {
	u := uint(fd)
	return fs.Bits[u/nFdBits]&(1<<(u%nFdBits)) != 0
}

// Set adds fds to the set.
func (fs *FdSet) Set(fds ...int) {
	for _, fd := range fds {
		u := uint(fd)
		fs.Bits[u/nFdBits] |= 1 << (u % nFdBits)
	}
}

// Zero empties the set.
func (fs *FdSet) Zero() {
	*fs = FdSet{}
}
