// Package zeroize provides in-place overwriting of sensitive values in memory.
//
// Zeroization reduces the window during which a secret is recoverable from
// process memory. It is a best-effort defense: Go's garbage collector may have
// moved or copied a value before it is wiped, and the runtime gives no control
// over when freed memory is reused. Zeroize before release, never after.
package zeroize

import (
	"crypto/subtle"
	"runtime"
)

// Zeroizer is implemented by secret content types. Zeroize overwrites the
// receiver's sensitive state in place. Implementations must be safe to call
// more than once.
type Zeroizer interface {
	Zeroize()
}

// Pointer constrains a pointer to a content type S to also satisfy Zeroizer.
// Constructors use it to require, at compile time, that every content type
// stored in a container can be wiped.
type Pointer[S any] interface {
	*S
	Zeroizer
}

// Zero overwrites a byte slice with zeros to clear sensitive data from memory.
//
// The overwrite goes through subtle.ConstantTimeCopy and the slice is kept
// live past the copy so the compiler cannot eliminate it as a dead store.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	runtime.KeepAlive(b)
}

// String is a secret text content type.
//
// Go strings are immutable, so Zeroize can only drop the reference and let the
// garbage collector reclaim the backing bytes; it cannot overwrite them. This
// is a weaker guarantee than Bytes provides. Prefer Bytes for key material.
type String string

// Zeroize drops the string's reference to its backing bytes.
func (s *String) Zeroize() {
	*s = ""
}

// Bytes is a secret binary content type. Its backing array is overwritten on
// Zeroize, making it the preferred content type for key material.
type Bytes []byte

// Zeroize overwrites the backing array with zeros and drops the slice.
func (b *Bytes) Zeroize() {
	Zero(*b)
	*b = nil
}
