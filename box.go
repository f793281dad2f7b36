package secretbox

import (
	"crypto/subtle"
	"runtime"

	"github.com/allisson/secretbox/zeroize"
)

// Box holds exactly one heap-resident secret value of content type S.
//
// The content is reachable only through ExposeSecret, so every read site in
// calling code is lexically identifiable during review. Formatting a Box with
// the fmt or log/slog packages renders a redaction placeholder, never content
// bytes. Serialization is rejected unless the content type opts in via the
// Serializable marker.
//
// A Box is single-owner: it provides no internal synchronization and must not
// be shared across goroutines without external locking. When the secret is no
// longer needed, call Destroy to wipe it deterministically; a cleanup
// registered at construction wipes it at collection time if Destroy is never
// called, with the timing left to the garbage collector.
//
// The zero Box holds no value. Useful boxes come from the constructors or
// from deserialization.
type Box[S any] struct {
	value     *S
	wipe      zeroize.Zeroizer
	cleanup   runtime.Cleanup
	destroyed bool
}

// String is a Box holding secret text.
type String = Box[zeroize.String]

// Bytes is a Box holding secret binary data.
type Bytes = Box[zeroize.Bytes]

// Exposer grants read access to a secret of content type S. It is the single
// sanctioned read capability; Box is its only implementation in this package.
type Exposer[S any] interface {
	// ExposeSecret returns a reference to the secret content. The reference
	// is valid until the owning container is destroyed.
	ExposeSecret() *S
}

// New wraps an already-allocated value in a Box, taking ownership of it.
// The caller must not retain or reuse value after the call.
//
// The pointer constraint requires *S to implement zeroize.Zeroizer, so every
// content type used with a Box can be wiped.
func New[S any, P zeroize.Pointer[S]](value *S) *Box[S] {
	b := &Box[S]{}
	b.adopt(value, P(value))
	return b
}

// NewWithInit allocates zeroed heap storage for S and passes it to init so
// the secret is written directly to its final location, never copied there
// from a completed stack value. Temporaries created inside init are the
// initializer's own concern.
func NewWithInit[S any, P zeroize.Pointer[S]](init func(*S)) *Box[S] {
	value := new(S)
	init(value)
	return New[S, P](value)
}

// FromString moves secret text into a Box.
//
// The argument string itself cannot be overwritten afterwards (Go strings are
// immutable); callers holding other references to it keep them.
func FromString(s string) *String {
	v := zeroize.String(s)
	return New(&v)
}

// FromBytes moves a byte buffer into a Box, taking ownership of the backing
// array. The caller must not retain or reuse b after the call.
func FromBytes(b []byte) *Bytes {
	v := zeroize.Bytes(b)
	return New(&v)
}

// ExposeSecret returns a reference to the secret content, valid until the Box
// is destroyed. It is the only operation that yields the raw content.
//
// ExposeSecret panics if the Box is uninitialized or already destroyed; a
// container in either state has no content to give out, and continuing with
// one is a programming error.
func (b *Box[S]) ExposeSecret() *S {
	if b.value == nil {
		panic("secretbox: ExposeSecret on uninitialized or destroyed Box")
	}
	return b.value
}

// Zeroize wipes the content in place. The Box stays live: ExposeSecret keeps
// working and returns the wiped value. Safe to call more than once. This also
// makes a Box usable as content of an enclosing Box.
func (b *Box[S]) Zeroize() {
	if b.wipe == nil || b.destroyed {
		return
	}
	b.wipe.Zeroize()
}

// Destroy ends the Box's life: it wipes the content exactly once, cancels the
// collection-time cleanup, and releases the reference to the allocation.
// Destroy is idempotent; after it returns, ExposeSecret panics and
// serialization fails.
func (b *Box[S]) Destroy() {
	if b.destroyed || b.wipe == nil {
		return
	}
	b.cleanup.Stop()
	b.wipe.Zeroize()
	b.value = nil
	b.destroyed = true
}

// adopt installs value as the Box's content. A previously live content is
// wiped first so no reachable copy survives the swap.
func (b *Box[S]) adopt(value *S, wipe zeroize.Zeroizer) {
	if b.value != nil && !b.destroyed {
		b.cleanup.Stop()
		b.wipe.Zeroize()
	}
	b.value = value
	b.wipe = wipe
	b.destroyed = false
	// Wipe at collection time if the owner never calls Destroy. The argument
	// must not reference b or the Box would never be collected.
	b.cleanup = runtime.AddCleanup(b, func(w zeroize.Zeroizer) { w.Zeroize() }, wipe)
}

// Equal reports whether two boxes hold equal content. Equality is forwarded
// explicitly through ExposeSecret and compares exposed content, never
// allocation identity. The comparison is not constant-time; use EqualBytes
// for key material.
func Equal[S comparable](a, b *Box[S]) bool {
	return *a.ExposeSecret() == *b.ExposeSecret()
}

// EqualBytes reports whether two byte boxes hold equal content, in constant
// time for equal-length contents.
func EqualBytes(a, b *Bytes) bool {
	return subtle.ConstantTimeCompare(*a.ExposeSecret(), *b.ExposeSecret()) == 1
}
