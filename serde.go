package secretbox

import (
	"encoding/json"
	"fmt"

	"github.com/allisson/secretbox/zeroize"
)

// Serializable marks content types that may leave process memory through a
// Box's serialization gates. It is a pure opt-in flag: implementing it states
// that the exfiltration risk of serializing the secret has been reviewed and
// accepted. SerializableSecret is never called.
//
// Deserialization into a Box needs no marker; only the outbound direction is
// gated. Content types without the marker get ErrNotPermitted from every
// marshal attempt.
type Serializable interface {
	SerializableSecret()
}

// serializable reports whether the gate is open for this Box's content type.
// Checked against *S so markers with value or pointer receivers both count.
func (b Box[S]) serializable() error {
	if b.value == nil {
		if b.destroyed {
			return ErrDestroyed
		}
		return fmt.Errorf("%w: uninitialized Box", ErrNotPermitted)
	}
	if _, ok := any(b.value).(Serializable); !ok {
		return fmt.Errorf("%w: %T does not implement secretbox.Serializable", ErrNotPermitted, *b.value)
	}
	return nil
}

// adoptDecoded installs a freshly deserialized value, verifying at run time
// that it can be wiped. Go resolves interface satisfaction dynamically, so
// this check cannot be pushed to compile time the way the constructors'
// pointer constraint is.
func (b *Box[S]) adoptDecoded(value *S) error {
	wipe, ok := any(value).(zeroize.Zeroizer)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotZeroizable, *value)
	}
	b.adopt(value, wipe)
	return nil
}

// MarshalJSON serializes the content if and only if the content type
// implements Serializable; otherwise it returns ErrNotPermitted.
func (b Box[S]) MarshalJSON() ([]byte, error) {
	if err := b.serializable(); err != nil {
		return nil, err
	}
	return json.Marshal(b.value)
}

// UnmarshalJSON decodes into a zeroed heap-allocated S and moves it into the
// Box. Content a live Box held beforehand is wiped before the swap. On error
// the Box is left unchanged.
func (b *Box[S]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	value := new(S)
	if err := json.Unmarshal(data, value); err != nil {
		return err
	}
	return b.adoptDecoded(value)
}
