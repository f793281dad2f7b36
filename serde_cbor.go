package secretbox

import "github.com/fxamacker/cbor/v2"

// MarshalCBOR serializes the content if and only if the content type
// implements Serializable; otherwise it returns ErrNotPermitted.
func (b Box[S]) MarshalCBOR() ([]byte, error) {
	if err := b.serializable(); err != nil {
		return nil, err
	}
	return cbor.Marshal(b.value)
}

// UnmarshalCBOR decodes into a zeroed heap-allocated S and moves it into the
// Box. Content a live Box held beforehand is wiped before the swap.
func (b *Box[S]) UnmarshalCBOR(data []byte) error {
	value := new(S)
	if err := cbor.Unmarshal(data, value); err != nil {
		return err
	}
	return b.adoptDecoded(value)
}
