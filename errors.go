package secretbox

import "errors"

// Sentinel errors returned by the serialization gates. Test with errors.Is.
var (
	// ErrNotPermitted indicates serialization was attempted on a Box whose
	// content type does not implement the Serializable marker. Secrets do not
	// leave process memory unless their type visibly opts in.
	ErrNotPermitted = errors.New("serialization not permitted")

	// ErrNotZeroizable indicates deserialization produced a content type whose
	// pointer does not implement zeroize.Zeroizer. The decoded value is not
	// adopted; no container is left holding unwipeable content.
	ErrNotZeroizable = errors.New("content type is not zeroizable")

	// ErrDestroyed indicates an operation that needs content was invoked on a
	// Box after Destroy.
	ErrDestroyed = errors.New("box is destroyed")
)
