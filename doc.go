// Package secretbox provides a guarded in-memory container for sensitive
// values such as passwords, API keys, and key material.
//
// A Box keeps its secret on a single heap allocation, renders a redaction
// placeholder through fmt and log/slog instead of content, yields the content
// only through the explicit ExposeSecret accessor, and overwrites the memory
// before releasing it.
//
//	password := secretbox.FromString("my_password")
//	defer password.Destroy()
//
//	fmt.Println(len(*password.ExposeSecret())) // 11
//	fmt.Println(password)                      // Box[zeroize.String]([REDACTED])
//
// Deserialization into a Box works with encoding/json, gopkg.in/yaml.v3 and
// github.com/fxamacker/cbor/v2 out of the box. Serialization is rejected with
// ErrNotPermitted unless the content type opts in by implementing the
// Serializable marker.
//
// Scope: the package manages a value's lifetime and visibility in process
// memory, nothing more. It does not lock pages, defend against swap, core
// dumps, or debuggers, and performs no cryptography. Allocation failure
// aborts the process, as the Go runtime always does; there is no recoverable
// half-constructed container state.
package secretbox
