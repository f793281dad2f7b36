package secretbox

import (
	"fmt"
	"io"
	"log/slog"
)

// Redacted is the placeholder rendered in place of secret content.
const Redacted = "[REDACTED]"

// redacted renders the placeholder with the content type's name, e.g.
// "Box[zeroize.String]([REDACTED])". It never touches the content, so it is
// safe on uninitialized and destroyed boxes.
func (b Box[S]) redacted() string {
	var zero S
	return fmt.Sprintf("Box[%T](%s)", zero, Redacted)
}

// String implements fmt.Stringer, rendering the redaction placeholder.
func (b Box[S]) String() string {
	return b.redacted()
}

// GoString implements fmt.GoStringer so %#v output is redacted too.
func (b Box[S]) GoString() string {
	return b.redacted()
}

// Format implements fmt.Formatter, rendering the redaction placeholder for
// every verb. This covers boxes embedded in other structures' %v and %+v
// output, where field-by-field reflection would otherwise apply.
func (b Box[S]) Format(f fmt.State, verb rune) {
	_, _ = io.WriteString(f, b.redacted())
}

// LogValue implements slog.LogValuer so structured log records carry the
// placeholder instead of the secret.
func (b Box[S]) LogValue() slog.Value {
	return slog.StringValue(b.redacted())
}
