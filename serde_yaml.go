package secretbox

import "gopkg.in/yaml.v3"

// MarshalYAML serializes the content if and only if the content type
// implements Serializable; otherwise it returns ErrNotPermitted.
func (b Box[S]) MarshalYAML() (any, error) {
	if err := b.serializable(); err != nil {
		return nil, err
	}
	return b.value, nil
}

// UnmarshalYAML decodes a YAML node into a zeroed heap-allocated S and moves
// it into the Box. YAML configuration files are a common carrier for API keys
// and passwords; fields typed as a Box capture them redacted-by-default.
func (b *Box[S]) UnmarshalYAML(node *yaml.Node) error {
	value := new(S)
	if err := node.Decode(value); err != nil {
		return err
	}
	return b.adoptDecoded(value)
}
