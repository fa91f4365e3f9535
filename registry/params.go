package registry

import (
	"github.com/mitchellh/mapstructure"

	"github.com/presstools/core/errors"
)

// Params is the loosely typed parameter bag handed to factories. A nil bag is
// valid and decodes as empty.
type Params map[string]any

// Decode maps the bag onto a typed parameter struct using mapstructure tags.
// Input is weakly typed: "true" decodes into a bool field, "10" into an int.
func (p Params) Decode(command string, out any) error {
	if p == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to create params decoder")
	}
	if err := decoder.Decode(map[string]any(p)); err != nil {
		return errors.ParamsDecodeFailed(command, err)
	}
	return nil
}

// String returns a string-typed parameter and whether it was present.
func (p Params) String(key string) (string, bool) {
	val, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}
