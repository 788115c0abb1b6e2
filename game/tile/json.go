package tile

import "errors"

// MarshalText implements the encoding.TextMarshaler interface to write tiles as their display value.
// Used by the json and yaml encoders.
func (t Tile) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, errors.New("cannot marshal invalid tile")
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface to read tiles from their display value.
func (t *Tile) UnmarshalText(b []byte) error {
	t2, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = t2
	return nil
}
