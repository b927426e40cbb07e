package ir

import "fmt"

// Lookup returns the value stored under field, or an error when y is
// not a dictionary or the key is absent.
func (y *Node) Lookup(field string) (*Node, error) {
	if y.Type != DictType {
		return nil, fmt.Errorf("%w: lookup %q on %s", ErrBadType, field, y.Type)
	}
	v := Get(y, field)
	if v == nil {
		return nil, fmt.Errorf("no field %q", field)
	}
	return v, nil
}

// Index returns the i'th element of a list node.
func (y *Node) Index(i int) (*Node, error) {
	if y.Type != ListType {
		return nil, fmt.Errorf("%w: index %d on %s", ErrBadType, i, y.Type)
	}
	if i < 0 || i >= len(y.Values) {
		return nil, fmt.Errorf("index %d out of range [0, %d)", i, len(y.Values))
	}
	return y.Values[i], nil
}
