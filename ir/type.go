package ir

import "fmt"

type Type int

const (
	StringType Type = iota
	IntegerType
	ListType
	DictType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType:  "String",
		IntegerType: "Integer",
		ListType:    "List",
		DictType:    "Dict",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"String":  StringType,
		"Integer": IntegerType,
		"List":    ListType,
		"Dict":    DictType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		StringType,
		IntegerType,
		ListType,
		DictType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ListType, DictType:
		return false
	default:
		return true
	}
}
