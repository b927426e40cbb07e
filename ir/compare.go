package ir

import (
	"bytes"
	"cmp"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case StringType:
		return bytes.Compare(a.Bytes, b.Bytes)
	case IntegerType:
		return cmp.Compare(a.Int64, b.Int64)
	case ListType:
		return compareLists(a, b)
	case DictType:
		return compareDicts(a, b)
	}
	return 0
}

// Equal reports whether a and b represent the same value.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: String < Integer < List < Dict
func rank(t Type) int {
	switch t {
	case StringType:
		return 0
	case IntegerType:
		return 1
	case ListType:
		return 2
	case DictType:
		return 3
	}
	return 100
}

func compareLists(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareDicts(a, b *Node) int {
	// Fields are sorted by key bytes, so pairwise key comparison
	// followed by value comparison gives a deterministic order.
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
