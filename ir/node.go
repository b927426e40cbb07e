package ir

import (
	"bytes"
	"maps"
	"slices"
	"sort"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	// Bytes holds the payload of a StringType node. Byte strings are
	// arbitrary binary data, not required to be valid text.
	Bytes []byte

	// Int64 holds the payload of an IntegerType node.
	Int64 int64

	// Fields holds the keys of a DictType node, always StringType and
	// always sorted by raw key bytes. Values holds the dictionary
	// values in parallel to Fields, or the elements of a ListType node.
	Fields []*Node
	Values []*Node
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Int64 = y.Int64
	if y.Bytes != nil {
		dst.Bytes = bytes.Clone(y.Bytes)
	}
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = string(yf.Bytes)
		dst.Fields[i] = dstI
	}
	return dst
}

func FromBytes(v []byte) *Node {
	return FromBytesAt(&Node{}, v)
}

func FromBytesAt(p *Node, v []byte) *Node {
	p.Type = StringType
	p.Bytes = v
	return p
}

func FromString(v string) *Node {
	return FromBytes([]byte(v))
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntegerType,
		Int64: v,
	}
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != DictType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[string(node.Fields[i].Bytes)] = node.Values[i]
	}
	return res
}

func FromMap(yMap map[string]*Node) *Node {
	return FromMapAt(&Node{}, yMap)
}

func FromMapAt(res *Node, yMap map[string]*Node) *Node {
	res.Type = DictType
	res.Fields = make([]*Node, len(yMap))
	res.Values = make([]*Node, len(yMap))
	// string comparison coincides with bytes.Compare on raw key
	// bytes, so this is canonical dictionary order.
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		y := yMap[key]
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = key
		yField := &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			Bytes:       []byte(key),
		}
		res.Fields[i] = yField
		res.Values[i] = y
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals assembles a dictionary from key/value pairs in wire order.
// Keys must be StringType nodes. Entries are stored sorted by raw key
// bytes; when a key repeats, the last value wins.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{}
	return FromKeyValsAt(res, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	yMap := make(map[string]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		yMap[string(kv.Key.Bytes)] = kv.Val
	}
	return FromMapAt(res, yMap)
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ListType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

// Get returns the value stored under field, or nil if y is not a
// dictionary or has no such key. Fields are sorted, so lookup is a
// binary search.
func Get(y *Node, field string) *Node {
	if y.Type != DictType {
		return nil
	}
	key := []byte(field)
	n := len(y.Fields)
	i := sort.Search(n, func(i int) bool {
		return bytes.Compare(y.Fields[i].Bytes, key) >= 0
	})
	if i < n && bytes.Equal(y.Fields[i].Bytes, key) {
		return y.Values[i]
	}
	return nil
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
