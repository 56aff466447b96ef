package json

// Equal reports whether a and b denote the same JSON value: the same
// kind, with Numbers compared across representations (spec §4.1,
// Number equality), Arrays compared element-by-element in order, and
// Objects compared by their last-write-wins member set (duplicate
// names shadow all but their final occurrence for equality purposes,
// even though the tree itself retains every occurrence).
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n.Equal(b.n)
	case KindString:
		return a.s == b.s
	case KindArray:
		return equalArray(a.arr, b.arr)
	case KindObject:
		return equalObject(a.obj, b.obj)
	default:
		return false
	}
}

func equalArray(a, b *Array) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		av, _ := a.At(i)
		bv, _ := b.At(i)
		if !Equal(av, bv) {
			return false
		}
	}
	return true
}

func equalObject(a, b *Object) bool {
	am, bm := lastWriteMembers(a), lastWriteMembers(b)
	if len(am) != len(bm) {
		return false
	}
	for k, av := range am {
		bv, ok := bm[k]
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}

// lastWriteMembers collapses o's (possibly duplicate-keyed) members
// into a map where a repeated name resolves to its last occurrence.
func lastWriteMembers(o *Object) map[string]Value {
	m := make(map[string]Value, o.Len())
	o.Each(func(key string, v Value) bool {
		m[key] = v
		return true
	})
	return m
}
