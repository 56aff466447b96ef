package json

// PathElem is one segment of a navigation path through a Value tree:
// either an object member name or an array index.
type PathElem struct {
	key   string
	idx   int
	isKey bool
}

// Key constructs a path segment that selects an object member.
func Key(key string) PathElem { return PathElem{key: key, isKey: true} }

// Index constructs a path segment that selects an array element.
func Index(i int) PathElem { return PathElem{idx: i} }

// IndexRead navigates v along path and returns the Value found there.
// It is total: any missing member, out-of-range index, or a path
// segment that doesn't match the container kind present at that point
// simply yields the shared Null value, never an error and never a
// mutation (spec §3.4, read-mode navigation).
func IndexRead(v Value, path ...PathElem) Value {
	cur := v
	for _, seg := range path {
		if seg.isKey {
			if cur.kind != KindObject {
				return Null
			}
			child, ok := cur.obj.Get(seg.key)
			if !ok {
				return Null
			}
			cur = child
		} else {
			if cur.kind != KindArray {
				return Null
			}
			child, ok := cur.arr.At(seg.idx)
			if !ok {
				return Null
			}
			cur = child
		}
	}
	return cur
}

// IndexWrite sets the Value at path within *root to v, creating
// (or replacing) intermediate objects and arrays as needed to
// materialize the path: a missing object member is inserted holding
// Null until the recursion fills it in, and an array shorter than an
// index is padded with Null elements (spec §3.4, write-mode
// create-on-write navigation). A path segment that finds a container
// of the wrong kind at that point replaces it outright.
func IndexWrite(root *Value, v Value, path ...PathElem) {
	if len(path) == 0 {
		*root = v
		return
	}
	seg, rest := path[0], path[1:]
	if seg.isKey {
		if root.kind != KindObject {
			*root = NewObject(nil)
		}
		obj := root.obj
		child, ok := obj.Get(seg.key)
		if !ok {
			child = Null
		}
		IndexWrite(&child, v, rest...)
		obj.Set(seg.key, child)
	} else {
		if root.kind != KindArray {
			*root = NewArray(nil)
		}
		arr := root.arr
		for arr.Len() <= seg.idx {
			arr.PushBack(Null)
		}
		child, _ := arr.At(seg.idx)
		IndexWrite(&child, v, rest...)
		arr.Set(seg.idx, child)
	}
}
