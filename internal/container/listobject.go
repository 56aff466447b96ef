//go:build list_object

package container

// NewObject constructs the build's selected Object backing. With the
// list_object build tag set, members are held in a doubly linked list:
// O(1) append, O(n) lookup, stable addresses across mutation. Grounded
// on original_source/src/value/object/linked_list.rs.
func NewObject[V any]() Object[V] {
	return &listObject[V]{}
}

type listObject[V any] struct {
	l list[V]
}

func (o *listObject[V]) Len() int { return o.l.Len() }

func (o *listObject[V]) Get(key string) (V, bool) {
	var zero V
	var found *node[V]
	o.l.each(func(_ int, n *node[V]) bool {
		if n.key == key {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return zero, false
	}
	return found.val, true
}

func (o *listObject[V]) At(i int) (string, V, bool) {
	var zero V
	n := o.l.nodeAt(i)
	if n == nil {
		return "", zero, false
	}
	return n.key, n.val, true
}

func (o *listObject[V]) Insert(key string, v V) {
	n := o.l.pushBack(v)
	n.key = key
}

func (o *listObject[V]) Remove(key string) int {
	count := 0
	for {
		c := &cursor[V]{l: &o.l, n: o.l.head}
		removed := false
		for c.valid() {
			if c.n.key == key {
				c.remove()
				count++
				removed = true
				break
			}
			c.next()
		}
		if !removed {
			break
		}
	}
	return count
}

func (o *listObject[V]) Each(fn func(key string, v V) bool) {
	o.l.each(func(_ int, n *node[V]) bool { return fn(n.key, n.val) })
}
