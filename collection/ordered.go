package collection

import "math/rand/v2"

// Entry is a single key/value pair from an Ordered map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Ordered is a map that remembers the order keys were first inserted in.
// Overwriting an existing key keeps its original position. Instances are
// not safe for concurrent mutation.
type Ordered[K comparable, V any] struct {
	keys  []K
	items map[K]V
}

// NewOrdered creates an empty ordered map.
func NewOrdered[K comparable, V any]() *Ordered[K, V] {
	return &Ordered[K, V]{
		items: make(map[K]V),
	}
}

// Set inserts or overwrites the value for key.
func (o *Ordered[K, V]) Set(key K, value V) {
	if _, ok := o.items[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.items[key] = value
}

// Get returns the value for key and whether it was present.
func (o *Ordered[K, V]) Get(key K) (V, bool) {
	v, ok := o.items[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Ordered[K, V]) Has(key K) bool {
	_, ok := o.items[key]
	return ok
}

// Delete removes key and reports whether it was present.
func (o *Ordered[K, V]) Delete(key K) bool {
	if _, ok := o.items[key]; !ok {
		return false
	}
	delete(o.items, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of entries.
func (o *Ordered[K, V]) Len() int {
	return len(o.keys)
}

// First returns the oldest entry's value.
func (o *Ordered[K, V]) First() (V, bool) {
	if len(o.keys) == 0 {
		var zero V
		return zero, false
	}
	return o.items[o.keys[0]], true
}

// FirstN returns up to n values in insertion order, oldest first.
func (o *Ordered[K, V]) FirstN(n int) []V {
	if n > len(o.keys) {
		n = len(o.keys)
	}
	if n <= 0 {
		return nil
	}
	out := make([]V, 0, n)
	for _, k := range o.keys[:n] {
		out = append(out, o.items[k])
	}
	return out
}

// Last returns the newest entry's value.
func (o *Ordered[K, V]) Last() (V, bool) {
	if len(o.keys) == 0 {
		var zero V
		return zero, false
	}
	return o.items[o.keys[len(o.keys)-1]], true
}

// LastN returns up to n values from the end, still in insertion order.
func (o *Ordered[K, V]) LastN(n int) []V {
	if n > len(o.keys) {
		n = len(o.keys)
	}
	if n <= 0 {
		return nil
	}
	out := make([]V, 0, n)
	for _, k := range o.keys[len(o.keys)-n:] {
		out = append(out, o.items[k])
	}
	return out
}

// Random returns a single value chosen uniformly at random.
func (o *Ordered[K, V]) Random() (V, bool) {
	if len(o.keys) == 0 {
		var zero V
		return zero, false
	}
	return o.items[o.keys[rand.IntN(len(o.keys))]], true
}

// RandomN returns up to n distinct values in no particular order.
// Not suitable for anything requiring cryptographic randomness.
func (o *Ordered[K, V]) RandomN(n int) []V {
	if n > len(o.keys) {
		n = len(o.keys)
	}
	if n <= 0 {
		return nil
	}
	out := make([]V, 0, n)
	for _, i := range rand.Perm(len(o.keys))[:n] {
		out = append(out, o.items[o.keys[i]])
	}
	return out
}

// Values returns all values in insertion order.
func (o *Ordered[K, V]) Values() []V {
	out := make([]V, 0, len(o.keys))
	for _, k := range o.keys {
		out = append(out, o.items[k])
	}
	return out
}

// Keys returns all keys in insertion order.
func (o *Ordered[K, V]) Keys() []K {
	out := make([]K, len(o.keys))
	copy(out, o.keys)
	return out
}

// Entries returns all key/value pairs in insertion order.
func (o *Ordered[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(o.keys))
	for _, k := range o.keys {
		out = append(out, Entry[K, V]{Key: k, Value: o.items[k]})
	}
	return out
}
