package types

// KeyedTable is an insertion-ordered mapping with unique keys.
// Set on an existing key overwrites the value in place; Remove compacts the
// order. The zero value is not usable; call NewKeyedTable.
type KeyedTable[K comparable, V any] struct {
	index  map[K]int
	keys   []K
	values []V
}

// NewKeyedTable returns an empty table.
func NewKeyedTable[K comparable, V any]() *KeyedTable[K, V] {
	return &KeyedTable[K, V]{index: make(map[K]int)}
}

// Set inserts key with value, or overwrites the value if key is present.
func (t *KeyedTable[K, V]) Set(key K, value V) {
	if i, ok := t.index[key]; ok {
		t.values[i] = value
		return
	}
	t.index[key] = len(t.keys)
	t.keys = append(t.keys, key)
	t.values = append(t.values, value)
}

// Get returns the value stored under key.
// Returns ErrNotFound if key is absent.
func (t *KeyedTable[K, V]) Get(key K) (V, error) {
	i, ok := t.index[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	return t.values[i], nil
}

// HasKey reports whether key is present.
func (t *KeyedTable[K, V]) HasKey(key K) bool {
	_, ok := t.index[key]
	return ok
}

// Remove deletes key and its value.
// Returns ErrNotFound if key is absent.
func (t *KeyedTable[K, V]) Remove(key K) error {
	i, ok := t.index[key]
	if !ok {
		return ErrNotFound
	}
	delete(t.index, key)
	t.keys = append(t.keys[:i], t.keys[i+1:]...)
	t.values = append(t.values[:i], t.values[i+1:]...)
	for j := i; j < len(t.keys); j++ {
		t.index[t.keys[j]] = j
	}
	return nil
}

// Keys returns a copy of the keys in insertion order. An empty table yields
// an empty, non-nil slice.
func (t *KeyedTable[K, V]) Keys() []K {
	out := make([]K, len(t.keys))
	copy(out, t.keys)
	return out
}

// Size returns the number of entries.
func (t *KeyedTable[K, V]) Size() int {
	return len(t.keys)
}
