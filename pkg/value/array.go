package value

// Array is an ordered sequence of values. Elements may be nil when the bridge
// represents YAML null as absence; positions are preserved either way.
type Array struct {
	items []Value
}

// NewArray returns an empty array with room for n elements.
func NewArray(n int) *Array {
	return &Array{items: make([]Value, 0, n)}
}

// ArrayOf returns an array holding items in order.
func ArrayOf(items ...Value) *Array {
	a := NewArray(len(items))
	a.items = append(a.items, items...)
	return a
}

func (*Array) Kind() Kind { return KindArray }
func (*Array) isValue()   {}

// Append adds v at the end of the array.
func (a *Array) Append(v Value) {
	a.items = append(a.items, v)
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.items)
}

// At returns the element at index i (0-based).
func (a *Array) At(i int) Value {
	return a.items[i]
}

// Items returns the backing slice. Callers must not modify it.
func (a *Array) Items() []Value {
	return a.items
}
