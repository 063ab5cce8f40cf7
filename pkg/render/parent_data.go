package render

// The parent-data slot lets a parent attach layout metadata to a child (a
// flex factor, a grid cell, a box offset) without the child type knowing
// about every possible parent. The slot is type-erased; the accessors below
// recover it by type identity and fail gracefully - ok=false, never a panic
// - when the stored concrete type does not match. Access conflicts, on the
// other hand, stay fatal: the typed guards hold the node's shared or
// exclusive borrow until released, same as any other view of the node.
//
// These are free functions because Go methods cannot introduce type
// parameters.

// SetParentData overwrites the node's parent-data slot with value,
// discarding whatever was stored before regardless of its type.
func SetParentData[T any](c *PaintContext, value T) {
	guard := c.node.DataMut()
	defer guard.Release()
	guard.setParentData(&value)
}

// ParentData returns a shared typed view of the node's parent-data slot, or
// ok=false if the slot is empty or holds a different concrete type.
func ParentData[T any](c *PaintContext) (*ParentDataRef[T], bool) {
	guard := c.node.Data()
	value, ok := guard.parentData().(*T)
	if !ok {
		guard.Release()
		return nil, false
	}
	return &ParentDataRef[T]{guard: guard, value: value}, true
}

// ParentDataMut returns an exclusive typed view of the node's parent-data
// slot, or ok=false if the slot is empty or holds a different concrete type.
func ParentDataMut[T any](c *PaintContext) (*ParentDataMutRef[T], bool) {
	guard := c.node.DataMut()
	value, ok := guard.parentData().(*T)
	if !ok {
		guard.Release()
		return nil, false
	}
	return &ParentDataMutRef[T]{guard: guard, value: value}, true
}

// ParentDataRef is a shared typed view of a node's parent-data slot.
// It holds the node's shared borrow until released.
type ParentDataRef[T any] struct {
	guard *DataRef
	value *T
}

// Get returns the stored value.
func (r *ParentDataRef[T]) Get() T {
	r.guard.check("render.ParentDataRef.Get")
	return *r.value
}

// Release returns the underlying shared view. Idempotent.
func (r *ParentDataRef[T]) Release() {
	r.guard.Release()
}

// ParentDataMutRef is an exclusive typed view of a node's parent-data slot.
// It holds the node's exclusive borrow until released.
type ParentDataMutRef[T any] struct {
	guard *DataMutRef
	value *T
}

// Get returns the stored value.
func (r *ParentDataMutRef[T]) Get() T {
	r.guard.check("render.ParentDataMutRef.Get")
	return *r.value
}

// Set replaces the stored value in place.
func (r *ParentDataMutRef[T]) Set(value T) {
	r.guard.check("render.ParentDataMutRef.Set")
	*r.value = value
}

// Release returns the underlying exclusive view. Idempotent.
func (r *ParentDataMutRef[T]) Release() {
	r.guard.Release()
}
