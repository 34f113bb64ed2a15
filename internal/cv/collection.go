// Package cv provides the validated résumé data model and its serialization engine.
package cv

import "slices"

// Ptr returns a pointer to v. Handy for optional scalar fields.
func Ptr[T any](v T) *T {
	return &v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// addItem appends item, turning an unset list into a populated one.
func addItem[T any](list *[]T, item T) {
	if *list == nil {
		*list = make([]T, 0, 1)
	}
	*list = append(*list, item)
}

// removeItem drops the first element equal to item. Removing the last
// element leaves an empty, not unset, list.
func removeItem[T comparable](field string, list *[]T, item T) error {
	if *list == nil {
		return newError(ErrEmptyCollection, field, "is empty")
	}
	i := slices.Index(*list, item)
	if i < 0 {
		return newError(ErrNotFound, field, "value not in list")
	}
	*list = slices.Delete(*list, i, i+1)
	return nil
}

// reorderItems rebuilds the list from the elements at order, in that order.
// All indices are checked before the list is touched. order is not required
// to be a permutation: repeated indices duplicate elements, missing ones drop them.
func reorderItems[T any](field string, list *[]T, order []int) error {
	if *list == nil {
		return newError(ErrEmptyCollection, field, "is empty")
	}
	if order == nil {
		return newError(ErrInvalidType, "order", "expect a list of indices")
	}
	current := *list
	for _, i := range order {
		if i < 0 || i >= len(current) {
			return newError(ErrIndexOutOfRange, field, "index %d out of range [0, %d)", i, len(current))
		}
	}
	reordered := make([]T, 0, len(order))
	for _, i := range order {
		reordered = append(reordered, current[i])
	}
	*list = reordered
	return nil
}

// listValue exposes a typed list as a generic sequence, keeping unset as nil.
func listValue[T any](items []T) any {
	if items == nil {
		return nil
	}
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func noNil[T any](field string, items []*T) error {
	for i, item := range items {
		if item == nil {
			return newError(ErrInvalidType, field, "element %d is nil", i)
		}
	}
	return nil
}
