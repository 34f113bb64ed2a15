// Package cv provides the validated résumé data model and its serialization engine.
package cv

import (
	"cmp"
	"slices"
)

// SortOrder selects ascending or descending (start, end) ordering
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ParseSortOrder accepts exactly "asc" and "desc".
func ParseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(s)
	if err := order.validate(); err != nil {
		return "", err
	}
	return order, nil
}

func (o SortOrder) validate() error {
	switch o {
	case Ascending, Descending:
		return nil
	}
	ve := newError(ErrInvalidArgument, "sort_type", "'%s' is not a sort order", string(o))
	ve.Allowed = []string{string(Ascending), string(Descending)}
	return ve
}

// dated is implemented by entities ordered on their (start, end) dates
type dated interface {
	period() (start, end *int)
}

// compareDated orders on start then end. An absent start sorts before every
// concrete start; an absent end (ongoing) sorts after every concrete end.
func compareDated(a, b dated) int {
	aStart, aEnd := a.period()
	bStart, bEnd := b.period()
	if c := compareOptional(aStart, bStart, -1); c != 0 {
		return c
	}
	return compareOptional(aEnd, bEnd, 1)
}

// compareOptional compares two optional codes; nilRank is the sign a nil
// value takes against a concrete one.
func compareOptional(a, b *int, nilRank int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return nilRank
	case b == nil:
		return -nilRank
	}
	return cmp.Compare(*a, *b)
}

// sortDated stable-sorts items in place. Ties keep their current relative order
// in both directions.
func sortDated[T dated](field string, items []T, order SortOrder) error {
	if err := order.validate(); err != nil {
		return err
	}
	if items == nil {
		return newError(ErrEmptyCollection, field, "is empty")
	}
	if order == Descending {
		slices.SortStableFunc(items, func(a, b T) int { return compareDated(b, a) })
		return nil
	}
	slices.SortStableFunc(items, func(a, b T) int { return compareDated(a, b) })
	return nil
}
