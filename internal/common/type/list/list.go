// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of pairs
// ending in the empty value.
package list

import (
	"github.com/michaelmacinnis/value/internal/common/type/value"
)

// Append appends each element in elements to the list start and returns
// the resulting list. If start is empty, a new list is created.
// It returns false, and leaves start unchanged, if start is not a proper list.
func Append(start value.T, elements ...value.T) (value.T, bool) {
	if _, ok := Length(start); !ok {
		return start, false
	}

	if len(elements) == 0 {
		return start, true
	}

	if start.IsEmpty() {
		return New(elements...), true
	}

	end := last(start)

	for _, e := range elements {
		p := value.Cons(e, value.Empty())
		_ = end.SetCdr(p)
		end = p
	}

	return start, true
}

// Length returns the number of elements in list. It returns false if list
// is not a proper list: an atom, a chain of pairs ending in an atom, or a
// circular chain of pairs.
func Length(list value.T) (int64, bool) {
	var length int64

	slow, fast := list, list

	for {
		if fast.IsEmpty() {
			return length, true
		}

		if !fast.IsPair() {
			return 0, false
		}

		fast, _ = fast.Cdr()
		length++

		if fast.IsEmpty() {
			return length, true
		}

		if !fast.IsPair() {
			return 0, false
		}

		fast, _ = fast.Cdr()
		length++

		slow, _ = slow.Cdr()
		if slow.Same(fast) {
			return 0, false
		}
	}
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...value.T) value.T {
	l := value.Empty()

	for i := len(elements) - 1; i >= 0; i-- {
		l = value.Cons(elements[i], l)
	}

	return l
}

// Nth returns the element at index in list. Negative values of index
// count backwards from the end of list.
func Nth(list value.T, index int64) (value.T, bool) {
	t, ok := Tail(list, index)
	if !ok {
		return value.Empty(), false
	}

	return t.Car()
}

// Reverse returns a new list with the elements of list in reverse order.
// It returns false if list is not a proper list.
func Reverse(list value.T) (value.T, bool) {
	if _, ok := Length(list); !ok {
		return value.Empty(), false
	}

	reversed := value.Empty()

	for list.IsPair() {
		car, _ := list.Car()
		reversed = value.Cons(car, reversed)

		list, _ = list.Cdr()
	}

	return reversed, true
}

// Tail returns the sublist of list starting at element index.
// Negative values of index count backwards from the end of list.
// It returns false if index is out of range or list is not a proper list.
func Tail(list value.T, index int64) (value.T, bool) {
	length, ok := Length(list)
	if !ok {
		return value.Empty(), false
	}

	if index < 0 {
		index = length + index
	}

	if index < 0 || index >= length {
		return value.Empty(), false
	}

	for index > 0 {
		list, _ = list.Cdr()

		index--
	}

	return list, true
}

// ToSlice returns the elements of list. It returns false if list is not a
// proper list.
func ToSlice(list value.T) ([]value.T, bool) {
	length, ok := Length(list)
	if !ok {
		return nil, false
	}

	s := make([]value.T, 0, length)

	for list.IsPair() {
		car, _ := list.Car()
		s = append(s, car)

		list, _ = list.Cdr()
	}

	return s, true
}

func last(list value.T) value.T {
	for {
		next, _ := list.Cdr()
		if !next.IsPair() {
			return list
		}

		list = next
	}
}
