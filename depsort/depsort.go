// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package depsort maintains a slice in dependency order as items are
// inserted one at a time: no element ever depends on an element after it.
package depsort

import (
	"slices"

	"cogentcore.org/scene/base/errors"
)

// ErrCyclicDependency is returned by [Order.Insert] when inserting the item
// would create a dependency cycle.
var ErrCyclicDependency = errors.New("cyclic dependency")

// Order defines the dependency relation used to order a list.
type Order[T any] struct {

	// DependsOn reports whether a must come after b.
	DependsOn func(a, b T) bool

	// Independent reports whether a has no dependencies at all,
	// in which case it is placed at the head of the list.
	// If nil, the head is used only when nothing before matches.
	Independent func(a T) bool
}

// Insert returns the list with item inserted at a position that keeps
// the list in dependency order. The item is placed right after the last
// element it depends on, and any earlier elements that depend on a newly
// placed element are moved right after it, keeping their relative order.
// If the item would close a dependency cycle the list is returned
// unchanged along with an error wrapping [ErrCyclicDependency].
func (o Order[T]) Insert(list []T, item T) ([]T, error) {
	if o.cyclic(list, item) {
		return list, errors.Errorf("depsort.Insert: %w", ErrCyclicDependency)
	}
	if o.Independent != nil && o.Independent(item) {
		return slices.Insert(list, 0, item), nil
	}
	pos := 0
	for i := len(list) - 1; i >= 0; i-- {
		if o.DependsOn(item, list[i]) {
			pos = i + 1
			break
		}
	}
	list = slices.Insert(list, pos, item)
	return o.settle(list, pos), nil
}

// settle moves the elements before index p that depend on list[p] to
// right after it, and then settles each moved element in turn.
// Elements after the moved block keep their indexes.
func (o Order[T]) settle(list []T, p int) []T {
	el := list[p]
	var keep, movers []T
	for i := 0; i < p; i++ {
		if o.DependsOn(list[i], el) {
			movers = append(movers, list[i])
		} else {
			keep = append(keep, list[i])
		}
	}
	if len(movers) == 0 {
		return list
	}
	nl := make([]T, 0, len(list))
	nl = append(nl, keep...)
	nl = append(nl, el)
	nl = append(nl, movers...)
	nl = append(nl, list[p+1:]...)
	base := len(keep) + 1
	for j := range movers {
		nl = o.settle(nl, base+j)
	}
	return nl
}

// cyclic reports whether any element the item transitively depends on
// in turn depends on the item.
func (o Order[T]) cyclic(list []T, item T) bool {
	reached := make([]bool, len(list))
	var queue []int
	for i, e := range list {
		if o.DependsOn(item, e) {
			reached[i] = true
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		if o.DependsOn(list[i], item) {
			return true
		}
		for j, e := range list {
			if !reached[j] && j != i && o.DependsOn(list[i], e) {
				reached[j] = true
				queue = append(queue, j)
			}
		}
	}
	return false
}

// Valid reports whether no element of the list depends on an element after it.
func (o Order[T]) Valid(list []T) bool {
	for i := range list {
		for j := i + 1; j < len(list); j++ {
			if o.DependsOn(list[i], list[j]) {
				return false
			}
		}
	}
	return true
}
