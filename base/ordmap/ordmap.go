// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements a map that keeps its entries in the order
// they were first added, for outputs where that order matters, such as
// camera state attributes.
package ordmap

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// KeyValue is one entry of a [Map].
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an ordered map. Order holds the entries and index maps
// each key to its position in Order.
type Map[K comparable, V any] struct {
	Order []KeyValue[K, V]
	index map[K]int
}

// New returns a new empty map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: map[K]int{}}
}

// Make returns a map with the given entries, in order. A repeated key
// keeps the position of its first entry and the value of its last.
func Make[K comparable, V any](kvs []KeyValue[K, V]) *Map[K, V] {
	om := New[K, V]()
	for _, kv := range kvs {
		om.Add(kv.Key, kv.Value)
	}
	return om
}

// Add sets the value of the given key. A new key goes at the end;
// an existing key keeps its position.
func (om *Map[K, V]) Add(key K, val V) {
	if om.index == nil {
		om.reindex()
	}
	if i, ok := om.index[key]; ok {
		om.Order[i].Value = val
		return
	}
	om.index[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{key, val})
}

// reindex rebuilds the key index from Order.
func (om *Map[K, V]) reindex() {
	om.index = make(map[K]int, len(om.Order))
	for i, kv := range om.Order {
		om.index[kv.Key] = i
	}
}

// Len returns the number of entries. A nil map has none.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// IndexByKey returns the position of the given key, or -1.
func (om *Map[K, V]) IndexByKey(key K) int {
	if om.index == nil {
		om.reindex()
	}
	if i, ok := om.index[key]; ok {
		return i
	}
	return -1
}

// ValueByKeyTry returns the value of the given key and whether it is present.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	if i := om.IndexByKey(key); i >= 0 {
		return om.Order[i].Value, true
	}
	var zero V
	return zero, false
}

// ValueByKey returns the value of the given key, or the zero value.
func (om *Map[K, V]) ValueByKey(key K) V {
	v, _ := om.ValueByKeyTry(key)
	return v
}

// ValueByIndex returns the value at the given position.
func (om *Map[K, V]) ValueByIndex(i int) V {
	return om.Order[i].Value
}

// DeleteKey removes the given key, returning false if it was not present.
func (om *Map[K, V]) DeleteKey(key K) bool {
	i := om.IndexByKey(key)
	if i < 0 {
		return false
	}
	om.Order = slices.Delete(om.Order, i, i+1)
	om.reindex()
	return true
}

// Copy adds all of the entries of the other map, in its order.
func (om *Map[K, V]) Copy(other *Map[K, V]) {
	for _, kv := range other.Order {
		om.Add(kv.Key, kv.Value)
	}
}

// Keys returns the keys in order.
func (om *Map[K, V]) Keys() []K {
	keys := make([]K, len(om.Order))
	for i, kv := range om.Order {
		keys[i] = kv.Key
	}
	return keys
}

// Values returns the values in order.
func (om *Map[K, V]) Values() []V {
	vals := make([]V, len(om.Order))
	for i, kv := range om.Order {
		vals[i] = kv.Value
	}
	return vals
}

// All iterates over the entries in order.
func (om *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, kv := range om.Order {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// String returns the entries as space separated key=value pairs.
func (om *Map[K, V]) String() string {
	var sb strings.Builder
	for i, kv := range om.Order {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v=%v", kv.Key, kv.Value)
	}
	return sb.String()
}
