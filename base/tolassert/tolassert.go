// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality
// of numbers within a tolerance.
package tolassert

import (
	"github.com/stretchr/testify/assert"
)

// Float is a floating point type.
type Float interface {
	~float32 | ~float64
}

// EqualTol asserts that the given two numbers are equal
// within the given tolerance.
func EqualTol[T Float](t assert.TestingT, expected, actual, tol T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, float64(expected), float64(actual), float64(tol), msgAndArgs...)
}

// EqualTolSlice asserts that the given two slices have the same length
// and elements that are equal within the given tolerance.
func EqualTolSlice[T Float](t assert.TestingT, expected, actual []T, tol T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	ok := true
	for i := range expected {
		ok = assert.InDelta(t, float64(expected[i]), float64(actual[i]), float64(tol), msgAndArgs...) && ok
	}
	return ok
}
