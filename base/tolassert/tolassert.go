// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides assert functions for testing
// approximate equality of float values within a tolerance.
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Equal checks whether the two given values are equal within the
// default tolerance of 0.001.
func Equal(t *testing.T, expected, actual float32, msgAndArgs ...any) bool {
	t.Helper()
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}

// EqualTol checks whether the two given values are equal within the
// given tolerance.
func EqualTol(t *testing.T, expected, actual, tol float32, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDelta(t, expected, actual, float64(tol), msgAndArgs...)
}
