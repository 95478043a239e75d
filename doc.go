// Copyright 2026 The denseview Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package denseview provides zero-allocation views over dense
// column-major memory and the scoped protection that keeps the backing
// storage alive while views over it are in use.
//
// The package defines the core types for pointer+shape memory access:
//   - View[T]: a non-owning base-address-plus-extents window
//   - Array[T]: a minimal owning dense array, the reference view owner
//   - SliceSpec: per-dimension selectors for sub-view derivation
//   - Scope: stack-discipline protection for view owners
//
// Views are one-based and column-major: the first dimension varies
// fastest, and element k of a view lives k-1 elements past its base.
// A sub-selection only gets a zero-copy view when it occupies one
// contiguous run of memory; strided selections report NeedsCopy and the
// caller falls back to an owning representation.
//
// Example:
//
//	a, _ := denseview.FromSlice(data, denseview.Shape{8, 7})
//	err := denseview.WithViews(func(views []denseview.View[float64]) error {
//	    col, _, _ := views[0].SubView(denseview.SliceSpec{
//	        denseview.All(), denseview.Index(3),
//	    })
//	    _ = col
//	    return nil
//	}, a)
package denseview
