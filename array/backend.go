// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package array

import (
	"fmt"
	"sync/atomic"

	"github.com/ajroetker/hwyarray/hwy"
	"github.com/ajroetker/hwyarray/hwy/contrib/workerpool"
)

// Backend selects the storage layout and kernels of an Array or Mask.
type Backend int

const (
	// Vector pads rows to 16-lane registers and runs the hwy kernels.
	Vector Backend = iota

	// Scalar stores a flat element sequence and runs per-element loops.
	Scalar
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case Vector:
		return "vector"
	case Scalar:
		return "scalar"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// Lanes returns the storage granularity of the backend: 16 for Vector, 1 for
// Scalar.
func (b Backend) Lanes() int {
	if b == Vector {
		return hwy.Lanes
	}
	return 1
}

// stride returns the buffer length of one row of cols elements.
func (b Backend) stride(cols int) int {
	if b == Vector {
		return hwy.AlignedSize(cols)
	}
	return cols
}

var defaultBackend atomic.Int32

func init() {
	if hwy.NoSimdEnv() {
		defaultBackend.Store(int32(Scalar))
	}
}

// DefaultBackend returns the backend used when no WithBackend option is
// given. It is Vector unless HWY_NO_SIMD was set at startup.
func DefaultBackend() Backend {
	return Backend(defaultBackend.Load())
}

// SetDefaultBackend changes the backend used when no WithBackend option is
// given. Existing values keep their backend.
func SetDefaultBackend(b Backend) {
	defaultBackend.Store(int32(b))
	hwy.Logger().Debug("array: default backend changed", "backend", b.String(), "kernels", hwy.CurrentName())
}

// Option configures factories and matrix operations.
type Option func(*options)

type options struct {
	backend Backend
	pool    *workerpool.Pool
}

// WithBackend selects the backend of a newly created Array or Mask.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithPool lets MatrixMultiplication split large products across the workers
// of pool. It has no effect on other operations.
func WithPool(pool *workerpool.Pool) Option {
	return func(o *options) {
		o.pool = pool
	}
}

func buildOptions(opts []Option) options {
	o := options{backend: DefaultBackend()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
