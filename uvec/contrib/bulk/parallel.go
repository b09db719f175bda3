// Copyright 2025 go-uvec Authors
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

package bulk

import (
	"sync/atomic"

	"github.com/ajroetker/go-uvec/uvec"
	"github.com/ajroetker/go-uvec/uvec/contrib/workerpool"
)

// MinParallelOps is the element count below which the Parallel* kernels
// run sequentially on the calling goroutine.
const MinParallelOps = 1 << 14

// batchSize is the number of elements a worker grabs per reduction batch:
// 1024 register-widths of T at the current dispatch level.
func batchSize[T uvec.Lane]() int {
	return uvec.MaxLanes[T]() * 1024
}

func useParallel(pool *workerpool.Pool, op string, n int) bool {
	if pool == nil || n < MinParallelOps {
		return false
	}
	uvec.Logger().Debug("bulk: parallel kernel", "op", op, "n", n, "workers", pool.NumWorkers())
	return true
}

// ParallelAddTo is AddTo split across pool. A nil pool runs AddTo directly.
func ParallelAddTo[T uvec.Lane](pool *workerpool.Pool, dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	if !useParallel(pool, "AddTo", n) {
		AddTo(dst, a, b)
		return
	}
	pool.ParallelFor(n, func(start, end int) {
		AddTo(dst[start:end], a[start:end], b[start:end])
	})
}

// ParallelMulTo is MulTo split across pool. A nil pool runs MulTo directly.
func ParallelMulTo[T uvec.Lane](pool *workerpool.Pool, dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	if !useParallel(pool, "MulTo", n) {
		MulTo(dst, a, b)
		return
	}
	pool.ParallelFor(n, func(start, end int) {
		MulTo(dst[start:end], a[start:end], b[start:end])
	})
}

// ParallelSum is Sum split across pool. The result is identical to Sum.
func ParallelSum[T uvec.Lane](pool *workerpool.Pool, s []T) T {
	if !useParallel(pool, "Sum", len(s)) {
		return Sum(s)
	}
	return reduceBatched(pool, len(s), func(start, end int) T {
		return Sum(s[start:end])
	})
}

// ParallelDot is Dot split across pool. The result is identical to Dot.
func ParallelDot[T uvec.Lane](pool *workerpool.Pool, a, b []T) T {
	n := min(len(a), len(b))
	if !useParallel(pool, "Dot", n) {
		return Dot(a, b)
	}
	return reduceBatched(pool, n, func(start, end int) T {
		return Dot(a[start:end], b[start:end])
	})
}

// reduceBatched adds the partial results in a uint64. 2^W divides 2^64, so
// truncating the total to T gives the same value as wrapping in T throughout.
func reduceBatched[T uvec.Lane](pool *workerpool.Pool, n int, partial func(start, end int) T) T {
	var total atomic.Uint64
	pool.ParallelForBatched(n, batchSize[T](), func(start, end int) {
		total.Add(uint64(partial(start, end)))
	})
	return T(total.Load())
}
