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

// Package bulk provides slice kernels over unsigned lanes.
//
// Every kernel walks its slices in uvec.Vec4 blocks and finishes the tail
// lane by lane, so results are bit-identical to the uvec lane and vector
// operations: arithmetic and reductions wrap modulo 2^W.
//
// Kernels come in two shapes, following the usual in-place / To split:
//   - In-place: modify dst directly (e.g. Add: dst[i] += s[i])
//   - To: write into a separate destination (e.g. AddTo: dst[i] = a[i] + b[i])
//
// If the slices have different lengths, the shortest length is used.
//
// The Parallel* variants split the work over a workerpool.Pool once the
// input reaches MinParallelOps elements. They may be called from inside a
// task already running on the same pool.
package bulk
