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

//go:build arm64

package uvec

import "golang.org/x/sys/cpu"

func init() {
	hasASIMD = cpu.ARM64.HasASIMD
	hasSVE = cpu.ARM64.HasSVE

	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// SVE vector length is implementation defined; the 16-byte NEON width is
	// the guaranteed minimum, so block sizes stay at 16 bytes for both.
	switch {
	case hasSVE:
		currentLevel = DispatchSVE
		currentWidth = 16
	case hasASIMD:
		currentLevel = DispatchNEON
		currentWidth = 16
	default:
		setScalarMode()
	}
}
