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

package uvec

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeValue is returned when a lane is constructed from a negative seed.
	ErrNegativeValue = errors.New("uvec: negative value for unsigned lane")

	// ErrDivideByZero is returned by every division with a zero divisor.
	ErrDivideByZero = errors.New("uvec: integer divide by zero")

	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("uvec: index out of range")
)

// IndexError reports a lane index outside [0, Length).
//
// errors.Is(err, ErrIndexOutOfRange) is true for every IndexError.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("uvec: index %d out of range [0, %d)", e.Index, e.Length)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Index: i, Length: n}
	}
	return nil
}
