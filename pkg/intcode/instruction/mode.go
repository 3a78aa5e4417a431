// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package instruction

import "fmt"

// Mode determines how the raw value of an argument is interpreted.
type Mode uint8

const (
	// Position arguments refer to the memory cell at the given address.
	Position Mode = 0
	// Immediate arguments are literal values.  They cannot be written.
	Immediate Mode = 1
	// Relative arguments refer to the memory cell at the given offset from the
	// relative base.
	Relative Mode = 2
)

// Format an argument of this mode with a given raw value.
func (p Mode) Format(raw int64) string {
	switch p {
	case Position:
		return fmt.Sprintf("[%d]", raw)
	case Immediate:
		return fmt.Sprintf("%d", raw)
	case Relative:
		return fmt.Sprintf("[rb%+d]", raw)
	}
	//
	return fmt.Sprintf("?%d", raw)
}

func (p Mode) String() string {
	switch p {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	//
	return fmt.Sprintf("mode%d", uint(p))
}
