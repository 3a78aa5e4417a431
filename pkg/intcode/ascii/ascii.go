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
package ascii

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrNotASCII indicates a character or value outside the ASCII range.
var ErrNotASCII = errors.New("not ascii")

// IsASCII determines whether a machine value is an ASCII code point.
func IsASCII(value int64) bool {
	return value >= 0 && value <= unicode.MaxASCII
}

// Encode text as the sequence of code points, one machine value per character.
func Encode(text string) ([]int64, error) {
	var values = make([]int64, 0, len(text))
	//
	for i, r := range text {
		if r > unicode.MaxASCII {
			return nil, fmt.Errorf("%w: character %q at offset %d", ErrNotASCII, r, i)
		}
		//
		values = append(values, int64(r))
	}
	//
	return values, nil
}

// Decode a sequence of machine values into text, one character per value.
func Decode(values []int64) (string, error) {
	var builder strings.Builder
	//
	for i, value := range values {
		if !IsASCII(value) {
			return builder.String(), fmt.Errorf("%w: value %d at index %d", ErrNotASCII, value, i)
		}
		//
		builder.WriteByte(byte(value))
	}
	//
	return builder.String(), nil
}
