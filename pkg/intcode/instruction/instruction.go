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

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownOpcode indicates an instruction word whose low two digits are
	// not a defined opcode (or which is negative).
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrUnknownMode indicates an addressing mode digit other than 0, 1 or 2
	// for an argument used by the opcode.
	ErrUnknownMode = errors.New("unknown addressing mode")
)

// MaxArity is the largest number of arguments taken by any opcode.
const MaxArity = 3

// Instruction is a decoded instruction word: an opcode along with one
// addressing mode for each argument the opcode takes.
type Instruction struct {
	Opcode Opcode
	modes  [MaxArity]Mode
}

// Decode splits an instruction word into its opcode (the low two decimal
// digits) and the addressing mode of each argument (the remaining digits, read
// right-to-left, starting with the first argument).  Mode digits beyond the
// opcode's arity are ignored.
func Decode(word int64) (Instruction, error) {
	var insn Instruction
	//
	if word < 0 {
		return insn, fmt.Errorf("%w %d", ErrUnknownOpcode, word)
	}
	//
	insn.Opcode = Opcode(word % 100)
	//
	if !insn.Opcode.IsValid() {
		return insn, fmt.Errorf("%w %d (in %d)", ErrUnknownOpcode, word%100, word)
	}
	//
	digits := word / 100
	//
	for i := range insn.Opcode.Arity() {
		mode := Mode(digits % 10)
		//
		if mode > Relative {
			return insn, fmt.Errorf("%w %d for argument %d (in %d)", ErrUnknownMode, digits%10, i+1, word)
		}
		//
		insn.modes[i] = mode
		digits /= 10
	}
	//
	return insn, nil
}

// Arity returns the number of arguments taken by this instruction.
func (p Instruction) Arity() uint {
	return p.Opcode.Arity()
}

// Mode returns the addressing mode of the ith argument.
func (p Instruction) Mode(i uint) Mode {
	return p.modes[i]
}

// Encode this instruction back into an instruction word.
func (p Instruction) Encode() int64 {
	var (
		word  = int64(p.Opcode)
		scale = int64(100)
	)
	//
	for i := range p.Arity() {
		word += int64(p.modes[i]) * scale
		scale *= 10
	}
	//
	return word
}

// Format this instruction with the given raw arguments, of which there must be
// one per argument.
func (p Instruction) Format(args ...int64) string {
	var builder strings.Builder
	//
	builder.WriteString(p.Opcode.String())
	//
	for i, arg := range args {
		if i == 0 {
			builder.WriteString(" ")
		} else {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(p.modes[i].Format(arg))
	}
	//
	return builder.String()
}

func (p Instruction) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Opcode.String())
	//
	for i := range p.Arity() {
		builder.WriteString(" ")
		builder.WriteString(p.modes[i].String())
	}
	//
	return builder.String()
}
