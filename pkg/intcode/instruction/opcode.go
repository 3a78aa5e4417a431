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

// Opcode identifies the operation performed by an instruction, and is held in
// the low two decimal digits of an instruction word.
type Opcode uint8

const (
	// Add writes a + b to its destination.
	Add Opcode = 1
	// Mul writes a * b to its destination.
	Mul Opcode = 2
	// Input writes the next input value to its destination.
	Input Opcode = 3
	// Output emits a value.
	Output Opcode = 4
	// JumpIfTrue jumps to a target when a value is non-zero.
	JumpIfTrue Opcode = 5
	// JumpIfFalse jumps to a target when a value is zero.
	JumpIfFalse Opcode = 6
	// LessThan writes 1 to its destination if a < b, or 0 otherwise.
	LessThan Opcode = 7
	// Equals writes 1 to its destination if a == b, or 0 otherwise.
	Equals Opcode = 8
	// AdjustBase adds a value to the relative base.
	AdjustBase Opcode = 9
	// Halt terminates the machine.
	Halt Opcode = 99
)

// NoTarget is returned by Target for opcodes which write nothing to memory.
const NoTarget = -1

type opcodeInfo struct {
	mnemonic string
	arity    uint
	target   int
}

// Fixed opcode table, indexed by opcode.  Entries without a mnemonic are
// undefined.
var opcodes = [100]opcodeInfo{
	Add:         {"add", 3, 2},
	Mul:         {"mul", 3, 2},
	Input:       {"in", 1, 0},
	Output:      {"out", 1, NoTarget},
	JumpIfTrue:  {"jnz", 2, NoTarget},
	JumpIfFalse: {"jz", 2, NoTarget},
	LessThan:    {"lt", 3, 2},
	Equals:      {"eq", 3, 2},
	AdjustBase:  {"arb", 1, NoTarget},
	Halt:        {"halt", 0, NoTarget},
}

// IsValid determines whether this is a defined opcode.
func (p Opcode) IsValid() bool {
	return int(p) < len(opcodes) && opcodes[p].mnemonic != ""
}

// Arity returns the number of arguments taken by this opcode.
func (p Opcode) Arity() uint {
	return p.info().arity
}

// Target returns the index of the argument written by this opcode, or NoTarget.
func (p Opcode) Target() int {
	return p.info().target
}

func (p Opcode) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("op%d", uint(p))
	}
	//
	return opcodes[p].mnemonic
}

func (p Opcode) info() opcodeInfo {
	if !p.IsValid() {
		panic(fmt.Sprintf("undefined opcode %d", uint(p)))
	}
	//
	return opcodes[p]
}
