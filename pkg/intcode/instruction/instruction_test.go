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
	"slices"
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode/memory"
)

func Test_Decode_01(t *testing.T) {
	check_Decode(t, 1, Add, Position, Position, Position)
}

func Test_Decode_02(t *testing.T) {
	check_Decode(t, 1002, Mul, Position, Immediate, Position)
}

func Test_Decode_03(t *testing.T) {
	check_Decode(t, 21101, Add, Immediate, Immediate, Relative)
}

func Test_Decode_04(t *testing.T) {
	check_Decode(t, 3, Input, Position)
}

func Test_Decode_05(t *testing.T) {
	check_Decode(t, 203, Input, Relative)
}

func Test_Decode_06(t *testing.T) {
	check_Decode(t, 104, Output, Immediate)
}

func Test_Decode_07(t *testing.T) {
	check_Decode(t, 1105, JumpIfTrue, Immediate, Immediate)
}

func Test_Decode_08(t *testing.T) {
	check_Decode(t, 1206, JumpIfFalse, Relative, Immediate)
}

func Test_Decode_09(t *testing.T) {
	check_Decode(t, 1107, LessThan, Immediate, Immediate, Position)
}

func Test_Decode_10(t *testing.T) {
	check_Decode(t, 1008, Equals, Position, Immediate, Position)
}

func Test_Decode_11(t *testing.T) {
	check_Decode(t, 109, AdjustBase, Immediate)
}

func Test_Decode_12(t *testing.T) {
	check_Decode(t, 99, Halt)
}

func Test_Decode_13(t *testing.T) {
	// Mode digits beyond the arity are ignored
	check_Decode(t, 22299, Halt)
}

func Test_Decode_Invalid_01(t *testing.T) {
	check_DecodeError(t, 0, ErrUnknownOpcode)
}

func Test_Decode_Invalid_02(t *testing.T) {
	check_DecodeError(t, 10, ErrUnknownOpcode)
}

func Test_Decode_Invalid_03(t *testing.T) {
	check_DecodeError(t, 98, ErrUnknownOpcode)
}

func Test_Decode_Invalid_04(t *testing.T) {
	check_DecodeError(t, -1, ErrUnknownOpcode)
}

func Test_Decode_Invalid_05(t *testing.T) {
	check_DecodeError(t, 301, ErrUnknownMode)
}

func Test_Decode_Invalid_06(t *testing.T) {
	check_DecodeError(t, 90002, ErrUnknownMode)
}

func Test_Arity_01(t *testing.T) {
	var expected = map[Opcode]uint{
		Add: 3, Mul: 3, Input: 1, Output: 1, JumpIfTrue: 2, JumpIfFalse: 2,
		LessThan: 3, Equals: 3, AdjustBase: 1, Halt: 0,
	}
	//
	for op, arity := range expected {
		if op.Arity() != arity {
			t.Errorf("expected arity %d for %s, got %d", arity, op, op.Arity())
		}
	}
	// Sanity check nothing else is defined
	for i := range 100 {
		if _, ok := expected[Opcode(i)]; ok != Opcode(i).IsValid() {
			t.Errorf("unexpected validity for opcode %d", i)
		}
	}
}

func Test_Format_01(t *testing.T) {
	check_Format(t, "add [9], [10], [3]", 1, 9, 10, 3)
}

func Test_Format_02(t *testing.T) {
	check_Format(t, "mul [4], 3, [4]", 1002, 4, 3, 4)
}

func Test_Format_03(t *testing.T) {
	check_Format(t, "out [rb-1]", 204, -1)
}

func Test_Format_04(t *testing.T) {
	check_Format(t, "halt", 99)
}

func Test_Disassemble_01(t *testing.T) {
	check_Disassemble(t, "1,9,10,3,2,3,11,0,99,30,40,50",
		"     0: add [9], [10], [3]",
		"     4: mul [3], [11], [0]",
		"     8: halt",
		"     9: data 30",
		"    10: data 40",
		"    11: data 50",
	)
}

func Test_Disassemble_02(t *testing.T) {
	check_Disassemble(t, "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99",
		"     0: arb 1",
		"     2: out [rb-1]",
		"     4: add [100], 1, [100]",
		"     8: eq [100], 16, [101]",
		"    12: jz [101], 0",
		"    15: halt",
	)
}

func Test_Disassemble_03(t *testing.T) {
	// Truncated instruction at end of memory
	check_Disassemble(t, "1,0",
		"     0: data 1",
		"     1: data 0",
	)
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Decode(t *testing.T, word int64, opcode Opcode, modes ...Mode) {
	insn, err := Decode(word)
	//
	if err != nil {
		t.Fatalf("error decoding %d: %s", word, err)
	} else if insn.Opcode != opcode {
		t.Fatalf("expected opcode %s for %d, got %s", opcode, word, insn.Opcode)
	} else if insn.Arity() != uint(len(modes)) {
		t.Fatalf("expected arity %d for %d, got %d", len(modes), word, insn.Arity())
	}
	//
	for i, mode := range modes {
		if insn.Mode(uint(i)) != mode {
			t.Errorf("expected %s mode for argument %d of %d, got %s", mode, i, word, insn.Mode(uint(i)))
		}
	}
	// Sanity check encoding (ignoring superfluous mode digits)
	if reencoded, err := Decode(insn.Encode()); err != nil || reencoded != insn {
		t.Errorf("encoding %d gave %d", word, insn.Encode())
	}
}

func check_DecodeError(t *testing.T, word int64, expected error) {
	if _, err := Decode(word); !errors.Is(err, expected) {
		t.Errorf("expected error \"%s\" decoding %d, got %v", expected, word, err)
	}
}

func check_Format(t *testing.T, expected string, word int64, args ...int64) {
	insn, err := Decode(word)
	//
	if err != nil {
		t.Fatal(err)
	} else if actual := insn.Format(args...); actual != expected {
		t.Errorf("expected \"%s\", got \"%s\"", expected, actual)
	}
}

func check_Disassemble(t *testing.T, program string, expected ...string) {
	var actual []string
	//
	mem, err := memory.Parse(program)
	if err != nil {
		t.Fatal(err)
	}
	//
	for _, line := range Disassemble(mem) {
		actual = append(actual, line.String())
	}
	//
	if !slices.Equal(actual, expected) {
		t.Errorf("expected disassembly:\n%v\ngot:\n%v", expected, actual)
	}
}
