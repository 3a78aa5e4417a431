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
	"fmt"

	"github.com/consensys/go-intcode/pkg/intcode/memory"
)

// Line is a single line of disassembly: either a decoded instruction with its
// raw arguments, or a single word of data which does not decode.
type Line struct {
	// Address of the first word on this line.
	Address int64
	// Words covered by this line, starting with the instruction word.
	Words []int64
	// Decoded instruction, or nil for a data word.
	Instruction *Instruction
}

func (p Line) String() string {
	if p.Instruction == nil {
		return fmt.Sprintf("%6d: data %d", p.Address, p.Words[0])
	}
	//
	return fmt.Sprintf("%6d: %s", p.Address, p.Instruction.Format(p.Words[1:]...))
}

// Disassemble the contents of a given memory from address 0.  Since code and
// data are freely mixed, any word which does not decode as an instruction (or
// whose arguments would run beyond the end of memory) is reported as data, and
// disassembly resumes from the following word.
func Disassemble(mem *memory.Memory) []Line {
	var (
		lines   []Line
		address int64
	)
	//
	for address < mem.Len() {
		var (
			word      = mem.Read(address)
			insn, err = Decode(word)
		)
		//
		if err != nil || address+int64(insn.Arity()) >= mem.Len() {
			lines = append(lines, Line{address, []int64{word}, nil})
			address++
			//
			continue
		}
		//
		words := make([]int64, insn.Arity()+1)
		//
		for i := range words {
			words[i] = mem.Read(address + int64(i))
		}
		//
		lines = append(lines, Line{address, words, &insn})
		address += int64(len(words))
	}
	//
	return lines
}
