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
package machine

import (
	"fmt"

	"github.com/consensys/go-intcode/pkg/intcode/instruction"
)

// Consume the word at the instruction pointer.
func (p *Machine) fetch() int64 {
	word := p.memory.Read(p.ip)
	p.ip++
	//
	return word
}

// Consume the next argument and resolve it to a value, according to its
// addressing mode.
func (p *Machine) value(mode instruction.Mode) (int64, error) {
	var raw = p.fetch()
	//
	switch mode {
	case instruction.Immediate:
		return raw, nil
	case instruction.Relative:
		raw += p.base
	}
	//
	if raw < 0 {
		return 0, fmt.Errorf("%w %d", ErrNegativeAddress, raw)
	}
	//
	return p.memory.Read(raw), nil
}

// Consume the next argument and resolve it to a writable address, according to
// its addressing mode.
func (p *Machine) address(mode instruction.Mode) (int64, error) {
	var raw = p.fetch()
	//
	switch mode {
	case instruction.Immediate:
		return 0, ErrImmediateWrite
	case instruction.Relative:
		raw += p.base
	}
	//
	if raw < 0 {
		return 0, fmt.Errorf("%w %d", ErrNegativeAddress, raw)
	}
	//
	return raw, nil
}

// Consume the arguments of a three-argument instruction: two values followed
// by a destination.
func (p *Machine) ternary(insn instruction.Instruction) (a, b, dst int64, err error) {
	if a, err = p.value(insn.Mode(0)); err != nil {
		return
	} else if b, err = p.value(insn.Mode(1)); err != nil {
		return
	}
	//
	dst, err = p.address(insn.Mode(2))
	//
	return
}
