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
	"math"

	"github.com/consensys/go-intcode/pkg/intcode/instruction"
	log "github.com/sirupsen/logrus"
)

// Run the machine until it reaches a suspend point (NeedsInput or HasOutput)
// or halts, returning the state it stopped in.  A machine which is already
// suspended or halted makes no progress and simply reports its state again.
// Thus, a suspended machine must be given its input (or have its output taken)
// before it can continue.  Once a machine has faulted, the fault is returned
// on every subsequent call.
func (p *Machine) Run() (State, error) {
	state, _, err := p.Execute(math.MaxUint)
	//
	return state, err
}

// Execute the machine for (at most) the given number of steps, returning the
// state it stopped in, the number of steps actually executed and an error (if
// execution faulted).  The number of steps can be less than requested if the
// machine reaches a suspend point or halts.  If the full number of steps is
// executed, the returned state is Ready.
func (p *Machine) Execute(steps uint) (State, uint, error) {
	var nsteps uint
	//
	if p.err != nil {
		return p.state, 0, p.err
	}
	//
	for p.state == Ready && nsteps < steps {
		if err := p.step(); err != nil {
			p.err = err
			//
			return p.state, nsteps, err
		}
		//
		nsteps++
	}
	//
	if p.state != Ready && log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("machine %s at address %d after %d steps", p.state, p.ip, p.steps)
	}
	//
	return p.state, nsteps, nil
}

// Execute a single instruction.  All arguments are consumed (advancing the
// instruction pointer) before the instruction has any effect.
func (p *Machine) step() error {
	var (
		ip        = p.ip
		word      = p.fetch()
		insn, err = instruction.Decode(word)
	)
	//
	if err != nil {
		return &Error{err, ip, word}
	} else if log.IsLevelEnabled(log.TraceLevel) {
		p.trace(ip, insn)
	}
	//
	switch insn.Opcode {
	case instruction.Add, instruction.Mul, instruction.LessThan, instruction.Equals:
		a, b, dst, err := p.ternary(insn)
		if err != nil {
			return &Error{err, ip, word}
		}
		//
		p.memory.Write(dst, apply(insn.Opcode, a, b))
	case instruction.Input:
		dst, err := p.address(insn.Mode(0))
		if err != nil {
			return &Error{err, ip, word}
		}
		//
		p.target = dst
		p.state = NeedsInput
	case instruction.Output:
		val, err := p.value(insn.Mode(0))
		if err != nil {
			return &Error{err, ip, word}
		}
		//
		p.output = val
		p.state = HasOutput
	case instruction.JumpIfTrue, instruction.JumpIfFalse:
		cond, err := p.value(insn.Mode(0))
		if err != nil {
			return &Error{err, ip, word}
		}
		//
		target, err := p.value(insn.Mode(1))
		if err != nil {
			return &Error{err, ip, word}
		}
		//
		if (cond != 0) == (insn.Opcode == instruction.JumpIfTrue) {
			if target < 0 {
				return &Error{fmt.Errorf("%w: jump to %d", ErrNegativeAddress, target), ip, word}
			}
			//
			p.ip = target
		}
	case instruction.AdjustBase:
		delta, err := p.value(insn.Mode(0))
		if err != nil {
			return &Error{err, ip, word}
		} else if p.base+delta < 0 {
			return &Error{fmt.Errorf("%w: relative base %d", ErrNegativeAddress, p.base+delta), ip, word}
		}
		//
		p.base += delta
	case instruction.Halt:
		p.state = Halted
	}
	//
	p.steps++
	//
	return nil
}

// Apply a binary operator.  Arithmetic wraps on overflow.
func apply(op instruction.Opcode, a int64, b int64) int64 {
	switch op {
	case instruction.Add:
		return a + b
	case instruction.Mul:
		return a * b
	case instruction.LessThan:
		return boolToWord(a < b)
	case instruction.Equals:
		return boolToWord(a == b)
	}
	// Should be unreachable
	panic(fmt.Sprintf("unknown binary operator %s", op))
}

func boolToWord(b bool) int64 {
	if b {
		return 1
	}
	//
	return 0
}

// Log the instruction about to be executed at a given address, without
// consuming its arguments.
func (p *Machine) trace(ip int64, insn instruction.Instruction) {
	var args = make([]int64, insn.Arity())
	//
	for i := range args {
		args[i] = p.memory.Read(ip + 1 + int64(i))
	}
	//
	log.Tracef("%6d: %-32s rb=%d", ip, insn.Format(args...), p.base)
}
