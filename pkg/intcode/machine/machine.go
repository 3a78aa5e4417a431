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
	"github.com/consensys/go-intcode/pkg/intcode/memory"
)

// Machine is an executing intcode program.  It holds the instruction pointer,
// the relative base and the memory, which it owns exclusively.  A machine
// never blocks on I/O; instead, it suspends whenever it needs an input or has
// produced an output, and returns control to its caller (see Run).  Since a
// machine holds no references to anything outside itself, any number of
// machines can be driven from a single control loop in whatever order the
// caller chooses.
type Machine struct {
	memory *memory.Memory
	// Address of the next word to fetch
	ip int64
	// Offset for relative mode arguments
	base int64
	// Current state
	state State
	// Output value awaiting collection (HasOutput)
	output int64
	// Address awaiting an input value (NeedsInput)
	target int64
	// Number of instructions executed
	steps uint64
	// First fault raised, after which the machine is dead.
	err error
}

// New constructs a machine which executes from address 0 of the given memory.
// The machine takes ownership of the memory.
func New(mem *memory.Memory) *Machine {
	return &Machine{memory: mem}
}

// Parse program text into a new machine.
func Parse(text string) (*Machine, error) {
	mem, err := memory.Parse(text)
	//
	if err != nil {
		return nil, err
	}
	//
	return New(mem), nil
}

// Clone returns a deep copy of this machine, including its memory and any
// pending input or output.  The two machines subsequently execute
// independently.
func (p *Machine) Clone() *Machine {
	var clone = *p
	//
	clone.memory = p.memory.Clone()
	//
	return &clone
}

// Memory returns the memory of this machine.  This is not a copy, hence writes
// affect subsequent execution.
func (p *Machine) Memory() *memory.Memory {
	return p.memory
}

// IP returns the instruction pointer, i.e. the address of the next word to be
// fetched.
func (p *Machine) IP() int64 {
	return p.ip
}

// RelativeBase returns the offset applied to relative mode arguments.
func (p *Machine) RelativeBase() int64 {
	return p.base
}

// State returns the current state of this machine.
func (p *Machine) State() State {
	return p.state
}

// Steps returns the number of instructions executed so far.
func (p *Machine) Steps() uint64 {
	return p.steps
}

// Err returns the fault which killed this machine, or nil.
func (p *Machine) Err() error {
	return p.err
}
