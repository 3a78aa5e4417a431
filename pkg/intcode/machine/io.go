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
)

// GiveInput supplies a value to a machine which is suspended in the NeedsInput
// state, writing it to the destination of the pending input instruction.  The
// machine is then Ready to continue.
func (p *Machine) GiveInput(value int64) error {
	if p.err != nil {
		return p.err
	} else if p.state != NeedsInput {
		return fmt.Errorf("%w (machine %s at address %d)", ErrNotAwaitingInput, p.state, p.ip)
	}
	//
	p.memory.Write(p.target, value)
	p.state = Ready
	//
	return nil
}

// TakeOutput collects the value produced by a machine which is suspended in
// the HasOutput state.  The machine is then Ready to continue.
func (p *Machine) TakeOutput() (int64, error) {
	if p.err != nil {
		return 0, p.err
	} else if p.state != HasOutput {
		return 0, fmt.Errorf("%w (machine %s at address %d)", ErrNoPendingOutput, p.state, p.ip)
	}
	//
	p.state = Ready
	//
	return p.output, nil
}

// RunWithInput runs this machine to completion given a fixed list of inputs,
// returning all outputs in the order they were produced.  See RunToCompletion.
func (p *Machine) RunWithInput(inputs ...int64) ([]int64, error) {
	return RunToCompletion(p, inputs)
}

// RunToCompletion runs a given machine until it halts, supplying inputs in
// order whenever they are requested and collecting outputs in the order they
// are produced.  This fails if the machine requests more inputs than were
// given, or faults.  In either case, the outputs produced so far are also
// returned.  Inputs remaining when the machine halts are ignored.
func RunToCompletion(machine *Machine, inputs []int64) ([]int64, error) {
	var outputs []int64
	//
	for {
		state, err := machine.Run()
		//
		if err != nil {
			return outputs, err
		}
		//
		switch state {
		case NeedsInput:
			if len(inputs) == 0 {
				return outputs, fmt.Errorf("%w (machine at address %d)", ErrInputExhausted, machine.ip)
			}
			//
			if err = machine.GiveInput(inputs[0]); err != nil {
				return outputs, err
			}
			//
			inputs = inputs[1:]
		case HasOutput:
			output, err := machine.TakeOutput()
			if err != nil {
				return outputs, err
			}
			//
			outputs = append(outputs, output)
		default:
			return outputs, nil
		}
	}
}
