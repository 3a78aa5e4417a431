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
	"errors"
	"fmt"
)

var (
	// ErrImmediateWrite indicates an instruction whose destination argument
	// is in immediate mode.
	ErrImmediateWrite = errors.New("immediate mode destination")
	// ErrNegativeAddress indicates an access to (or jump to) a negative
	// address, or a relative base becoming negative.
	ErrNegativeAddress = errors.New("negative address")
	// ErrNotAwaitingInput indicates input was supplied to a machine which had
	// not requested it.
	ErrNotAwaitingInput = errors.New("machine not awaiting input")
	// ErrNoPendingOutput indicates output was collected from a machine which
	// had not produced any.
	ErrNoPendingOutput = errors.New("machine has no pending output")
	// ErrInputExhausted indicates the machine requested more input than was
	// supplied.
	ErrInputExhausted = errors.New("input exhausted")
	// ErrUnexpectedOutput indicates the machine produced output whilst it was
	// still expected to consume input.
	ErrUnexpectedOutput = errors.New("unexpected output")
)

// Error describes a fault raised whilst executing an instruction, along with
// where it was raised.
type Error struct {
	// Nature of the fault
	Err error
	// Address of the faulting instruction
	IP int64
	// Instruction word at that address
	Word int64
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at address %d (instruction %d)", e.Err, e.IP, e.Word)
}

func (e *Error) Unwrap() error {
	return e.Err
}
