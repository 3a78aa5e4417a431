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

import "fmt"

// State of a machine with respect to its caller.  A machine which is Ready can
// make progress on its own, whilst the remaining states are suspend points
// which return control to the caller.
type State uint8

const (
	// Ready indicates the machine can continue executing.
	Ready State = iota
	// NeedsInput indicates the machine is suspended until a value is supplied
	// with GiveInput.
	NeedsInput
	// HasOutput indicates the machine is suspended until its output is
	// collected with TakeOutput.
	HasOutput
	// Halted indicates the machine has terminated.  This is final.
	Halted
)

func (p State) String() string {
	switch p {
	case Ready:
		return "ready"
	case NeedsInput:
		return "needs input"
	case HasOutput:
		return "has output"
	case Halted:
		return "halted"
	}
	//
	return fmt.Sprintf("state%d", uint(p))
}
