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
	"strings"

	"github.com/consensys/go-intcode/pkg/intcode/ascii"
)

// GiveInputASCII runs the machine to each of its next input requests in turn,
// supplying one character of the given text to each.  This fails if the text
// is not ASCII, or if the machine produces output or halts before consuming
// the whole text.
func (p *Machine) GiveInputASCII(text string) error {
	values, err := ascii.Encode(text)
	//
	if err != nil {
		return err
	}
	//
	for i, value := range values {
		state, err := p.Run()
		//
		switch {
		case err != nil:
			return err
		case state == HasOutput:
			return fmt.Errorf("%w %d after consuming %d of %d characters", ErrUnexpectedOutput, p.output, i, len(values))
		case state == Halted:
			return fmt.Errorf("%w (machine halted after consuming %d of %d characters)", ErrNotAwaitingInput, i, len(values))
		}
		//
		if err := p.GiveInput(value); err != nil {
			return err
		}
	}
	//
	return nil
}

// TakeOutputASCII runs the machine, collecting its ASCII outputs as text, until
// it requests input, halts or produces a value outside the ASCII range.  In
// the latter case, the value remains pending and can be collected with
// TakeOutput.
func (p *Machine) TakeOutputASCII() (string, error) {
	var builder strings.Builder
	//
	for {
		state, err := p.Run()
		//
		if err != nil {
			return builder.String(), err
		} else if state != HasOutput || !ascii.IsASCII(p.output) {
			return builder.String(), nil
		}
		//
		builder.WriteByte(byte(p.output))
		p.state = Ready
	}
}
