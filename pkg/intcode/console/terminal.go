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
package console

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal is a line-editing console on the controlling terminal.  Whilst
// open, the terminal is held in raw mode, hence it must be closed to restore
// the terminal's original state.
type Terminal struct {
	// file descriptor for input.
	fd int
	// Underlying terminal
	xterm *term.Terminal
	// Stores original state of terminal so this can be restored.
	state *term.State
}

// IsTerminal determines whether both stdin and stdout are connected to a
// terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// NewTerminal constructs a new terminal which shows a given prompt whenever it
// reads a line.
func NewTerminal(prompt string) (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	//
	if !IsTerminal() {
		return nil, errors.New("invalid terminal")
	}
	// Move terminal into raw mode
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	// Construct "screen"
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	//
	return &Terminal{fd, term.NewTerminal(screen, prompt), state}, nil
}

// ReadLine reads a line of input (without its line terminator), returning
// io.EOF when the user ends input (e.g. with ^D).
func (t *Terminal) ReadLine() (string, error) {
	return t.xterm.ReadLine()
}

// Write output to the terminal.  Line feeds are translated as necessary for
// raw mode.
func (t *Terminal) Write(bytes []byte) (int, error) {
	return t.xterm.Write(bytes)
}

// Close this terminal, restoring its original state.
func (t *Terminal) Close() error {
	return term.Restore(t.fd, t.state)
}
