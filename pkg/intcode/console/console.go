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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-intcode/pkg/intcode/ascii"
	"github.com/consensys/go-intcode/pkg/intcode/machine"
	log "github.com/sirupsen/logrus"
)

// Console is a line-oriented text channel, such as a terminal.
type Console interface {
	io.Writer
	// ReadLine reads the next line of input, without its line terminator.
	// This returns io.EOF when there is no more input.
	ReadLine() (string, error)
}

// Stream is a console over an arbitrary reader and writer (e.g. when stdin is
// a pipe).
type Stream struct {
	io.Writer
	scanner *bufio.Scanner
}

// NewStream constructs a console reading lines from a given reader and writing
// to a given writer.
func NewStream(reader io.Reader, writer io.Writer) *Stream {
	return &Stream{writer, bufio.NewScanner(reader)}
}

// ReadLine implementation for the Console interface.
func (p *Stream) ReadLine() (string, error) {
	if p.scanner.Scan() {
		return strings.TrimSuffix(p.scanner.Text(), "\r"), nil
	} else if err := p.scanner.Err(); err != nil {
		return "", err
	}
	//
	return "", io.EOF
}

// Interact drives a machine which speaks a line-oriented ASCII protocol over
// its I/O, until it halts or the console runs out of input.  Each line read
// from the console is supplied (with a trailing newline) one character at a
// time as the machine requests input.  ASCII outputs are written as text,
// whilst any other output is written as a number on a line of its own.  This
// returns the number of lines consumed.
func Interact(m *machine.Machine, console Console) (uint, error) {
	var (
		pending []int64
		nlines  uint
	)
	//
	for {
		state, err := m.Run()
		//
		if err != nil {
			return nlines, err
		}
		//
		switch state {
		case machine.NeedsInput:
			if len(pending) == 0 {
				line, err := console.ReadLine()
				//
				if err == io.EOF {
					log.Debugf("input ended after %d lines with machine awaiting input", nlines)
					return nlines, nil
				} else if err != nil {
					return nlines, err
				} else if pending, err = ascii.Encode(line + "\n"); err != nil {
					return nlines, err
				}
				//
				nlines++
			}
			//
			if err := m.GiveInput(pending[0]); err != nil {
				return nlines, err
			}
			//
			pending = pending[1:]
		case machine.HasOutput:
			if err := writeOutput(m, console); err != nil {
				return nlines, err
			}
		default:
			return nlines, nil
		}
	}
}

func writeOutput(m *machine.Machine, writer io.Writer) error {
	value, err := m.TakeOutput()
	//
	if err != nil {
		return err
	} else if ascii.IsASCII(value) {
		_, err = writer.Write([]byte{byte(value)})
	} else {
		_, err = fmt.Fprintf(writer, "%d\n", value)
	}
	//
	return err
}
