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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-intcode/pkg/intcode/console"
	"github.com/consensys/go-intcode/pkg/intcode/machine"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var asciiCmd = &cobra.Command{
	Use:   "ascii [flags] program",
	Short: "interact with an Intcode program over ASCII.",
	Long: `Interact with an Intcode program which reads and writes ASCII text.
	Each line entered is supplied to the program (with a trailing newline) and
	the program's output is printed as text.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			lines uint
			err   error
		)
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd, nil)
		//
		m := machine.New(readProgramFile(args[0]))
		//
		if console.IsTerminal() && !GetFlag(cmd, "batch") {
			lines, err = interactTerminal(m, GetString(cmd, "prompt"))
		} else {
			lines, err = console.Interact(m, console.NewStream(os.Stdin, os.Stdout))
		}
		//
		if err != nil {
			log.Error(err)
			os.Exit(4)
		}
		//
		log.Debugf("machine %s after %d lines of input (%d steps)", m.State(), lines, m.Steps())
	},
}

// Interact with a machine over the controlling terminal, ensuring the terminal
// is restored afterwards.
func interactTerminal(m *machine.Machine, prompt string) (uint, error) {
	terminal, err := console.NewTerminal(prompt)
	//
	if err != nil {
		return 0, err
	}
	//
	defer terminal.Close()
	//
	return console.Interact(m, terminal)
}

func init() {
	rootCmd.AddCommand(asciiCmd)
	asciiCmd.Flags().String("prompt", "> ", "prompt shown when reading a line")
	asciiCmd.Flags().Bool("batch", false, "read lines from stdin even when it is a terminal")
}
