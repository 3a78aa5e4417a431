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
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/consensys/go-intcode/pkg/intcode/ascii"
	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/consensys/go-intcode/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrStepLimit indicates a program did not halt within the permitted number
// of steps.
var ErrStepLimit = errors.New("step limit reached")

var runCmd = &cobra.Command{
	Use:   "run [flags] program",
	Short: "run an Intcode program to completion.",
	Long: `Run an Intcode program to completion, supplying inputs as requested
	and printing its outputs.  Inputs are given either as numbers or as
	ASCII text (or both, in which case the numbers come first).`,
	Run: func(cmd *cobra.Command, args []string) {
		var profile Profile
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Read profile (if applicable)
		if filename := GetString(cmd, "profile"); filename != "" {
			p, err := LoadProfile(filename)
			//
			if err != nil {
				log.Error(err)
				os.Exit(2)
			}
			//
			profile = *p
		}
		//
		configureLogging(cmd, &profile)
		// Command-line flags override profile
		if cmd.Flags().Changed("input") {
			profile.Run.Inputs = GetInt64Slice(cmd, "input")
		}
		//
		if cmd.Flags().Changed("ascii") {
			profile.Run.ASCII = GetString(cmd, "ascii")
		}
		//
		if cmd.Flags().Changed("ascii-out") {
			profile.Run.ASCIIOut = GetFlag(cmd, "ascii-out")
		}
		//
		if cmd.Flags().Changed("max-steps") {
			profile.Run.MaxSteps = GetUint(cmd, "max-steps")
		}
		//
		m := machine.New(readProgramFile(args[0]))
		stats := util.NewPerfStats()
		err := RunProgram(m, profile.Run, os.Stdout)
		//
		stats.Log("running program", m.Steps())
		//
		if GetFlag(cmd, "dump") {
			dumpMemory(m)
		}
		//
		if err != nil {
			log.Error(err)
			os.Exit(4)
		}
	},
}

// RunProgram runs a given machine to completion according to a given
// configuration, writing its outputs to a given writer.  Outputs are written
// one per line, except that ASCII outputs are written as text when so
// configured.  This fails if the machine requests more input than is
// available, or exceeds the configured step limit.
//
// NOTE: unlike machine.RunToCompletion, this enforces a step limit and writes
// each output as soon as it is produced.
func RunProgram(m *machine.Machine, config RunConfig, out io.Writer) error {
	var (
		limit  uint = math.MaxUint
		inputs      = config.Inputs
	)
	// Append text input
	if config.ASCII != "" {
		text, err := ascii.Encode(config.ASCII)
		if err != nil {
			return err
		}
		//
		inputs = append(append([]int64{}, inputs...), text...)
	}
	//
	if config.MaxSteps != 0 {
		limit = config.MaxSteps
	}
	//
	for {
		state, n, err := m.Execute(limit)
		//
		if err != nil {
			return err
		}
		//
		if limit != math.MaxUint {
			limit -= n
		}
		//
		switch state {
		case machine.Ready:
			return fmt.Errorf("%w (%d steps)", ErrStepLimit, config.MaxSteps)
		case machine.NeedsInput:
			if len(inputs) == 0 {
				return fmt.Errorf("%w at address %d", machine.ErrInputExhausted, m.IP())
			} else if err := m.GiveInput(inputs[0]); err != nil {
				return err
			}
			//
			inputs = inputs[1:]
		case machine.HasOutput:
			value, err := m.TakeOutput()
			//
			if err != nil {
				return err
			} else if config.ASCIIOut && ascii.IsASCII(value) {
				_, err = out.Write([]byte{byte(value)})
			} else {
				_, err = fmt.Fprintf(out, "%d\n", value)
			}
			//
			if err != nil {
				return err
			}
		case machine.Halted:
			if len(inputs) > 0 {
				log.Warnf("%d inputs left unused", len(inputs))
			}
			//
			return nil
		}
	}
}

// Print the final memory of a machine, or report that it is too large to
// print.
func dumpMemory(m *machine.Machine) {
	if _, err := m.Memory().WriteTo(os.Stdout); err != nil {
		log.Errorf("cannot dump memory: %s", err)
	} else {
		fmt.Println()
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Int64SliceP("input", "i", nil, "numeric inputs (comma separated or repeated)")
	runCmd.Flags().String("ascii", "", "text to supply as ASCII input")
	runCmd.Flags().Bool("ascii-out", false, "print ASCII outputs as text")
	runCmd.Flags().String("profile", "", "read run options from a TOML file")
	runCmd.Flags().Uint("max-steps", 0, "maximum number of instructions to execute (0 for no limit)")
	runCmd.Flags().Bool("dump", false,
		fmt.Sprintf("print final memory contents (up to %d words)", memory.MaxSerialisable))
}
