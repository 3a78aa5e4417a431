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

	"github.com/BurntSushi/toml"
)

// Profile captures a reusable set of run options, as read from a TOML file.
// For example:
//
//	[run]
//	inputs = [1, 2]
//	ascii = "NOT A J\nWALK\n"
//	ascii-out = true
//	max-steps = 1000000
//
//	[log]
//	level = "debug"
type Profile struct {
	Run RunConfig `toml:"run"`
	Log LogConfig `toml:"log"`
}

// RunConfig determines how a program is run by the "run" command.
type RunConfig struct {
	// Inputs supplied (in order) whenever the machine requests input.
	Inputs []int64 `toml:"inputs"`
	// Text supplied as ASCII input, after any numeric inputs.
	ASCII string `toml:"ascii"`
	// Print ASCII outputs as text, rather than as numbers.
	ASCIIOut bool `toml:"ascii-out"`
	// Maximum number of instructions to execute (0 for no limit).
	MaxSteps uint `toml:"max-steps"`
}

// LogConfig determines the logging level.
type LogConfig struct {
	Level string `toml:"level"`
}

// LoadProfile parses a run profile from a given TOML file.  Keys which are not
// recognised are reported as an error, since they most likely indicate a typo.
func LoadProfile(filename string) (*Profile, error) {
	var profile Profile
	//
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", filename, err)
	}
	//
	md, err := toml.Decode(string(data), &profile)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", filename, err)
	} else if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key \"%s\" in %s", undecoded[0], filename)
	}
	//
	return &profile, nil
}
