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
	"bytes"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned int, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt64Slice gets an expected list of signed ints, or exits if an error
// arises.
func GetInt64Slice(cmd *cobra.Command, flag string) []int64 {
	r, err := cmd.Flags().GetInt64Slice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// ReadProgramFile reads a program from a given file, decompressing it first
// based on the extension of the filename (".gz" or ".zst").
func ReadProgramFile(filename string) (*memory.Memory, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	// Check file extension
	switch path.Ext(filename) {
	case ".gz":
		data, err = gunzip(data)
	case ".zst":
		data, err = unzstd(data)
	}
	//
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	log.Debugf("read %d bytes of program text from %s", len(data), filename)
	//
	mem, err := memory.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return mem, nil
}

// Read a program file, or exit if an error arises.
func readProgramFile(filename string) *memory.Memory {
	mem, err := ReadProgramFile(filename)
	//
	if err != nil {
		log.Error(err)
		os.Exit(3)
	}
	//
	return mem
}

func gunzip(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	//
	defer reader.Close()
	//
	return io.ReadAll(reader)
}

func unzstd(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	//
	defer decoder.Close()
	//
	return decoder.DecodeAll(data, nil)
}
