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
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a digest of this machine's complete state: instruction
// pointer, relative base, state, pending input or output and the contents of
// memory.  Machines in equal states have equal fingerprints, regardless of how
// their memories happen to be laid out, which makes fingerprints suitable for
// deduplicating cloned machines during a search.
func (p *Machine) Fingerprint() [32]byte {
	var (
		hasher = blake3.New()
		buf    [16]byte
		digest [32]byte
	)
	//
	write := func(a, b int64) {
		binary.LittleEndian.PutUint64(buf[:8], uint64(a))
		binary.LittleEndian.PutUint64(buf[8:], uint64(b))
		// Never fails
		_, _ = hasher.Write(buf[:])
	}
	//
	write(p.ip, p.base)
	//
	switch p.state {
	case NeedsInput:
		write(int64(p.state), p.target)
	case HasOutput:
		write(int64(p.state), p.output)
	default:
		write(int64(p.state), 0)
	}
	//
	p.memory.Each(write)
	//
	copy(digest[:], hasher.Sum(nil))
	//
	return digest
}
