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
package memory

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ErrMalformed indicates program text containing something other than comma
// separated base-10 integers.
var ErrMalformed = errors.New("malformed program")

// ErrTooLarge indicates a memory whose serialisation would exceed
// MaxSerialisable words.
var ErrTooLarge = errors.New("memory too large to serialise")

// MaxSerialisable is the largest number of words which Contents, String and
// WriteTo will produce.  Since the text form has no way to skip unused
// locations, a single write far beyond the program would otherwise require
// serialising every zero word in between.
const MaxSerialisable = 1 << 26

// minSlack is the smallest distance beyond the dense prefix which a write may
// land at and still extend the prefix (rather than going to the sparse
// overflow).
const minSlack = 4096

// Memory represents the random access memory of a machine.  Every address holds
// a signed 64bit word and, initially, all locations can be considered to hold
// zero.  Thus, reading a location which has not yet been written will return
// zero; otherwise, it will return the last value written.
//
// Memory is split into two tiers: a dense prefix, which is grown geometrically
// as writes land near its end; and a sparse overflow, which holds writes to
// addresses far beyond the dense prefix.  All sparse addresses lie beyond the
// dense prefix, such that an address is held in at most one tier.
type Memory struct {
	dense  []int64
	sparse map[int64]int64
	// Lowest address held in sparse (if any), such that growing the dense
	// prefix below it need not consider sparse words.
	floor int64
	// Highest address loaded or written, or -1 if none.
	top int64
}

// New constructs a memory whose low region is initialised with the given
// words.
func New(words ...int64) *Memory {
	dense := make([]int64, len(words))
	//
	copy(dense, words)
	//
	return &Memory{dense, nil, math.MaxInt64, int64(len(words)) - 1}
}

// Parse a comma separated sequence of base-10 (possibly negative) integers into
// the initial contents of a memory.  Whitespace around each integer is ignored,
// as is surrounding whitespace (e.g. a trailing newline).  Empty text gives an
// empty memory.
func Parse(text string) (*Memory, error) {
	text = strings.TrimSpace(text)
	//
	if text == "" {
		return New(), nil
	}
	//
	var (
		tokens = strings.Split(text, ",")
		words  = make([]int64, len(tokens))
	)
	//
	for i, token := range tokens {
		word, err := strconv.ParseInt(strings.TrimSpace(token), 10, 64)
		//
		if err != nil {
			return nil, fmt.Errorf("%w: token %d (\"%s\") is not an integer", ErrMalformed, i, token)
		}
		//
		words[i] = word
	}
	// Done
	return &Memory{words, nil, math.MaxInt64, int64(len(words)) - 1}, nil
}

// Read the word at a given address, which is zero for any address never
// written beyond the initially loaded program.  This panics for a negative
// address.
func (p *Memory) Read(address int64) int64 {
	checkAddress(address)
	//
	if address < int64(len(p.dense)) {
		return p.dense[address]
	}
	// Reading from a nil map is safe
	return p.sparse[address]
}

// Write a word to a given address, overwriting its previous contents and
// extending the memory as necessary.  This panics for a negative address.
func (p *Memory) Write(address int64, value int64) {
	var n = int64(len(p.dense))
	//
	checkAddress(address)
	//
	switch {
	case address < n:
		p.dense[address] = value
	case address < n+max(n, minSlack):
		p.grow(address + 1)
		p.dense[address] = value
	default:
		if p.sparse == nil {
			p.sparse = make(map[int64]int64)
		}
		//
		p.sparse[address] = value
		p.floor = min(p.floor, address)
	}
	//
	p.top = max(p.top, address)
}

// Len returns one past the highest address loaded or written.  Every address
// at or beyond this reads as zero.  The length saturates at math.MaxInt64,
// hence a memory written at the very last address reports that length.
func (p *Memory) Len() int64 {
	if p.top == math.MaxInt64 {
		return math.MaxInt64
	}
	//
	return p.top + 1
}

// Contents returns a copy of this memory's words from address 0 up to and
// including the highest address loaded or written.  Be aware that this
// allocates one word per address, however sparse the memory is.  Therefore, it
// fails with ErrTooLarge beyond MaxSerialisable words.
func (p *Memory) Contents() ([]int64, error) {
	if p.top >= MaxSerialisable {
		return nil, fmt.Errorf("%w (%d words)", ErrTooLarge, p.Len())
	}
	//
	var contents = make([]int64, p.top+1)
	//
	copy(contents, p.dense)
	//
	for address, value := range p.sparse {
		contents[address] = value
	}
	//
	return contents, nil
}

// Each visits every non-zero word in increasing order of address.
func (p *Memory) Each(fn func(address int64, value int64)) {
	for i, value := range p.dense {
		if value != 0 {
			fn(int64(i), value)
		}
	}
	// Sparse addresses always lie beyond the dense prefix.
	for _, address := range slices.Sorted(maps.Keys(p.sparse)) {
		if value := p.sparse[address]; value != 0 {
			fn(address, value)
		}
	}
}

// Clone returns a deep copy of this memory, such that writes to either do not
// affect the other.
func (p *Memory) Clone() *Memory {
	return &Memory{slices.Clone(p.dense), maps.Clone(p.sparse), p.floor, p.top}
}

// Equal determines whether two memories hold the same words at every address.
// Since unwritten locations read as zero, trailing zeros are insignificant.
func (p *Memory) Equal(other *Memory) bool {
	var n = max(len(p.dense), len(other.dense))
	//
	for i := range n {
		if p.Read(int64(i)) != other.Read(int64(i)) {
			return false
		}
	}
	//
	for address, value := range p.sparse {
		if other.Read(address) != value {
			return false
		}
	}
	//
	for address, value := range other.sparse {
		if p.Read(address) != value {
			return false
		}
	}
	//
	return true
}

// WriteTo serialises this memory as comma separated text, such that parsing
// the result reproduces it.  This fails with ErrTooLarge (without writing
// anything) if that would exceed MaxSerialisable words.
func (p *Memory) WriteTo(writer io.Writer) (int64, error) {
	var (
		nbytes int64
		buf    []byte
	)
	//
	contents, err := p.Contents()
	if err != nil {
		return 0, err
	}
	// Write in chunks
	for i, word := range contents {
		if i != 0 {
			buf = append(buf, ',')
		}
		//
		buf = strconv.AppendInt(buf, word, 10)
		//
		if len(buf) >= 4096 || i == len(contents)-1 {
			n, err := writer.Write(buf)
			//
			if nbytes += int64(n); err != nil {
				return nbytes, err
			}
			//
			buf = buf[:0]
		}
	}
	//
	return nbytes, nil
}

// String serialises this memory as comma separated text (see WriteTo).  A
// memory too large to serialise is instead summarised, hence the result can
// only be parsed back when Len() is within MaxSerialisable.
func (p *Memory) String() string {
	var builder strings.Builder
	//
	if _, err := p.WriteTo(&builder); err != nil {
		return fmt.Sprintf("<%s>", err)
	}
	//
	return builder.String()
}

// grow the dense prefix to hold (at least) size words, migrating any sparse
// words it now covers.
func (p *Memory) grow(size int64) {
	if size <= int64(cap(p.dense)) {
		// Words beyond len(p.dense) are zero, as the prefix never shrinks.
		p.dense = p.dense[:size]
	} else {
		dense := make([]int64, size, max(size, 2*int64(cap(p.dense))))
		copy(dense, p.dense)
		p.dense = dense
	}
	// Nothing to migrate unless the prefix now reaches a sparse word.
	if len(p.sparse) == 0 || size <= p.floor {
		return
	}
	//
	p.floor = math.MaxInt64
	//
	for address, value := range p.sparse {
		if address < size {
			p.dense[address] = value
			delete(p.sparse, address)
		} else {
			p.floor = min(p.floor, address)
		}
	}
}

func checkAddress(address int64) {
	if address < 0 {
		panic(fmt.Sprintf("negative memory address %d", address))
	}
}
