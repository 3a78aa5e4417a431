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
	"math"
	"slices"
	"strings"
	"testing"
)

func Test_Parse_01(t *testing.T) {
	check_Parse(t, "1,9,10,3,2,3,11,0,99,30,40,50", 1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50)
}

func Test_Parse_02(t *testing.T) {
	check_Parse(t, "1002,4,3,4,33\n", 1002, 4, 3, 4, 33)
}

func Test_Parse_03(t *testing.T) {
	check_Parse(t, " 3, -1 ,\t1125899906842624 ", 3, -1, 1125899906842624)
}

func Test_Parse_04(t *testing.T) {
	check_Parse(t, "")
}

func Test_Parse_05(t *testing.T) {
	check_ParseError(t, "1,2,x,4")
}

func Test_Parse_06(t *testing.T) {
	check_ParseError(t, "1,2,,4")
}

func Test_Parse_07(t *testing.T) {
	check_ParseError(t, "1,2,3,")
}

func Test_Parse_08(t *testing.T) {
	check_ParseError(t, "1 2 3")
}

func Test_Read_01(t *testing.T) {
	mem := New(1, 2, 3)
	// Every address beyond the program reads as zero.
	for i := int64(3); i < 10_003; i++ {
		if v := mem.Read(i); v != 0 {
			t.Fatalf("expected 0 at address %d, got %d", i, v)
		}
	}
	// Reading does not extend the memory.
	if mem.Len() != 3 {
		t.Errorf("expected length 3, got %d", mem.Len())
	}
}

func Test_Read_02(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for negative address")
		}
	}()
	New(1, 2, 3).Read(-1)
}

func Test_Write_01(t *testing.T) {
	mem := New(1, 2, 3)
	mem.Write(10, 42)
	check_Words(t, mem, 1, 2, 3, 0, 0, 0, 0, 0, 0, 0, 42)
}

func Test_Write_02(t *testing.T) {
	mem := New()
	// Far beyond the dense prefix
	mem.Write(1_000_000_000, 7)
	//
	if mem.Read(1_000_000_000) != 7 {
		t.Errorf("expected 7, got %d", mem.Read(1_000_000_000))
	} else if mem.Read(999_999_999) != 0 {
		t.Errorf("expected 0, got %d", mem.Read(999_999_999))
	} else if mem.Len() != 1_000_000_001 {
		t.Errorf("expected length 1000000001, got %d", mem.Len())
	}
}

func Test_Write_03(t *testing.T) {
	mem := New()
	// Sparse write which is later covered by the dense prefix.
	mem.Write(5000, 9)
	//
	for i := range int64(5000) {
		mem.Write(i, i)
	}
	//
	for i := range int64(5000) {
		if mem.Read(i) != i {
			t.Fatalf("expected %d at address %d, got %d", i, i, mem.Read(i))
		}
	}
	//
	if mem.Read(5000) != 9 {
		t.Errorf("expected 9, got %d", mem.Read(5000))
	}
}

func Test_Write_04(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for negative address")
		}
	}()
	New().Write(-5, 1)
}

func Test_Write_05(t *testing.T) {
	mem := New(1, 2)
	// Highest possible address
	mem.Write(math.MaxInt64, 5)
	//
	if mem.Read(math.MaxInt64) != 5 {
		t.Errorf("expected 5, got %d", mem.Read(math.MaxInt64))
	} else if mem.Len() != math.MaxInt64 {
		t.Errorf("expected saturated length, got %d", mem.Len())
	}
	//
	check_TooLarge(t, mem)
}

func Test_Write_06(t *testing.T) {
	mem := New(1, 2)
	mem.Write(1_000_000_000_000, 5)
	check_TooLarge(t, mem)
}

func Test_Write_07(t *testing.T) {
	mem := New()
	// Both sparse, since beyond the slack of an empty prefix.
	mem.Write(50_000, 2)
	mem.Write(10_000, 1)
	//
	if mem.floor != 10_000 {
		t.Errorf("expected lowest sparse address 10000, got %d", mem.floor)
	}
	// Grow prefix up to the first sparse word
	for i := range int64(10_000) {
		mem.Write(i, 3)
	}
	//
	if len(mem.sparse) != 2 {
		t.Errorf("expected both addresses sparse, got %v", mem.sparse)
	}
	// Grow prefix over the first sparse word only
	mem.Write(10_005, 4)
	//
	if mem.Read(10_000) != 1 || mem.Read(50_000) != 2 {
		t.Errorf("sparse words lost: %d, %d", mem.Read(10_000), mem.Read(50_000))
	} else if len(mem.sparse) != 1 || mem.floor != 50_000 {
		t.Errorf("expected only address 50000 sparse, got %v (lowest %d)", mem.sparse, mem.floor)
	}
}

func Test_Clone_01(t *testing.T) {
	mem := New(1, 2, 3)
	mem.Write(100_000, 4)
	clone := mem.Clone()
	// Diverge
	clone.Write(0, 10)
	clone.Write(100_000, 40)
	mem.Write(1, 20)
	//
	check_Words(t, mem.Clone(), slices.Concat([]int64{1, 20, 3}, make([]int64, 99_997), []int64{4})...)
	//
	if clone.Read(0) != 10 || clone.Read(1) != 2 || clone.Read(100_000) != 40 {
		t.Errorf("clone not independent: %d, %d, %d", clone.Read(0), clone.Read(1), clone.Read(100_000))
	}
}

func Test_Equal_01(t *testing.T) {
	var a, b = New(1, 2, 3), New(1, 2, 3, 0, 0)
	//
	if !a.Equal(b) || !b.Equal(a) {
		t.Errorf("trailing zeros should be insignificant")
	}
	//
	a.Write(1_000_000, 1)
	//
	if a.Equal(b) || b.Equal(a) {
		t.Errorf("memories should differ")
	}
	//
	b.Write(1_000_000, 1)
	//
	if !a.Equal(b) {
		t.Errorf("memories should be equal")
	}
}

func Test_Each_01(t *testing.T) {
	var (
		mem       = New(0, 5, 0, 6)
		addresses []int64
		values    []int64
	)
	//
	mem.Write(900_000, 8)
	mem.Write(800_000, 7)
	mem.Write(850_000, 0)
	//
	mem.Each(func(address int64, value int64) {
		addresses = append(addresses, address)
		values = append(values, value)
	})
	//
	if !slices.Equal(addresses, []int64{1, 3, 800_000, 900_000}) {
		t.Errorf("unexpected addresses %v", addresses)
	} else if !slices.Equal(values, []int64{5, 6, 7, 8}) {
		t.Errorf("unexpected values %v", values)
	}
}

func Test_String_01(t *testing.T) {
	check_RoundTrip(t, New(1, -2, 3))
}

func Test_String_02(t *testing.T) {
	mem := New(109, 1, 204, -1)
	mem.Write(20, 1125899906842624)
	mem.Write(5000, -3)
	check_RoundTrip(t, mem)
}

func Test_String_03(t *testing.T) {
	mem := New()
	mem.Write(3, 0)
	// Writing zero still extends the memory
	if s := mem.String(); s != "0,0,0,0" {
		t.Errorf("unexpected serialisation %s", s)
	}
}

func Test_String_04(t *testing.T) {
	mem := New()
	// Spans several write chunks
	for i := range int64(3000) {
		mem.Write(i, i*1_000_003-7)
	}
	//
	check_RoundTrip(t, mem)
}

func Test_String_05(t *testing.T) {
	check_RoundTrip(t, New())
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Parse(t *testing.T, text string, words ...int64) {
	mem, err := Parse(text)
	//
	if err != nil {
		t.Fatalf("error parsing \"%s\": %s", text, err)
	}
	//
	check_Words(t, mem, words...)
}

func check_ParseError(t *testing.T, text string) {
	_, err := Parse(text)
	//
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected malformed program error for \"%s\", got %v", text, err)
	}
}

func check_Words(t *testing.T, mem *Memory, words ...int64) {
	if mem.Len() != int64(len(words)) {
		t.Fatalf("expected length %d, got %d", len(words), mem.Len())
	}
	//
	if contents, err := mem.Contents(); err != nil {
		t.Fatal(err)
	} else if !slices.Equal(contents, words) {
		t.Errorf("expected contents %v, got %v", words, contents)
	}
}

func check_RoundTrip(t *testing.T, mem *Memory) {
	parsed, err := Parse(mem.String())
	//
	if err != nil {
		t.Fatal(err)
	} else if !parsed.Equal(mem) || parsed.Len() != mem.Len() {
		t.Errorf("round trip failed for %s", mem.String())
	}
}

func check_TooLarge(t *testing.T, mem *Memory) {
	var builder strings.Builder
	//
	if _, err := mem.Contents(); !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected contents to be too large, got %v", err)
	}
	//
	if _, err := mem.WriteTo(&builder); !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected serialisation to be too large, got %v", err)
	} else if builder.Len() != 0 {
		t.Errorf("expected nothing written, got %d bytes", builder.Len())
	}
	//
	if s := mem.String(); !strings.Contains(s, "too large") {
		t.Errorf("unexpected summary %s", s)
	}
}
