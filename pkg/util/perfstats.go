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
package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats provides a snapshot of time and memory allocation at the point
// some activity (e.g. running a program) began.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
	// Starting number of gc events
	startGc uint32
}

// NewPerfStats creates a new snapshot of the current time and amount of memory
// allocated.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats

	startTime := time.Now()

	runtime.ReadMemStats(&m)

	return &PerfStats{startTime, m.TotalAlloc, m.NumGC}
}

// Log logs the time taken and memory allocated since the PerfStats object was
// created, along with the rate at which a given number of instructions were
// executed.
func (p *PerfStats) Log(prefix string, steps uint64) {
	var (
		m     runtime.MemStats
		rate  float64
		taken = time.Since(p.startTime).Seconds()
	)

	runtime.ReadMemStats(&m)

	alloc := (m.TotalAlloc - p.startMem) / 1024 / 1024
	gcs := m.NumGC - p.startGc

	if taken > 0 {
		rate = float64(steps) / taken / 1e6
	}

	log.Debugf("%s took %0.3fs for %d steps (%0.2f Msteps/s) using %v Mb (%v GC events)",
		prefix, taken, steps, rate, alloc, gcs)
}
