// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package inference

import (
	"fmt"
	"sync"
)

// Diag receives warnings about constructs that were approximated or ignored.
// *zap.SugaredLogger satisfies it.
type Diag interface {
	Warnf(format string, args ...any)
}

type nopDiag struct{}

func (nopDiag) Warnf(string, ...any) {}

// Collector is a Diag that keeps warnings in memory.
type Collector struct {
	mu       sync.Mutex
	warnings []string
}

// Warnf records a formatted warning.
func (c *Collector) Warnf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// Warnings returns the recorded warnings in order.
func (c *Collector) Warnings() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.warnings))
	copy(out, c.warnings)
	return out
}
