// SPDX-License-Identifier: MIT

// Package matmul: engine configuration.
// Options follows the struct-options convention: exported fields, zero value
// usable, DefaultOptions for the canonical baseline, normalize/validate split
// so every engine resolves its configuration the same way.
package matmul

import (
	"context"
	"fmt"
)

// DefaultLeafSize is the recursion cutoff applied when Options.LeafSize is 0.
// The value 1 keeps the textbook base case: recursion bottoms out at 1×1
// scalar products. Raise it (64–128 is typical) to hand small blocks to the
// cache-friendly triple loop instead of recursing all the way down.
const DefaultLeafSize = 1

// Options configures the Strassen engines.
//
// Fields:
//   - Ctx      — cancellation/deadline for long multiplications. Checked at
//     every recursion node; nil means context.Background().
//   - LeafSize — dimension at or below which recursion switches to the naive
//     kernel. 0 means DefaultLeafSize; negative is rejected.
//   - Workers  — upper bound on goroutines evaluating the independent
//     products of one recursion level. 0 or 1 means fully sequential;
//     negative is rejected. Set runtime.NumCPU() to use all cores.
//   - Verbose  — when true, prints one line per padded level to stdout.
//
// Example:
//
//	opts := &matmul.Options{
//	  LeafSize: 64,
//	  Workers:  runtime.NumCPU(),
//	}
//	c, err := matmul.StrassenGeneralized(a, b, opts)
//	if err != nil {
//	  // handle ErrNonSquare, ErrDimensionMismatch, ErrBadOptions, ...
//	}
type Options struct {
	Ctx      context.Context
	LeafSize int
	Workers  int
	Verbose  bool

	// sem bounds extra product goroutines across the whole recursion tree.
	// The calling goroutine always works, so capacity is Workers-1.
	// nil when the engine runs sequentially.
	sem chan struct{}
}

// DefaultOptions returns the canonical sequential configuration.
func DefaultOptions() Options {
	return Options{LeafSize: DefaultLeafSize, Workers: 1}
}

// validate rejects out-of-range fields before any defaulting happens.
// Returns ErrBadOptions wrapped with the offending field for context.
func (o *Options) validate() error {
	if o.LeafSize < 0 {
		return fmt.Errorf("LeafSize %d: %w", o.LeafSize, ErrBadOptions)
	}
	if o.Workers < 0 {
		return fmt.Errorf("Workers %d: %w", o.Workers, ErrBadOptions)
	}

	return nil
}

// normalize fills zero values with their defaults and builds the worker
// semaphore when a parallel run was requested.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.LeafSize == 0 {
		o.LeafSize = DefaultLeafSize
	}
	if o.Workers == 0 {
		o.Workers = 1
	}
	if o.Workers > 1 {
		o.sem = make(chan struct{}, o.Workers-1)
	}
}

// resolve copies the caller's options (nil means defaults), validates the
// copy and normalizes it. Engines never mutate what the caller passed.
func resolve(opts *Options) (*Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	o.normalize()

	return &o, nil
}
