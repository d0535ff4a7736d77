//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package rewrite

import (
	"fmt"
)

// Params specify rewriting parameters.
type Params struct {
	// MaxPasses caps the number of full scans over the graph. A run
	// that still finds rewrites on its last pass reports
	// Result.Converged as false.
	MaxPasses int

	// Rule toggles.
	Associativity    bool
	Distributivity   bool
	Distributivity3L bool
}

// NewParams returns rewriting params initialized with the default
// values.
func NewParams() *Params {
	return &Params{
		MaxPasses:        64,
		Associativity:    true,
		Distributivity:   true,
		Distributivity3L: true,
	}
}

// Result reports what a rewriting run did.
type Result struct {
	// Passes is the number of full scans run.
	Passes int

	// Rewrites is the total number of substitutions, also counted
	// per rule below.
	Rewrites         int
	Associativity    int
	Distributivity   int
	Distributivity3L int

	// DepthBefore and DepthAfter are the maximum output levels
	// before and after the run.
	DepthBefore int
	DepthAfter  int

	// Converged is true when the last scan made no changes and false
	// when the run stopped at MaxPasses.
	Converged bool
}

func (r Result) String() string {
	return fmt.Sprintf("passes=%d, rewrites=%d, depth=%d/%d, converged=%v",
		r.Passes, r.Rewrites, r.DepthBefore, r.DepthAfter, r.Converged)
}
