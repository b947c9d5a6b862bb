/*
 * analyzer.go, part of goelf.
 *
 * Copyright 2024 The goelf developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package elf

import (
	"fmt"
	"sort"

	"github.com/avillar/goelf/grid"
)

// Analyzer ties a scalar field, a charge field, a basin partitioning and a
// structure into the full scan-and-classify sequence. An Analyzer (and the
// graph it produces) belongs to one analysis; nothing here is safe for
// concurrent use and nothing needs to be.
type Analyzer struct {
	field     *grid.Grid
	charge    *grid.Grid
	basins    *BasinResult
	structure Structure
	env       EnvProvider
	radius    RadiusEstimator
	opts      *Options
}

// NewAnalyzer validates the collaborators and returns an Analyzer. A nil
// radius estimator falls back to the covalent-radius table; a nil env means
// no coordination data, so no feature will classify as covalent. The structure
// must list real atoms before any dummy species; that precondition is
// checked here, once, and is not recoverable.
func NewAnalyzer(field, charge *grid.Grid, basins *BasinResult, st Structure, env EnvProvider, radius RadiusEstimator, opts *Options) (*Analyzer, error) {
	if field == nil || charge == nil || basins == nil || st == nil {
		return nil, CError{string(ErrNilCollaborator), []string{"NewAnalyzer"}}
	}
	if len(basins.Labels) != field.NVoxels() {
		return nil, CError{string(ErrShapeMismatch), []string{"NewAnalyzer"}}
	}
	if err := checkSpeciesOrder(st); err != nil {
		return nil, err
	}
	if radius == nil {
		radius = NewDefaultRadiusEstimator(st)
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Analyzer{field: field, charge: charge, basins: basins, structure: st, env: env, radius: radius, opts: opts}, nil
}

// checkSpeciesOrder fails fast when a dummy/placeholder species (empty or
// "X" symbol) precedes a real atom, which would corrupt the neighbor
// bookkeeping downstream.
func checkSpeciesOrder(st Structure) error {
	dummySeen := false
	for i := 0; i < st.Len(); i++ {
		s := st.Symbol(i)
		if s == "" || s == "X" {
			dummySeen = true
		} else if dummySeen {
			return CError{fmt.Sprintf("goelf: real atom %d (%s) listed after a dummy species; atoms must come first", i, s), []string{"NewAnalyzer"}}
		}
	}
	return nil
}

// RunFull scans the field and runs all classification passes, returning
// the labeled graph. The atom-coverage validation runs right after the
// core/shell pass and surfaces as a LowPseudoError unless the ignore
// option is set.
func (A *Analyzer) RunFull() (*Graph, error) {
	sc, err := NewScanner(A.field, A.charge, A.basins, A.structure, A.opts)
	if err != nil {
		return nil, errDecorate(err, "RunFull")
	}
	g, err := sc.Run()
	if err != nil {
		return nil, errDecorate(err, "RunFull")
	}
	cl, err := NewClassifier(g, A.field, A.basins, A.structure, A.env, A.radius, A.opts)
	if err != nil {
		return nil, errDecorate(err, "RunFull")
	}
	cl.MarkAtomic()
	if err := checkAtomCoverage(g, A.structure); err != nil && !A.opts.IgnoreLowPseudopotential() {
		return nil, err
	}
	cl.ReduceAtomicShells()
	cl.MarkMetallicCovalent()
	cl.RescueLonePairs()
	cl.MarkBareElectronIndicator()
	cl.CheckAssigned()
	return g, nil
}

// checkAtomCoverage verifies that the core/shell leaves, between them,
// reach every atom of the structure. An atom never reached by a core or
// shell basin signals insufficient pseudopotential core electrons.
func checkAtomCoverage(g *Graph, st Structure) error {
	covered := make(map[int]bool)
	for _, n := range g.Leaves() {
		if n.Leaf == nil || n.Leaf.Type != TypeAtom {
			continue
		}
		if s := n.Leaf.Subtype; s == SubtypeCore || s == SubtypeShell {
			covered[n.Leaf.NearestAtom] = true
		}
	}
	var missing []int
	for a := 0; a < st.Len(); a++ {
		if !covered[a] {
			missing = append(missing, a)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Ints(missing)
	return newLowPseudoError(missing)
}

// errDecorate asserts that err implements Error and decorates it with the
// caller's name before returning it. Panics on a foreign error type.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
