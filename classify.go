/*
 * classify.go, part of goelf.
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
	"math"

	"github.com/avillar/goelf/grid"
)

// Classifier runs the rule passes that turn a raw bifurcation graph into
// labeled chemical features. The passes are deterministic and never
// backtrack: an attribute set by one pass is only ever overwritten by a
// strictly later pass.
type Classifier struct {
	graph     *Graph
	field     *grid.Grid
	basins    *BasinResult
	structure Structure
	env       EnvProvider
	radius    RadiusEstimator
	opts      *Options

	spinSeparated  bool
	remainingAtoms int
}

// NewClassifier prepares the classification of a scanned graph. A nil env
// counts as an empty coordination environment, so no feature can test as
// covalent; radius may be nil only if the bare-electron pass will not run.
func NewClassifier(g *Graph, field *grid.Grid, basins *BasinResult, st Structure, env EnvProvider, radius RadiusEstimator, opts *Options) (*Classifier, error) {
	if g == nil || field == nil || basins == nil || st == nil {
		return nil, CError{string(ErrNilCollaborator), []string{"NewClassifier"}}
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Classifier{
		graph: g, field: field, basins: basins, structure: st,
		env: env, radius: radius, opts: opts,
		spinSeparated: field.Diff != nil,
	}, nil
}

// RemainingAtoms returns the informational atom counter left over by the
// atomic/valence pass. It is known to double-count atoms in some split
// orders; treat it as a diagnostic, never as an invariant.
func (C *Classifier) RemainingAtoms() int { return C.remainingAtoms }

// MarkAtomic is the first pass: it separates atomic cores and shells from
// valence features by walking every reducible node in creation order and
// testing which atoms the pre-split regions surround.
func (C *Classifier) MarkAtomic() {
	remaining := C.structure.Len()
	for _, n := range C.graph.Nodes() {
		if n.Red == nil {
			continue
		}
		switch {
		case n.Red.AtomNum == 0:
			//Nothing enclosed: the untyped leaf children are valence.
			for _, c := range C.graph.Children(n.id) {
				if c.IsLeaf() && c.Leaf != nil && c.Leaf.Type == "" {
					c.Leaf.Type = TypeValence
				}
			}
		case n.Red.AtomNum == -1:
			//The region extends through the periodic cell, so the
			//enclosed-atom count is ambiguous: test each leaf child's
			//own pre-split region instead.
			for _, c := range C.graph.Children(n.id) {
				if !c.IsLeaf() || c.Leaf == nil || c.Leaf.Type != "" {
					continue
				}
				if len(C.surrounded(c)) >= 1 {
					c.Leaf.Type = TypeAtom
					c.Leaf.Subtype = SubtypeCore
					remaining--
				} else {
					c.Leaf.Type = TypeValence
				}
			}
		default:
			if p := C.graph.Parent(n.id); p != nil && p.Red != nil && p.Red.AtomNum != 1 {
				remaining-- //bookkeeping only, see RemainingAtoms
			}
			for _, d := range C.graph.Descendants(n.id) {
				if !d.IsLeaf() || d.Leaf == nil || d.Leaf.Type != "" {
					continue
				}
				if d.Leaf.Depth < C.opts.ShellDepth() {
					d.Leaf.Type = TypeAtom
					d.Leaf.Subtype = SubtypeShell
				} else if len(C.surrounded(d)) >= 1 {
					d.Leaf.Type = TypeAtom
					d.Leaf.Subtype = SubtypeCore
				} else {
					d.Leaf.Type = TypeValence
					d.Leaf.Subtype = SubtypeOther
				}
			}
		}
	}
	C.remainingAtoms = remaining
}

// surrounded reconstructs a node's pre-split region (its basins, above its
// birth cutoff) and returns the atoms that region encloses.
func (C *Classifier) surrounded(n *Node) []int {
	mask := basinMask(C.basins, n.Basins)
	for idx := range mask {
		if mask[idx] && C.field.Data[idx] <= n.BirthCut {
			mask[idx] = false
		}
	}
	atoms, _ := surroundedAtoms(C.field, mask, C.structure)
	return atoms
}

// ReduceAtomicShells merges the shell children of each reducible node into
// a single representative. Near-spherical shells fragment spuriously at
// grid resolution; a true quantum shell should be one region.
func (C *Classifier) ReduceAtomicShells() {
	for _, n := range C.graph.Nodes() {
		if C.graph.Node(n.id) == nil || n.Red == nil {
			continue //removed by an earlier merge
		}
		children := C.graph.Children(n.id)
		var shells []*Node
		for _, c := range children {
			if c.IsLeaf() && c.Leaf != nil && c.Leaf.Subtype == SubtypeShell {
				shells = append(shells, c)
			}
		}
		if len(shells) == 0 {
			continue
		}
		merged := mergeShellAttrs(shells)
		if len(shells) == len(children) {
			//Every child was a shell: the parent itself becomes the
			//merged shell leaf, one level up.
			gp := C.graph.Parent(n.id)
			split := 0.0
			if gp != nil && gp.Red != nil {
				split = gp.Red.Split
			}
			n.Red = nil
			n.Leaf = merged
			n.Leaf.Depth = roundTo(merged.MaxELF-split, 2)
			n.Basins = unionBasins(shells)
			n.BirthCut = split
			if gp != nil {
				n.Subset = gp.Subset + 1
			}
			for _, c := range children {
				C.graph.RemoveNode(c.id)
			}
		} else {
			rep := shells[0]
			rep.Leaf = merged
			rep.Leaf.Depth = roundTo(merged.MaxELF-n.Red.Split, 2)
			rep.Basins = unionBasins(shells)
			for _, c := range shells[1:] {
				C.graph.RemoveNode(c.id)
			}
		}
	}
}

func mergeShellAttrs(shells []*Node) *Leaf {
	out := &Leaf{Type: TypeAtom, Subtype: SubtypeShell, AtomDistance: math.Inf(1)}
	for _, s := range shells {
		l := s.Leaf
		out.Volume += l.Volume
		out.Charge += l.Charge
		if l.MaxELF > out.MaxELF {
			out.MaxELF = l.MaxELF
		}
		if l.AtomDistance < out.AtomDistance {
			out.AtomDistance = l.AtomDistance
			out.NearestAtom = l.NearestAtom
		}
	}
	out.Volume = roundTo(out.Volume, 2)
	out.Charge = roundTo(out.Charge, 2)
	return out
}

func unionBasins(nodes []*Node) []int {
	set := make(map[int]bool)
	for _, n := range nodes {
		for _, b := range n.Basins {
			set[b] = true
		}
	}
	return sortedKeys(set)
}

// MarkMetallicCovalent is the second pass: every remaining valence leaf
// defaults to a bare electron, shallow ones become metallic, and features
// sitting on a bond axis (or within the angle window) become covalent.
// Features the atomic pass flagged as "other" that fail the covalent test
// are lone pairs.
func (C *Classifier) MarkMetallicCovalent() {
	for _, n := range C.graph.Leaves() {
		if n.Leaf == nil || n.Leaf.Type == TypeAtom {
			continue
		}
		prev := n.Leaf.Subtype
		n.Leaf.Type = TypeValence
		n.Leaf.Subtype = SubtypeBareElectron
		if n.Leaf.Depth < C.opts.MetalDepthCutoff() && prev != SubtypeOther {
			n.Leaf.Subtype = SubtypeMetallic
			continue
		}
		if C.isCovalent(n) {
			n.Leaf.Subtype = SubtypeCovalent
			continue
		}
		if prev == SubtypeOther {
			n.Leaf.Subtype = SubtypeLonePair
		}
	}
}

// isCovalent tests whether the feature sits on (or near, within the angle
// window) a bond axis between its nearest atom and one of that atom's
// coordination neighbors.
func (C *Classifier) isCovalent(n *Node) bool {
	if C.env == nil || len(n.Basins) == 0 {
		return false
	}
	feat := C.basins.MaximaFrac[n.Basins[0]]
	atom := n.Leaf.NearestAtom
	if atom < 0 || atom >= C.structure.Len() {
		return false
	}
	atomFrac := C.structure.FracCoords(atom)
	for _, nb := range C.env.Neighbors(atom) {
		a := C.field.PBCDistance(feat, atomFrac)
		b := C.field.PBCDistance(feat, nb.Coords)
		c := nb.Distance
		if a < C.opts.MinCovalentBondRatio()*c {
			//Too close to the central atom relative to the bond: a lone
			//pair that happens to sit in the angle window.
			continue
		}
		if roundTo(a+b-c, 2) == 0 {
			return true //exactly on the bond axis
		}
		den := 2 * a * b
		if den == 0 {
			continue //degenerate triangle: not a bond indicator
		}
		arg := (a*a + b*b - c*c) / den
		//Guard against floating point math errors before Acos.
		if arg > 1 {
			arg = 1
		} else if arg < -1 {
			arg = -1
		}
		angle := math.Acos(arg) * 180 / math.Pi
		if angle > C.opts.MinCovalentAngle() {
			return true
		}
	}
	return false
}

// RescueLonePairs is pass 2b: a lone pair between two atoms joined by
// their own covalent bond never carries the "other" flag, so it would stay
// a bare electron. If every non-reducible sibling of a bare-electron leaf
// is bare/covalent/lone-pair and at least one is covalent, relabel it.
func (C *Classifier) RescueLonePairs() {
	for _, n := range C.graph.Leaves() {
		if n.Leaf == nil || n.Leaf.Subtype != SubtypeBareElectron {
			continue
		}
		var sibs []*Node
		for _, s := range C.graph.Siblings(n.id) {
			if s.IsLeaf() {
				sibs = append(sibs, s)
			}
		}
		if len(sibs) == 0 {
			continue
		}
		anyCovalent := false
		allOK := true
		for _, s := range sibs {
			switch sub := s.Leaf.Subtype; sub {
			case SubtypeCovalent:
				anyCovalent = true
			case SubtypeBareElectron, SubtypeLonePair:
			default:
				allOK = false
			}
		}
		if allOK && anyCovalent {
			n.Leaf.Subtype = SubtypeLonePair
		}
	}
}

// CheckAssigned panics if any leaf is still missing a type after all
// passes: that is a bug in the classification, not a caller condition.
func (C *Classifier) CheckAssigned() {
	for _, n := range C.graph.Leaves() {
		if n.Leaf == nil || n.Leaf.Type == "" {
			panic(fmt.Sprintf("%s: node %d (subset %d, basins %v, birth cutoff %.2f)",
				ErrUnassignedFeature, n.id, n.Subset, n.Basins, n.BirthCut))
		}
	}
}

// basinMask returns the boolean volume of voxels whose basin label belongs
// to the given set.
func basinMask(B *BasinResult, basins []int) []bool {
	in := make(map[int]bool, len(basins))
	for _, b := range basins {
		in[b] = true
	}
	mask := make([]bool, len(B.Labels))
	for idx, b := range B.Labels {
		mask[idx] = in[b]
	}
	return mask
}
