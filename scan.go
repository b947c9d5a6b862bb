/*
 * scan.go, part of goelf.
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
	"math"
	"sort"

	"github.com/avillar/goelf/grid"
	"gonum.org/v1/gonum/floats/scalar"
)

// Scanner builds a bifurcation graph by sweeping a cutoff from the
// resolution step up to 1.0 and tracking how the super-level-set of the
// scalar field fragments. A Scanner belongs to one scan; the feature
// counter is owned by the instance and never shared.
type Scanner struct {
	field     *grid.Grid
	charge    *grid.Grid
	basins    *BasinResult
	structure Structure
	opts      *Options

	graph         *Graph
	totalFeatures int64 //monotonically increasing node-id mint, never reused
}

// NewScanner prepares a scan of field, with charge integrated over the
// basin partitioning in basins. It returns an error on nil collaborators
// or if the basin label volume does not match the field shape.
func NewScanner(field, charge *grid.Grid, basins *BasinResult, st Structure, opts *Options) (*Scanner, error) {
	if field == nil || charge == nil || basins == nil || st == nil {
		return nil, CError{string(ErrNilCollaborator), []string{"NewScanner"}}
	}
	if len(basins.Labels) != field.NVoxels() {
		return nil, CError{string(ErrShapeMismatch), []string{"NewScanner"}}
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Scanner{field: field, charge: charge, basins: basins, structure: st, opts: opts}, nil
}

// TotalFeatures returns the number of node ids minted so far.
func (S *Scanner) TotalFeatures() int64 { return S.totalFeatures }

// Run performs the sweep and returns the raw (unclassified) graph. The
// loop runs at most round(1/resolution) iterations.
func (S *Scanner) Run() (*Graph, error) {
	res := S.opts.Resolution()
	steps := int(math.Round(1 / res))
	n := S.field.NVoxels()
	shape := S.field.Shape()

	//The whole cell is one feature at cutoff zero.
	S.graph = NewGraph()
	root := NewNode(1)
	root.Subset = 1
	root.Basins = S.allBasins()
	S.graph.AddNode(root)
	S.totalFeatures = 1

	featured := make([]int, n)
	for i := range featured {
		featured[i] = 1
	}
	var lastRaw []int

	for step := 1; step <= steps; step++ {
		cutoff := res * float64(step)
		mask := make([]bool, n)
		for i, v := range S.field.Data {
			mask[i] = v >= cutoff
		}
		raw, nraw := grid.LabelPeriodic(mask, shape)
		if lastRaw != nil && equalInts(raw, lastRaw) {
			continue //no topological change at this cutoff
		}

		//Collect, per alive feature, its voxels and the new labels (and
		//basins per new label) intersecting them.
		voxels := make(map[int][]int)
		newSets := make(map[int]map[int]bool)
		rawBasins := make(map[int]map[int]bool)
		zeroPresent := false
		for idx, id := range featured {
			if id == 0 {
				zeroPresent = true
				continue
			}
			voxels[id] = append(voxels[id], idx)
			k := raw[idx]
			if k != 0 {
				set := newSets[id]
				if set == nil {
					set = make(map[int]bool)
					newSets[id] = set
				}
				set[k] = true
				bs := rawBasins[k]
				if bs == nil {
					bs = make(map[int]bool)
					rawBasins[k] = bs
				}
				bs[S.basins.Labels[idx]] = true
			}
		}
		if len(voxels) == 0 {
			break //everything vanished at an earlier cutoff
		}

		//Unique-value counts for the label-offset sentinel algebra: both
		//volumes are offset by the size of their own unique sets, so the
		//old no-feature marker sits at -mOld and a surviving new label k
		//lands on it exactly when k == kNew-mOld.
		mOld := len(voxels)
		if zeroPresent {
			mOld++
		}
		kNew := nraw
		if containsZero(raw) {
			kNew++
		}

		rawToID := make(map[int]int)
		oldIDs := make([]int, 0, len(voxels))
		for id := range voxels {
			oldIDs = append(oldIDs, id)
		}
		sort.Ints(oldIDs)
		for _, oldID := range oldIDs {
			news := sortedKeys(newSets[oldID])
			switch {
			case len(news) == 0:
				//The feature vanished entirely: it was irreducible.
				S.finalizeLeaf(int64(oldID), voxels[oldID])
			case len(news) == 1:
				//A surviving label whose offset value lands exactly on
				//the old no-feature marker is a degenerate relabeling
				//artifact at low grid resolution: a transient spurious
				//feature. The root's region shrinking to a single
				//component is always an ordinary continuation.
				if news[0] == kNew-mOld && int64(oldID) != S.graph.Root().id {
					S.discardSpurious(int64(oldID))
				} else {
					rawToID[news[0]] = oldID //same node, smaller region
				}
			default:
				S.splitFeature(int64(oldID), news, cutoff, rawBasins, rawToID)
			}
		}

		//Remap the label volume through the table in one pass.
		next := make([]int, n)
		for idx, k := range raw {
			if k != 0 {
				next[idx] = rawToID[k]
			}
		}
		featured = next
		lastRaw = raw
	}

	//Features still alive after the last cutoff (field values at exactly
	//1.0) would otherwise never be annotated.
	survivors := make(map[int][]int)
	for idx, id := range featured {
		if id != 0 {
			survivors[id] = append(survivors[id], idx)
		}
	}
	for _, id := range sortedKeys2(survivors) {
		S.finalizeLeaf(int64(id), survivors[id])
	}
	return S.graph, nil
}

// allBasins returns every basin label, sorted.
func (S *Scanner) allBasins() []int {
	out := make([]int, S.basins.NBasins())
	for i := range out {
		out[i] = i
	}
	return out
}

// finalizeLeaf annotates a vanished feature with its numeric descriptors.
// The charge is the sum of the charge field over the feature's basin mask
// divided by the total voxel count of the charge grid; this normalization
// is the convention of the original analysis and is kept bit-compatible.
func (S *Scanner) finalizeLeaf(id int64, lastVoxels []int) {
	node := S.graph.Node(id)
	max := math.Inf(-1)
	for _, idx := range lastVoxels {
		if v := S.field.Data[idx]; v > max {
			max = v
		}
	}
	maxELF := roundTo(max, 2)

	bmask := basinMask(S.basins, node.Basins)
	count := 0
	chargeSum := 0.0
	for idx, in := range bmask {
		if in {
			count++
			chargeSum += S.charge.Data[idx]
		}
	}
	dist := math.Inf(1)
	nearest := -1
	for _, b := range node.Basins {
		if S.basins.AtomDist[b] < dist {
			dist = S.basins.AtomDist[b]
			nearest = S.basins.AtomIndex[b]
		}
	}
	node.Leaf = &Leaf{
		MaxELF:       maxELF,
		Depth:        roundTo(maxELF-node.BirthCut, 2),
		Charge:       roundTo(chargeSum/float64(S.charge.NVoxels()), 2),
		Volume:       roundTo(float64(count)*S.field.VoxelVolume(), 2),
		AtomDistance: dist,
		NearestAtom:  nearest,
	}
}

// splitFeature records a fragmentation event: the node's pre-split region
// is reconstructed from its basins, the atoms it surrounds are computed,
// and one child node is minted per new label.
func (S *Scanner) splitFeature(id int64, news []int, cutoff float64, rawBasins map[int]map[int]bool, rawToID map[int]int) {
	node := S.graph.Node(id)
	var atoms []int
	atomNum := 0
	if id == S.graph.Root().id {
		//The root is the whole periodic cell: it encloses every atom and
		//extends infinitely by construction.
		atoms = append(atoms, -1)
		for a := 0; a < S.structure.Len(); a++ {
			atoms = append(atoms, a)
		}
		atomNum = -1
	} else {
		mask := basinMask(S.basins, node.Basins)
		for idx := range mask {
			if mask[idx] && S.field.Data[idx] <= node.BirthCut {
				mask[idx] = false
			}
		}
		enclosed, infinite := surroundedAtoms(S.field, mask, S.structure)
		if infinite {
			atoms = append([]int{-1}, enclosed...)
			atomNum = -1
		} else {
			atoms = enclosed
			atomNum = len(enclosed)
		}
	}
	node.Red = &Reducible{Split: cutoff, Num: len(news), Atoms: atoms, AtomNum: atomNum}

	for _, k := range news {
		S.totalFeatures++
		child := NewNode(S.totalFeatures)
		child.Subset = node.Subset + 1
		child.BirthCut = cutoff
		child.Basins = sortedKeys(rawBasins[k])
		S.graph.AddNode(child)
		S.graph.AddEdge(id, child.id)
		rawToID[k] = int(child.id)
	}
}

// discardSpurious removes a transient noise feature from the graph,
// fixing up the parent's recorded child count. A parent left with a single
// child is itself uninformative: its remaining children are reattached to
// the grandparent, the parent is removed, and the depths below it are
// pulled up by one.
func (S *Scanner) discardSpurious(id int64) {
	parent := S.graph.Parent(id)
	S.graph.RemoveNode(id)
	if parent == nil || parent.Red == nil {
		return
	}
	parent.Red.Num--
	if parent.Red.Num != 1 {
		return
	}
	gp := S.graph.Parent(parent.id)
	if gp == nil {
		return //never remove the root
	}
	remaining := S.graph.Children(parent.id)
	desc := S.graph.Descendants(parent.id)
	for _, c := range remaining {
		S.graph.DetachEdge(parent.id, c.id)
		S.graph.AddEdge(gp.id, c.id)
	}
	S.graph.RemoveNode(parent.id)
	for _, d := range desc {
		d.Subset--
	}
}

func roundTo(v float64, digits int) float64 {
	return scalar.Round(v, digits)
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsZero(a []int) bool {
	for _, v := range a {
		if v == 0 {
			return true
		}
	}
	return false
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func sortedKeys2(m map[int][]int) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
