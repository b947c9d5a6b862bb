/*
 * graph.go, part of goelf.
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
	"sort"

	"gonum.org/v1/gonum/graph/simple"
)

//Feature types and subtypes assigned by the classifier.
const (
	TypeAtom    = "atom"
	TypeValence = "val"

	SubtypeCore         = "core"
	SubtypeShell        = "shell"
	SubtypeCovalent     = "covalent"
	SubtypeMetallic     = "metallic"
	SubtypeLonePair     = "lone-pair"
	SubtypeBareElectron = "bare electron"
	SubtypeOther        = "other" //atomic branch but not core/shell; resolved later
)

// Reducible holds the attributes of a node whose region fragmented into
// children during the scan.
type Reducible struct {
	Split   float64 //cutoff at which the region fragmented
	Num     int     //number of children produced at the split
	Atoms   []int   //atoms enclosed before the split; may start with the -1 sentinel
	AtomNum int     //count of enclosed atoms, or -1 for an infinite periodic region
}

// Leaf holds the attributes of an irreducible feature: a region that
// vanished without fragmenting further.
type Leaf struct {
	Type         string //TypeAtom or TypeValence; empty until classified
	Subtype      string
	MaxELF       float64
	Depth        float64
	Charge       float64
	Volume       float64
	AtomDistance float64
	NearestAtom  int
	Indicator    *Indicator //set on valence leaves by the bare-electron pass
}

// Indicator is the continuous bare-electron score of a valence leaf.
type Indicator struct {
	Value            float64    //unweighted average of the five contributions, in [0,1]
	Contributions    [5]float64 //ELF, charge, depth, volume and distance terms
	DistBeyondRadius float64    //atom distance minus the atomic radius estimate
}

// Node is one feature of the bifurcation graph. A node is either reducible
// (Red set, children present) or a leaf (Leaf set, no children); after
// classification completes every node is exactly one of the two.
type Node struct {
	id       int64
	Subset   int     //tree depth; the root has 1
	Basins   []int   //basin labels belonging to this node's region, sorted
	BirthCut float64 //cutoff at which this node's region was minted (0 for the root)
	Red      *Reducible
	Leaf     *Leaf
}

// NewNode returns a bare node with the given id. Ids are minted by the
// scanner; this constructor exists for the scanner and for deserialization.
func NewNode(id int64) *Node { return &Node{id: id} }

// ID makes Node satisfy gonum's graph.Node.
func (N *Node) ID() int64 { return N.id }

// IsLeaf reports whether the node is irreducible.
func (N *Node) IsLeaf() bool { return N.Red == nil }

// Graph is the rooted, directed, tree-shaped bifurcation graph. The
// topology lives in a gonum directed graph; the attributes live in the
// typed Nodes. Mutations are performed only by the scanner, the classifier
// and the serialization code; query callers never mutate.
type Graph struct {
	g     *simple.DirectedGraph
	nodes map[int64]*Node
	root  int64
}

// NewGraph returns an empty bifurcation graph.
func NewGraph() *Graph {
	return &Graph{g: simple.NewDirectedGraph(), nodes: make(map[int64]*Node)}
}

// AddNode inserts a node. The first node added becomes the root.
func (G *Graph) AddNode(n *Node) {
	if len(G.nodes) == 0 {
		G.root = n.id
	}
	G.nodes[n.id] = n
	G.g.AddNode(n)
}

// AddEdge connects a parent to a child. Panics (inside gonum) if either
// node is absent or the edge would be a self loop.
func (G *Graph) AddEdge(parent, child int64) {
	G.g.SetEdge(G.g.NewEdge(G.nodes[parent], G.nodes[child]))
}

// RemoveNode deletes a node and its incident edges. The caller is
// responsible for reattaching any orphaned children first, so the
// structure stays a tree.
func (G *Graph) RemoveNode(id int64) {
	G.g.RemoveNode(id)
	delete(G.nodes, id)
}

// DetachEdge removes the edge between parent and child, if present.
func (G *Graph) DetachEdge(parent, child int64) {
	G.g.RemoveEdge(parent, child)
}

// Node returns the node with the given id, or nil.
func (G *Graph) Node(id int64) *Node { return G.nodes[id] }

// Root returns the root node, or nil for an empty graph.
func (G *Graph) Root() *Node { return G.nodes[G.root] }

// Len returns the number of nodes.
func (G *Graph) Len() int { return len(G.nodes) }

// Nodes returns all nodes in ascending id order, which is creation order:
// the scanner mints ids monotonically and never reuses them.
func (G *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(G.nodes))
	for _, n := range G.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Leaves returns all irreducible nodes in ascending id order.
func (G *Graph) Leaves() []*Node {
	var out []*Node
	for _, n := range G.Nodes() {
		if n.IsLeaf() {
			out = append(out, n)
		}
	}
	return out
}

// Parent returns the parent of a node, or nil for the root.
func (G *Graph) Parent(id int64) *Node {
	it := G.g.To(id)
	for it.Next() {
		return G.nodes[it.Node().ID()]
	}
	return nil
}

// Children returns the immediate children of a node in ascending id order.
func (G *Graph) Children(id int64) []*Node {
	var out []*Node
	it := G.g.From(id)
	for it.Next() {
		out = append(out, G.nodes[it.Node().ID()])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Descendants returns all descendants of a node, computed by repeated
// one-hop expansion until the set stops growing. The node itself is never
// included. Terminates because the tree is finite and acyclic.
func (G *Graph) Descendants(id int64) []*Node {
	seen := make(map[int64]*Node)
	for {
		grew := false
		frontier := G.Children(id)
		for _, n := range seen {
			frontier = append(frontier, G.Children(n.id)...)
		}
		for _, n := range frontier {
			if _, ok := seen[n.id]; !ok {
				seen[n.id] = n
				grew = true
			}
		}
		if !grew {
			break
		}
	}
	out := make([]*Node, 0, len(seen))
	for _, n := range seen {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Siblings returns the other children of a node's parent, in ascending id
// order. It returns nil for the root.
func (G *Graph) Siblings(id int64) []*Node {
	p := G.Parent(id)
	if p == nil {
		return nil
	}
	var out []*Node
	for _, c := range G.Children(p.id) {
		if c.id != id {
			out = append(out, c)
		}
	}
	return out
}

// Electrides applies the five electride-acceptance thresholds from opts to
// the classified valence leaves and returns the ids of the ones passing
// all of them. The bare-electron-indicator pass must have run, since the
// distance-beyond-radius threshold reads the indicator.
func (G *Graph) Electrides(opts *Options) []int64 {
	var out []int64
	for _, n := range G.Leaves() {
		l := n.Leaf
		if l == nil || l.Type != TypeValence || l.Indicator == nil {
			continue
		}
		if l.MaxELF >= opts.ElectrideMinELF() &&
			l.Depth >= opts.ElectrideMinDepth() &&
			l.Charge >= opts.ElectrideMinCharge() &&
			l.Volume >= opts.ElectrideMinVolume() &&
			l.Indicator.DistBeyondRadius >= opts.ElectrideMinDistBeyondRadius() {
			out = append(out, n.id)
		}
	}
	return out
}
