/*
 * elfjson.go, part of goelf.
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

// Package elfjson serializes classified bifurcation graphs to JSON, plain
// or zstd-compressed. The transfer types mirror the graph node attributes
// one to one, so a round trip is lossless.
package elfjson

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/avillar/goelf"
	"github.com/klauspost/compress/zstd"
)

// Node is the transfer form of one graph node. Parent is 0 for the root.
type Node struct {
	ID       int64          `json:"id"`
	Parent   int64          `json:"parent"`
	Subset   int            `json:"subset"`
	Basins   []int          `json:"basins,omitempty"`
	BirthCut float64        `json:"birth_cut"`
	Red      *elf.Reducible `json:"reducible,omitempty"`
	Leaf     *elf.Leaf      `json:"leaf,omitempty"`
}

// Graph is the transfer form of a whole bifurcation graph.
type Graph struct {
	Nodes []Node `json:"nodes"`
}

// FromGraph flattens a graph into its transfer form, nodes in id order.
func FromGraph(g *elf.Graph) *Graph {
	out := &Graph{}
	for _, n := range g.Nodes() {
		t := Node{
			ID:       n.ID(),
			Subset:   n.Subset,
			Basins:   n.Basins,
			BirthCut: n.BirthCut,
			Red:      n.Red,
			Leaf:     n.Leaf,
		}
		if p := g.Parent(n.ID()); p != nil {
			t.Parent = p.ID()
		}
		out.Nodes = append(out.Nodes, t)
	}
	return out
}

// ToGraph rebuilds an elf.Graph from its transfer form. It returns an
// error if the node set does not form a single rooted tree.
func (G *Graph) ToGraph() (*elf.Graph, error) {
	g := elf.NewGraph()
	nodes := make([]Node, len(G.Nodes))
	copy(nodes, G.Nodes)
	//The root has to be inserted first; it is the single parentless node.
	sort.Slice(nodes, func(i, j int) bool {
		if (nodes[i].Parent == 0) != (nodes[j].Parent == 0) {
			return nodes[i].Parent == 0
		}
		return nodes[i].ID < nodes[j].ID
	})
	if len(nodes) == 0 || nodes[0].Parent != 0 {
		return nil, fmt.Errorf("elfjson: no root node in input")
	}
	if len(nodes) > 1 && nodes[1].Parent == 0 {
		return nil, fmt.Errorf("elfjson: more than one root node in input")
	}
	for _, t := range nodes {
		n := elf.NewNode(t.ID)
		n.Subset = t.Subset
		n.Basins = t.Basins
		n.BirthCut = t.BirthCut
		n.Red = t.Red
		n.Leaf = t.Leaf
		g.AddNode(n)
	}
	for _, t := range nodes {
		if t.Parent == 0 {
			continue
		}
		if g.Node(t.Parent) == nil {
			return nil, fmt.Errorf("elfjson: node %d references missing parent %d", t.ID, t.Parent)
		}
		g.AddEdge(t.Parent, t.ID)
	}
	return g, nil
}

// Write encodes the graph as JSON to w.
func Write(g *elf.Graph, w io.Writer) error {
	return json.NewEncoder(w).Encode(FromGraph(g))
}

// Read decodes a JSON graph from r.
func Read(r io.Reader) (*elf.Graph, error) {
	t := new(Graph)
	if err := json.NewDecoder(r).Decode(t); err != nil {
		return nil, err
	}
	return t.ToGraph()
}

// WriteCompressed encodes the graph as zstd-compressed JSON to w.
func WriteCompressed(g *elf.Graph, w io.Writer) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := Write(g, zw); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ReadCompressed decodes a zstd-compressed JSON graph from r.
func ReadCompressed(r io.Reader) (*elf.Graph, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return Read(zr)
}
