/*
 * graph_test.go, part of goelf.
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

import "testing"

//buildTestTree returns the tree 1 -> {2, 3}, 3 -> {4, 5}.
func buildTestTree() *Graph {
	g := NewGraph()
	for id := int64(1); id <= 5; id++ {
		n := NewNode(id)
		n.Leaf = &Leaf{}
		g.AddNode(n)
	}
	g.Node(1).Leaf = nil
	g.Node(1).Red = &Reducible{Num: 2}
	g.Node(3).Leaf = nil
	g.Node(3).Red = &Reducible{Num: 2}
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	g.AddEdge(3, 4)
	g.AddEdge(3, 5)
	return g
}

func TestGraphTopology(Te *testing.T) {
	g := buildTestTree()
	if g.Len() != 5 {
		Te.Errorf("got %d nodes, want 5", g.Len())
	}
	if g.Root().ID() != 1 {
		Te.Errorf("root is %d, want 1", g.Root().ID())
	}
	if p := g.Parent(4); p == nil || p.ID() != 3 {
		Te.Errorf("parent of 4 is %v, want 3", p)
	}
	if g.Parent(1) != nil {
		Te.Error("the root must have no parent")
	}
	ch := g.Children(1)
	if len(ch) != 2 || ch[0].ID() != 2 || ch[1].ID() != 3 {
		Te.Errorf("children of 1: %v", ch)
	}
	desc := g.Descendants(1)
	if len(desc) != 4 {
		Te.Errorf("got %d descendants of the root, want 4", len(desc))
	}
	for _, d := range desc {
		if d.ID() == 1 {
			Te.Error("a node must not be its own descendant")
		}
	}
	sib := g.Siblings(4)
	if len(sib) != 1 || sib[0].ID() != 5 {
		Te.Errorf("siblings of 4: %v", sib)
	}
	if g.Siblings(1) != nil {
		Te.Error("the root must have no siblings")
	}
	leaves := g.Leaves()
	if len(leaves) != 3 {
		Te.Errorf("got %d leaves, want 3", len(leaves))
	}
	for i, want := range []int64{2, 4, 5} {
		if leaves[i].ID() != want {
			Te.Errorf("leaf %d has id %d, want %d", i, leaves[i].ID(), want)
		}
	}
}

func TestGraphDetachAndRemove(Te *testing.T) {
	g := buildTestTree()
	g.DetachEdge(3, 5)
	g.AddEdge(1, 5)
	g.RemoveNode(3)
	//4 is orphaned on purpose: RemoveNode leaves reattachment to the caller
	if g.Parent(5) == nil || g.Parent(5).ID() != 1 {
		Te.Error("5 was not reattached to the root")
	}
	if g.Parent(4) != nil {
		Te.Error("4 should be orphaned after its parent was removed")
	}
	if g.Len() != 4 {
		Te.Errorf("got %d nodes after removal, want 4", g.Len())
	}
}

func TestElectrides(Te *testing.T) {
	g := NewGraph()
	root := NewNode(1)
	root.Red = &Reducible{Num: 2}
	g.AddNode(root)
	pass := NewNode(2)
	pass.Leaf = &Leaf{
		Type: TypeValence, Subtype: SubtypeBareElectron,
		MaxELF: 0.7, Depth: 0.2, Charge: 0.5, Volume: 2.0,
		Indicator: &Indicator{Value: 0.8, DistBeyondRadius: 0.5},
	}
	g.AddNode(pass)
	g.AddEdge(1, 2)
	small := NewNode(3)
	small.Leaf = &Leaf{
		Type: TypeValence, Subtype: SubtypeBareElectron,
		MaxELF: 0.7, Depth: 0.2, Charge: 0.5, Volume: 0.5, //below the volume floor
		Indicator: &Indicator{Value: 0.8, DistBeyondRadius: 0.5},
	}
	g.AddNode(small)
	g.AddEdge(1, 3)
	atom := NewNode(4)
	atom.Leaf = &Leaf{Type: TypeAtom, Subtype: SubtypeCore, MaxELF: 1, Depth: 1, Charge: 2, Volume: 9}
	g.AddNode(atom)
	g.AddEdge(1, 4)

	got := g.Electrides(DefaultOptions())
	if len(got) != 1 || got[0] != 2 {
		Te.Errorf("electrides: %v, want [2]", got)
	}
	//tightening a threshold above the candidate's value empties the list
	opts := DefaultOptions()
	opts.ElectrideMinELF(0.9)
	if got := g.Electrides(opts); len(got) != 0 {
		Te.Errorf("electrides with minELF 0.9: %v, want none", got)
	}
}
