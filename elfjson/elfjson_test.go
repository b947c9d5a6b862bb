/*
 * elfjson_test.go, part of goelf.
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

package elfjson

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/avillar/goelf"
)

func classifiedGraph() *elf.Graph {
	g := elf.NewGraph()
	root := elf.NewNode(1)
	root.Subset = 1
	root.Basins = []int{0, 1}
	root.Red = &elf.Reducible{Split: 0.2, Num: 2, Atoms: []int{-1, 0}, AtomNum: -1}
	g.AddNode(root)
	core := elf.NewNode(2)
	core.Subset = 2
	core.Basins = []int{0}
	core.BirthCut = 0.2
	core.Leaf = &elf.Leaf{
		Type: elf.TypeAtom, Subtype: elf.SubtypeCore,
		MaxELF: 1, Depth: 0.8, Charge: 2.1, Volume: 4.5, AtomDistance: 0.1, NearestAtom: 0,
	}
	g.AddNode(core)
	g.AddEdge(1, 2)
	bare := elf.NewNode(3)
	bare.Subset = 2
	bare.Basins = []int{1}
	bare.BirthCut = 0.2
	bare.Leaf = &elf.Leaf{
		Type: elf.TypeValence, Subtype: elf.SubtypeBareElectron,
		MaxELF: 0.75, Depth: 0.55, Charge: 0.9, Volume: 6.2, AtomDistance: 1.8, NearestAtom: 0,
		Indicator: &elf.Indicator{
			Value:            0.81,
			Contributions:    [5]float64{0.75, 0.9, 0.55, 0.9, 0.95},
			DistBeyondRadius: 0.46,
		},
	}
	g.AddNode(bare)
	g.AddEdge(1, 3)
	return g
}

func TestRoundTrip(Te *testing.T) {
	g := classifiedGraph()
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		Te.Fatal(err)
	}
	g2, err := Read(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(FromGraph(g), FromGraph(g2)) {
		Te.Error("decoded graph differs from the original")
	}
	if g2.Root().ID() != 1 {
		Te.Errorf("root id %d, want 1", g2.Root().ID())
	}
	if p := g2.Parent(3); p == nil || p.ID() != 1 {
		Te.Error("parent links were not rebuilt")
	}
	ind := g2.Node(3).Leaf.Indicator
	if ind == nil || ind.Value != 0.81 {
		Te.Errorf("indicator lost in transit: %v", ind)
	}
}

func TestRoundTripCompressed(Te *testing.T) {
	g := classifiedGraph()
	var buf bytes.Buffer
	if err := WriteCompressed(g, &buf); err != nil {
		Te.Fatal(err)
	}
	if bytes.HasPrefix(buf.Bytes(), []byte("{")) {
		Te.Fatal("compressed output is plain JSON")
	}
	g2, err := ReadCompressed(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(FromGraph(g), FromGraph(g2)) {
		Te.Error("decoded graph differs from the original")
	}
}

func TestReadRejectsBadTrees(Te *testing.T) {
	if _, err := Read(strings.NewReader(`{"nodes":[]}`)); err == nil {
		Te.Error("an empty node list must be rejected")
	}
	twoRoots := `{"nodes":[{"id":1,"parent":0,"subset":1,"birth_cut":0},{"id":2,"parent":0,"subset":1,"birth_cut":0}]}`
	if _, err := Read(strings.NewReader(twoRoots)); err == nil {
		Te.Error("two parentless nodes must be rejected")
	}
	orphan := `{"nodes":[{"id":1,"parent":0,"subset":1,"birth_cut":0},{"id":2,"parent":9,"subset":2,"birth_cut":0.2}]}`
	if _, err := Read(strings.NewReader(orphan)); err == nil {
		Te.Error("a reference to a missing parent must be rejected")
	}
}
