/*
 * analyzer_test.go, part of goelf.
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

//The whole pipeline on the two-peak cell: the root splits into one feature
//per atom and both get classified as cores, leaving nothing unassigned.
func TestRunFullTwoPeaks(Te *testing.T) {
	field, charge, basins, st := twoPeakFixture()
	opts := DefaultOptions()
	opts.Resolution(0.2)
	a, err := NewAnalyzer(field, charge, basins, st, nil, nil, opts)
	if err != nil {
		Te.Fatal(err)
	}
	g, err := a.RunFull()
	if err != nil {
		Te.Fatal(err)
	}
	if g.Len() != 3 {
		Te.Fatalf("got %d nodes, want 3", g.Len())
	}
	leaves := g.Leaves()
	if len(leaves) != 2 {
		Te.Fatalf("got %d leaves, want 2", len(leaves))
	}
	for i, l := range leaves {
		if l.Leaf.Type != TypeAtom || l.Leaf.Subtype != SubtypeCore {
			Te.Errorf("leaf %d: %s/%s, want atom/core", i, l.Leaf.Type, l.Leaf.Subtype)
		}
		if l.Leaf.NearestAtom != i {
			Te.Errorf("leaf %d: nearest atom %d, want %d", i, l.Leaf.NearestAtom, i)
		}
	}
	if g.Root().Red.AtomNum != -1 {
		Te.Errorf("root atomNum %d, want -1", g.Root().Red.AtomNum)
	}
	if ids := g.Electrides(opts); len(ids) != 0 {
		Te.Errorf("no valence features, got electrides %v", ids)
	}
}

//A deep valence feature with no coordination data available: the covalent
//test must come up empty instead of dereferencing the absent environment.
func TestRunFullNilEnv(Te *testing.T) {
	data := filled(125, 0.1)
	data[(1*5+1)*5+1] = 0.8 //peak over the atom
	data[(3*5+3)*5+3] = 0.8 //deep blob far from any atom
	field := cubicGrid(5, 5, data)
	charge := cubicGrid(5, 5, filled(125, 0.5))
	labels := make([]int, 125)
	for idx := range labels {
		if idx >= 62 {
			labels[idx] = 1
		}
	}
	basins := &BasinResult{
		Labels:     labels,
		AtomDist:   []float64{0, 3.0},
		AtomIndex:  []int{0, 0},
		MaximaFrac: [][3]float64{{0.2, 0.2, 0.2}, {0.6, 0.6, 0.6}},
	}
	st := &testStructure{coords: [][3]float64{{0.2, 0.2, 0.2}}, symbols: []string{"Na"}}
	opts := DefaultOptions()
	opts.Resolution(0.2)

	a, err := NewAnalyzer(field, charge, basins, st, nil, nil, opts)
	if err != nil {
		Te.Fatal(err)
	}
	g, err := a.RunFull()
	if err != nil {
		Te.Fatal(err)
	}
	leaves := g.Leaves()
	if len(leaves) != 2 {
		Te.Fatalf("got %d leaves, want 2", len(leaves))
	}
	if leaves[0].Leaf.Subtype != SubtypeCore {
		Te.Errorf("atom feature: %q, want core", leaves[0].Leaf.Subtype)
	}
	if leaves[1].Leaf.Subtype != SubtypeBareElectron {
		Te.Errorf("isolated feature: %q, want bare electron", leaves[1].Leaf.Subtype)
	}
	if leaves[1].Leaf.Indicator == nil {
		Te.Error("the valence leaf must still get its indicator")
	}
}

func TestAnalyzerValidation(Te *testing.T) {
	field, charge, basins, st := twoPeakFixture()
	if _, err := NewAnalyzer(nil, charge, basins, st, nil, nil, nil); err == nil {
		Te.Error("nil field must be rejected")
	}
	short := &BasinResult{Labels: make([]int, 3)}
	if _, err := NewAnalyzer(field, charge, short, st, nil, nil, nil); err == nil {
		Te.Error("mismatched basin volume must be rejected")
	}
	bad := &testStructure{
		coords:  [][3]float64{{0, 0, 0}, {0.5, 0.5, 0.5}},
		symbols: []string{"X", "Na"},
	}
	if _, err := NewAnalyzer(field, charge, basins, bad, nil, nil, nil); err == nil {
		Te.Error("a dummy species before a real atom must be rejected")
	}
}

func TestErrorDecoration(Te *testing.T) {
	err := CError{"something broke", nil}
	deco := err.Decorate("caller")
	if len(deco) != 1 || deco[0] != "caller" {
		Te.Errorf("decoration %v, want [caller]", deco)
	}
	if err.Error() != "something broke" {
		Te.Errorf("message %q changed", err.Error())
	}
	if !err.Critical() {
		Te.Error("plain CErrors are critical")
	}
}
