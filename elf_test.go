/*
 * elf_test.go, part of goelf.
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
	"github.com/avillar/goelf/grid"
	"gonum.org/v1/gonum/mat"
)

//Test collaborators. The real partitioning, structure and environment come
//from external tools; these stand-ins give exact control over the geometry.

type testStructure struct {
	coords  [][3]float64
	symbols []string
}

func (T *testStructure) Len() int { return len(T.coords) }

func (T *testStructure) FracCoords(i int) [3]float64 { return T.coords[i] }

func (T *testStructure) Symbol(i int) string { return T.symbols[i] }

type testEnv map[int][]Neighbor

func (T testEnv) Neighbors(atom int) []Neighbor { return T[atom] }

type fixedRadius float64

func (F fixedRadius) Radius(int) float64 { return float64(F) }

func cubicGrid(n int, a float64, data []float64) *grid.Grid {
	lat := mat.NewDense(3, 3, []float64{a, 0, 0, 0, a, 0, 0, 0, a})
	return grid.New(data, [3]int{n, n, n}, lat)
}

func filled(n int, v float64) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = v
	}
	return data
}

//twoPeakFixture builds a 5x5x5 cell with two isolated field maxima of 0.8
//at voxels (1,1,1) and (3,3,3) over a 0.1 background, one atom under each
//peak, and a two-basin partitioning split along the flat index.
func twoPeakFixture() (field, charge *grid.Grid, basins *BasinResult, st *testStructure) {
	data := filled(125, 0.1)
	data[(1*5+1)*5+1] = 0.8
	data[(3*5+3)*5+3] = 0.8
	field = cubicGrid(5, 5, data)
	charge = cubicGrid(5, 5, filled(125, 0.5))
	labels := make([]int, 125)
	for idx := range labels {
		if idx >= 62 {
			labels[idx] = 1
		}
	}
	basins = &BasinResult{
		Labels:     labels,
		AtomDist:   []float64{0, 0},
		AtomIndex:  []int{0, 1},
		MaximaFrac: [][3]float64{{0.2, 0.2, 0.2}, {0.6, 0.6, 0.6}},
	}
	st = &testStructure{
		coords:  [][3]float64{{0.2, 0.2, 0.2}, {0.6, 0.6, 0.6}},
		symbols: []string{"Na", "Na"},
	}
	return field, charge, basins, st
}
