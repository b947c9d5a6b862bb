/*
 * surround.go, part of goelf.
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

	"github.com/avillar/goelf/grid"
)

//The periodic containment test: does a voxel region surround an atom, and
//does the region wrap onto itself through the periodic cell? Both are
//answered on the 2x supercell, where the 8 translated copies of a point
//make the periodic topology visible to a plain labeling pass.

// surroundedAtoms returns the atoms enclosed by the masked region and
// whether the region is periodically self-connected (extends infinitely
// through repeated unit cells). An infinite region does not get the -1
// sentinel prepended here; the caller decides how to record it.
func surroundedAtoms(g *grid.Grid, mask []bool, st Structure) (atoms []int, infinite bool) {
	shape := g.Shape()
	s2 := [3]int{2 * shape[0], 2 * shape[1], 2 * shape[2]}
	sup := grid.Supercell2xBool(mask, shape)
	supLabels, _ := grid.Label(sup, s2)
	inv := make([]bool, len(sup))
	for i, v := range sup {
		inv[i] = !v
	}
	invLabels, _ := grid.Label(inv, s2)

	idx2 := func(i, j, k int) int { return (i*s2[1]+j)*s2[2] + k }
	copies := func(v [3]int) [8]int {
		var out [8]int
		n := 0
		for si := 0; si <= 1; si++ {
			for sj := 0; sj <= 1; sj++ {
				for sk := 0; sk <= 1; sk++ {
					out[n] = idx2(v[0]+si*shape[0], v[1]+sj*shape[1], v[2]+sk*shape[2])
					n++
				}
			}
		}
		return out
	}

	//The region wraps onto itself when the 8 copies of a seed voxel fall
	//in fewer than 8 distinct components of the direct labeling.
	seed := -1
	for idx, in := range mask {
		if in {
			seed = idx
			break
		}
	}
	if seed < 0 {
		return nil, false
	}
	seen := make(map[int]bool, 8)
	for _, c := range copies(g.Voxel(seed)) {
		seen[supLabels[c]] = true
	}
	infinite = len(seen) < 8

	for a := 0; a < st.Len(); a++ {
		f := st.FracCoords(a)
		v := [3]int{
			wrapInt(int(math.Round(f[0]*float64(shape[0]))), shape[0]),
			wrapInt(int(math.Round(f[1]*float64(shape[1]))), shape[1]),
			wrapInt(int(math.Round(f[2]*float64(shape[2]))), shape[2]),
		}
		//Cheap pre-check, independent of periodicity: an atom sitting
		//inside (or right at) the region is surrounded by it.
		if touchesMask(g, mask, v) {
			atoms = append(atoms, a)
			continue
		}
		//Otherwise the atom is surrounded when the inverted-mask label
		//differs at every one of its 8 periodic copies: the region
		//isolates it in all directions.
		labs := make(map[int]bool, 8)
		distinct := true
		for _, c := range copies(v) {
			l := invLabels[c]
			if labs[l] {
				distinct = false
				break
			}
			labs[l] = true
		}
		if distinct {
			atoms = append(atoms, a)
		}
	}
	return atoms, infinite
}

// touchesMask reports whether the voxel or any of its 26 periodic
// neighbors belongs to the mask.
func touchesMask(g *grid.Grid, mask []bool, v [3]int) bool {
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			for dk := -1; dk <= 1; dk++ {
				if mask[g.Index(v[0]+di, v[1]+dj, v[2]+dk)] {
					return true
				}
			}
		}
	}
	return false
}

func wrapInt(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
