/*
 * geom.go, part of goelf.
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

package grid

import "math"

// CornerDistances returns, for every voxel, the minimum Cartesian distance
// to any of the 8 unit-cell corner images of the origin. The result is the
// periodic distance-from-origin field used for radius-based neighbor
// lookups that wrap correctly across the cell boundary.
func (G *Grid) CornerDistances() []float64 {
	out := make([]float64, len(G.Data))
	corners := [8][3]float64{
		{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1},
		{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1},
	}
	for idx := range out {
		v := G.Voxel(idx)
		f := G.VoxelToFrac([3]float64{float64(v[0]), float64(v[1]), float64(v[2])})
		min := math.Inf(1)
		for _, c := range corners {
			d := G.FracToCart([3]float64{f[0] - c[0], f[1] - c[1], f[2] - c[2]})
			r := math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
			if r < min {
				min = r
			}
		}
		out[idx] = min
	}
	return out
}

// SphereVoxels returns the voxel coordinates within Cartesian radius r of
// the given center voxel, wrapped into [0,shape). The lookup is built from
// the periodic corner-distance field, so spheres crossing the cell boundary
// are handled correctly.
func (G *Grid) SphereVoxels(center [3]int, r float64) [][3]int {
	dist := G.CornerDistances()
	var out [][3]int
	for idx, d := range dist {
		if d > r {
			continue
		}
		v := G.Voxel(idx)
		out = append(out, [3]int{
			wrap(center[0]+v[0], G.shape[0]),
			wrap(center[1]+v[1], G.shape[1]),
			wrap(center[2]+v[2], G.shape[2]),
		})
	}
	return out
}

//2x supercell replication. A lattice translation is a whole-shape offset in
//voxel space, so the 8 copies land at all {0,1}^3 combinations of the
//original shape along each axis.

// Supercell2xBool places 8 translated copies of a boolean volume into a
// volume of double the shape in each axis.
func Supercell2xBool(mask []bool, shape [3]int) []bool {
	s2 := [3]int{2 * shape[0], 2 * shape[1], 2 * shape[2]}
	out := make([]bool, len(mask)*8)
	replicate(mask, shape, s2, func(src, dst int) { out[dst] = mask[src] })
	return out
}

// Supercell2xInt is Supercell2xBool for integer label volumes.
func Supercell2xInt(labels []int, shape [3]int) []int {
	s2 := [3]int{2 * shape[0], 2 * shape[1], 2 * shape[2]}
	out := make([]int, len(labels)*8)
	replicate(labels, shape, s2, func(src, dst int) { out[dst] = labels[src] })
	return out
}

func replicate[T any](vol []T, shape, s2 [3]int, put func(src, dst int)) {
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			for k := 0; k < shape[2]; k++ {
				src := (i*shape[1]+j)*shape[2] + k
				for si := 0; si <= 1; si++ {
					for sj := 0; sj <= 1; sj++ {
						for sk := 0; sk <= 1; sk++ {
							di := i + si*shape[0]
							dj := j + sj*shape[1]
							dk := k + sk*shape[2]
							put(src, (di*s2[1]+dj)*s2[2]+dk)
						}
					}
				}
			}
		}
	}
}
