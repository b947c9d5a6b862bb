/*
 * interp.go, part of goelf.
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

// Interpolate returns the trilinearly interpolated field value at an
// arbitrary fractional position. The stencil wraps periodically, which is
// equivalent to interpolating over a periodically padded array.
func (G *Grid) Interpolate(f [3]float64) float64 {
	v := G.FracToVoxel(f)
	var i0 [3]int
	var t [3]float64
	for d := 0; d < 3; d++ {
		fl := math.Floor(v[d])
		i0[d] = int(fl)
		t[d] = v[d] - fl
	}
	var out float64
	for di := 0; di <= 1; di++ {
		for dj := 0; dj <= 1; dj++ {
			for dk := 0; dk <= 1; dk++ {
				w := lerpw(t[0], di) * lerpw(t[1], dj) * lerpw(t[2], dk)
				out += w * G.At(i0[0]+di, i0[1]+dj, i0[2]+dk)
			}
		}
	}
	return out
}

func lerpw(t float64, hi int) float64 {
	if hi == 1 {
		return t
	}
	return 1 - t
}

// Gradient returns the central-difference gradient at a voxel, in
// field-units per voxel along each axis, with periodic wrapping.
func (G *Grid) Gradient(i, j, k int) [3]float64 {
	return [3]float64{
		(G.At(i+1, j, k) - G.At(i-1, j, k)) / 2,
		(G.At(i, j+1, k) - G.At(i, j-1, k)) / 2,
		(G.At(i, j, k+1) - G.At(i, j, k-1)) / 2,
	}
}

// LocalMaxima returns the voxels whose value is not exceeded by any of
// their 26 periodic neighbors.
func (G *Grid) LocalMaxima() [][3]int {
	var out [][3]int
	for idx, val := range G.Data {
		v := G.Voxel(idx)
		ismax := true
		for _, d := range neighbors26 {
			if G.At(v[0]+d[0], v[1]+d[1], v[2]+d[2]) > val {
				ismax = false
				break
			}
		}
		if ismax {
			out = append(out, v)
		}
	}
	return out
}
