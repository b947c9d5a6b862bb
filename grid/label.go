/*
 * label.go, part of goelf.
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

import "sort"

//Connected-component labeling of boolean voxel volumes. Label works on the
//volume as given (no wrapping); LabelPeriodic additionally merges the
//components that touch only across the periodic boundary, which is required
//at every cutoff level of a bifurcation scan.

// neighbors26 holds the full 3x3x3 structuring element minus the center.
var neighbors26 = buildNeighbors26()

func buildNeighbors26() [][3]int {
	offs := make([][3]int, 0, 26)
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			for dk := -1; dk <= 1; dk++ {
				if di == 0 && dj == 0 && dk == 0 {
					continue
				}
				offs = append(offs, [3]int{di, dj, dk})
			}
		}
	}
	return offs
}

// Label performs 26-connectivity flood-fill labeling of mask, without
// periodic wrapping. True voxels get labels 1..K in scan order of their
// first voxel; false voxels get 0. Returns the label volume and K.
func Label(mask []bool, shape [3]int) ([]int, int) {
	labels := make([]int, len(mask))
	next := 0
	var queue []int
	nx, ny, nz := shape[0], shape[1], shape[2]
	idxOf := func(i, j, k int) int { return (i*ny+j)*nz + k }
	for start, on := range mask {
		if !on || labels[start] != 0 {
			continue
		}
		next++
		labels[start] = next
		queue = append(queue[:0], start)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			k := u % nz
			j := (u / nz) % ny
			i := u / (ny * nz)
			for _, d := range neighbors26 {
				vi, vj, vk := i+d[0], j+d[1], k+d[2]
				if vi < 0 || vi >= nx || vj < 0 || vj >= ny || vk < 0 || vk >= nz {
					continue
				}
				v := idxOf(vi, vj, vk)
				if mask[v] && labels[v] == 0 {
					labels[v] = next
					queue = append(queue, v)
				}
			}
		}
	}
	return labels, next
}

// LabelPeriodic labels mask with 26-connectivity and merges the label pairs
// that are adjacent across the periodic boundary, so that a component
// wrapping through a cell face carries a single label. Labels are renumbered
// densely to 1..K, ordered by the minimum original label of each
// connectivity class. Returns the label volume and K.
func LabelPeriodic(mask []bool, shape [3]int) ([]int, int) {
	labels, n := Label(mask, shape)
	if n < 2 {
		return labels, n
	}
	uf := newUnionFind(n + 1)
	nx, ny, nz := shape[0], shape[1], shape[2]
	for idx, l := range labels {
		if l == 0 {
			continue
		}
		k := idx % nz
		j := (idx / nz) % ny
		i := idx / (ny * nz)
		if i != 0 && i != nx-1 && j != 0 && j != ny-1 && k != 0 && k != nz-1 {
			continue //only boundary voxels can touch a wrapped neighbor
		}
		for _, d := range neighbors26 {
			vi, vj, vk := i+d[0], j+d[1], k+d[2]
			if vi >= 0 && vi < nx && vj >= 0 && vj < ny && vk >= 0 && vk < nz {
				continue //in-cell adjacency was handled by Label
			}
			v := (wrap(vi, nx)*ny+wrap(vj, ny))*nz + wrap(vk, nz)
			if m := labels[v]; m != 0 {
				uf.union(l, m)
			}
		}
	}
	//Replace each label by the minimum of its class, then renumber densely.
	minOf := make([]int, n+1)
	for l := 1; l <= n; l++ {
		r := uf.find(l)
		if minOf[r] == 0 || l < minOf[r] {
			minOf[r] = l
		}
	}
	reps := make([]int, 0, n)
	for l := 1; l <= n; l++ {
		if uf.find(l) == l {
			reps = append(reps, minOf[l])
		}
	}
	sort.Ints(reps)
	dense := make(map[int]int, len(reps))
	for i, m := range reps {
		dense[m] = i + 1
	}
	remap := make([]int, n+1)
	for l := 1; l <= n; l++ {
		remap[l] = dense[minOf[uf.find(l)]]
	}
	for idx, l := range labels {
		if l != 0 {
			labels[idx] = remap[l]
		}
	}
	return labels, len(reps)
}

//Standard disjoint-set with path compression. The class minimum is taken as
//the canonical representative when relabeling.

type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{parent: make([]int, n)}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
}
