/*
 * grid.go, part of goelf.
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

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

/**Note: As in other "fundamental" geometry code in this module, functions
 * here panic instead of returning errors. If a shape mismatch or a nil grid
 * makes it this far, the calling program is wrong and should crash.**/

// Grid is a periodic 3D scalar field over a crystal lattice. Data is stored
// row-major: the voxel (i,j,k) lives at index (i*ny+j)*nz+k. Diff, when
// present, holds the spin-difference field with the same layout.
type Grid struct {
	Data    []float64
	Diff    []float64
	shape   [3]int
	lattice *mat.Dense //rows are the a, b and c lattice vectors, in A
	inv     *mat.Dense
}

// New builds a Grid from a flat row-major scalar array, its shape and a 3x3
// lattice matrix whose rows are the lattice vectors. It panics if the data
// length does not match the shape, or if the lattice is singular.
func New(data []float64, shape [3]int, lattice *mat.Dense) *Grid {
	if data == nil || lattice == nil {
		panic("grid: nil data or lattice")
	}
	r, c := lattice.Dims()
	if r != 3 || c != 3 {
		panic("grid: lattice must be 3x3")
	}
	if len(data) != shape[0]*shape[1]*shape[2] {
		panic(fmt.Sprintf("grid: data length %d does not match shape %v", len(data), shape))
	}
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(lattice); err != nil {
		panic("grid: singular lattice matrix")
	}
	return &Grid{Data: data, shape: shape, lattice: mat.DenseCopyOf(lattice), inv: inv}
}

// Shape returns the (nx,ny,nz) voxel dimensions.
func (G *Grid) Shape() [3]int { return G.shape }

// Lattice returns a copy of the 3x3 lattice matrix.
func (G *Grid) Lattice() *mat.Dense { return mat.DenseCopyOf(G.lattice) }

// NVoxels returns the total number of voxels in the cell.
func (G *Grid) NVoxels() int { return len(G.Data) }

// Copy returns a deep copy of the grid. The copy never aliases the
// original's arrays, so derived grids can be mutated freely.
func (G *Grid) Copy() *Grid {
	n := &Grid{shape: G.shape, lattice: mat.DenseCopyOf(G.lattice), inv: mat.DenseCopyOf(G.inv)}
	n.Data = make([]float64, len(G.Data))
	copy(n.Data, G.Data)
	if G.Diff != nil {
		n.Diff = make([]float64, len(G.Diff))
		copy(n.Diff, G.Diff)
	}
	return n
}

// SpinUp returns a new grid holding (total+diff)/2. Panics if the grid
// carries no spin-difference data.
func (G *Grid) SpinUp() *Grid { return G.spinHalf(1) }

// SpinDown returns a new grid holding (total-diff)/2. Panics if the grid
// carries no spin-difference data.
func (G *Grid) SpinDown() *Grid { return G.spinHalf(-1) }

func (G *Grid) spinHalf(sign float64) *Grid {
	if G.Diff == nil {
		panic("grid: spin split requested on a grid without diff data")
	}
	n := G.Copy()
	n.Diff = nil
	for i := range n.Data {
		n.Data[i] = (G.Data[i] + sign*G.Diff[i]) / 2
	}
	return n
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Index returns the flat index of the voxel (i,j,k), wrapping periodically.
func (G *Grid) Index(i, j, k int) int {
	i = wrap(i, G.shape[0])
	j = wrap(j, G.shape[1])
	k = wrap(k, G.shape[2])
	return (i*G.shape[1]+j)*G.shape[2] + k
}

// Voxel returns the (i,j,k) coordinates of a flat index.
func (G *Grid) Voxel(idx int) [3]int {
	k := idx % G.shape[2]
	idx /= G.shape[2]
	j := idx % G.shape[1]
	i := idx / G.shape[1]
	return [3]int{i, j, k}
}

// At returns the field value at voxel (i,j,k), wrapping periodically.
func (G *Grid) At(i, j, k int) float64 { return G.Data[G.Index(i, j, k)] }

// Set sets the field value at voxel (i,j,k), wrapping periodically.
func (G *Grid) Set(i, j, k int, v float64) { G.Data[G.Index(i, j, k)] = v }

// VoxelVolume returns the real-space volume of one voxel, in A^3.
func (G *Grid) VoxelVolume() float64 {
	return math.Abs(mat.Det(G.lattice)) / float64(len(G.Data))
}

/*Coordinate conversions. Voxel coordinates are unbounded (periodicity is
implicit), fractional coordinates live in the [0,1) cube, and Cartesian
coordinates are obtained through the lattice matrix.*/

// VoxelToFrac converts voxel coordinates to fractional coordinates.
func (G *Grid) VoxelToFrac(v [3]float64) [3]float64 {
	return [3]float64{v[0] / float64(G.shape[0]), v[1] / float64(G.shape[1]), v[2] / float64(G.shape[2])}
}

// FracToVoxel converts fractional coordinates to (float) voxel coordinates.
func (G *Grid) FracToVoxel(f [3]float64) [3]float64 {
	return [3]float64{f[0] * float64(G.shape[0]), f[1] * float64(G.shape[1]), f[2] * float64(G.shape[2])}
}

// FracToCart converts fractional to Cartesian coordinates, in A.
func (G *Grid) FracToCart(f [3]float64) [3]float64 {
	return mulRow(f, G.lattice)
}

// CartToFrac converts Cartesian to fractional coordinates.
func (G *Grid) CartToFrac(c [3]float64) [3]float64 {
	return mulRow(c, G.inv)
}

// VoxelToCart converts voxel coordinates straight to Cartesian.
func (G *Grid) VoxelToCart(v [3]float64) [3]float64 {
	return G.FracToCart(G.VoxelToFrac(v))
}

func mulRow(v [3]float64, m *mat.Dense) [3]float64 {
	var out [3]float64
	for j := 0; j < 3; j++ {
		out[j] = v[0]*m.At(0, j) + v[1]*m.At(1, j) + v[2]*m.At(2, j)
	}
	return out
}

// FracToCartBatch converts a matrix of fractional row vectors to Cartesian
// row vectors. The returned matrix is newly allocated.
func (G *Grid) FracToCartBatch(f *mat.Dense) *mat.Dense {
	r, _ := f.Dims()
	out := mat.NewDense(r, 3, nil)
	out.Mul(f, G.lattice)
	return out
}

// CartToFracBatch converts a matrix of Cartesian row vectors to fractional
// row vectors.
func (G *Grid) CartToFracBatch(c *mat.Dense) *mat.Dense {
	r, _ := c.Dims()
	out := mat.NewDense(r, 3, nil)
	out.Mul(c, G.inv)
	return out
}

// PBCDistance returns the minimum-image Cartesian distance between two
// fractional positions.
func (G *Grid) PBCDistance(f1, f2 [3]float64) float64 {
	var d [3]float64
	for i := 0; i < 3; i++ {
		d[i] = f1[i] - f2[i]
		d[i] -= math.Round(d[i])
	}
	c := G.FracToCart(d)
	return math.Sqrt(c[0]*c[0] + c[1]*c[1] + c[2]*c[2])
}
