/*
 * interfaces.go, part of goelf.
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

//The collaborator contracts consumed by the analysis. None of these are
//implemented here: the zero-flux partitioning, the neighbor geometry and
//the structure itself come from the caller.

// BasinResult is the output of an external zero-flux (Bader-style) basin
// partitioning of a scalar field. The oracle must be periodic-boundary
// aware, so a basin wrapping through a cell face still carries one label.
type BasinResult struct {
	//Labels maps each voxel (same row-major layout as the grid) to a
	//basin id.
	Labels []int
	//AtomDist maps each basin to the distance between the basin's local
	//maximum and its nearest atom, in A.
	AtomDist []float64
	//AtomIndex maps each basin to the index of its nearest atom.
	AtomIndex []int
	//MaximaFrac maps each basin to the fractional coordinates of its
	//local maximum.
	MaximaFrac [][3]float64
}

// NBasins returns the number of basins in the partitioning.
func (B *BasinResult) NBasins() int { return len(B.AtomIndex) }

// Structure exposes the atoms of the periodic structure under analysis.
// Atoms must be listed before any dummy/placeholder species (empty or "X"
// symbols); this is a caller contract checked once at analyzer creation.
type Structure interface {

	//Len returns the number of atoms.
	Len() int

	//FracCoords returns the fractional coordinates of the i-th atom.
	//Should panic if out of range.
	FracCoords(i int) [3]float64

	//Symbol returns the element symbol of the i-th atom.
	Symbol(i int) string
}

// Neighbor is one entry of an atom's coordination environment.
type Neighbor struct {
	Index    int        //index of the neighbor atom in the structure
	Coords   [3]float64 //fractional coordinates of the neighbor site, image-resolved
	Distance float64    //bond distance from the central atom to this site, in A
}

// EnvProvider returns the coordination environment of an atom, as computed
// by an external nearest-neighbor toolkit.
type EnvProvider interface {
	Neighbors(atom int) []Neighbor
}

// RadiusEstimator returns an atomic radius estimate, in A, for an atom of
// the structure. It is used only by the bare-electron-indicator pass and
// must be computable independently of the bifurcation graph.
type RadiusEstimator interface {
	Radius(atom int) float64
}
