/*
 * atomicdata.go, part of goelf.
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

//A map for assigning covalent radii to elements.
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
//Note that just common elements are present
var symbolCovrad = map[string]float64{
	"H":  0.31,
	"Li": 1.28,
	"Be": 0.96,
	"B":  0.84,
	"C":  0.76, //the sp3 radius
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Na": 1.66,
	"Mg": 1.41,
	"Al": 1.21,
	"Si": 1.11,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"K":  2.03,
	"Ca": 1.76,
	"Sc": 1.70,
	"Ti": 1.60,
	"Cr": 1.39,
	"Mn": 1.61, //hs
	"Fe": 1.52, //hs
	"Co": 1.5,  //hs
	"Ni": 1.24,
	"Cu": 1.32,
	"Zn": 1.22,
	"Sr": 1.95,
	"Y":  1.90,
	"Zr": 1.75,
	"Nb": 1.64,
	"Se": 1.2,
	"Br": 1.2,
	"I":  1.39,
	"Ba": 2.15,
	"La": 2.07,
	"Ce": 2.04,
}

//Radius used when an element is missing from the table.
const defaultCovrad = 1.2

// CovalentRadius returns the tabulated covalent radius for an element
// symbol, in A, or a generic 1.2 A when the element is not tabulated.
func CovalentRadius(symbol string) float64 {
	if r, ok := symbolCovrad[symbol]; ok {
		return r
	}
	return defaultCovrad
}

// DefaultRadiusEstimator is a structure-backed RadiusEstimator using the
// tabulated covalent radii. It makes the bare-electron pass runnable
// without an external partitioning-radius collaborator; callers wanting
// Bader- or Voronoi-derived radii supply their own estimator instead.
type DefaultRadiusEstimator struct {
	st Structure
}

// NewDefaultRadiusEstimator wraps a structure in a covalent-radius lookup.
func NewDefaultRadiusEstimator(st Structure) *DefaultRadiusEstimator {
	return &DefaultRadiusEstimator{st: st}
}

// Radius returns the covalent radius of the i-th atom's element.
func (D *DefaultRadiusEstimator) Radius(i int) float64 {
	return CovalentRadius(D.st.Symbol(i))
}
