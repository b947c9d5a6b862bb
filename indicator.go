/*
 * indicator.go, part of goelf.
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

	"gonum.org/v1/gonum/floats"
)

//The hydride ionic radius, in A: the canonical size reference for a
//localized anionic electron.
const hydrideRadius = 1.34

var hydrideVolume = (4.0 / 3.0) * math.Pi * hydrideRadius * hydrideRadius * hydrideRadius

// MarkBareElectronIndicator is the last pass: every valence leaf gets a
// continuous score in [0,1], the unweighted average of five normalized
// contributions (ELF value, charge, depth, volume and distance from the
// nearest atom).
func (C *Classifier) MarkBareElectronIndicator() {
	for _, n := range C.graph.Leaves() {
		if n.Leaf == nil || n.Leaf.Type != TypeValence {
			continue
		}
		n.Leaf.Indicator = C.bareElectronIndicator(n.Leaf)
	}
}

func (C *Classifier) bareElectronIndicator(l *Leaf) *Indicator {
	var c [5]float64
	c[0] = l.MaxELF

	//Expected reference charge: 1 for a spin-separated field; otherwise 1
	//when the observed charge looks half-filled/singlet, else 2. Above
	//the reference the contribution falls off symmetrically, penalizing
	//pi-bond-like excess localization.
	maxValue := 1.0
	if !C.spinSeparated && !(l.Charge > 0 && l.Charge <= 1.1) {
		maxValue = 2
	}
	if l.Charge <= maxValue {
		c[1] = l.Charge / maxValue
	} else {
		c[1] = math.Max(2-l.Charge/maxValue, 0)
	}

	c[2] = l.Depth
	c[3] = math.Min(l.Volume/hydrideVolume, 1)

	r := C.radius.Radius(l.NearestAtom)
	minDist := 0.9 * r
	maxDist := r + hydrideRadius
	c[4] = clamp((l.AtomDistance-minDist)/(maxDist-minDist), 0, 1)

	return &Indicator{
		Value:            floats.Sum(c[:]) / 5,
		Contributions:    c,
		DistBeyondRadius: l.AtomDistance - r,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
