/*
 * options.go, part of goelf.
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

//Options contains the tunable parameters of the scan and classification.
type Options struct {
	resolution      float64 //cutoff step of the bifurcation sweep
	shellDepth      float64 //leaves shallower than this on an atomic branch are shells
	metalDepth      float64 //valence leaves shallower than this are metallic
	covalentAngle   float64 //minimum feature-vertex angle for a covalent bond, degrees
	covalentRatio   float64 //minimum feature-to-atom/bond-length ratio to even consider a neighbor
	ignoreLowPseudo bool
	//electride acceptance thresholds, applied by Graph.Electrides
	minELF        float64
	minDepth      float64
	minCharge     float64
	minVolume     float64
	minDistBeyond float64
}

//DefaultOptions returns the parameter set used throughout the original
//analysis: a 0.02 cutoff step, 0.05 shell depth, 0.1 metallic depth,
//a 135 degree covalent angle and a 0.35 bond-distance ratio.
func DefaultOptions() *Options {
	r := new(Options)
	r.resolution = 0.02
	r.shellDepth = 0.05
	r.metalDepth = 0.1
	r.covalentAngle = 135
	r.covalentRatio = 0.35
	r.minELF = 0.5
	r.minDepth = 0.1
	r.minCharge = 0.3
	r.minVolume = 1.0
	r.minDistBeyond = 0.0
	return r
}

//Returns the cutoff step of the sweep, and sets it to a new
//value, if given.
func (O *Options) Resolution(n ...float64) float64 {
	if len(n) > 0 && n[0] > 0 {
		O.resolution = n[0]
	}
	return O.resolution
}

//Returns the shell-depth threshold, and sets it to a new value, if given.
func (O *Options) ShellDepth(n ...float64) float64 {
	if len(n) > 0 && n[0] >= 0 {
		O.shellDepth = n[0]
	}
	return O.shellDepth
}

//Returns the metallic-depth cutoff, and sets it to a new value, if given.
func (O *Options) MetalDepthCutoff(n ...float64) float64 {
	if len(n) > 0 && n[0] >= 0 {
		O.metalDepth = n[0]
	}
	return O.metalDepth
}

//Returns the minimum covalent angle in degrees, and sets it to a new
//value, if given. The original analysis uses 135 or 150 depending on the
//call site, with no documented rationale, hence the knob.
func (O *Options) MinCovalentAngle(n ...float64) float64 {
	if len(n) > 0 && n[0] > 0 {
		O.covalentAngle = n[0]
	}
	return O.covalentAngle
}

//Returns the minimum feature-to-atom distance as a fraction of the bond
//distance, and sets it to a new value, if given.
func (O *Options) MinCovalentBondRatio(n ...float64) float64 {
	if len(n) > 0 && n[0] >= 0 {
		O.covalentRatio = n[0]
	}
	return O.covalentRatio
}

//Returns whether the atom-coverage ("low pseudopotential") validation is
//skipped, and sets it, if given.
func (O *Options) IgnoreLowPseudopotential(b ...bool) bool {
	if len(b) > 0 {
		O.ignoreLowPseudo = b[0]
	}
	return O.ignoreLowPseudo
}

//Returns the minimum ELF value a leaf needs to count as an electride, and
//sets it, if given.
func (O *Options) ElectrideMinELF(n ...float64) float64 {
	if len(n) > 0 {
		O.minELF = n[0]
	}
	return O.minELF
}

//Returns the minimum depth a leaf needs to count as an electride, and sets
//it, if given.
func (O *Options) ElectrideMinDepth(n ...float64) float64 {
	if len(n) > 0 {
		O.minDepth = n[0]
	}
	return O.minDepth
}

//Returns the minimum charge a leaf needs to count as an electride, and
//sets it, if given.
func (O *Options) ElectrideMinCharge(n ...float64) float64 {
	if len(n) > 0 {
		O.minCharge = n[0]
	}
	return O.minCharge
}

//Returns the minimum volume a leaf needs to count as an electride, and
//sets it, if given.
func (O *Options) ElectrideMinVolume(n ...float64) float64 {
	if len(n) > 0 {
		O.minVolume = n[0]
	}
	return O.minVolume
}

//Returns the minimum distance beyond the atomic radius a leaf needs to
//count as an electride, and sets it, if given.
func (O *Options) ElectrideMinDistBeyondRadius(n ...float64) float64 {
	if len(n) > 0 {
		O.minDistBeyond = n[0]
	}
	return O.minDistBeyond
}
