/*
 * label_test.go, part of goelf.
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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelTwoBlobs(t *testing.T) {
	shape := [3]int{5, 5, 5}
	mask := make([]bool, 125)
	mask[(1*5+1)*5+1] = true //voxel (1,1,1)
	mask[(3*5+3)*5+3] = true //voxel (3,3,3), not 26-adjacent to the first
	labels, n := Label(mask, shape)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, labels[(1*5+1)*5+1])
	assert.Equal(t, 2, labels[(3*5+3)*5+3])
	assert.Equal(t, 0, labels[0])
}

func TestLabelPeriodicMergesAcrossBoundary(t *testing.T) {
	//two slabs at i=0 and i=3: separated in-cell, adjacent through the wrap
	shape := [3]int{4, 4, 4}
	mask := make([]bool, 64)
	for j := 0; j < 4; j++ {
		for k := 0; k < 4; k++ {
			mask[(0*4+j)*4+k] = true
			mask[(3*4+j)*4+k] = true
		}
	}
	_, n := Label(mask, shape)
	assert.Equal(t, 2, n)
	labels, np := LabelPeriodic(mask, shape)
	assert.Equal(t, 1, np)
	assert.Equal(t, labels[(0*4+0)*4+0], labels[(3*4+2)*4+1])
}

func TestLabelPeriodicDiagonalWrap(t *testing.T) {
	//corner voxels touch each other only diagonally through the wrap
	shape := [3]int{4, 4, 4}
	mask := make([]bool, 64)
	mask[(0*4+0)*4+0] = true
	mask[(3*4+3)*4+3] = true
	_, np := LabelPeriodic(mask, shape)
	assert.Equal(t, 1, np)
}

func TestLabelPeriodicShiftInvariance(t *testing.T) {
	//the number of periodic components must not depend on where the cell
	//boundary happens to cut the pattern
	shape := [3]int{6, 6, 6}
	on := func(i, j, k int) bool { return ((i*31+j*17+k*7)*37)%97 < 40 }
	mask := make([]bool, 216)
	shifted := make([]bool, 216)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			for k := 0; k < 6; k++ {
				v := on(i, j, k)
				mask[(i*6+j)*6+k] = v
				si, sj, sk := (i+1)%6, (j+2)%6, (k+3)%6
				shifted[(si*6+sj)*6+sk] = v
			}
		}
	}
	_, n1 := LabelPeriodic(mask, shape)
	_, n2 := LabelPeriodic(shifted, shape)
	assert.Equal(t, n1, n2)
}

func TestLabelPeriodicDenseLabels(t *testing.T) {
	shape := [3]int{4, 4, 4}
	mask := make([]bool, 64)
	mask[(1*4+1)*4+1] = true
	mask[(1*4+1)*4+3] = true //not adjacent in the cell nor through the wrap
	labels, n := LabelPeriodic(mask, shape)
	assert.Equal(t, 2, n)
	seen := map[int]bool{}
	for _, l := range labels {
		if l != 0 {
			seen[l] = true
		}
	}
	assert.Equal(t, map[int]bool{1: true, 2: true}, seen)
}
