/*
 * doc.go, part of goelf.
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

// Package grid implements a periodic 3D scalar-field container and the
// voxel-space geometry the bifurcation analysis depends on: conversions
// between voxel, fractional and Cartesian coordinates, periodic
// connected-component labeling with wrap-merging, 2x supercell
// replication, periodic distance fields and trilinear interpolation.
//
// A Grid is periodic in all three axes: the voxel index (i,j,k) is
// equivalent to (i mod nx, j mod ny, k mod nz). The functions here do not
// validate their input beyond the constructor; malformed shapes are a
// caller contract violation and cause a panic, not an error.
package grid
