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

//Package elf classifies the chemical bonding features of a periodic
//scalar field (an Electron Localization Function and its charge density)
//without human annotation. It sweeps an increasing cutoff over the field,
//records how the iso-surfaces split and disappear in a bifurcation graph,
//and labels the resulting irreducible features as atomic cores and
//shells, covalent bonds, metallic regions, lone pairs or bare ("electride")
//electrons.
//
//The zero-flux basin partitioning, the coordination environments and the
//structure itself are external collaborators, consumed through the
//interfaces in interfaces.go. The periodic voxel geometry lives in the
//grid subpackage; serialization of classified graphs in elfjson.
//
//The analysis is single threaded and CPU/memory bound; an Analyzer and
//the Graph it produces belong to exactly one scan/classification
//sequence.
package elf
