/*
 * errors.go, part of goelf.
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

import "fmt"

// Error is the interface for errors in this library. The Decorate method
// allows adding and retrieving info from the error as it travels up the
// call stack, without changing its type or wrapping it in something else.
type Error interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

// CError is the concrete error type for the package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Critical reports whether the error can be ignored by the caller. Plain
// CErrors are always critical.
func (err CError) Critical() bool { return true }

// Decorate adds dec to the decoration slice of the error and returns the
// resulting slice. An empty string just returns the current value.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// LowPseudoError is the interface for the "low pseudopotential" domain
// condition: after the scan and the core/shell classification, one or more
// atoms were never reached by any core or shell basin, which normally means
// the pseudopotential used for the calculation carries too few core
// electrons. It is recoverable; callers may opt out of the check entirely
// with Options.IgnoreLowPseudopotential. The marker method separates it
// from other Errors in a type switch.
type LowPseudoError interface {
	Error
	LowPseudopotential()
	MissingAtoms() []int
}

type lowPseudoError struct {
	CError
	missing []int
}

func (err lowPseudoError) LowPseudopotential() {}

// MissingAtoms returns the indices of the atoms not covered by any core or
// shell feature.
func (err lowPseudoError) MissingAtoms() []int { return err.missing }

func newLowPseudoError(missing []int) LowPseudoError {
	return lowPseudoError{
		CError{fmt.Sprintf("goelf: atoms %v not assigned to any core or shell feature; the pseudopotential likely includes too few core electrons", missing), []string{"checkAtomCoverage"}},
		missing,
	}
}

// PanicMsg is a message used for panics. It satisfies the error interface,
// but for recoverable conditions use Error instead.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilCollaborator   = PanicMsg("goelf: nil grid, basin result or structure")
	ErrShapeMismatch     = PanicMsg("goelf: basin label volume does not match the grid shape")
	ErrUnassignedFeature = PanicMsg("goelf: leaf feature left unassigned after classification")
)
