/*
 * basis.go, part of goqcio.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}usachDOTcl>
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
 *
 * goqcio is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package qcio

import "gonum.org/v1/gonum/mat"

// Shell is one contracted shell of Gaussian primitives. Type follows the
// Gaussian convention: 0=S, 1=P, 2=D and so on for cartesian shells, and
// -2, -3... for the spherical-harmonic (pure) counterparts. The combined SP
// shells of Pople basis sets (type -1) are split into an S and a P shell on
// reading, so that type never appears here.
type Shell struct {
	Center int //row of the shell's center in BasisSet.Centers
	Type   int
	Exps   []float64
	Coeffs []float64
}

// NPrim returns the number of primitives in the shell.
func (S *Shell) NPrim() int {
	return len(S.Exps)
}

// L returns the angular momentum of the shell.
func (S *Shell) L() int {
	if S.Type < 0 {
		return -S.Type
	}
	return S.Type
}

// Pure returns whether the shell is of the spherical-harmonic kind,
// as opposed to cartesian.
func (S *Shell) Pure() bool {
	return S.Type <= -2
}

// NFunc returns the number of basis functions the shell contributes.
func (S *Shell) NFunc() int {
	if S.Pure() {
		return 2*S.L() + 1
	}
	l := S.L()
	return (l + 1) * (l + 2) / 2
}

// BasisSet is the atomic-orbital basis recovered from a results file.
// Centers holds the coordinates (Bohr) of every expansion center in the file,
// including those of ghost atoms, which is why it is kept separate from the
// molecular geometry.
type BasisSet struct {
	Centers *mat.Dense //(ncenters,3), Bohr
	Shells  []Shell
	//Permutation maps the program's atomic-orbital order to the canonical
	//one: the function at position i in the file goes to position
	//Permutation[i].
	Permutation []int
}

// NFunctions returns the total number of basis functions.
func (B *BasisSet) NFunctions() int {
	n := 0
	for i := range B.Shells {
		n += B.Shells[i].NFunc()
	}
	return n
}

// NShells returns the number of contracted shells.
func (B *BasisSet) NShells() int {
	return len(B.Shells)
}

// NPrimitives returns the total number of primitives, counting each
// primitive once per shell that uses it.
func (B *BasisSet) NPrimitives() int {
	n := 0
	for i := range B.Shells {
		n += B.Shells[i].NPrim()
	}
	return n
}
