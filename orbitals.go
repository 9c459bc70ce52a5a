/*
 * orbitals.go, part of goqcio.
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

package qcio

import "gonum.org/v1/gonum/mat"

// Orbitals holds one spin channel of molecular orbitals.
type Orbitals struct {
	NBasis int //basis functions
	NIndep int //linearly independent functions, i.e. orbitals
	//Coeffs is (NBasis,NIndep): one column per orbital, rows running over
	//basis functions in the order of the file.
	Coeffs      *mat.Dense
	Energies    []float64
	Occupations []float64
}

// NOccupied returns the number of orbitals with non-zero occupation.
func (O *Orbitals) NOccupied() int {
	n := 0
	for _, v := range O.Occupations {
		if v > 0 {
			n++
		}
	}
	return n
}

// HOMO returns the energy of the highest occupied orbital.
func (O *Orbitals) HOMO() (float64, error) {
	n := O.NOccupied()
	if n == 0 || n > len(O.Energies) {
		return 0, CError{"goqcio: No occupied orbitals", []string{"HOMO"}}
	}
	return O.Energies[n-1], nil
}

// LUMO returns the energy of the lowest unoccupied orbital.
func (O *Orbitals) LUMO() (float64, error) {
	n := O.NOccupied()
	if n >= len(O.Energies) {
		return 0, CError{"goqcio: No virtual orbitals", []string{"LUMO"}}
	}
	return O.Energies[n], nil
}

// Gap returns the energy difference between the lowest unoccupied and the
// highest occupied orbital, in Hartree.
func (O *Orbitals) Gap() (float64, error) {
	h, err := O.HOMO()
	if err != nil {
		return 0, errDecorate(err, "Gap")
	}
	l, err := O.LUMO()
	if err != nil {
		return 0, errDecorate(err, "Gap")
	}
	return l - h, nil
}
