/*
 * atomicdata.go, part of goqcio.
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

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

//The element symbols, indexed by atomic number (the empty string at 0
//keeps the indexes aligned).
var symbols = []string{"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt",
	"Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf",
	"Es", "Fm", "Md", "No", "Lr",
}

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

// AtomicNumber returns the atomic number for an element symbol. The symbol
// may come in any capitalization (QM programs print "CL", "cl" or "Cl"
// depending on where in the output it appears).
func AtomicNumber(symbol string) (int, error) {
	if len(symbol) == 0 {
		return 0, CError{"goqcio: Empty element symbol", []string{"AtomicNumber"}}
	}
	s := strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
	z := slices.Index(symbols, s)
	if z < 1 {
		return 0, CError{fmt.Sprintf("goqcio: Unknown element symbol: %s", symbol), []string{"AtomicNumber"}}
	}
	return z, nil
}

// Symbol returns the symbol for an atomic number, or the empty string if the
// number is out of the known range.
func Symbol(z int) string {
	if z < 1 || z >= len(symbols) {
		return ""
	}
	return symbols[z]
}

// Mass returns the mass for an element symbol.
// Only the common "bio-elements" are tabulated.
func Mass(symbol string) (float64, error) {
	m, ok := symbolMass[symbol]
	if !ok {
		return 0, CError{fmt.Sprintf("goqcio: No mass tabulated for element: %s", symbol), []string{"Mass"}}
	}
	return m, nil
}
