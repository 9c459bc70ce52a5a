/*
 * qcio.go, part of goqcio.
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
 * goqcio is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package qcio

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Molecule gathers the results of a quantum-chemistry calculation, as read
// from a program's output or checkpoint file. Readers fill only what their
// format provides, so most fields can be nil/empty.
//
// Ghost atoms present in the calculation are excluded from the geometry
// fields (Numbers, PseudoNumbers, Coords and the charge schemes), but their
// expansion centers remain in Basis.Centers.
type Molecule struct {
	Title         string
	Command       string //the program directive that produced the file, e.g. "SP"
	LevelOfTheory string
	BasisName     string

	Numbers       []int      //atomic numbers
	PseudoNumbers []float64  //effective core charges seen by the electrons
	Coords        *mat.Dense //(natoms,3), Bohr

	Basis *BasisSet

	//Beta is nil for closed-shell results. For restricted open-shell ones
	//it shares the coefficient and energy data with Alpha, differing only
	//in the occupations.
	Alpha *Orbitals
	Beta  *Orbitals

	Energy float64 //total energy, Hartree

	//Densities holds the one-particle density matrices present in the file,
	//under keys like "dm_full_scf" or "dm_spin_mp2" (see DensityKey).
	Densities map[string]*mat.Dense

	Dipole         []float64  //len 3, au
	Quadrupole     []float64  //len 6, au, ordered xx xy xz yy yz zz
	Polarizability *mat.Dense //(3,3), au

	//Charges holds the per-atom charges for each population scheme present
	//in the file, under the scheme's lowercase name ("mulliken", "esp", "npa").
	Charges map[string][]float64
}

// Orbital kinds, as returned by Molecule.Kind.
const (
	Restricted     = "restricted"
	RestrictedOpen = "restrictedopen"
	Unrestricted   = "unrestricted"
)

// Kind returns the kind of wavefunction the orbitals of M come from, or the
// empty string if M carries no orbitals.
func (M *Molecule) Kind() string {
	if M.Alpha == nil {
		return ""
	}
	if M.Beta == nil {
		return Restricted
	}
	if M.Beta.Coeffs == M.Alpha.Coeffs {
		return RestrictedOpen
	}
	return Unrestricted
}

// NAtoms returns the number of (non-ghost) atoms.
func (M *Molecule) NAtoms() int {
	return len(M.Numbers)
}

// Masses returns a slice with the mass of each atom.
func (M *Molecule) Masses() ([]float64, error) {
	masses := make([]float64, len(M.Numbers))
	for i, z := range M.Numbers {
		m, err := Mass(Symbol(z))
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("Masses: atom %d", i))
		}
		masses[i] = m
	}
	return masses, nil
}

// DensityKey builds the key under which a density matrix is stored in
// Molecule.Densities. full selects between the full and the spin density,
// method is the name of the method that produced it (SCF, MP2, MP3, CC, CI).
func DensityKey(full bool, method string) string {
	kind := "spin"
	if full {
		kind = "full"
	}
	return "dm_" + kind + "_" + strings.ToLower(method)
}

// FullDensity returns the full density matrix for the given method, or nil
// if the file didn't have one.
func (M *Molecule) FullDensity(method string) *mat.Dense {
	return M.Densities[DensityKey(true, method)]
}

// SpinDensity returns the spin density matrix for the given method, or nil
// if the file didn't have one.
func (M *Molecule) SpinDensity(method string) *mat.Dense {
	return M.Densities[DensityKey(false, method)]
}

// Check verifies that the sizes of the fields of M are consistent with each
// other. It returns nil if they are.
func (M *Molecule) Check() error {
	n := len(M.Numbers)
	if len(M.PseudoNumbers) != n {
		return CError{fmt.Sprintf("goqcio: %d atomic numbers but %d core charges", n, len(M.PseudoNumbers)), []string{"Check"}}
	}
	if M.Coords != nil {
		r, c := M.Coords.Dims()
		if r != n || c != 3 {
			return CError{fmt.Sprintf("goqcio: Coordinates are (%d,%d), want (%d,3)", r, c, n), []string{"Check"}}
		}
	} else if n > 0 {
		return CError{"goqcio: Atoms present but no coordinates", []string{"Check"}}
	}
	for scheme, ch := range M.Charges {
		if len(ch) != n {
			return CError{fmt.Sprintf("goqcio: %d %s charges for %d atoms", len(ch), scheme, n), []string{"Check"}}
		}
	}
	for _, orb := range []*Orbitals{M.Alpha, M.Beta} {
		if orb == nil {
			continue
		}
		r, c := orb.Coeffs.Dims()
		if r != orb.NBasis || c != orb.NIndep {
			return CError{fmt.Sprintf("goqcio: Orbital coefficients are (%d,%d), want (%d,%d)", r, c, orb.NBasis, orb.NIndep), []string{"Check"}}
		}
		if len(orb.Energies) != orb.NIndep || len(orb.Occupations) != orb.NIndep {
			return CError{fmt.Sprintf("goqcio: %d orbital energies and %d occupations for %d orbitals", len(orb.Energies), len(orb.Occupations), orb.NIndep), []string{"Check"}}
		}
	}
	if M.Basis != nil {
		nbasis := M.Basis.NFunctions()
		if len(M.Basis.Permutation) != nbasis {
			return CError{fmt.Sprintf("goqcio: Permutation has %d entries for %d basis functions", len(M.Basis.Permutation), nbasis), []string{"Check"}}
		}
		if M.Alpha != nil && M.Alpha.NBasis != nbasis {
			return CError{fmt.Sprintf("goqcio: Orbitals over %d basis functions but the basis has %d", M.Alpha.NBasis, nbasis), []string{"Check"}}
		}
	}
	return nil
}
