/*
 * molecule.go, part of goqcio.
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

package fchk

import (
	"fmt"
	"math"

	qcio "github.com/rmera/goqcio"
	"gonum.org/v1/gonum/mat"
)

//The fields Molecule uses. Reading only these makes Load fast on
//checkpoint files with many other records.
var loadFields = []string{
	"Number of electrons", "Number of basis functions",
	"Number of independant functions",
	"Number of independent functions",
	"Number of alpha electrons", "Number of beta electrons",
	"Atomic numbers", "Current cartesian coordinates",
	"Shell types", "Shell to atom map",
	"Number of primitives per shell", "Primitive exponents",
	"Contraction coefficients", "P(S=P) Contraction coefficients",
	"Alpha Orbital Energies", "Alpha MO coefficients",
	"Beta Orbital Energies", "Beta MO coefficients",
	"Total Energy", "Nuclear charges",
	"Total SCF Density", "Spin SCF Density",
	"Total MP2 Density", "Spin MP2 Density",
	"Total MP3 Density", "Spin MP3 Density",
	"Total CC Density", "Spin CC Density",
	"Total CI Density", "Spin CI Density",
	"Mulliken Charges", "ESP Charges", "NPA Charges",
	"Polarizability", "Dipole Moment", "Quadrupole Moment",
}

// Load reads the formatted-checkpoint file name, plain or compressed, and
// assembles its contents into a Molecule. By default it reads only the
// fields it knows how to use. A caller that wants to restrict the reading
// further can give its own label list, though assembly will only succeed if
// the geometry, basis, orbital and energy fields remain in it.
func Load(name string, wanted ...string) (*qcio.Molecule, error) {
	labels := loadFields
	if len(wanted) > 0 {
		labels = wanted
	}
	F, err := New(name, labels)
	if err != nil {
		return nil, errDecorate(err, "Load")
	}
	M, err := F.Molecule()
	if err != nil {
		return nil, errDecorate(err, "Load")
	}
	return M, nil
}

// Molecule assembles the fields of F into a structured result. It fails with
// a MissingField error if a field it cannot work without is absent.
func (F *File) Molecule() (*qcio.Molecule, error) {
	M := &qcio.Molecule{
		Title:         F.Title,
		Command:       F.Command,
		LevelOfTheory: F.LevelOfTheory,
		BasisName:     F.BasisName,
		Densities:     make(map[string]*mat.Dense),
		Charges:       make(map[string][]float64),
	}

	//The geometry. Atoms whose nuclear charge is zero are ghosts: they are
	//left out of the molecule, but their coordinates still count as basis-set
	//centers, as ghost atoms can carry basis functions.
	numbers, err := F.reqInts("Atomic numbers")
	if err != nil {
		return nil, errDecorate(err, "Molecule")
	}
	coords, err := F.reqFloats("Current cartesian coordinates")
	if err != nil {
		return nil, errDecorate(err, "Molecule")
	}
	pseudo, err := F.reqFloats("Nuclear charges")
	if err != nil {
		return nil, errDecorate(err, "Molecule")
	}
	natom := len(numbers)
	if len(coords) != 3*natom || len(pseudo) != natom {
		return nil, Error{PreconditionViolation, fmt.Sprintf("%d atomic numbers, %d coordinates and %d nuclear charges", natom, len(coords), len(pseudo)), F.filename, []string{"Molecule"}, true}
	}
	mask := make([]bool, natom)
	nreal := 0
	for i, p := range pseudo {
		mask[i] = p != 0.0
		if mask[i] {
			nreal++
		}
	}
	M.Numbers = make([]int, 0, nreal)
	M.PseudoNumbers = make([]float64, 0, nreal)
	if nreal > 0 {
		M.Coords = mat.NewDense(nreal, 3, nil)
	}
	row := 0
	for i := 0; i < natom; i++ {
		if !mask[i] {
			continue
		}
		M.Numbers = append(M.Numbers, numbers[i])
		M.PseudoNumbers = append(M.PseudoNumbers, pseudo[i])
		M.Coords.SetRow(row, coords[3*i:3*i+3])
		row++
	}

	//The basis set, with the unfiltered coordinates as centers.
	var centers *mat.Dense
	if natom > 0 {
		centers = mat.NewDense(natom, 3, coords)
	}
	M.Basis, err = F.basis(centers)
	if err != nil {
		return nil, errDecorate(err, "Molecule")
	}

	nbasis, err := F.reqInt("Number of basis functions")
	if err != nil {
		return nil, errDecorate(err, "Molecule")
	}

	//The density matrices, stored as the lower triangle of a symmetric
	//nbasis x nbasis matrix.
	for _, method := range []string{"MP2", "MP3", "CC", "CI", "SCF"} {
		if tri, ok := F.Floats("Total " + method + " Density"); ok {
			dm, err := F.triangleToDense("Total "+method+" Density", tri, nbasis)
			if err != nil {
				return nil, errDecorate(err, "Molecule")
			}
			M.Densities[qcio.DensityKey(true, method)] = dm
		}
		if tri, ok := F.Floats("Spin " + method + " Density"); ok {
			dm, err := F.triangleToDense("Spin "+method+" Density", tri, nbasis)
			if err != nil {
				return nil, errDecorate(err, "Molecule")
			}
			M.Densities[qcio.DensityKey(false, method)] = dm
		}
	}

	//The wavefunction. g03 files spell "independent" wrong, so both
	//spellings have to be tried.
	nindep := nbasis
	if v, ok := F.Int("Number of independent functions"); ok {
		nindep = v
	} else if v, ok := F.Int("Number of independant functions"); ok {
		nindep = v
	}
	nalpha, err := F.reqInt("Number of alpha electrons")
	if err != nil {
		return nil, errDecorate(err, "Molecule")
	}
	nbeta, err := F.reqInt("Number of beta electrons")
	if err != nil {
		return nil, errDecorate(err, "Molecule")
	}
	if nalpha < 0 || nbeta < 0 || nalpha+nbeta <= 0 {
		return nil, Error{InvalidElectronCount, fmt.Sprintf("%d alpha and %d beta electrons", nalpha, nbeta), F.filename, []string{"Molecule"}, true}
	}
	acoeffs, err := F.reqFloats("Alpha MO coefficients")
	if err != nil {
		return nil, errDecorate(err, "Molecule")
	}
	aener, err := F.reqFloats("Alpha Orbital Energies")
	if err != nil {
		return nil, errDecorate(err, "Molecule")
	}
	M.Alpha, err = F.orbitals(nbasis, nindep, acoeffs, aener, nalpha)
	if err != nil {
		return nil, errDecorate(err, "Molecule")
	}
	if bener, ok := F.Floats("Beta Orbital Energies"); ok {
		//an unrestricted calculation, with its own beta orbitals
		bcoeffs, err := F.reqFloats("Beta MO coefficients")
		if err != nil {
			return nil, errDecorate(err, "Molecule")
		}
		M.Beta, err = F.orbitals(nbasis, nindep, bcoeffs, bener, nbeta)
		if err != nil {
			return nil, errDecorate(err, "Molecule")
		}
	} else if nalpha != nbeta {
		//restricted open-shell: the beta orbitals are the alpha ones, with
		//their own occupations. The SCF total density in these files is
		//known to be bad, so it is dropped.
		M.Beta = &qcio.Orbitals{
			NBasis:      nbasis,
			NIndep:      nindep,
			Coeffs:      M.Alpha.Coeffs,
			Energies:    M.Alpha.Energies,
			Occupations: occupations(nindep, nbeta),
		}
		delete(M.Densities, qcio.DensityKey(true, "SCF"))
	}

	//Properties
	M.Energy, err = F.reqFloat("Total Energy")
	if err != nil {
		return nil, errDecorate(err, "Molecule")
	}
	if tri, ok := F.Floats("Polarizability"); ok {
		n := triangleSize(len(tri))
		if n < 0 {
			return nil, Error{PreconditionViolation, fmt.Sprintf("%d values in \"Polarizability\" do not form a triangle", len(tri)), F.filename, []string{"Molecule"}, true}
		}
		M.Polarizability, err = F.triangleToDense("Polarizability", tri, n)
		if err != nil {
			return nil, errDecorate(err, "Molecule")
		}
	}
	if d, ok := F.Floats("Dipole Moment"); ok {
		M.Dipole = d
	}
	if q, ok := F.Floats("Quadrupole Moment"); ok {
		//the file orders the components xx yy zz xy xz yz
		if len(q) < 6 {
			return nil, Error{PreconditionViolation, fmt.Sprintf("%d quadrupole components, want 6", len(q)), F.filename, []string{"Molecule"}, true}
		}
		M.Quadrupole = []float64{q[0], q[3], q[4], q[1], q[5], q[2]}
	}

	//Per-atom charges, with the ghosts masked out like the geometry.
	for _, scheme := range [][2]string{{"Mulliken Charges", "mulliken"}, {"ESP Charges", "esp"}, {"NPA Charges", "npa"}} {
		ch, ok := F.Floats(scheme[0])
		if !ok {
			continue
		}
		if len(ch) != natom {
			return nil, Error{PreconditionViolation, fmt.Sprintf("%d %s for %d atoms", len(ch), scheme[0], natom), F.filename, []string{"Molecule"}, true}
		}
		masked := make([]float64, 0, nreal)
		for i, v := range ch {
			if mask[i] {
				masked = append(masked, v)
			}
		}
		M.Charges[scheme[1]] = masked
	}
	return M, nil
}

// basis rebuilds the shell list from the flat per-primitive tables of the
// file. An SP shell (type -1) becomes an S and a P shell that share their
// exponents but take their contraction coefficients from different fields.
func (F *File) basis(centers *mat.Dense) (*qcio.BasisSet, error) {
	shellTypes, err := F.reqInts("Shell types")
	if err != nil {
		return nil, errDecorate(err, "basis")
	}
	shellMap, err := F.reqInts("Shell to atom map") //1-based in the file
	if err != nil {
		return nil, errDecorate(err, "basis")
	}
	nprims, err := F.reqInts("Number of primitives per shell")
	if err != nil {
		return nil, errDecorate(err, "basis")
	}
	exps, err := F.reqFloats("Primitive exponents")
	if err != nil {
		return nil, errDecorate(err, "basis")
	}
	coeffs, err := F.reqFloats("Contraction coefficients")
	if err != nil {
		return nil, errDecorate(err, "basis")
	}
	spcoeffs, hasSP := F.Floats("P(S=P) Contraction coefficients")
	nshell := len(shellTypes)
	if len(shellMap) != nshell || len(nprims) != nshell {
		return nil, Error{PreconditionViolation, fmt.Sprintf("%d shell types, %d atom mappings and %d primitive counts", nshell, len(shellMap), len(nprims)), F.filename, []string{"basis"}, true}
	}
	shells := make([]qcio.Shell, 0, nshell)
	counter := 0
	for i, n := range nprims {
		if n < 0 || counter+n > len(exps) || counter+n > len(coeffs) {
			return nil, Error{PreconditionViolation, fmt.Sprintf("shell %d wants primitives %d to %d but the file has %d exponents and %d coefficients", i, counter, counter+n, len(exps), len(coeffs)), F.filename, []string{"basis"}, true}
		}
		if shellTypes[i] == -1 {
			if !hasSP {
				return nil, Error{MissingField, "P(S=P) Contraction coefficients, needed by an SP shell", F.filename, []string{"basis"}, true}
			}
			if counter+n > len(spcoeffs) {
				return nil, Error{PreconditionViolation, fmt.Sprintf("shell %d wants primitives %d to %d but the file has %d P(S=P) coefficients", i, counter, counter+n, len(spcoeffs)), F.filename, []string{"basis"}, true}
			}
			shells = append(shells,
				qcio.Shell{Center: shellMap[i] - 1, Type: 0, Exps: exps[counter : counter+n], Coeffs: coeffs[counter : counter+n]},
				qcio.Shell{Center: shellMap[i] - 1, Type: 1, Exps: exps[counter : counter+n], Coeffs: spcoeffs[counter : counter+n]})
		} else {
			shells = append(shells,
				qcio.Shell{Center: shellMap[i] - 1, Type: shellTypes[i], Exps: exps[counter : counter+n], Coeffs: coeffs[counter : counter+n]})
		}
		counter += n
	}
	perm, err := F.permutation(shells)
	if err != nil {
		return nil, errDecorate(err, "basis")
	}
	return &qcio.BasisSet{Centers: centers, Shells: shells, Permutation: perm}, nil
}

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func rev(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = n - 1 - i
	}
	return s
}

//How each shell type scrambles its basis functions with respect to the
//canonical ordering. These blocks are a fixed fact of the format and of the
//convention this library delivers, they must not be touched.
var permutationRules = map[int][]int{
	-9: seq(19),
	-8: seq(17),
	-7: seq(15),
	-6: seq(13),
	-5: seq(11),
	-4: seq(9),
	-3: seq(7),
	-2: seq(5),
	0:  {0},
	1:  seq(3),
	2:  {0, 3, 4, 1, 5, 2},
	3:  {0, 4, 5, 3, 9, 6, 1, 8, 7, 2},
	4:  rev(15),
	5:  rev(21),
	6:  rev(28),
	7:  rev(36),
	8:  rev(45),
	9:  rev(55),
}

// permutation builds the atomic-orbital reordering for the given (already
// split) shells, one block per shell, offset by the functions before it.
func (F *File) permutation(shells []qcio.Shell) ([]int, error) {
	perm := []int{}
	for i := range shells {
		rule, ok := permutationRules[shells[i].Type]
		if !ok {
			return nil, Error{MalformedField, fmt.Sprintf("no ordering rule for shell type %d", shells[i].Type), F.filename, []string{"permutation"}, true}
		}
		base := len(perm)
		for _, p := range rule {
			perm = append(perm, base+p)
		}
	}
	return perm, nil
}

// orbitals builds one spin channel. The file stores the coefficients orbital
// by orbital, so the flat array reshapes to (nindep,nbasis) and the result
// is its transpose.
func (F *File) orbitals(nbasis, nindep int, flat, energies []float64, nelec int) (*qcio.Orbitals, error) {
	if nbasis <= 0 || nindep <= 0 || len(flat) != nbasis*nindep {
		return nil, Error{PreconditionViolation, fmt.Sprintf("%d MO coefficients for %d functions times %d orbitals", len(flat), nbasis, nindep), F.filename, []string{"orbitals"}, true}
	}
	coeffs := mat.DenseCopyOf(mat.NewDense(nindep, nbasis, flat).T())
	ener := make([]float64, len(energies))
	copy(ener, energies)
	return &qcio.Orbitals{
		NBasis:      nbasis,
		NIndep:      nindep,
		Coeffs:      coeffs,
		Energies:    ener,
		Occupations: occupations(nindep, nelec),
	}, nil
}

// occupations returns the occupation vector for nelec electrons of one spin
// in nindep orbitals: ones first, zeros after.
func occupations(nindep, nelec int) []float64 {
	occs := make([]float64, nindep)
	for i := 0; i < nelec && i < nindep; i++ {
		occs[i] = 1.0
	}
	return occs
}

// triangleSize returns the size of the symmetric matrix whose triangle has l
// elements, or -1 if no such matrix exists.
func triangleSize(l int) int {
	n := int(math.Round((math.Sqrt(float64(1+8*l)) - 1) / 2))
	if n*(n+1)/2 != l {
		return -1
	}
	return n
}

// triangleToDense expands the lower triangle in tri, read row by row, into a
// dense symmetric n x n matrix.
func (F *File) triangleToDense(label string, tri []float64, n int) (*mat.Dense, error) {
	if n <= 0 || len(tri) < n*(n+1)/2 {
		return nil, Error{PreconditionViolation, fmt.Sprintf("%d values in %q can not fill the triangle of a %dx%d matrix", len(tri), label, n, n), F.filename, []string{"triangleToDense"}, true}
	}
	m := mat.NewDense(n, n, nil)
	begin := 0
	for i := 0; i < n; i++ {
		end := begin + i + 1
		for j, v := range tri[begin:end] {
			m.Set(i, j, v)
			m.Set(j, i, v)
		}
		begin = end
	}
	return m, nil
}

func (F *File) reqInt(label string) (int, error) {
	v, ok := F.Int(label)
	if !ok {
		return 0, Error{MissingField, label, F.filename, []string{"reqInt"}, true}
	}
	return v, nil
}

func (F *File) reqFloat(label string) (float64, error) {
	v, ok := F.Float(label)
	if !ok {
		return 0, Error{MissingField, label, F.filename, []string{"reqFloat"}, true}
	}
	return v, nil
}

func (F *File) reqInts(label string) ([]int, error) {
	v, ok := F.Ints(label)
	if !ok {
		return nil, Error{MissingField, label, F.filename, []string{"reqInts"}, true}
	}
	return v, nil
}

func (F *File) reqFloats(label string) ([]float64, error) {
	v, ok := F.Floats(label)
	if !ok {
		return nil, Error{MissingField, label, F.filename, []string{"reqFloats"}, true}
	}
	return v, nil
}
