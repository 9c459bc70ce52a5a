/*
 * doc.go, part of goqcio.
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

/*Package qcio is the main package of the goqcio library. It provides structures
for the results of quantum-chemistry calculations (geometry, basis set, molecular
orbitals, density matrices and one-electron properties) and, through its
subpackages, readers that recover those results from the output of QM programs.



	**goqcio Capabilities**


    Reads Gaussian formatted-checkpoint (FCHK) files, plain or compressed
	(gzip and zstd), into a Molecule structure (subpackage fchk).

    Selective reading: the FCHK reader can be given the list of fields wanted,
	in which case it stops as soon as the last of them has been seen, without
	scanning the rest of the file.

    Rebuilds the Gaussian basis set from the checkpoint primitive tables,
	splitting the combined SP shells into their S and P parts, and provides
	the permutation that takes Gaussian's atomic-orbital order to the
	canonical one.

    Rebuilds full symmetric matrices (density matrices, the polarizability
	tensor) from the lower-triangular form stored in the checkpoint.

    Recovers molecular orbitals (restricted, restricted-open and unrestricted)
	with energies, coefficients and occupations, and post-SCF density matrices
	(MP2, MP3, CC, CI) when present.

    Reads geometries, energies and dipoles from Orca output files
	(subpackage orca).

    Draws orbital energy-level diagrams (uses the gonum/plot library)
	for the orbitals read from any of the formats (subpackage qcplot).



goqcio uses the Gonum library for all matrices. Coordinates are a (n,3) Dense
matrix where each row is one atom, in Bohr. Molecular-orbital coefficient
matrices have one column per orbital, with the rows running over basis
functions in the order given by the basis-set permutation.*/
package qcio
