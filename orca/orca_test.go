/*
 * orca_test.go, part of goqcio.
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
 */

package orca

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	qcio "github.com/rmera/goqcio"
)

//distance between atoms i and j, in Angstrom.
func dist(M *qcio.Molecule, i, j int) float64 {
	dx := M.Coords.At(i, 0) - M.Coords.At(j, 0)
	dy := M.Coords.At(i, 1) - M.Coords.At(j, 1)
	dz := M.Coords.At(i, 2) - M.Coords.At(j, 2)
	return math.Sqrt(dx*dx+dy*dy+dz*dz) * qcio.Bohr2A
}

func TestOrcaWater(Te *testing.T) {
	M, err := Load("../test/water_orca.out")
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(M.Numbers, []int{8, 1, 1}) {
		Te.Errorf("atoms %v", M.Numbers)
	}
	if !reflect.DeepEqual(M.PseudoNumbers, []float64{8, 1, 1}) {
		Te.Errorf("core charges %v", M.PseudoNumbers)
	}
	//the geometry must come from the last coordinates block
	if v := M.Coords.At(0, 2); v != 0 {
		Te.Errorf("O z coordinate %f, the first block was used", v)
	}
	if v := M.Coords.At(1, 2); v != 0.95*qcio.A2Bohr {
		Te.Errorf("H z coordinate %f", v)
	}
	if d := dist(M, 0, 1); math.Abs(d-0.95) > 1e-4 {
		Te.Errorf("d(O,H1) = %f", d)
	}
	if d := dist(M, 0, 2); math.Abs(d-0.95) > 1e-4 {
		Te.Errorf("d(O,H2) = %f", d)
	}
	if d := dist(M, 1, 2); math.Abs(d-1.5513) > 1e-4 {
		Te.Errorf("d(H1,H2) = %f", d)
	}
	if M.Energy != -74.959292304818 {
		Te.Errorf("energy %f", M.Energy)
	}
	if !reflect.DeepEqual(M.Dipole, []float64{0.231745, 0.0, 0.648184}) {
		Te.Errorf("dipole %v", M.Dipole)
	}
	fmt.Println("orca output loaded: energy", M.Energy)
}

func writeOut(Te *testing.T, content string) string {
	name := filepath.Join(Te.TempDir(), "t.out")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	return name
}

const geoBlock = `---------------------------------
CARTESIAN COORDINATES (ANGSTROEM)
---------------------------------
  H      0.000000    0.000000    0.000000
  H      0.000000    0.000000    0.750000

`

func TestOrcaErrors(Te *testing.T) {
	tests := []struct {
		msg     string
		content string
		kind    string
	}{
		{"no coordinates",
			"some output\nFINAL SINGLE POINT ENERGY   -1.0\n",
			MissingData},
		{"no energy", geoBlock, MissingData},
		{"unreadable energy",
			geoBlock + "FINAL SINGLE POINT ENERGY   abc\n",
			MalformedOutput},
		{"unreadable atom line",
			"CARTESIAN COORDINATES (ANGSTROEM)\n---\n  Xq 0.0 0.0 0.0\n\n" +
				"FINAL SINGLE POINT ENERGY   -1.0\n",
			MalformedOutput},
		{"empty coordinates block",
			"CARTESIAN COORDINATES (ANGSTROEM)\n---\n\nFINAL SINGLE POINT ENERGY -1.0\n",
			MalformedOutput},
	}
	for _, test := range tests {
		_, err := Load(writeOut(Te, test.content))
		if err == nil {
			Te.Errorf("%s: no error", test.msg)
			continue
		}
		oerr, ok := err.(Error)
		if !ok {
			Te.Errorf("%s: error has type %T", test.msg, err)
			continue
		}
		if oerr.Kind() != test.kind {
			Te.Errorf("%s: kind %q, want %q (%v)", test.msg, oerr.Kind(), test.kind, err)
		}
	}
	if _, err := Load("../test/no_such_file.out"); err == nil {
		Te.Errorf("no error for a missing file")
	}
	//a tolerated oddity: a dipole line that can not be read is just skipped
	M, err := Load(writeOut(Te, geoBlock+
		"FINAL SINGLE POINT ENERGY   -1.0\n"+
		"Total Dipole Moment    :      what      0.0      0.0\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if M.Dipole != nil {
		Te.Errorf("an unreadable dipole should be dropped, got %v", M.Dipole)
	}
}
