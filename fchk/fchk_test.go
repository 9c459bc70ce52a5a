/*
 * fchk_test.go, part of goqcio.
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

package fchk

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

//The helpers below write records with the exact column layout of the format,
//so the tests can build small files and broken variants of them.

func header2(command, lot, basis string) string {
	return fmt.Sprintf("%-10s%-60s%s\n", command, lot, basis)
}

func scalarI(label string, v int) string {
	return fmt.Sprintf("%-43sI%17d\n", label, v)
}

func scalarR(label string, v float64) string {
	return fmt.Sprintf("%-43sR%27.15E\n", label, v)
}

func arrayI(label string, vals ...int) string {
	s := fmt.Sprintf("%-43sI   N=%12d\n", label, len(vals))
	for i, v := range vals {
		s += fmt.Sprintf("%12d", v)
		if (i+1)%6 == 0 || i == len(vals)-1 {
			s += "\n"
		}
	}
	return s
}

func arrayR(label string, vals ...float64) string {
	s := fmt.Sprintf("%-43sR   N=%12d\n", label, len(vals))
	for i, v := range vals {
		s += fmt.Sprintf("%16.8E", v)
		if (i+1)%5 == 0 || i == len(vals)-1 {
			s += "\n"
		}
	}
	return s
}

//minimalFCHK returns a tiny but complete closed-shell H2 file. The molecule
//tests mutate it to produce broken variants.
func minimalFCHK() string {
	s := "h2 minimal\n"
	s += header2("SP", "RHF", "STO-3G")
	s += scalarI("Number of alpha electrons", 1)
	s += scalarI("Number of beta electrons", 1)
	s += scalarI("Number of basis functions", 2)
	s += arrayI("Atomic numbers", 1, 1)
	s += arrayR("Nuclear charges", 1, 1)
	s += arrayR("Current cartesian coordinates", 0, 0, 0.7, 0, 0, -0.7)
	s += arrayI("Shell types", 0, 0)
	s += arrayI("Number of primitives per shell", 1, 1)
	s += arrayI("Shell to atom map", 1, 2)
	s += arrayR("Primitive exponents", 1.24, 1.24)
	s += arrayR("Contraction coefficients", 1, 1)
	s += scalarR("Total Energy", -1.1167593)
	s += arrayR("Alpha Orbital Energies", -0.578, 0.67)
	s += arrayR("Alpha MO coefficients", 0.548, 0.548, 1.212, -1.212)
	return s
}

func writeTmp(Te *testing.T, content string) string {
	name := filepath.Join(Te.TempDir(), "min.fchk")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	return name
}

func TestReadAll(Te *testing.T) {
	F, err := New("../test/water.fchk", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if F.Title != "water mp2/6-31g* sp" {
		Te.Errorf("title %q", F.Title)
	}
	if F.Command != "SP" || F.LevelOfTheory != "RMP2" || F.BasisName != "6-31G*" {
		Te.Errorf("header %q %q %q", F.Command, F.LevelOfTheory, F.BasisName)
	}
	if F.Len() != 30 {
		Te.Errorf("read %d fields, want 30", F.Len())
	}
	if v, ok := F.Int("Number of atoms"); !ok || v != 3 {
		Te.Errorf("Number of atoms = %d, %v", v, ok)
	}
	if v, ok := F.Float("Total Energy"); !ok || v != -76.1992394 {
		Te.Errorf("Total Energy = %f, %v", v, ok)
	}
	nums, ok := F.Ints("Atomic numbers")
	if !ok || !reflect.DeepEqual(nums, []int{8, 1, 1}) {
		Te.Errorf("Atomic numbers = %v, %v", nums, ok)
	}
	if coords, ok := F.Floats("Current cartesian coordinates"); !ok || len(coords) != 9 {
		Te.Errorf("coordinates: %d values, %v", len(coords), ok)
	}
	//character records are not supported, they should just be skipped
	if F.Has("Route") {
		Te.Errorf("the Route record should not have been stored")
	}
	//the accessors are strict about the stored kind
	if _, ok := F.Int("Total Energy"); ok {
		Te.Errorf("Int should not return a real field")
	}
	if _, ok := F.Floats("Atomic numbers"); ok {
		Te.Errorf("Floats should not return an integer array")
	}
	if _, ok := F.Float("Alpha Orbital Energies"); ok {
		Te.Errorf("Float should not return an array field")
	}
	fmt.Println("read", F.Len(), "fields from water.fchk")
}

func TestSelective(Te *testing.T) {
	F, err := New("../test/water.fchk", []string{"Number of atoms", "Total Energy"})
	if err != nil {
		Te.Fatal(err)
	}
	if F.Len() != 2 {
		Te.Errorf("read %d fields, want 2", F.Len())
	}
	if v, ok := F.Int("Number of atoms"); !ok || v != 3 {
		Te.Errorf("Number of atoms = %d, %v", v, ok)
	}
	if v, ok := F.Float("Total Energy"); !ok || v != -76.1992394 {
		Te.Errorf("Total Energy = %f, %v", v, ok)
	}
	//reading stops as soon as the last wanted label is seen
	if F.Has("Alpha Orbital Energies") || F.Has("ESP Charges") {
		Te.Errorf("fields past the wanted set should not have been read")
	}
	//a wanted label that is not in the file is not an error
	F, err = New("../test/water.fchk", []string{"Number of atoms", "NPA Charges"})
	if err != nil {
		Te.Fatal(err)
	}
	if F.Len() != 1 || F.Has("NPA Charges") {
		Te.Errorf("read %d fields, want only Number of atoms", F.Len())
	}
	//an empty, non-nil wanted set reads the header and nothing else
	F, err = New("../test/water.fchk", []string{})
	if err != nil {
		Te.Fatal(err)
	}
	if F.Len() != 0 {
		Te.Errorf("read %d fields, want 0", F.Len())
	}
	if F.Command != "SP" {
		Te.Errorf("the header should still be read")
	}
}

func TestDuplicateLabels(Te *testing.T) {
	content := "duplicates\n" + header2("SP", "RHF", "STO-3G") +
		scalarI("Magic", 1) + scalarI("Magic", 2)
	name := writeTmp(Te, content)
	F, err := New(name, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if v, _ := F.Int("Magic"); v != 2 {
		Te.Errorf("unfiltered: got %d, the last occurrence should win", v)
	}
	F, err = New(name, []string{"Magic"})
	if err != nil {
		Te.Fatal(err)
	}
	if v, _ := F.Int("Magic"); v != 1 {
		Te.Errorf("filtered: got %d, the first occurrence should win", v)
	}
}

// TestTolerated feeds the reader lines it should shrug off: an unparsable
// scalar, an unsupported character record and free-form comment lines.
func TestTolerated(Te *testing.T) {
	content := "   padded title \n" + header2("OPT", "RB3LYP", "def2-SVP") +
		"Some informal line\n" +
		fmt.Sprintf("%-43sR%17s\n", "Virial Ratio", "abc") +
		"Route                                      C   N=           2\n" +
		"#P RB3LYP/def2-SVP OPT\n" +
		scalarI("Number of atoms", 2)
	F, err := New(writeTmp(Te, content), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if F.Title != "padded title" {
		Te.Errorf("title %q", F.Title)
	}
	if F.Has("Virial Ratio") {
		Te.Errorf("an unparsable scalar should be dropped")
	}
	if F.Has("Route") {
		Te.Errorf("a character record should be skipped")
	}
	if v, ok := F.Int("Number of atoms"); !ok || v != 2 {
		Te.Errorf("the field after the skipped lines was lost: %d, %v", v, ok)
	}
	if F.Len() != 1 {
		Te.Errorf("read %d fields, want 1", F.Len())
	}
}

func TestScannerErrors(Te *testing.T) {
	head := "broken\n" + header2("SP", "RHF", "STO-3G")
	tests := []struct {
		msg     string
		content string
		kind    string
	}{
		{"one word header", "t\nSPONLY\n", MalformedHeader},
		{"four word header", "t\nSP RHF STO-3G extra\n", MalformedHeader},
		{"missing N= marker",
			head + fmt.Sprintf("%-43sI   M=%12d\n", "Atomic numbers", 2),
			MalformedField},
		{"unreadable array length",
			head + fmt.Sprintf("%-43sI   N=%12s\n", "Atomic numbers", "two"),
			MalformedField},
		{"negative array length",
			head + fmt.Sprintf("%-43sI   N=%12d\n", "Atomic numbers", -2),
			MalformedField},
		{"unreadable array value",
			head + fmt.Sprintf("%-43sI   N=%12d\n", "Atomic numbers", 2) +
				"           1        oops\n",
			MalformedField},
		{"too many array values",
			head + fmt.Sprintf("%-43sI   N=%12d\n", "Atomic numbers", 2) +
				"           1           2           3\n",
			MalformedField},
		{"truncated array",
			head + fmt.Sprintf("%-43sI   N=%12d\n", "Atomic numbers", 4) +
				"           1           2\n",
			UnexpectedEOF},
		{"trailing tokens after array length",
			head + fmt.Sprintf("%-43sR   N=%12d extra\n", "Dipole Moment", 3),
			MalformedField},
	}
	for _, test := range tests {
		_, err := New(writeTmp(Te, test.content), nil)
		if err == nil {
			Te.Errorf("%s: no error", test.msg)
			continue
		}
		ferr, ok := err.(Error)
		if !ok {
			Te.Errorf("%s: error has type %T", test.msg, err)
			continue
		}
		if ferr.Kind() != test.kind {
			Te.Errorf("%s: kind %q, want %q", test.msg, ferr.Kind(), test.kind)
		}
		if test.msg == "unreadable array value" && !strings.Contains(err.Error(), "oops") {
			Te.Errorf("the offending token is not in the error: %v", err)
		}
	}
	if _, err := New("../test/no_such_file.fchk", nil); err == nil {
		Te.Errorf("no error for a missing file")
	} else if ferr, ok := err.(Error); !ok || ferr.Kind() != UnableToOpen {
		Te.Errorf("missing file: %v", err)
	}
}
