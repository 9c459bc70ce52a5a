/*
 * orca.go, part of goqcio.
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

//Package orca recovers results from Orca output files.
package orca

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	qcio "github.com/rmera/goqcio"
	"gonum.org/v1/gonum/mat"
)

// Load reads an Orca output file, plain or compressed, and returns the last
// geometry and final single-point energy in it, plus the dipole moment when
// present. For an optimization that means the optimized structure.
func Load(name string) (*qcio.Molecule, error) {
	fin, err := qcio.OpenRead(name)
	if err != nil {
		return nil, Error{UnableToOpen, err.Error(), name, []string{"Load"}, true}
	}
	defer fin.Close()
	r := bufio.NewReader(fin)
	M := new(qcio.Molecule)
	var numbers []int
	var coords []float64 //angstrom until the end of the function
	haveEnergy := false
	for {
		line, err := readLine(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, Error{ReadError, err.Error(), name, []string{"Load"}, true}
		}
		switch {
		case strings.Contains(line, "CARTESIAN COORDINATES (ANGSTROEM)"):
			//Orca prints one of these blocks per geometry step, the last
			//one wins.
			numbers, coords, err = readGeometry(r, name)
			if err != nil {
				return nil, errDecorate(err, "Load")
			}
		case strings.Contains(line, "FINAL SINGLE POINT ENERGY"):
			fields := strings.Fields(line)
			if len(fields) < 5 {
				return nil, Error{MalformedOutput, "energy line: " + line, name, []string{"Load"}, true}
			}
			M.Energy, err = strconv.ParseFloat(fields[4], 64)
			if err != nil {
				return nil, Error{MalformedOutput, "energy line: " + line, name, []string{"Load"}, true}
			}
			haveEnergy = true
		case strings.Contains(line, "Total Dipole Moment"):
			fields := strings.Fields(line)
			if len(fields) < 7 {
				log.Printf("Unreadable dipole line in %s, skipping it", name)
				continue
			}
			dipole := make([]float64, 3)
			ok := true
			for i := 0; i < 3; i++ {
				dipole[i], err = strconv.ParseFloat(fields[4+i], 64)
				if err != nil {
					log.Printf("Unreadable dipole line in %s, skipping it", name)
					ok = false
					break
				}
			}
			if ok {
				M.Dipole = dipole
			}
		}
	}
	if numbers == nil {
		return nil, Error{MissingData, "no cartesian coordinates found", name, []string{"Load"}, true}
	}
	if !haveEnergy {
		return nil, Error{MissingData, "no final single point energy found", name, []string{"Load"}, true}
	}
	M.Numbers = numbers
	M.PseudoNumbers = make([]float64, len(numbers))
	for i, z := range numbers {
		M.PseudoNumbers[i] = float64(z)
	}
	for i := range coords {
		coords[i] *= qcio.A2Bohr
	}
	M.Coords = mat.NewDense(len(numbers), 3, coords)
	return M, nil
}

// readGeometry reads the atom lines of a coordinates block. The block starts
// after a dashed separator line and ends at the first line without the
// symbol-x-y-z layout.
func readGeometry(r *bufio.Reader, name string) ([]int, []float64, error) {
	if _, err := readLine(r); err != nil { //the dashes under the header
		return nil, nil, Error{MalformedOutput, "truncated coordinates block", name, []string{"readGeometry"}, true}
	}
	var numbers []int
	var coords []float64
	for {
		line, err := readLine(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, Error{ReadError, err.Error(), name, []string{"readGeometry"}, true}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			break
		}
		z, err := qcio.AtomicNumber(fields[0])
		if err != nil {
			return nil, nil, Error{MalformedOutput, "atom line: " + line, name, []string{"readGeometry"}, true}
		}
		var xyz [3]float64
		for i := 0; i < 3; i++ {
			xyz[i], err = strconv.ParseFloat(fields[1+i], 64)
			if err != nil {
				return nil, nil, Error{MalformedOutput, "atom line: " + line, name, []string{"readGeometry"}, true}
			}
		}
		numbers = append(numbers, z)
		coords = append(coords, xyz[0], xyz[1], xyz[2])
	}
	if numbers == nil {
		return nil, nil, Error{MalformedOutput, "empty coordinates block", name, []string{"readGeometry"}, true}
	}
	return numbers, coords, nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

//Errors

//errDecorate asserts that the error implements qcio.Error and decorates
//it with the caller's name before returning it.
//if used with a non-qcio.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(qcio.Error)
	err2.Decorate(caller)
	return err2
}

// Error is the structure for errors in Orca output files. It fullfills
// qcio.Error and qcio.FileError.
type Error struct {
	kind     string
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("orca file %s error: %s: %s", err.filename, err.kind, err.message)
}

// Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since E.deco is a slice, and hence a pointer itself.

	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// Kind returns the class of problem found, one of the Kind constants.
func (err Error) Kind() string { return err.kind }

// FileName returns the file to which the failing read was associated
func (err Error) FileName() string { return err.filename }

// Format returns the format of the file (always "orca") associated to the error
func (err Error) Format() string { return "orca" }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

// The kinds of problem an Error can report.
const (
	UnableToOpen    = "Unable to open file"
	ReadError       = "Error reading file"
	MalformedOutput = "Malformed output"
	MissingData     = "Missing data"
)
