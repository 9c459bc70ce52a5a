/*
 * fchk.go, part of goqcio.
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

//Package fchk reads Gaussian formatted-checkpoint files.
package fchk

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	qcio "github.com/rmera/goqcio"
)

//A record in an FCHK file is a label padded to 43 columns, a type token
//("I" or "R"), and either the value itself or "N= <length>" followed by
//the array values, several to a line.

const labelWidth = 43

type field struct {
	kind byte //'i' or 'r' for scalars, 'I' or 'R' for arrays
	i    int
	r    float64
	ints []int
	flts []float64
}

// File is the contents of a formatted-checkpoint file: the two header lines,
// plus a set of labeled fields. It is not modified after New returns it, so
// it can be read concurrently.
type File struct {
	Title         string
	Command       string //the job directive, e.g. "SP" or "FOpt"
	LevelOfTheory string
	BasisName     string //empty when the file's second line carries no basis token

	filename string
	fields   map[string]field
}

// New reads the formatted-checkpoint file name, which can be gzip or zstd
// compressed. If wanted is not nil, only the fields whose labels it contains
// are kept, and reading stops as soon as all of them have been seen, which
// can make loading large files much faster. A nil wanted reads everything.
func New(name string, wanted []string) (*File, error) {
	fin, err := qcio.OpenRead(name)
	if err != nil {
		return nil, Error{UnableToOpen, err.Error(), name, []string{"New"}, true}
	}
	defer fin.Close()
	F := &File{filename: name, fields: make(map[string]field)}
	var pending map[string]bool
	if wanted != nil {
		pending = make(map[string]bool, len(wanted))
		for _, l := range wanted {
			pending[l] = true
		}
	}
	err = F.read(bufio.NewReader(fin), pending)
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	return F, nil
}

// Len returns the number of fields read.
func (F *File) Len() int {
	return len(F.fields)
}

// Has returns whether the field label was read from the file.
func (F *File) Has(label string) bool {
	_, ok := F.fields[label]
	return ok
}

// Int returns the value of an integer scalar field, and whether a field with
// that label and kind was read.
func (F *File) Int(label string) (int, bool) {
	f, ok := F.fields[label]
	if !ok || f.kind != 'i' {
		return 0, false
	}
	return f.i, true
}

// Float returns the value of a real scalar field, and whether a field with
// that label and kind was read.
func (F *File) Float(label string) (float64, bool) {
	f, ok := F.fields[label]
	if !ok || f.kind != 'r' {
		return 0, false
	}
	return f.r, true
}

// Ints returns an integer array field. The returned slice is the one held by
// F, so the caller should not write to it.
func (F *File) Ints(label string) ([]int, bool) {
	f, ok := F.fields[label]
	if !ok || f.kind != 'I' {
		return nil, false
	}
	return f.ints, true
}

// Floats returns a real array field. The returned slice is the one held by
// F, so the caller should not write to it.
func (F *File) Floats(label string) ([]float64, bool) {
	f, ok := F.fields[label]
	if !ok || f.kind != 'R' {
		return nil, false
	}
	return f.flts, true
}

// readLine returns the next line without its terminator. It returns io.EOF
// only when there is nothing left to read, a final line lacking the
// terminator is returned first.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func (F *File) read(r *bufio.Reader, pending map[string]bool) error {
	line, err := readLine(r)
	if err != nil && err != io.EOF {
		return Error{ReadError, err.Error(), F.filename, []string{"read"}, true}
	}
	F.Title = strings.TrimSpace(line)
	line, err = readLine(r)
	if err != nil && err != io.EOF {
		return Error{ReadError, err.Error(), F.filename, []string{"read"}, true}
	}
	words := strings.Fields(line)
	switch len(words) {
	case 3:
		F.Command, F.LevelOfTheory, F.BasisName = words[0], words[1], words[2]
	case 2:
		F.Command, F.LevelOfTheory = words[0], words[1]
	default:
		return Error{MalformedHeader, "the second line should contain two or three words", F.filename, []string{"read"}, true}
	}
	for {
		more, err := F.readField(r, pending)
		if err != nil {
			return errDecorate(err, "read")
		}
		if !more {
			return nil
		}
	}
}

// readField reads one record. It returns false when there is nothing more to
// read, either because the file ended or because every wanted label has been
// seen already.
func (F *File) readField(r *bufio.Reader, pending map[string]bool) (bool, error) {
	var kind byte
	var label string
	var words []string
	for kind == 0 {
		//find a sane header line
		line, err := readLine(r)
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, Error{ReadError, err.Error(), F.filename, []string{"readField"}, true}
		}
		if len(line) > labelWidth {
			label = strings.TrimSpace(line[:labelWidth])
			line = line[labelWidth:]
		} else {
			label = strings.TrimSpace(line)
			line = ""
		}
		if pending != nil {
			if len(pending) == 0 {
				return false, nil
			}
			if !pending[label] {
				continue
			}
			delete(pending, label)
		}
		words = strings.Fields(line)
		if len(words) == 0 {
			return true, nil
		}
		switch words[0] {
		case "I":
			kind = 'I'
		case "R":
			kind = 'R'
		}
	}
	switch len(words) {
	case 2:
		//scalar value. An unparsable one just drops the field.
		if kind == 'I' {
			v, err := strconv.Atoi(words[1])
			if err != nil {
				return true, nil
			}
			F.fields[label] = field{kind: 'i', i: v}
		} else {
			v, err := strconv.ParseFloat(words[1], 64)
			if err != nil {
				return true, nil
			}
			F.fields[label] = field{kind: 'r', r: v}
		}
	case 3:
		if words[1] != "N=" {
			return false, Error{MalformedField, fmt.Sprintf("unexpected tokens after label %q: %s", label, strings.Join(words, " ")), F.filename, []string{"readField"}, true}
		}
		length, err := strconv.Atoi(words[2])
		if err != nil || length < 0 {
			return false, Error{MalformedField, fmt.Sprintf("bad array length %q for label %q", words[2], label), F.filename, []string{"readField"}, true}
		}
		if err := F.readArray(r, label, kind, length); err != nil {
			return false, errDecorate(err, "readField")
		}
	default:
		return false, Error{MalformedField, fmt.Sprintf("unexpected tokens after label %q: %s", label, strings.Join(words, " ")), F.filename, []string{"readField"}, true}
	}
	return true, nil
}

func (F *File) readArray(r *bufio.Reader, label string, kind byte, length int) error {
	var ints []int
	var flts []float64
	if kind == 'I' {
		ints = make([]int, 0, length)
	} else {
		flts = make([]float64, 0, length)
	}
	count := 0
	for count < length {
		line, err := readLine(r)
		if err == io.EOF {
			return Error{UnexpectedEOF, fmt.Sprintf("while filling array %q", label), F.filename, []string{"readArray"}, true}
		}
		if err != nil {
			return Error{ReadError, err.Error(), F.filename, []string{"readArray"}, true}
		}
		for _, w := range strings.Fields(line) {
			if count >= length {
				return Error{MalformedField, fmt.Sprintf("too many values for array %q", label), F.filename, []string{"readArray"}, true}
			}
			if kind == 'I' {
				v, err := strconv.Atoi(w)
				if err != nil {
					return Error{MalformedField, fmt.Sprintf("could not interpret %q while filling array %q", w, label), F.filename, []string{"readArray"}, true}
				}
				ints = append(ints, v)
			} else {
				v, err := strconv.ParseFloat(w, 64)
				if err != nil {
					return Error{MalformedField, fmt.Sprintf("could not interpret %q while filling array %q", w, label), F.filename, []string{"readArray"}, true}
				}
				flts = append(flts, v)
			}
			count++
		}
	}
	if kind == 'I' {
		F.fields[label] = field{kind: 'I', ints: ints}
	} else {
		F.fields[label] = field{kind: 'R', flts: flts}
	}
	return nil
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

// Error is the structure for errors in FCHK files. It fullfills qcio.Error
// and qcio.FileError, and carries one of the Kind constants of this package.
type Error struct {
	kind     string
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("fchk file %s error: %s: %s", err.filename, err.kind, err.message)
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

// Format returns the format of the file (always "fchk") associated to the error
func (err Error) Format() string { return "fchk" }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

// The kinds of problem an Error can report.
const (
	MalformedHeader       = "Malformed header"
	MalformedField        = "Malformed field"
	UnexpectedEOF         = "Unexpected end of file"
	MissingField          = "Missing required field"
	InvalidElectronCount  = "Invalid electron count"
	PreconditionViolation = "Inconsistent dimensions"
	UnableToOpen          = "Unable to open file"
	ReadError             = "Error reading file"
)
