/*
 * compress.go, part of goqcio.
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
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Results files are large and tend to be archived compressed, so every reader
//in this library opens its input through OpenRead.

//This will cause additional indirections
//but I suppose it won't matter, as each call will
//take enough time to make those delays irrelevant.
//Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdql struct {
	closeql func() //The things I have to do xD
	f       *os.File
	*zstd.Decoder
}

// Close closes the decoder and the underlying file. The object can not be used after this call.
func (z zstdql) Close() error {
	z.closeql()
	return z.f.Close()
}

type gzipql struct {
	f *os.File
	*gzip.Reader
}

func (g gzipql) Close() error {
	err := g.Reader.Close()
	err2 := g.f.Close()
	if err != nil {
		return err
	}
	return err2
}

// OpenRead opens the file name for reading, transparently decompressing it if
// its name ends in ".gz" (gzip) or ".zst"/".zstd" (zstd). Anything else is
// read as plain text. Closing the returned handle closes the file too.
func OpenRead(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	low := strings.ToLower(name)
	switch {
	case strings.HasSuffix(low, ".gz"):
		r, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, CError{"goqcio: Can't read gzip header: " + err.Error(), []string{"OpenRead"}}
		}
		return gzipql{f, r}, nil
	case strings.HasSuffix(low, ".zst"), strings.HasSuffix(low, ".zstd"):
		r, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, CError{"goqcio: Can't read zstd header: " + err.Error(), []string{"OpenRead"}}
		}
		return zstdql{r.Close, f, r}, nil
	}
	return f, nil
}
