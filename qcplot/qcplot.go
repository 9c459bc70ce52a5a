/*
 * qcplot.go, part of goqcio
 *
 * Copyright 2026 Raul Mera <rmera{at}usachDOTcl>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 * goqcio is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
*/
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package qcplot

import (
	"fmt"
	"image/color"
	"math"

	qcio "github.com/rmera/goqcio"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//half the horizontal extent of each level mark, in axis units.
const levelWidth = 0.3

func basicLevelPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.Y.Label.Text = "Energy (eV)"
	//Constant X axis, one column per spin channel. Y scales with the data.
	p.X.Min = 0
	p.X.Max = 3
	p.HideX()
	p.Add(plotter.NewGrid())
	return p
}

/*LevelsPlot produces a molecular orbital energy-level diagram, in png format,
  for the orbitals in alpha and, if not nil, in beta, which gets its own
  column. Energies are plotted in eV. Orbitals whose indexes are in tag
  (maximum 4 per column) are highlighted in the plot. ".png" is appended to
  plotname. Returns an error or nil*/
func LevelsPlot(alpha, beta *qcio.Orbitals, tag []int, title, plotname string) error {
	var err error
	if alpha == nil {
		panic("Given nil data")
	}
	p := basicLevelPlot(title)
	err = levelColumn(p, alpha, tag, 1)
	if err != nil {
		return err
	}
	if beta != nil {
		err = levelColumn(p, beta, tag, 2)
		if err != nil {
			return err
		}
	}
	filename := fmt.Sprintf("%s.png", plotname)
	//here I  intentionally shadow err.
	if err := p.Save(10*vg.Centimeter, 15*vg.Centimeter, filename); err != nil {
		return err
	}
	return err
}

/*FrontierPlot is a convenience wrapper around LevelsPlot: it plots the level
  diagram for whatever orbitals M carries, with the frontier (HOMO and LUMO)
  levels of the alpha channel highlighted. Returns an error or nil*/
func FrontierPlot(M *qcio.Molecule, title, plotname string) error {
	if M == nil || M.Alpha == nil {
		return fmt.Errorf("FrontierPlot: Given nil data")
	}
	homo := M.Alpha.NOccupied() - 1
	tag := []int{homo}
	if homo+1 < len(M.Alpha.Energies) {
		tag = append(tag, homo+1)
	}
	return LevelsPlot(M.Alpha, M.Beta, tag, title, plotname)
}

//levelColumn adds one column of levels, centered at the horizontal
//position x, to the plot p.
func levelColumn(p *plot.Plot, orb *qcio.Orbitals, tag []int, x float64) error {
	if len(orb.Energies) == 0 {
		return fmt.Errorf("levelColumn: No energies to plot")
	}
	temp := make(plotter.XYs, 2)
	point := make(plotter.XYs, 1)
	var tagged int //How many levels have been tagged?
	for key, val := range orb.Energies {
		e := val * qcio.H2eV
		temp[0].X = x - levelWidth
		temp[0].Y = e
		temp[1].X = x + levelWidth
		temp[1].Y = e
		// Make a line plotter for the level and set its style.
		l, err := plotter.NewLine(temp)
		if err != nil {
			return err
		}
		l.LineStyle.Width = vg.Points(1.5)
		r, g, b := levelColors(orb, key)
		l.LineStyle.Color = color.RGBA{R: r, B: b, G: g, A: 255}
		p.Add(l)
		if tag != nil && isInInt(tag, key) {
			point[0].X = x
			point[0].Y = e
			s, err := plotter.NewScatter(point)
			if err != nil {
				return err
			}
			s.GlyphStyle.Shape, err = getShape(tagged)
			tagged++
			s.GlyphStyle.Radius = vg.Points(3)
			s.GlyphStyle.Color = color.RGBA{R: r, B: b, G: g, A: 255}
			p.Add(s)
		}
		//		fmt.Println(r,b,g, key, val, len(orb.Energies))
	}
	return nil
}

//occupied and virtual levels take their colors from opposite ends of
//the scale.
func levelColors(orb *qcio.Orbitals, key int) (r, g, b uint8) {
	if key < len(orb.Occupations) && orb.Occupations[key] > 0 {
		return colors(4, 5)
	}
	return colors(0, 5)
}

func getShape(tagged int) (draw.GlyphDrawer, error) {
	switch tagged {
	case 0:
		return draw.PyramidGlyph{}, nil
	case 1:
		return draw.CircleGlyph{}, nil
	case 2:
		return draw.SquareGlyph{}, nil
	case 3:
		return draw.CrossGlyph{}, nil
	default:
		return draw.RingGlyph{}, fmt.Errorf("Maximun number of taggable levels is 4") // you can still ignore the error and will get just the regular glyph (your level will not be tagged)
	}
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r = v
		g = t
		b = p
	case 1:
		r = q
		g = v
		b = p
	case 2:
		r = p
		g = v
		b = t
	case 3:
		r = p
		g = q
		b = v
	case 4:
		r = t
		g = p
		b = v
	default: //case 5
		r = v
		g = p
		b = q
	}

	r = r * conversion
	g = g * conversion
	b = b * conversion
	return uint8(r), uint8(g), uint8(b)
}

func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64((float64(key) * norm) + 20.0)
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	s := 1.0
	v := 1.0
	r, g, b = iHVS2RGB(h, v, s)
	return r, g, b
}
