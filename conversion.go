/*
 * conversion.go, part of goqcio.
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

package qcio

//This provides useful conversion factors and other constants

//Conversions
const (
	Deg2Rad  = 0.0174533
	Rad2Deg  = 1 / 0.0174533
	H2Kcal   = 627.509 //HArtree 2 Kcal/mol
	Kcal2H   = 1 / 627.509
	H2eV     = 27.211386 //Hartree 2 electronvolt
	EV2H     = 1 / 27.211386
	A2Bohr   = 1.889725989
	Bohr2A   = 1 / 1.889725989
	AU2Debye = 2.541746 //electric dipole, au 2 Debye
	Debye2AU = 1 / 2.541746
)
