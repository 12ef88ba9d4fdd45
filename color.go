// Copyright © 2025 Termtint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: color.go
// Summary: Color variants produced by the parsers and their tcell conversions.

// Package termtint parses textual color representations (hex strings, RGB
// tuples, ANSI 256-color indexes) into typed color values for terminal use.
package termtint

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Color is one parsed terminal color. The set of implementations is closed:
// RGB, Hex, and ANSI256.
type Color interface {
	// TCell converts the color to its tcell representation.
	TCell() tcell.Color

	sealed()
}

// RGB holds explicit 8-bit color channels.
type RGB struct {
	R, G, B uint8
}

func (c RGB) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (RGB) sealed() {}

// Hex is a normalized hexadecimal color string: "#" followed by exactly
// 3 or 6 upper-case hex digits. Values produced by ParseHex always satisfy
// this; conversion of a malformed Hex yields tcell.ColorDefault.
type Hex string

func (h Hex) TCell() tcell.Color {
	body, ok := strings.CutPrefix(string(h), "#")
	if !ok {
		return tcell.ColorDefault
	}
	if len(body) == 3 {
		// Short form doubles each digit: #RGB reads as #RRGGBB.
		body = string([]byte{body[0], body[0], body[1], body[1], body[2], body[2]})
	}
	if len(body) != 6 {
		return tcell.ColorDefault
	}
	v, err := strconv.ParseUint(body, 16, 32)
	if err != nil {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32((v>>16)&0xFF), int32((v>>8)&0xFF), int32(v&0xFF))
}

func (Hex) sealed() {}

// ANSI256 is an index into the ANSI 256-color palette.
type ANSI256 uint8

func (c ANSI256) TCell() tcell.Color {
	return tcell.PaletteColor(int(c))
}

func (ANSI256) sealed() {}
