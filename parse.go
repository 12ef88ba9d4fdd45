// Copyright © 2025 Termtint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parse.go
// Summary: Parsers converting color strings (hex, RGB tuples, ANSI indexes)
//          into Color values, plus the prefix-dispatching entry point.

package termtint

import (
	"math"
	"strconv"
	"strings"
)

// sepNormalizer turns the accepted component separators into plain spaces so
// the component list can be split with strings.Fields.
var sepNormalizer = strings.NewReplacer(",", " ", "/", " ")

// parseNumber parses a token as an 8-bit unsigned integer, decimal by
// default or hexadecimal with a "0x" prefix.
func parseNumber(s string) (uint8, bool) {
	if body, ok := strings.CutPrefix(s, "0x"); ok {
		n, err := strconv.ParseUint(body, 16, 8)
		return uint8(n), err == nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	return uint8(n), err == nil
}

// parseChannel parses one RGB channel token: a percentage ("75%"), a decimal
// integer, or a 0x-prefixed hex integer. Percentages are scaled onto 0-255
// and clamped, so "150%" reads as 255 and "-10%" as 0.
func parseChannel(s string) (uint8, bool) {
	if body, ok := strings.CutSuffix(s, "%"); ok {
		pct, err := strconv.ParseFloat(body, 64)
		if err != nil || math.IsNaN(pct) {
			return 0, false
		}
		v := math.Round(pct * 255 / 100)
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		return uint8(v), true
	}
	return parseNumber(s)
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// ParseRGB parses a three-component color, either wrapped ("rgb(255, 0, 0)")
// or bare ("255 0 0"). Components may be separated by commas, slashes, or
// whitespace, and each is a decimal integer, a 0x-prefixed hex integer, or a
// percentage. Channel range is enforced by the uint8 storage itself.
func ParseRGB(s string) (Color, error) {
	list := s
	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		list = strings.TrimSuffix(strings.TrimPrefix(s, "rgb("), ")")
	}

	fields := strings.Fields(sepNormalizer.Replace(list))
	if len(fields) != 3 {
		return nil, &ParseError{Kind: InvalidRGB, Given: s}
	}

	var ch [3]uint8
	for i, f := range fields {
		v, ok := parseChannel(f)
		if !ok {
			return nil, &ParseError{Kind: InvalidRGB, Given: s}
		}
		ch[i] = v
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// ParseHex parses a "#"-prefixed hexadecimal color with a 3- or 6-digit body.
// The result is upper-cased but otherwise preserved; the short form is not
// expanded.
func ParseHex(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") || !isHexDigits(s[1:]) {
		return nil, &ParseError{Kind: InvalidHex, Given: s}
	}
	if len(s) != 4 && len(s) != 7 {
		return nil, &ParseError{Kind: InvalidHex, Given: s}
	}
	return Hex(strings.ToUpper(s)), nil
}

// ParseOther handles inputs that are neither "#..." nor "rgb(...)": a single
// ANSI-256 palette index, a bare RGB triple, or an unrecognized name.
//
// A single token that fails the index parse is classified as InvalidANSI256
// only when the whole normalized input consists of hex digits (it looked
// numeric but was out of range); anything else is InvalidName. So "abc" is
// InvalidANSI256 while "xyz" is InvalidName.
func ParseOther(s string) (Color, error) {
	normalized := sepNormalizer.Replace(s)
	fields := strings.Fields(normalized)
	switch len(fields) {
	case 1:
		if n, ok := parseNumber(fields[0]); ok {
			return ANSI256(n), nil
		}
		if isHexDigits(normalized) {
			return nil, &ParseError{Kind: InvalidANSI256, Given: normalized}
		}
		return nil, &ParseError{Kind: InvalidName, Given: normalized}
	case 3:
		return ParseRGB(normalized)
	default:
		if strings.Contains(s, ",") {
			return nil, &ParseError{Kind: InvalidRGB, Given: normalized}
		}
		return nil, &ParseError{Kind: InvalidName, Given: normalized}
	}
}

// inputShape classifies a trimmed input by its leading characters.
type inputShape int

const (
	shapeOther inputShape = iota
	shapeHex
	shapeRGBFunc
)

func classify(s string) inputShape {
	switch {
	case strings.HasPrefix(s, "#"):
		return shapeHex
	case strings.HasPrefix(s, "rgb("):
		return shapeRGBFunc
	default:
		return shapeOther
	}
}

// FromString parses a color string in any supported format, dispatching on
// the shape of its (whitespace-trimmed) prefix: "#..." is parsed as hex,
// "rgb(..." as an RGB tuple, and everything else through ParseOther.
func FromString(s string) (Color, error) {
	trimmed := strings.TrimSpace(s)
	switch classify(trimmed) {
	case shapeHex:
		return ParseHex(trimmed)
	case shapeRGBFunc:
		return ParseRGB(trimmed)
	default:
		return ParseOther(trimmed)
	}
}
