// Copyright © 2025 Termtint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: error.go
// Summary: Classified parse errors returned by the color parsers.

package termtint

import "fmt"

// ParseErrorKind identifies the syntactic class of input that failed to parse.
type ParseErrorKind int

const (
	// InvalidRGB marks a malformed three-component tuple: wrong arity,
	// an unparseable channel, or a broken rgb(...) wrapper.
	InvalidRGB ParseErrorKind = iota
	// InvalidHex marks a malformed "#"-prefixed string.
	InvalidHex
	// InvalidANSI256 marks a single numeric-looking token that does not
	// resolve to a palette index in 0-255.
	InvalidANSI256
	// InvalidName marks input that cannot be classified as any known
	// numeric color format.
	InvalidName
)

func (k ParseErrorKind) String() string {
	switch k {
	case InvalidRGB:
		return "InvalidRGB"
	case InvalidHex:
		return "InvalidHex"
	case InvalidANSI256:
		return "InvalidANSI256"
	case InvalidName:
		return "InvalidName"
	default:
		return "Unknown"
	}
}

// ParseError describes a failed color parse. Kind classifies the failure and
// Given retains the input that triggered it, for diagnostics.
type ParseError struct {
	Kind  ParseErrorKind
	Given string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidRGB:
		return fmt.Sprintf("invalid RGB color: %q", e.Given)
	case InvalidHex:
		return fmt.Sprintf("invalid hex color: %q", e.Given)
	case InvalidANSI256:
		return fmt.Sprintf("invalid ANSI-256 color index: %q", e.Given)
	default:
		return fmt.Sprintf("unrecognized color name: %q", e.Given)
	}
}
