// SPDX-License-Identifier: MIT

package lp

// SelectMethod decides which solver handles a problem with n variables.
//
// Priority rule, evaluated in order:
//  1. n == 2 → MethodGraphical, whatever the caller requested.
//  2. requested == MethodGeneral → MethodGeneral.
//  3. anything else (MethodSimplex, MethodGraphical with n != 2, empty,
//     unknown) → MethodSimplex.
func SelectMethod(n int, requested Method) Method {
	if n == 2 {
		return MethodGraphical
	}
	if requested == MethodGeneral {
		return MethodGeneral
	}

	return MethodSimplex
}

// ParseMethod maps a user-supplied name onto a Method. The empty string is
// accepted and selects the default fallback. ok is false for unknown names.
func ParseMethod(s string) (m Method, ok bool) {
	if s == "" {
		return "", true
	}
	for _, known := range Methods {
		if string(known) == s {
			return known, true
		}
	}

	return "", false
}
