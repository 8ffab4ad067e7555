// SPDX-License-Identifier: MIT

package bqm

import "fmt"

// Vartype selects the two-element domain of every variable in a model.
// The enumeration is closed: Spin and Binary are the only valid members.
type Vartype uint8

const (
	// Spin marks variables over {-1, +1} (Ising form).
	Spin Vartype = iota + 1
	// Binary marks variables over {0, 1} (QUBO form).
	Binary
)

// String returns the canonical vartype name, "SPIN" or "BINARY".
func (vt Vartype) String() string {
	switch vt {
	case Spin:
		return "SPIN"
	case Binary:
		return "BINARY"
	default:
		return fmt.Sprintf("Vartype(%d)", uint8(vt))
	}
}

// ResolveVartype normalizes any accepted vartype form to Spin or Binary.
//
// Accepted forms:
//   - a Vartype value: Spin, Binary
//   - the case-matching name: "SPIN", "BINARY"
//   - the variable domain as an unordered two-element slice:
//     []int{-1, 1} resolves to Spin, []int{0, 1} to Binary
//
// Every entry point accepting a vartype (New, ChangeVartype) resolves its
// argument through this function; all downstream logic switches on the
// returned Vartype only. Any other input returns ErrInvalidVartype.
//
// Complexity: O(1)
func ResolveVartype(v any) (Vartype, error) {
	switch vt := v.(type) {
	case Vartype:
		if vt == Spin || vt == Binary {
			return vt, nil
		}
	case string:
		switch vt {
		case "SPIN":
			return Spin, nil
		case "BINARY":
			return Binary, nil
		}
	case []int:
		if len(vt) == 2 {
			lo, hi := vt[0], vt[1]
			if lo > hi {
				lo, hi = hi, lo
			}
			if hi == 1 && lo == -1 {
				return Spin, nil
			}
			if hi == 1 && lo == 0 {
				return Binary, nil
			}
		}
	}

	return 0, fmt.Errorf("resolve %#v: %w", v, ErrInvalidVartype)
}
