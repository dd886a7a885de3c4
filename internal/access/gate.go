// Package access holds the boundary-facing access gate used by sign-in
// screens. Its whitelist check is deliberately looser than the core
// validator: matching is case-insensitive and limited to a fixed set of
// known meters. It is not part of the core validation contract.
package access

import "strings"

// defaultWhitelist mirrors the seeded meter set.
var defaultWhitelist = []string{"WM001", "WM002", "WM003"}

// Gate answers whether a presented meter ID may enter the system.
type Gate struct {
	whitelist []string
}

func NewGate() *Gate {
	return &Gate{whitelist: defaultWhitelist}
}

// NewGateWith builds a gate over a custom whitelist.
func NewGateWith(ids []string) *Gate {
	out := make([]string, len(ids))
	copy(out, ids)
	return &Gate{whitelist: out}
}

// Allows reports whether meterID matches a whitelisted ID, ignoring case.
// wm001 is accepted for WM001.
func (g *Gate) Allows(meterID string) bool {
	for _, id := range g.whitelist {
		if strings.EqualFold(id, meterID) {
			return true
		}
	}
	return false
}
