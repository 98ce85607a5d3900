// Package lineage derives presentation-ready lineage structures from a
// catalog snapshot: a per-asset typed graph and a fully flattened
// source-to-customer record table. Every operation here is pure and
// deterministic; bad references degrade to smaller output, never errors.
package lineage

import (
	"fmt"
	"strconv"
	"strings"
)

// TableCode derives the six-digit public display id of a source table
// from its internal id. The published numbering runs downward from 92.
func TableCode(rawID string) string {
	n, _ := strconv.Atoi(digitsOf(rawID))
	return fmt.Sprintf("%06d", 92-n)
}

// ServiceCode derives the CR-prefixed four-digit product code from a
// service business id such as SVC001.
func ServiceCode(serviceID string) string {
	n, _ := strconv.Atoi(digitsOf(serviceID))
	return fmt.Sprintf("CR%04d", n)
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
