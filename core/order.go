// SPDX-License-Identifier: MIT
// File: order.go
// Role: Deterministic vertex-ID ordering.
//
// Configuration builders name vertices "0".."39", so plain lexicographic order
// would place "10" before "2". LessID sorts canonical decimal IDs numerically
// and puts them ahead of every non-numeric ID; the rest compare as strings.

package core

import (
	"sort"
	"strconv"
)

// numericID parses id as a canonical non-negative decimal (no sign, no
// leading zeros except "0" itself).
func numericID(id string) (uint64, bool) {
	if id == "" || (len(id) > 1 && id[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// LessID is the total order used by Vertices and NeighborIDs.
func LessID(a, b string) bool {
	na, oka := numericID(a)
	nb, okb := numericID(b)
	switch {
	case oka && okb:
		return na < nb
	case oka != okb:
		return oka
	default:
		return a < b
	}
}

// SortIDs sorts ids in place by LessID and returns them.
func SortIDs(ids []string) []string {
	sort.Slice(ids, func(i, j int) bool { return LessID(ids[i], ids[j]) })
	return ids
}
