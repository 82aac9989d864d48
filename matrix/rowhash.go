// SPDX-License-Identifier: MIT
// Package: matrix
//
// rowhash.go — row identity for grouping equal rows.
//
// Rows are bucketed by an xxhash-64 digest of their canonical byte
// encoding (Ring.AppendBytes) and confirmed with exact comparison, so hash
// collisions can never merge distinct rows.
package matrix

import (
	"github.com/cespare/xxhash/v2"
)

// HashRow returns the xxhash-64 digest of row i.
func (m *Dense[T]) HashRow(i int) uint64 {
	var buf []byte
	for _, v := range m.Row(i) {
		buf = m.ring.AppendBytes(buf, v)
	}

	return xxhash.Sum64(buf)
}

// RowsEqual reports whether rows i and j are element-wise equal.
func (m *Dense[T]) RowsEqual(i, j int) bool {
	a, b := m.Row(i), m.Row(j)
	for k := range a {
		if m.ring.Cmp(a[k], b[k]) != 0 {
			return false
		}
	}

	return true
}

// RowGroups assigns every row a group label in first-occurrence order.
//
// Implementation:
//   - Stage 1: Scan rows top to bottom; hash each row.
//   - Stage 2: Within the hash bucket, find a representative with an equal
//     row; reuse its label or open a new group.
//
// Returns:
//   - labels: labels[i] is the group of row i; labels start at 0 and
//     increase in order of first appearance.
//   - firsts: firsts[l] is the first row carrying label l.
//
// Complexity: Time O(r*c) expected, Space O(r).
func (m *Dense[T]) RowGroups() (labels []int, firsts []int) {
	labels = make([]int, m.r)
	buckets := make(map[uint64][]int, m.r) // hash → representative rows
	for i := 0; i < m.r; i++ {
		h := m.HashRow(i)
		label := -1
		for _, rep := range buckets[h] {
			if m.RowsEqual(rep, i) {
				label = labels[rep]
				break
			}
		}
		if label < 0 {
			label = len(firsts)
			firsts = append(firsts, i)
			buckets[h] = append(buckets[h], i)
		}
		labels[i] = label
	}

	return labels, firsts
}
