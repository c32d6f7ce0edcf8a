/*
Copyright © 2025 Stacktail Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package tail

// Snapshot holds the event lines of the previous poll, excluding that poll's newest event.
// The zero value is an empty snapshot, so the first delta contains every line.
type Snapshot struct {
	lines map[string]struct{}
}

// Delta returns the indexes of lines absent from the snapshot, in their original order.
// A line repeated within lines is reported once, at its first position.
func (s *Snapshot) Delta(lines []string) []int {
	var fresh []int
	reported := make(map[string]struct{}, len(lines))
	for i, line := range lines {
		if _, seen := s.lines[line]; seen {
			continue
		}
		if _, dup := reported[line]; dup {
			continue
		}
		reported[line] = struct{}{}
		fresh = append(fresh, i)
	}
	return fresh
}

// Replace makes lines the new previous snapshot
func (s *Snapshot) Replace(lines []string) {
	next := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		next[line] = struct{}{}
	}
	s.lines = next
}

// Len returns the number of distinct lines held
func (s *Snapshot) Len() int {
	return len(s.lines)
}
