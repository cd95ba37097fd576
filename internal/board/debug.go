package board

// DescriptorsConsistent recomputes every on-board point's env4/env4d from
// scratch and reports whether they match the incrementally maintained
// values. Exercised by tests as the invariant from spec.md §4.1/§7/§8;
// also wired under the `debug` build tag (see debug_assert.go) so a
// mismatch panics immediately during development instead of only being
// caught by a unit test.
func (pos *Position) DescriptorsConsistent() bool {
	for _, p := range pos.allPoints {
		if pos.env4[p] != pos.computeEnv4(p) {
			return false
		}
		if pos.env4d[p] != pos.computeEnv4d(p) {
			return false
		}
	}
	return true
}
