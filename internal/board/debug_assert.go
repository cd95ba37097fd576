//go:build debug

package board

// assertDescriptorsConsistent is called after every mutation when built
// with -tags debug (spec.md §4.1: "MUST assert equality after every
// mutation in debug builds"). It is a fatal invariant violation, not a
// recoverable error (spec.md §7).
func (pos *Position) assertDescriptorsConsistent() {
	if !pos.DescriptorsConsistent() {
		panic("board: env4/env4d descriptors diverged from recomputed values")
	}
}
