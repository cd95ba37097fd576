//go:build !debug

package board

// assertDescriptorsConsistent is a no-op outside of -tags debug builds;
// see debug_assert.go.
func (pos *Position) assertDescriptorsConsistent() {}
