//go:build unix && !linux

package linmem

// growInPlace has no equivalent outside Linux's mremap(2); every grow on
// these platforms takes the copying fallback in Memory.Grow.
func growInPlace(_ []byte, _ int) ([]byte, bool) {
	return nil, false
}
