//go:build !anyval_unchecked

package anyval

// checked enables the type and state assertions on typed access. Build with
// the anyval_unchecked tag to trust callers instead.
const checked = true
