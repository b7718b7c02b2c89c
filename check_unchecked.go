//go:build anyval_unchecked

package anyval

const checked = false
