//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures use the portable kernels.
	setScalarMode()
	logDispatch()
}

// HasAVX512 returns false on non-x86 architectures.
func HasAVX512() bool {
	return false
}
