//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		logDispatch()
		return
	}

	// ARM64 always has NEON, but a Vec spans four NEON registers and the
	// portable kernels already compile to reasonable code there.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentName = "neon"
	} else {
		setScalarMode()
	}
	logDispatch()
}

// HasAVX512 returns false on ARM.
func HasAVX512() bool {
	return false
}
