package math

// Float32 constants for ExpApprox.
const (
	expLog2E     float32 = 1.442695041
	expNegLn2Hi  float32 = -6.93145752e-1
	expNegLn2Lo  float32 = -1.42860677e-6
	expMantBits          = 23

	// Horner coefficients, highest degree first.
	expC0 float32 = 0.041944388
	expC1 float32 = 0.168006673
	expC2 float32 = 0.499999940
	expC3 float32 = 0.999956906
	expC4 float32 = 0.999999642
)

const (
	// ExpOverflow is the largest input with a finite result.
	ExpOverflow float32 = 88.72283905206835

	// ExpUnderflow is the smallest input with a nonzero result.
	ExpUnderflow float32 = -87.33654475055310
)
