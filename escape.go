package mandel

// EscapeCount returns the number of iterations of z = z*z + c, starting from
// z = 0, after which |z| > 2. The check runs before each update, so the result
// is in [0, maxIter] and maxIter means the orbit stayed bounded.
//
// An orbit that turns NaN never compares greater than the bound and is
// reported as bounded.
func EscapeCount(c complex128, maxIter int) int {
	cr, ci := real(c), imag(c)
	var zr, zi float64
	for n := range maxIter {
		// |z| > 2  <=>  |z|^2 > 4
		if zr*zr+zi*zi > 4 {
			return n
		}
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
	}
	return maxIter
}
