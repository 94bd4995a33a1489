package common

// Abs returns the absolute value of an integer
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ChebyshevDistance returns max(|r1-r2|, |c1-c2|), the number of king moves
// between two cells.
func ChebyshevDistance(r1, c1, r2, c2 int) int {
	return max(Abs(r1-r2), Abs(c1-c2))
}

// Digits returns how many decimal digits are needed to print n. Negative
// numbers count the minus sign.
func Digits(n int) int {
	d := 1
	if n < 0 {
		d++
		n = -n
	}
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
