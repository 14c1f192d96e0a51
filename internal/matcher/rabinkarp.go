package matcher

// Rolling-hash parameters. The small prime keeps the arithmetic cheap at the
// cost of frequent collisions, which is why every hash hit is verified by
// direct comparison before being reported.
const (
	rkBase  = 256
	rkPrime = 101
)

type rabinKarp struct {
	pattern     string
	patternHash int
	// high is rkBase^(m-1) mod rkPrime, used to drop the leading character
	// when the window rolls forward.
	high int
}

func newRabinKarp(pattern string) *rabinKarp {
	rk := &rabinKarp{pattern: pattern, high: 1}
	rk.patternHash = rkHash(pattern)
	for i := 0; i < len(pattern)-1; i++ {
		rk.high = (rk.high * rkBase) % rkPrime
	}
	return rk
}

// rkHash computes the polynomial hash of s mod rkPrime.
func rkHash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h*rkBase + int(s[i])) % rkPrime
	}
	return h
}

func (rk *rabinKarp) Search(text string) []int {
	var matches []int
	m, n := len(rk.pattern), len(text)
	if m > n {
		return matches
	}

	windowHash := rkHash(text[:m])
	for s := 0; ; s++ {
		if windowHash == rk.patternHash && text[s:s+m] == rk.pattern {
			matches = append(matches, s)
		}
		if s == n-m {
			break
		}
		windowHash = (rkBase*(windowHash-int(text[s])*rk.high) + int(text[s+m])) % rkPrime
		if windowHash < 0 {
			windowHash += rkPrime
		}
	}
	return matches
}
