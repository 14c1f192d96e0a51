package matcher

// boyerMoore searches right to left within each window and skips ahead using
// the larger of the bad-character and good-suffix shifts. On the four-letter
// DNA alphabet the good-suffix rule does most of the work; the bad-character
// table still pays off for longer patterns.
type boyerMoore struct {
	pattern    string
	badChar    [256]int
	goodSuffix []int
}

func newBoyerMoore(pattern string) *boyerMoore {
	bm := &boyerMoore{
		pattern:    pattern,
		goodSuffix: buildGoodSuffix(pattern),
	}
	for i := range bm.badChar {
		bm.badChar[i] = -1
	}
	for i := 0; i < len(pattern); i++ {
		bm.badChar[pattern[i]] = i
	}
	return bm
}

// buildGoodSuffix computes, for each mismatch position, how far the pattern
// can slide so that the already-matched suffix still lines up with an earlier
// occurrence of itself (or with a matching prefix).
func buildGoodSuffix(pattern string) []int {
	m := len(pattern)
	shift := make([]int, m+1)
	border := make([]int, m+1)

	i, j := m, m+1
	border[i] = j
	for i > 0 {
		for j <= m && pattern[i-1] != pattern[j-1] {
			if shift[j] == 0 {
				shift[j] = j - i
			}
			j = border[j]
		}
		i--
		j--
		border[i] = j
	}

	j = border[0]
	for i = 0; i <= m; i++ {
		if shift[i] == 0 {
			shift[i] = j
		}
		if i == j {
			j = border[j]
		}
	}
	return shift
}

func (bm *boyerMoore) Search(text string) []int {
	var matches []int
	m, n := len(bm.pattern), len(text)
	if m > n {
		return matches
	}

	s := 0
	for s <= n-m {
		j := m - 1
		for j >= 0 && bm.pattern[j] == text[s+j] {
			j--
		}
		if j < 0 {
			matches = append(matches, s)
			s += bm.goodSuffix[0]
			continue
		}

		bcShift := j - bm.badChar[text[s+j]]
		if bcShift < 1 {
			bcShift = 1
		}
		gsShift := bm.goodSuffix[j+1]
		if gsShift > bcShift {
			s += gsShift
		} else {
			s += bcShift
		}
	}
	return matches
}
