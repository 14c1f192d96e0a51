package matcher

// kmp scans the text left to right and never re-examines a text character,
// using the failure function to realign the pattern after a mismatch.
// Worst-case linear, which makes it the predictable choice for highly
// repetitive sequences where Boyer-Moore's skips collapse.
type kmp struct {
	pattern string
	failure []int
}

func newKMP(pattern string) *kmp {
	return &kmp{
		pattern: pattern,
		failure: buildFailure(pattern),
	}
}

// buildFailure computes the longest proper prefix of pattern[:i+1] that is
// also a suffix of it.
func buildFailure(pattern string) []int {
	failure := make([]int, len(pattern))
	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[k] != pattern[i] {
			k = failure[k-1]
		}
		if pattern[k] == pattern[i] {
			k++
		}
		failure[i] = k
	}
	return failure
}

func (k *kmp) Search(text string) []int {
	var matches []int
	m := len(k.pattern)
	if m > len(text) {
		return matches
	}

	q := 0
	for i := 0; i < len(text); i++ {
		for q > 0 && k.pattern[q] != text[i] {
			q = k.failure[q-1]
		}
		if k.pattern[q] == text[i] {
			q++
		}
		if q == m {
			matches = append(matches, i-m+1)
			q = k.failure[q-1]
		}
	}
	return matches
}
