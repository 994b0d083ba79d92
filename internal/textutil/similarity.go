package textutil

// SequenceRatio computes the Ratcliff/Obershelp similarity between two
// strings: twice the number of matching characters divided by the total
// number of characters. Matching characters are counted by finding the
// longest common substring and recursing on the pieces to its left and
// right. The measure is symmetric and lies in [0, 1].
func SequenceRatio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	matched := matchingRunes(ra, rb)
	return 2.0 * float64(matched) / float64(total)
}

func matchingRunes(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ai, bi, size := longestCommonRun(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingRunes(a[:ai], b[:bi]) +
		matchingRunes(a[ai+size:], b[bi+size:])
}

// longestCommonRun finds the longest common substring of a and b, returning
// its start offsets and length. On ties the earliest occurrence in a wins,
// then the earliest in b.
func longestCommonRun(a, b []rune) (ai, bi, size int) {
	// lengths[j] holds the common-suffix length ending at a[i-1], b[j-1]
	// for the current row i.
	lengths := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		prev := 0
		for j := 1; j <= len(b); j++ {
			cur := lengths[j]
			if a[i-1] == b[j-1] {
				lengths[j] = prev + 1
				if lengths[j] > size {
					size = lengths[j]
					ai = i - size
					bi = j - size
				}
			} else {
				lengths[j] = 0
			}
			prev = cur
		}
	}
	return ai, bi, size
}
