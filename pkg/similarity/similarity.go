// Package similarity scores how alike two package names are.
//
// The score is the Ratcliff/Obershelp "gestalt" ratio: find the longest
// common contiguous block, recurse on the pieces to its left and right, and
// return 2*M/T where M is the number of matched characters and T the total
// length of both strings. 1.0 means identical and 0.0 means nothing in common.
//
// Thresholds used by the analyzer are calibrated against this exact formula,
// so it must not be swapped for another edit distance.
package similarity

// autojunkMin is the length of b from which very frequent elements stop
// anchoring matches.
const autojunkMin = 200

// Similarity returns the ratio for a and b, independent of argument order.
// Callers lowercase both inputs when case should not matter.
func Similarity(a, b string) float64 {
	if b < a {
		a, b = b, a
	}
	return Ratio(a, b)
}

// Ratio returns the ratio of a against b. The block search prefers blocks
// that start earliest in a and then earliest in b, so for a few inputs
// Ratio(a, b) and Ratio(b, a) differ; use Similarity when order must not
// matter.
func Ratio(a, b string) float64 {
	m := newMatcher([]rune(a), []rune(b))
	total := len(m.a) + len(m.b)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(m.matches()) / float64(total)
}

// Matches applies the decision rule: a pair is flagged when its score
// reaches the threshold. The boundary is inclusive.
func Matches(score, threshold float64) bool {
	return score >= threshold
}

type matcher struct {
	a, b []rune
	b2j  map[rune][]int // positions of each element in b, ascending
}

func newMatcher(a, b []rune) *matcher {
	b2j := make(map[rune][]int)
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}
	if n := len(b); n >= autojunkMin {
		limit := n/100 + 1
		for r, idx := range b2j {
			if len(idx) > limit {
				delete(b2j, r)
			}
		}
	}
	return &matcher{a: a, b: b, b2j: b2j}
}

// longest finds the longest block a[i:i+k] == b[j:j+k] inside
// a[alo:ahi] and b[blo:bhi].
func (m *matcher) longest(alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo

	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		next := map[int]int{}
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}

	// Grow across elements dropped from b2j by the autojunk rule.
	for besti > alo && bestj > blo && m.a[besti-1] == m.b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi && m.a[besti+bestsize] == m.b[bestj+bestsize] {
		bestsize++
	}
	return besti, bestj, bestsize
}

// matches sums the sizes of all matching blocks.
func (m *matcher) matches() int {
	type span struct{ alo, ahi, blo, bhi int }

	total := 0
	queue := []span{{0, len(m.a), 0, len(m.b)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		i, j, k := m.longest(s.alo, s.ahi, s.blo, s.bhi)
		if k == 0 {
			continue
		}
		total += k
		if s.alo < i && s.blo < j {
			queue = append(queue, span{s.alo, i, s.blo, j})
		}
		if i+k < s.ahi && j+k < s.bhi {
			queue = append(queue, span{i + k, s.ahi, j + k, s.bhi})
		}
	}
	return total
}
