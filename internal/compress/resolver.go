package compress

import (
	"sort"

	"github.com/mvp-joe/sigpress/internal/compress/languages"
)

// unclaimed marks a byte no rule matched. Unclaimed bytes default to keep
// (imports, comments, blank lines between declarations) but give way to any
// explicit claim and to line-boundary snapping of neighboring elide runs.
const unclaimed = -1

// resolve sweeps the capture matches into a total, ordered, non-overlapping
// keep/elide partition of [0, len(source)).
//
// Per byte, the highest-priority claim wins; on equal priority a keep claim
// beats an elide claim, so structure is never lost to a tie. Maximal elide
// runs are then snapped outward to line boundaries, stopping early at bytes
// held by an explicit keep claim — which is what lets a signature keep its
// head of a line while the body behind it collapses.
func resolve(source []byte, matches []Match) []Range {
	n := uint(len(source))
	if n == 0 {
		return nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].StartByte != matches[j].StartByte {
			return matches[i].StartByte < matches[j].StartByte
		}
		if matches[i].Priority != matches[j].Priority {
			return matches[i].Priority > matches[j].Priority
		}
		return matches[i].EndByte-matches[i].StartByte < matches[j].EndByte-matches[j].StartByte
	})

	prio := make([]int, n)
	keep := make([]bool, n)
	for i := range prio {
		prio[i] = unclaimed
		keep[i] = true
	}

	for _, m := range matches {
		if m.StartByte >= n {
			continue
		}
		end := m.EndByte
		if end > n {
			end = n
		}
		keepClaim := m.Role != languages.Body
		for b := m.StartByte; b < end; b++ {
			switch {
			case m.Priority > prio[b]:
				prio[b] = m.Priority
				keep[b] = keepClaim
			case m.Priority == prio[b] && keepClaim:
				keep[b] = true
			}
		}
	}

	type run struct {
		start, end uint
	}
	var elides []run
	for b := uint(0); b < n; {
		if keep[b] {
			b++
			continue
		}
		start := b
		for b < n && !keep[b] {
			b++
		}
		end := b

		for start > 0 && prio[start-1] == unclaimed && source[start-1] != '\n' {
			start--
		}
		for end < n && prio[end] == unclaimed {
			hitNewline := source[end] == '\n'
			end++
			if hitNewline {
				break
			}
		}
		elides = append(elides, run{start: start, end: end})
	}

	// Snapping can make neighboring runs touch; merge before partitioning.
	var merged []run
	for _, r := range elides {
		if len(merged) > 0 && r.start <= merged[len(merged)-1].end {
			if r.end > merged[len(merged)-1].end {
				merged[len(merged)-1].end = r.end
			}
			continue
		}
		merged = append(merged, r)
	}

	var ranges []Range
	cursor := uint(0)
	for _, r := range merged {
		if r.start > cursor {
			ranges = append(ranges, Range{StartByte: cursor, EndByte: r.start, Keep: true})
		}
		ranges = append(ranges, Range{StartByte: r.start, EndByte: r.end, Keep: false})
		cursor = r.end
	}
	if cursor < n {
		ranges = append(ranges, Range{StartByte: cursor, EndByte: n, Keep: true})
	}
	return ranges
}
