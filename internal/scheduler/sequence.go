package scheduler

import (
	"regexp"
	"strconv"
	"strings"
)

// Sequence extraction preserves natural topic progression within a
// priority tier: "Unit 2 Worksheet" must sort before "Unit 3 Worksheet".

var (
	markerSeqRe = regexp.MustCompile(`(?i)\b(?:unit|module|chapter|lesson|page|part|week|section)\s*(\d+)`)
	anyNumberRe = regexp.MustCompile(`\d+`)
)

// ExtractSequence pulls ordered sequence numbers from a title. Marker
// patterns ("Unit N", "Chapter N", ...) are preferred; if none match, every
// bare integer in the title is used. Returns nil when the title has no
// numbers at all.
func ExtractSequence(title string) []int {
	matches := markerSeqRe.FindAllStringSubmatch(title, -1)
	if len(matches) > 0 {
		out := make([]int, 0, len(matches))
		for _, m := range matches {
			if n, err := strconv.Atoi(m[1]); err == nil {
				out = append(out, n)
			}
		}
		return out
	}

	raw := anyNumberRe.FindAllString(title, -1)
	if len(raw) == 0 {
		return nil
	}
	out := make([]int, 0, len(raw))
	for _, r := range raw {
		if n, err := strconv.Atoi(r); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// CompareSequence orders two titles by their extracted sequence numbers,
// element by element, shorter sequence first on a shared prefix. Titles
// with numbers sort before titles without; two unnumbered titles fall back
// to case-insensitive lexical order. Returns <0, 0, >0 in the manner of
// strings.Compare.
func CompareSequence(titleA, titleB string) int {
	seqA, seqB := ExtractSequence(titleA), ExtractSequence(titleB)

	switch {
	case len(seqA) == 0 && len(seqB) == 0:
		return strings.Compare(strings.ToLower(titleA), strings.ToLower(titleB))
	case len(seqA) == 0:
		return 1
	case len(seqB) == 0:
		return -1
	}

	for i := 0; i < len(seqA) && i < len(seqB); i++ {
		if seqA[i] != seqB[i] {
			if seqA[i] < seqB[i] {
				return -1
			}
			return 1
		}
	}
	if len(seqA) != len(seqB) {
		if len(seqA) < len(seqB) {
			return -1
		}
		return 1
	}
	return strings.Compare(strings.ToLower(titleA), strings.ToLower(titleB))
}
