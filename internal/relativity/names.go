package relativity

import "strings"

// NextName returns the lexicographically-first alphabetic label not present
// in existing, enumerating A..Z, then AA..ZZ, then three-letter labels, and
// so on in base-26 order. The search space is infinite and the exclusion set
// finite, so the scan always terminates.
func NextName(existing map[string]bool) string {
	for n := 0; ; n++ {
		if name := alphaLabel(n); !existing[name] {
			return name
		}
	}
}

// alphaLabel converts an ordinal to its label in the enumeration
// A, B, ..., Z, AA, AB, ..., ZZ, AAA, ... (A = 0 within each position).
func alphaLabel(n int) string {
	length := 1
	block := 26
	for n >= block {
		n -= block
		length++
		block *= 26
	}
	buf := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		buf[i] = byte('A' + n%26)
		n /= 26
	}
	return string(buf)
}

// baseName strips the trailing frame-index digits from a per-frame event
// label, recovering the frame-agnostic base label. Generated base labels are
// purely alphabetic, so trailing digits always denote a frame index.
func baseName(label string) string {
	return strings.TrimRight(label, "0123456789")
}
