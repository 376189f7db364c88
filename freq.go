package huffman

// ETB is the "End of Transmission Block" control character (ASCII 23).  It
// is injected into every frequency table with a count of exactly 1 and its
// codeword is appended to every compressed message as the end-of-message
// marker.  ETB must never occur as ordinary data in text handed to a Codec;
// callers are responsible for upholding that.
const ETB rune = 23

// countFrequencies counts the occurrences of each rune in the corpus.  The
// ETB sentinel is always stored with a count of exactly 1, even if it also
// occurs in the corpus text: its frequency is fixed, not measured.  The
// result is never empty.
func countFrequencies(corpus string) map[rune]uint64 {
	freqs := make(map[rune]uint64)
	for _, ch := range corpus {
		freqs[ch]++
	}
	freqs[ETB] = 1
	return freqs
}
