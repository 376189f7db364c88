package huffman

import (
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	freqs := countFrequencies("aaabbc")

	type testRow struct {
		char  rune
		count uint64
	}

	testData := [...]testRow{
		{char: 'a', count: 3},
		{char: 'b', count: 2},
		{char: 'c', count: 1},
		{char: ETB, count: 1},
	}
	if len(freqs) != len(testData) {
		t.Errorf("expected %d entries, got %d", len(testData), len(freqs))
	}
	for _, row := range testData {
		if actual := freqs[row.char]; actual != row.count {
			t.Errorf("wrong count for %q: expected %d, got %d", row.char, row.count, actual)
		}
	}
}

func TestCountFrequencies_EmptyCorpus(t *testing.T) {
	freqs := countFrequencies("")

	if len(freqs) != 1 {
		t.Errorf("expected 1 entry, got %d", len(freqs))
	}
	if actual := freqs[ETB]; actual != 1 {
		t.Errorf("wrong sentinel count: expected 1, got %d", actual)
	}
}

func TestCountFrequencies_SentinelFixed(t *testing.T) {
	// The sentinel's frequency is fixed at 1 even when the corpus text
	// itself contains ETB characters.
	freqs := countFrequencies("ab\x17\x17\x17")

	if actual := freqs[ETB]; actual != 1 {
		t.Errorf("wrong sentinel count: expected 1, got %d", actual)
	}
}
