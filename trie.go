package huffman

import (
	"container/heap"
	"math"

	"github.com/chronos-tachyon/assert"
)

// trieNode is one node of the Huffman trie.  It has exactly two concrete
// implementations, leafNode and innerNode, so a type switch over trieNode is
// always exhaustive and there is no nullable-children "leaf" convention.
type trieNode interface {
	// weight is the aggregate frequency of the node's subtree.
	weight() uint64

	// tieBreak is the rune used to order nodes of equal weight.  Leaves
	// use their own character; merged nodes inherit the tie-break rune of
	// their first-extracted child.
	tieBreak() rune
}

// leafNode represents a single character of the corpus alphabet.
type leafNode struct {
	char  rune
	count uint64
}

// innerNode represents a merged group of characters.  Its zero and one
// children are exclusively owned; the trie is a strict binary tree.
type innerNode struct {
	sum  uint64
	tie  rune
	zero trieNode
	one  trieNode
}

func (n *leafNode) weight() uint64 { return n.count }
func (n *leafNode) tieBreak() rune { return n.char }

func (n *innerNode) weight() uint64 { return n.sum }
func (n *innerNode) tieBreak() rune { return n.tie }

// buildTrie converts a frequency table into a Huffman trie by repeated
// minimum-merge: pop the two lowest nodes, join them under a new innerNode
// (first popped → zero child, second popped → one child), push the merge
// back, and stop when one root remains.
//
// Live heap nodes always carry distinct tie-break runes, so the
// (weight, tieBreak) ordering is a strict total order and the resulting trie
// is identical across runs regardless of map iteration order.
//
func buildTrie(freqs map[rune]uint64) trieNode {
	nodes := make([]trieNode, 0, len(freqs))
	for ch, count := range freqs {
		nodes = append(nodes, &leafNode{char: ch, count: count})
	}

	h := trieHeap{nodes}
	h.Init()
	assert.Assertf(h.Len() >= 1, "frequency table must contain at least the ETB sentinel, got %d entries", h.Len())

	for h.Len() > 1 {
		a := heap.Pop(&h).(trieNode)
		b := heap.Pop(&h).(trieNode)

		// Compute the merged weight using saturating addition
		sum := a.weight() + b.weight()
		if sum < a.weight() {
			sum = math.MaxUint64
		}

		heap.Push(&h, &innerNode{sum: sum, tie: a.tieBreak(), zero: a, one: b})
	}

	return heap.Pop(&h).(trieNode)
}

// deriveCodes walks the completed trie depth-first, zero child before one
// child, and records the accumulated branch path as the codeword of every
// leaf reached.  The codewords of distinct leaves are prefix-free by
// construction.
//
// A trie whose root is itself a leaf (empty or sentinel-only corpus) has no
// branches to encode a path with; its lone character is assigned the
// explicit single-bit codeword "0" so that every codeword has nonzero
// length.
//
func deriveCodes(root trieNode) map[rune]Code {
	codes := make(map[rune]Code)

	if leaf, ok := root.(*leafNode); ok {
		codes[leaf.char] = MakeCode(1, 0)
		return codes
	}

	var walk func(n trieNode, size byte, bits uint64)
	walk = func(n trieNode, size byte, bits uint64) {
		switch n := n.(type) {
		case *leafNode:
			codes[n.char] = MakeCode(size, bits)
		case *innerNode:
			assert.Assertf(size < maxBitsPerCode, "trie depth exceeds the %d-bit codeword limit", maxBitsPerCode)
			walk(n.zero, size+1, bits<<1)
			walk(n.one, size+1, bits<<1|1)
		}
	}
	walk(root, 0, 0)
	return codes
}

// maxBitsPerCode bounds codeword length to what Code.Bits can hold.  Hitting
// it requires a corpus with Fibonacci-like frequencies summing past 2^64.
const maxBitsPerCode = 64

// type trieHeap {{{

type trieHeap struct {
	list []trieNode
}

func (h *trieHeap) Init() {
	heap.Init(h)
}

func (h *trieHeap) Len() int {
	return len(h.list)
}

func (h *trieHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *trieHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight() != b.weight() {
		return a.weight() < b.weight()
	}
	return a.tieBreak() < b.tieBreak()
}

func (h *trieHeap) Push(x interface{}) {
	h.list = append(h.list, x.(trieNode))
}

func (h *trieHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*trieHeap)(nil)

// }}}
