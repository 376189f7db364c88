package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/icza/bitio"
)

// ErrTruncated is returned by Decompress when the bit stream is exhausted
// before the ETB sentinel leaf is reached.
var ErrTruncated = errors.New("huffman: bit stream exhausted before the end-of-transmission marker")

// UnencodableCharError is returned by Compress when the text contains a
// character that was absent from the construction corpus and therefore has
// no codeword.
type UnencodableCharError struct {
	Char rune
}

func (e *UnencodableCharError) Error() string {
	return fmt.Sprintf("huffman: character %q has no codeword in this codec's corpus", e.Char)
}

// Codec holds a Huffman trie and its derived encoding map, both built once
// from a reference corpus.  A Codec is immutable after construction, so
// independent callers may share one for concurrent Compress and Decompress
// calls without locking.
type Codec struct {
	root    trieNode
	codes   map[rune]Code
	minSize byte
	maxSize byte
}

// New builds a Codec from the character distribution of the given corpus.
// The corpus only establishes the code; later compressed messages may
// differ, as long as every character they use occurs in the corpus.  An
// empty corpus is permitted and yields the degenerate single-codeword code.
func New(corpus string) *Codec {
	root := buildTrie(countFrequencies(corpus))
	codes := deriveCodes(root)

	var minSize, maxSize byte
	for _, hc := range codes {
		if minSize == 0 || minSize > hc.Size {
			minSize = hc.Size
		}
		if maxSize < hc.Size {
			maxSize = hc.Size
		}
	}

	return &Codec{
		root:    root,
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Code returns the codeword assigned to the given character, and whether the
// character is part of the code's alphabet at all.
func (c *Codec) Code(ch rune) (Code, bool) {
	hc, found := c.codes[ch]
	return hc, found
}

// MinSize is the bit length of the shortest codeword.
func (c *Codec) MinSize() byte {
	return c.minSize
}

// MaxSize is the bit length of the longest codeword.
func (c *Codec) MaxSize() byte {
	return c.maxSize
}

// Compress encodes the given text into its Huffman-coded bit string,
// followed by the ETB sentinel codeword, packed into bytes most significant
// bit first with the final byte zero-padded on the right.
//
// If the text contains a character absent from the construction corpus,
// Compress returns an *UnencodableCharError and no output.
//
func (c *Codec) Compress(text string) ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	for _, ch := range text {
		hc, found := c.codes[ch]
		if !found {
			return nil, &UnencodableCharError{Char: ch}
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, err
		}
	}

	etb := c.codes[ETB]
	if err := w.WriteBits(etb.Bits, etb.Size); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress decodes a byte stream produced by Compress on a Codec built
// from the identical corpus.  It walks the trie from the root: each internal
// node consumes one bit and descends to the zero or one child; reaching a
// leaf consumes no bit — the leaf either terminates the walk (ETB) or emits
// its character and resets the walk to the root.  Padding bits beyond the
// sentinel are never examined.
//
// If the stream runs out of bits before the sentinel leaf is reached,
// Decompress returns ErrTruncated and no output.
//
func (c *Codec) Decompress(data []byte) (string, error) {
	r := bitio.NewReader(bytes.NewReader(data))
	var sb strings.Builder

	node := c.root
	for {
		switch n := node.(type) {
		case *leafNode:
			if n.char == ETB {
				return sb.String(), nil
			}
			sb.WriteRune(n.char)
			node = c.root
		case *innerNode:
			bit, err := r.ReadBool()
			if err != nil {
				return "", ErrTruncated
			}
			if bit {
				node = n.one
			} else {
				node = n.zero
			}
		}
	}
}

// Dump writes a programmer-readable debugging dump of the Codec's encoding
// map to the given writer, codewords ordered by (size, bits).
func (c *Codec) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Codec{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", c.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", c.maxSize)
	entries := make(byCode, 0, len(c.codes))
	for ch, hc := range c.codes {
		entries = append(entries, codeEntry{ch, hc})
	}
	entries.Sort()
	for _, e := range entries {
		fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", e.char, e.code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the Dump output as a string.
func (c *Codec) DebugString() string {
	var sb strings.Builder
	_, _ = c.Dump(&sb)
	return sb.String()
}

// String returns a one-line description of this Codec.
func (c *Codec) String() string {
	return fmt.Sprintf("(Huffman codec with %d codewords, with coded lengths of %d .. %d bits)", len(c.codes), c.minSize, c.maxSize)
}

var _ fmt.Stringer = (*Codec)(nil)

// type codeEntry + type byCode {{{

type codeEntry struct {
	char rune
	code Code
}

type byCode []codeEntry

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i].code, list[j].code
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	return a.Bits < b.Bits
}

var _ sort.Interface = byCode(nil)

// }}}
