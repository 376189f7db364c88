package huffman_test

import (
	"fmt"

	"github.com/bitpress/huffman"
)

func Example() {
	// The corpus only establishes the code; any later message built from
	// its characters can be compressed.
	codec := huffman.New("the quick brown fox jumps over the lazy dog")

	packed, err := codec.Compress("the lazy fox")
	if err != nil {
		panic(err)
	}

	text, err := codec.Decompress(packed)
	if err != nil {
		panic(err)
	}

	fmt.Println(text)
	// Output: the lazy fox
}
