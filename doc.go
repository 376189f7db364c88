// Package huffman implements a reusable Huffman codec trained on the
// character distribution of a reference corpus.  The corpus fixes a
// prefix-free code once, at construction time; the resulting Codec then
// compresses text into a packed byte stream and losslessly reconstructs it,
// using a reserved end-of-transmission sentinel to mark where the meaningful
// bits stop.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/End-of-Transmission-Block_character>
//
package huffman
