/*
Package obf provides two bloom filters over a fixed-size array.

BasicFilter is the classic structure: each of k hash rounds sets a bit, and an
element is reported present when all k bits are set.

OrdinalFilter stores a byte per cell instead of a bit. Round i of an added
element raises its cell to at least i, and lookups require every round i to
find a value of at least i. Cells only grow, so there are still no false
negatives, but a stray hit from another element has to have reached the same
round number to count.

Both filters are sized from a false positive rate p and an expected capacity n:

	m = ceil(-n * ln(p) / ln(2)^2)
	k = round(m / n * ln(2))

Elements are hashed once with 128-bit murmur3 (seed 0). The two 64-bit halves
a and b give the index of round i as (a + i*b) mod m.

Element types implement Hashable. String, Bytes, Int and Proto cover the
common cases.

Neither filter is safe for concurrent use, supports removal of single
elements, or can be resized.
*/
package obf
