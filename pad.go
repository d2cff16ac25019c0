package keccakite

// Pad10x1 applies the suffixed multi-rate padding rule: m is extended with
// the suffix byte followed by zeros to the next multiple of the byte rate,
// and the final byte is XORed with 0x80. When the suffix and the final 0x80
// land on the same byte the XOR combines them. The suffix carries the domain
// separation bits and must not be zero.
func Pad10x1(m []byte, rateBits int, suffix byte) []byte {
	if suffix == 0x00 {
		panic("keccakite: padding suffix must have at least one set bit")
	}
	byteRate := rateBits / 8
	q := byteRate - len(m)%byteRate
	out := make([]byte, len(m)+q)
	copy(out, m)
	out[len(m)] = suffix
	out[len(out)-1] ^= 0x80
	return out
}

// SuffixedPad returns a PaddingRule that applies Pad10x1 with the given
// domain suffix.
func SuffixedPad(suffix byte) PaddingRule {
	if suffix == 0x00 {
		panic("keccakite: padding suffix must have at least one set bit")
	}
	return func(m []byte, rateBits int) []byte {
		return Pad10x1(m, rateBits, suffix)
	}
}
