package groestlcore

// xorBytes writes a^b into dst; all three must have the same length.
func xorBytes(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

// compress computes the next chaining state f(h,m) = P(h⊕m) ⊕ Q(m) ⊕ h for
// one ℓ-byte message block m against the prior chaining state h, both of
// variant.BlockLen bytes.
func compress(variant Variant, h, m []byte) []byte {
	hxorm := make([]byte, variant.BlockLen)
	xorBytes(hxorm, h, m)

	p := permute(variant, kindP, hxorm)
	q := permute(variant, kindQ, m)

	next := make([]byte, variant.BlockLen)
	xorBytes(next, p, q)
	xorBytes(next, next, h)
	return next
}

// omega applies the output transformation Ω(h) = P(h) ⊕ h and truncates
// the result to the last outputBytes bytes, the final digest.
func omega(variant Variant, h []byte, outputBytes int) []byte {
	p := permute(variant, kindP, h)
	full := make([]byte, variant.BlockLen)
	xorBytes(full, p, h)
	return full[len(full)-outputBytes:]
}
