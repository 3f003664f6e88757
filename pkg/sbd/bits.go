package sbd

// ExpandBits expands a byte sequence into its individual bits, most
// significant bit of each byte first. Each element of the result is 0 or 1.
func ExpandBits(b []byte) []byte {
	bits := make([]byte, 0, len(b)*8)
	for _, by := range b {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (by>>i)&1)
		}
	}
	return bits
}
