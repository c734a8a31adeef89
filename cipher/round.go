package cipher

// F is the round function: it mixes a half block with a round subkey.
// The sum wraps modulo 2^32.
func F(half, subkey uint32) uint32 {
	return (half ^ subkey) + (half & subkey)
}
