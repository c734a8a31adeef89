package cipher

import "fmt"

// Pad appends PKCS7 padding for blockSize, a full block when data is already aligned.
// data is never modified.
func Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

// Unpad drops as many trailing bytes as the value of the last byte says.
// The padding is trusted: a count of 0 or one reaching past the start yields an empty result.
// Only an empty buffer, which has no last byte, is an error.
func Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("unpad: %w: empty buffer", ErrInvalidPadding)
	}
	k := int(data[len(data)-1])
	if k == 0 || k >= len(data) {
		return data[:0], nil
	}
	return data[:len(data)-k], nil
}

// UnpadStrict is Unpad with PKCS7 validation: the count must be in 1..blockSize,
// fit in data, and every padding byte must equal it.
func UnpadStrict(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("unpad: %w: empty buffer", ErrInvalidPadding)
	}
	k := int(data[len(data)-1])
	if k < 1 || k > blockSize || k > len(data) {
		return nil, fmt.Errorf("unpad: %w: bad length %d", ErrInvalidPadding, k)
	}
	for _, b := range data[len(data)-k:] {
		if int(b) != k {
			return nil, fmt.Errorf("unpad: %w: mismatched padding byte %#02x", ErrInvalidPadding, b)
		}
	}
	return data[:len(data)-k], nil
}
