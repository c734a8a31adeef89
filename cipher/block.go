package cipher

import "fmt"

// Split cuts data into consecutive blockSize chunks.
// A misaligned tail becomes a short final chunk; no error is reported.
func Split(data []byte, blockSize int) [][]byte {
	chunks := make([][]byte, 0, (len(data)+blockSize-1)/blockSize)
	for i := 0; i < len(data); i += blockSize {
		end := i + blockSize
		if end > len(data) {
			end = len(data)
		}
		chunks = append(chunks, data[i:end:end])
	}
	return chunks
}

// SplitStrict is Split that refuses misaligned input.
func SplitStrict(data []byte, blockSize int) ([][]byte, error) {
	if len(data)%blockSize != 0 {
		return nil, fmt.Errorf("split: %w: %d bytes is not a multiple of %d", ErrTruncatedInput, len(data), blockSize)
	}
	return Split(data, blockSize), nil
}

// Combine concatenates chunks in order.
func Combine(chunks [][]byte) []byte {
	n := 0
	for _, c := range chunks {
		n += len(c)
	}
	buf := make([]byte, 0, n)
	for _, c := range chunks {
		buf = append(buf, c...)
	}
	return buf
}
