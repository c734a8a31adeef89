package cipher

// Rounds is the number of Feistel rounds, and so the number of subkeys.
const Rounds = 16

// KeyStep is the distance between two consecutive subkeys.
const KeyStep = 123456

// Subkeys is the per-round key sequence derived from a single 32-bit key.
type Subkeys [Rounds]uint32

// GenerateSubkeys derives the round subkeys from key.
// subkeys[i] = key + i*KeyStep (mod 2^32), any key including 0 is valid.
func GenerateSubkeys(key uint32) Subkeys {
	var sk Subkeys
	for i := range sk {
		sk[i] = key + uint32(i)*KeyStep
	}
	return sk
}
