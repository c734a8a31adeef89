package cipher

import (
	"crypto/cipher"
	"encoding/binary"
	"sort"
	"strings"

	"github.com/dgryski/go-camellia"
	"github.com/dgryski/go-idea"
	"github.com/dgryski/go-rc2"
	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/cast5"
)

// Default is the registry name of this package's own Feistel engine.
const Default = "CAST-LITE"

// List of block ciphers: key size in bytes and constructor
var blockList = map[string]struct {
	KeySize int
	New     func(key []byte) (cipher.Block, error)
}{
	Default: {4, newEngineBlock},

	// the genuine CAST-128, only ever picked by name
	"CAST5":    {cast5.KeySize, newCast5Block},
	"BLOWFISH": {16, newBlowfishBlock},
	"IDEA":     {16, idea.NewCipher},
	"RC2":      {16, newRC2Block},

	// 16 byte blocks
	"CAMELLIA-128": {16, camellia.New},
	"CAMELLIA-192": {24, camellia.New},
	"CAMELLIA-256": {32, camellia.New},
}

// PickBlock returns the block cipher of the given name keyed with key.
func PickBlock(name string, key []byte) (cipher.Block, error) {
	choice, ok := blockList[strings.ToUpper(name)]
	if !ok {
		return nil, ErrCipherNotSupported
	}
	if len(key) != choice.KeySize {
		return nil, KeySizeError(choice.KeySize)
	}
	return choice.New(key)
}

// KeySize returns the key size in bytes of the named block cipher.
func KeySize(name string) (int, error) {
	choice, ok := blockList[strings.ToUpper(name)]
	if !ok {
		return 0, ErrCipherNotSupported
	}
	return choice.KeySize, nil
}

// ListBlocks returns the supported block cipher names, sorted.
func ListBlocks() []string {
	names := make([]string, 0, len(blockList))
	for name := range blockList {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// the 32-bit key is read big-endian
func newEngineBlock(key []byte) (cipher.Block, error) {
	return NewEngine(binary.BigEndian.Uint32(key)), nil
}

func newCast5Block(key []byte) (cipher.Block, error) {
	b, err := cast5.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func newBlowfishBlock(key []byte) (cipher.Block, error) {
	b, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func newRC2Block(key []byte) (cipher.Block, error) {
	b, err := rc2.New(key, len(key)*8)
	if err != nil {
		return nil, err
	}
	return b, nil
}
