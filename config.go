package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nadoo/conflag"

	"github.com/nadoo/castlite/cipher"
	"github.com/nadoo/castlite/pkg/log"
)

var flag *conflag.Conflag

// Config is global config struct.
type Config struct {
	Verbose  bool
	LogFlags int

	Key       string
	Cipher    string
	CipherKey string

	Decrypt bool
	Hex     bool
	Strict  bool
	Workers int

	In  string
	Out string

	List bool
}

func parseConfig(args ...string) (*Config, error) {
	conf := &Config{}

	flag = conflag.New(args...)
	flag.SetOutput(os.Stdout)

	flag.BoolVar(&conf.Verbose, "verbose", false, "verbose mode")
	flag.IntVar(&conf.LogFlags, "logflags", 19, "do not change it if you do not know what it is, ref: https://pkg.go.dev/log#pkg-constants")

	flag.StringVar(&conf.Key, "key", "0x1A2B3C4D", "32-bit key of the CAST-LITE cipher, decimal or 0x-prefixed hex")
	flag.StringVar(&conf.Cipher, "cipher", cipher.Default, "block cipher name, see -list")
	flag.StringVar(&conf.CipherKey, "cipherkey", "", "hex key for ciphers other than CAST-LITE")

	flag.BoolVar(&conf.Decrypt, "decrypt", false, "decrypt instead of encrypt")
	flag.BoolVar(&conf.Hex, "hex", false, "hex encode ciphertext output, hex decode ciphertext input")
	flag.BoolVar(&conf.Strict, "strict", false, "reject misaligned ciphertext and malformed padding")
	flag.IntVar(&conf.Workers, "workers", 1, "number of goroutines per message, 1 means sequential")

	flag.StringVar(&conf.In, "in", "", "input file path, default: stdin")
	flag.StringVar(&conf.Out, "out", "", "output file path, default: stdout")

	flag.BoolVar(&conf.List, "list", false, "list supported block ciphers")

	flag.Usage = usage
	if err := flag.Parse(); err != nil {
		return nil, err
	}

	// setup logger
	log.Set(conf.Verbose, conf.LogFlags)

	return conf, nil
}

// parseKey parses a 32-bit key, in decimal or with a 0x, 0o or 0b prefix.
func parseKey(s string) (uint32, error) {
	k, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid key %q: %w", s, err)
	}
	return uint32(k), nil
}

// newSystem builds the message cipher described by conf.
func newSystem(conf *Config) (*cipher.System, error) {
	var opts []cipher.Option
	if conf.Strict {
		opts = append(opts, cipher.WithStrict())
	}
	if conf.Workers > 1 {
		opts = append(opts, cipher.WithWorkers(conf.Workers))
	}

	if strings.EqualFold(conf.Cipher, cipher.Default) {
		key, err := parseKey(conf.Key)
		if err != nil {
			return nil, err
		}
		log.F("[config] using %s with key %#08x", cipher.Default, key)
		return cipher.New(key, opts...), nil
	}

	if conf.CipherKey == "" {
		return nil, errors.New("cipherkey must be specified for cipher " + conf.Cipher)
	}
	key, err := hex.DecodeString(conf.CipherKey)
	if err != nil {
		return nil, fmt.Errorf("invalid cipherkey: %w", err)
	}

	b, err := cipher.PickBlock(conf.Cipher, key)
	if err != nil {
		return nil, fmt.Errorf("cipher %s: %w", conf.Cipher, err)
	}
	log.F("[config] using %s, block size %d", strings.ToUpper(conf.Cipher), b.BlockSize())

	return cipher.NewWithBlock(b, opts...), nil
}

func usage() {
	fmt.Fprint(flag.Output(), usage1)
	flag.PrintDefaults()
	fmt.Fprintf(flag.Output(), usage2, strings.Join(cipher.ListBlocks(), " "), version)
}

var usage1 = `
Usage: castlite [-key KEY] [-decrypt] [-in FILE] [-out FILE] [OPTION]...

  e.g. castlite -config /etc/castlite/castlite.conf
       castlite -key 0x1A2B3C4D -in plain.txt -out plain.enc
       castlite -key 0x1A2B3C4D -decrypt -in plain.enc

OPTION:
`

var usage2 = `
Ciphers:
   %s

   CAST-LITE takes its key from -key, every other cipher from -cipherkey (hex).

   Note: blocks are encrypted one by one with no chaining, equal plaintext
         blocks give equal ciphertext blocks.

--
castlite v%s
`
