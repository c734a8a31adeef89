package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/nadoo/castlite/cipher"
	"github.com/nadoo/castlite/pkg/log"
	"github.com/nadoo/castlite/pkg/pool"
)

var version = "0.1.0"

func main() {
	conf, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(-1)
	}

	if conf.List {
		for _, name := range cipher.ListBlocks() {
			fmt.Fprintln(flag.Output(), name)
		}
		return
	}

	sys, err := newSystem(conf)
	if err != nil {
		log.Fatal(err)
	}

	in := io.Reader(os.Stdin)
	if conf.In != "" {
		f, err := os.Open(conf.In)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	if conf.Out != "" {
		f, err := os.Create(conf.Out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}

	if err := run(sys, conf, in, out); err != nil {
		log.Fatal(err)
	}
}

// run reads the whole input, encrypts or decrypts it and writes the result.
func run(sys *cipher.System, conf *Config, r io.Reader, w io.Writer) error {
	buf := pool.GetBytesBuffer()
	defer pool.PutBytesBuffer(buf)

	if _, err := buf.ReadFrom(r); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	data := buf.Bytes()

	var (
		res []byte
		err error
	)

	if conf.Decrypt {
		if conf.Hex {
			if data, err = hex.DecodeString(string(bytes.TrimSpace(data))); err != nil {
				return fmt.Errorf("decode hex input: %w", err)
			}
		}
		if res, err = sys.Decrypt(data); err != nil {
			return err
		}
		log.F("[main] decrypted %d bytes into %d bytes", len(data), len(res))
	} else {
		if res, err = sys.Encrypt(data); err != nil {
			return err
		}
		log.F("[main] encrypted %d bytes into %d blocks", len(data), len(res)/sys.BlockSize())
		if conf.Hex {
			res = append([]byte(hex.EncodeToString(res)), '\n')
		}
	}

	if _, err := w.Write(res); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
