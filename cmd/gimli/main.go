// Command gimli is a thin CLI front end over the gimli package. It
// exists to exercise the library end-to-end, not as a hardened
// file-format or key-management tool.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gimli-crypto/gimli/gimli"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "hash":
		runHash(log, os.Args[2:])
	case "encrypt":
		runEncrypt(log, os.Args[2:])
	case "decrypt":
		runDecrypt(log, os.Args[2:])
	case "selftest":
		runSelfTest(log)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: gimli <hash|encrypt|decrypt|selftest> [flags]")
}

func runSelfTest(log *slog.Logger) {
	if err := gimli.SelfTest(); err != nil {
		log.Error("self-test failed", "error", err)
		os.Exit(1)
	}
	fmt.Println("ok")
}

func runHash(log *slog.Logger, args []string) {
	fs := flag.NewFlagSet("hash", flag.ExitOnError)
	outLen := fs.Int("n", 32, "digest length in bytes")
	fs.Parse(args)

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Error("reading stdin", "error", err)
		os.Exit(1)
	}
	digest := gimli.Sum(input, *outLen)
	fmt.Println(hex.EncodeToString(digest))
}

func runEncrypt(log *slog.Logger, args []string) {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	keyHex := fs.String("key", "", "32-byte key, hex-encoded")
	nonceHex := fs.String("nonce", "", "16-byte nonce, hex-encoded (random if omitted)")
	adHex := fs.String("ad", "", "associated data, hex-encoded")
	fs.Parse(args)

	key, err := parseKey(*keyHex)
	if err != nil {
		log.Error("parsing key", "error", err)
		os.Exit(1)
	}
	nonce, err := parseOrRandomNonce(*nonceHex)
	if err != nil {
		log.Error("parsing nonce", "error", err)
		os.Exit(1)
	}
	ad, err := hex.DecodeString(*adHex)
	if err != nil {
		log.Error("parsing associated data", "error", err)
		os.Exit(1)
	}

	plaintext, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Error("reading stdin", "error", err)
		os.Exit(1)
	}

	sealed := gimli.Seal(key, nonce, ad, plaintext)
	fmt.Fprintln(os.Stderr, "nonce:", hex.EncodeToString(nonce[:]))
	os.Stdout.Write(sealed)
}

func runDecrypt(log *slog.Logger, args []string) {
	fs := flag.NewFlagSet("decrypt", flag.ExitOnError)
	keyHex := fs.String("key", "", "32-byte key, hex-encoded")
	nonceHex := fs.String("nonce", "", "16-byte nonce, hex-encoded")
	adHex := fs.String("ad", "", "associated data, hex-encoded")
	fs.Parse(args)

	key, err := parseKey(*keyHex)
	if err != nil {
		log.Error("parsing key", "error", err)
		os.Exit(1)
	}
	var nonce [gimli.NonceSize]byte
	nb, err := hex.DecodeString(*nonceHex)
	if err != nil || len(nb) != gimli.NonceSize {
		log.Error("parsing nonce", "error", "nonce must be 16 bytes hex-encoded")
		os.Exit(1)
	}
	copy(nonce[:], nb)
	ad, err := hex.DecodeString(*adHex)
	if err != nil {
		log.Error("parsing associated data", "error", err)
		os.Exit(1)
	}

	ciphertext, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Error("reading stdin", "error", err)
		os.Exit(1)
	}

	plaintext, err := gimli.Open(key, nonce, ad, ciphertext)
	if err != nil {
		log.Error("decryption failed", "error", err)
		os.Exit(1)
	}
	os.Stdout.Write(plaintext)
}

func parseKey(keyHex string) ([gimli.KeySize]byte, error) {
	var key [gimli.KeySize]byte
	kb, err := hex.DecodeString(keyHex)
	if err != nil || len(kb) != gimli.KeySize {
		return key, fmt.Errorf("key must be %d bytes hex-encoded", gimli.KeySize)
	}
	copy(key[:], kb)
	return key, nil
}

func parseOrRandomNonce(nonceHex string) ([gimli.NonceSize]byte, error) {
	var nonce [gimli.NonceSize]byte
	if nonceHex == "" {
		if _, err := rand.Read(nonce[:]); err != nil {
			return nonce, err
		}
		return nonce, nil
	}
	nb, err := hex.DecodeString(nonceHex)
	if err != nil || len(nb) != gimli.NonceSize {
		return nonce, fmt.Errorf("nonce must be %d bytes hex-encoded", gimli.NonceSize)
	}
	copy(nonce[:], nb)
	return nonce, nil
}
