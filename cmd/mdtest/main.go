// mdtest prints the message digest of a string. It is a standalone example
// of the hashing primitives available to the credential scheme and has no
// runtime relationship with the server.
//
//	mdtest "Hello, World!"
//	mdtest -digest blake2b "Hello, World!"
package main

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"flag"
	"fmt"
	"hash"
	"os"

	"golang.org/x/crypto/blake2b"
)

func main() {
	digest := flag.String("digest", "sha256", "digest function: sha256, sha512, blake2b")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: mdtest [-digest name] message-to-hash")
		os.Exit(1)
	}
	message := flag.Arg(0)

	var h hash.Hash
	switch *digest {
	case "sha256":
		h = sha256.New()
	case "sha512":
		h = sha512.New()
	case "blake2b":
		// Keyless blake2b-512 never fails to construct.
		h, _ = blake2b.New512(nil)
	default:
		fmt.Fprintf(os.Stderr, "Unknown message digest function %s\n", *digest)
		os.Exit(1)
	}

	fmt.Printf("Getting hash of string %q\n", message)
	h.Write([]byte(message))
	fmt.Printf("Digest is:\n%s\n", hex.EncodeToString(h.Sum(nil)))
}
