// Command crcsum prints the checksums of files.
//
// Usage:
//
//	crcsum [-a crc8|crc16|xor] [-const NAME [-pkg PKG]] [FILE...]
//
// With no FILE, or when FILE is -, standard input is read.
// By default one line is printed per input, holding the hexadecimal
// checksum followed by the file name.
//
// With -const, a Go source file is printed instead, declaring one typed
// constant per input, so the checksum of data known at build time can be
// embedded as a constant, for instance from a go:generate directive:
//
//	//go:generate sh -c "crcsum -a crc16 -const idCRC -pkg device id.bin > id_crc.go"
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"log"
	"os"

	"github.com/pchchv/crc"
	"github.com/pchchv/crc/hashutil"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("crcsum: ")
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

// checksum is the checksum of a single named input.
type checksum struct {
	name string
	sum  uint16
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("crcsum", flag.ContinueOnError)
	algName := fs.String("a", "crc16", "checksum algorithm: crc8, crc16 or xor")
	constName := fs.String("const", "", "print Go constant declarations named `NAME` instead of a listing")
	pkgName := fs.String("pkg", "main", "package `PKG` of the printed Go source")
	if err := fs.Parse(args); err != nil {
		return err
	}

	alg, err := crc.ParseAlgorithm(*algName)
	if err != nil {
		return err
	}

	if *constName != "" && !token.IsIdentifier(*constName) {
		return fmt.Errorf("invalid constant name %q", *constName)
	}

	if !token.IsIdentifier(*pkgName) {
		return fmt.Errorf("invalid package name %q", *pkgName)
	}

	names := fs.Args()
	if len(names) == 0 {
		names = []string{"-"}
	}

	sums := make([]checksum, 0, len(names))
	for _, name := range names {
		sum, err := sumFile(alg, name, stdin)
		if err != nil {
			return err
		}
		sums = append(sums, checksum{name: name, sum: sum})
	}

	if *constName != "" {
		return writeConsts(stdout, alg, *pkgName, *constName, sums)
	}

	for _, c := range sums {
		if _, err := fmt.Fprintf(stdout, "%0*x  %s\n", 2*alg.Size(), c.sum, c.name); err != nil {
			return err
		}
	}

	return nil
}

// sumFile returns the checksum of the named file, or of stdin if name is "-".
func sumFile(alg crc.Algorithm, name string, stdin io.Reader) (uint16, error) {
	if name == "-" {
		return sumReader(alg, stdin)
	}

	f, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return sumReader(alg, f)
}

func sumReader(alg crc.Algorithm, r io.Reader) (uint16, error) {
	h, err := crc.New(alg)
	if err != nil {
		return 0, err
	}

	if _, err := io.Copy(h, r); err != nil {
		return 0, err
	}

	return hashutil.Sum16(h), nil
}

// writeConsts writes a gofmt'ed Go source file declaring one constant per checksum.
// The first constant is called name, the following ones name1, name2, ...
func writeConsts(w io.Writer, alg crc.Algorithm, pkg, name string, sums []checksum) error {
	typ := fmt.Sprintf("uint%d", alg.Width())
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "// Code generated by crcsum; DO NOT EDIT.\n\npackage %s\n\n", pkg)
	fmt.Fprintf(buf, "// %s checksums.\nconst (\n", alg)
	for i, c := range sums {
		ident := name
		if i > 0 {
			ident = fmt.Sprintf("%s%d", name, i)
		}
		fmt.Fprintf(buf, "%s %s = 0x%0*x // %s\n", ident, typ, 2*alg.Size(), c.sum, c.name)
	}
	buf.WriteString(")\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("unable to format generated source; %w", err)
	}

	_, err = w.Write(src)
	return err
}
