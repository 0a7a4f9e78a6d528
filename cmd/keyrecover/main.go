package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/saylorsolutions/keyscreen/cmd/internal"
	"github.com/saylorsolutions/keyscreen/pkg/deobf"
	"github.com/saylorsolutions/keyscreen/pkg/hexcodec"
	"github.com/saylorsolutions/keyscreen/pkg/keyfmt"
	flag "github.com/spf13/pflag"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		internal.Fatal("%v", err)
	}
}

type input struct {
	source string
	blob   []byte
	short  bool
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var (
		helpFlag    bool
		shortFlag   bool
		verboseFlag bool
		fileFlag    string
		formatFlag  string
	)
	flags := flag.NewFlagSet("keyrecover", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&shortFlag, "short", "s", false, fmt.Sprintf("Accept blobs between %d and %d bytes, zero filling the unused words.", deobf.ActiveLen, deobf.BlobLen))
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Log diagnostic information to stderr.")
	flags.StringVarP(&fileFlag, "file", "f", "", "Read the hex encoded blob from FILE instead of an argument. Use '-' to read from stdin.")
	flags.StringVarP(&formatFlag, "format", "o", keyfmt.Hex.String(), "Output format of the recovered key, one of hex, base64, or pem.")
	flags.Usage = func() {
		_, _ = fmt.Fprintf(stdout, `
keyrecover %s
keyrecover recovers a %d-byte public key from its obfuscated %d-byte form.
The blob is given as hex text, and the recovered key is printed to stdout.
If no BLOB argument or --file is given, then the embedded reference blob is used.

USAGE:  keyrecover [FLAGS] [BLOB]

ARGS:
    BLOB is the hex encoded obfuscated key, %d characters long.

FLAGS:
%s
SECURITY:
    The obfuscation doesn't protect the key in any way, it only keeps it from appearing in plain text.
No check is made that the recovered bytes make up a valid key.
`, version, deobf.KeyLen, deobf.BlobLen, 2*deobf.BlobLen, flags.FlagUsages())
	}
	if err := flags.Parse(args); err != nil {
		flags.Usage()
		return fmt.Errorf("error parsing flags: %w", err)
	}
	if helpFlag {
		flags.Usage()
		return nil
	}

	format, err := keyfmt.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	log := internal.Logger(verboseFlag)

	in, err := readInput(flags.Args(), fileFlag, stdin)
	if err != nil {
		return err
	}
	in.short = in.short || shortFlag
	log.Debug().Str("source", in.source).Int("len", len(in.blob)).Bool("short", in.short).Msg("Decoded blob")

	key, err := recoverKey(in, log)
	if err != nil {
		return err
	}
	return keyfmt.Write(stdout, key, format)
}

func readInput(args []string, file string, stdin io.Reader) (*input, error) {
	switch {
	case len(args) > 1:
		return nil, errors.New("only one BLOB argument may be given")
	case len(args) == 1 && len(file) > 0:
		return nil, errors.New("BLOB argument and --file may not be used together")
	case file == "-":
		blob, err := hexcodec.DecodeReader(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to decode blob from stdin: %w", err)
		}
		return &input{source: "stdin", blob: blob}, nil
	case len(file) > 0:
		f, err := os.Open(file) //nolint:gosec // Reading an arbitrary file is the point.
		if err != nil {
			return nil, fmt.Errorf("failed to open blob file '%s': %w", file, err)
		}
		defer func() {
			_ = f.Close()
		}()
		blob, err := hexcodec.DecodeReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode blob file '%s': %w", file, err)
		}
		return &input{source: file, blob: blob}, nil
	case len(args) == 1:
		blob, err := hexcodec.Decode(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to decode BLOB, must be a hex string with only the characters a-f, A-F, or 0-9: %w", err)
		}
		return &input{source: "argument", blob: blob}, nil
	default:
		blob, err := hexcodec.Decode(referenceBlob)
		if err != nil {
			return nil, err
		}
		return &input{source: "embedded", blob: blob, short: true}, nil
	}
}

func recoverKey(in *input, log zerolog.Logger) (deobf.Key, error) {
	blob := in.blob
	if in.short {
		extended, err := deobf.Extend(blob)
		if err != nil {
			return nil, err
		}
		if len(blob) != len(extended) {
			log.Debug().Int("from", len(blob)).Int("to", len(extended)).Msg("Extended short blob")
		}
		blob = extended
	}
	key, err := deobf.Deobfuscate(blob)
	if err != nil {
		return nil, fmt.Errorf("failed to recover key from %s blob: %w", in.source, err)
	}
	log.Debug().Int("len", len(key)).Msg("Recovered key")
	return key, nil
}
