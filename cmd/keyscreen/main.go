package main

import (
	"fmt"
	"os"

	"github.com/saylorsolutions/keyscreen/cmd/internal"
	"github.com/saylorsolutions/keyscreen/cmd/keyscreen/internal/tmpl"
	"github.com/saylorsolutions/keyscreen/pkg/deobf"
	"github.com/saylorsolutions/keyscreen/pkg/hexcodec"
	flag "github.com/spf13/pflag"
)

var version = "dev"

func main() {
	var (
		helpFlag    bool
		exposedFlag bool
		verboseFlag bool
		packageFlag string
		outputFlag  string
	)
	flags := flag.NewFlagSet("keyscreen", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&exposedFlag, "exposed", "E", false, "Make the recover function exposed from the file. It's recommended to only expose from within an internal package.")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Log diagnostic information to stderr.")
	flags.StringVarP(&packageFlag, "package", "p", "", "Package name of the generated file. Defaults to the name of the output directory.")
	flags.StringVarP(&outputFlag, "output", "O", "", "Directory to write the generated file to. Defaults to the current directory.")
	flags.Usage = func() {
		fmt.Printf(`
keyscreen %s
keyscreen generates code to embed an obfuscated %d-byte public key by generating a *.go file. This pairs well with go:generate comments.
The name of the generated Go file will be based on NAME, replacing characters that match the regex pattern [^a-zA-Z0-9_] with "_".
For example, given the name server-key, a Go file will be created called server_key.go, containing a function called recoverServer_key.
See the -E flag below to make it an exposed function, and make sure you review the SECURITY notes below.

USAGE:  keyscreen [FLAGS] KEY NAME

ARGS:
    KEY is the hex encoded public key, %d characters long.
    NAME is used to name the generated file and function.

FLAGS:
%s
SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
The screened key is only hidden from passive binary analysis, anyone with this tool can recover it.
`, version, deobf.KeyLen, 2*deobf.KeyLen, flags.FlagUsages())
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}

	switch flags.NArg() {
	case 0:
		internal.Fatal("Missing required KEY argument")
	case 1:
		internal.Fatal("Missing required NAME argument")
	}
	log := internal.Logger(verboseFlag)

	key, err := hexcodec.Decode(flags.Arg(0))
	if err != nil {
		internal.Fatal("Failed to decode KEY, must be a hex string with only the characters a-f, A-F, or 0-9: %v", err)
	}
	log.Debug().Int("len", len(key)).Str("name", flags.Arg(1)).Msg("Decoded key")

	err = tmpl.GenerateFile(
		flags.Arg(1),
		key,
		tmpl.OutputDir(outputFlag),
		tmpl.PackageName(packageFlag),
		tmpl.ExposeFunctions(exposedFlag),
	)
	if err != nil {
		internal.Fatal("Failed to generate file: %v", err)
	}
	log.Debug().Str("output", outputFlag).Bool("exposed", exposedFlag).Msg("Generated file")
}
