package tmpl

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"unicode"

	"github.com/saylorsolutions/keyscreen/pkg/deobf"
	"github.com/saylorsolutions/keyscreen/pkg/hexcodec"
)

const (
	blobLineLen = 64
)

var (
	//go:embed screen_embed.go.tmpl
	tmplText     string
	tmplTemplate = template.Must(template.New("template").Parse(tmplText))
)

type Params struct {
	Package   string
	Exposed   bool
	FuncName  string
	ConstName string
	BlobLines []string

	keyData        []byte
	methodName     string
	targetFileName string
	outputDir      string
	screenOpts     []deobf.ScreenOpt
}

// ParamOpt operates on Params in a standard and predictable way, and is used in GenerateFile.
// If any ParamOpt returns an error, then file generation ceases and the error is returned.
type ParamOpt = func(params *Params) error

// ExposeFunctions indicates that generated functions should be exposed.
func ExposeFunctions(val ...bool) ParamOpt {
	return func(params *Params) error {
		if len(val) > 0 {
			params.Exposed = val[0]
			return nil
		}
		params.Exposed = true
		return nil
	}
}

// PackageName specifies the package name of the generated file.
// This is useful for cases where the expected package name doesn't match the name of the containing directory.
func PackageName(name string) ParamOpt {
	name = strings.TrimSpace(name)
	return func(params *Params) error {
		if len(name) == 0 {
			return nil
		}
		params.Package = name
		return nil
	}
}

// OutputDir writes the generated file to dir instead of the current directory.
// The package name is set to the name of dir, so apply PackageName after this to override it.
func OutputDir(dir string) ParamOpt {
	dir = strings.TrimSpace(dir)
	return func(params *Params) error {
		if len(dir) == 0 {
			return nil
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return err
		}
		params.outputDir = abs
		params.Package = filepath.Base(abs)
		return nil
	}
}

// ScreenWith passes options through to deobf.Screen.
func ScreenWith(opts ...deobf.ScreenOpt) ParamOpt {
	return func(params *Params) error {
		params.screenOpts = append(params.screenOpts, opts...)
		return nil
	}
}

// GenerateFile will generate a file embedding the screened form of key, along with a function to recover it.
// The name is used to derive both the file name and the function name.
// Various generation options may be passed as zero or more ParamOpt.
func GenerateFile(name string, key []byte, opts ...ParamOpt) error {
	params := new(Params)
	if err := populateContextData(params); err != nil {
		return err
	}
	if err := populateNameData(params, name); err != nil {
		return err
	}
	params.keyData = key

	for _, opt := range opts {
		if err := opt(params); err != nil {
			return err
		}
	}
	if err := screenKey(params); err != nil {
		return err
	}
	if params.Exposed {
		params.FuncName = "Recover" + params.methodName
	} else {
		params.FuncName = "recover" + params.methodName
	}
	params.ConstName = "screened" + params.methodName

	out, err := os.Create(filepath.Join(params.outputDir, params.targetFileName+".go"))
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if err := tmplTemplate.Execute(out, params); err != nil {
		return err
	}
	return nil
}

func populateContextData(params *Params) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	params.Package = filepath.Base(cwd)
	params.outputDir = cwd
	return nil
}

var (
	nameCleansePattern = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

func populateNameData(params *Params, name string) error {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return errors.New("a name is required to generate a file")
	}
	params.methodName = nameCleansePattern.ReplaceAllString(unicap(name), "_")
	params.targetFileName = strings.ToLower(nameCleansePattern.ReplaceAllString(name, "_"))
	return nil
}

func screenKey(params *Params) error {
	blob, err := deobf.Screen(params.keyData, params.screenOpts...)
	if err != nil {
		return fmt.Errorf("failed to screen key: %w", err)
	}
	text := hexcodec.Encode(blob)
	params.BlobLines = nil
	for len(text) > blobLineLen {
		params.BlobLines = append(params.BlobLines, text[:blobLineLen])
		text = text[blobLineLen:]
	}
	params.BlobLines = append(params.BlobLines, text)
	return nil
}

func unicap(s string) string {
	runes := []rune(s)
	switch len(runes) {
	case 0:
		return ""
	case 1:
		return string(unicode.ToUpper(runes[0]))
	default:
		return string(append([]rune{unicode.ToUpper(runes[0])}, runes[1:]...))
	}
}
