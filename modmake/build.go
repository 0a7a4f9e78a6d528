package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	keyrecoverVersion = "0.1.0"
	keyscreenVersion  = "0.1.0"
)

var variants = [][2]string{
	{"windows", "amd64"},
	{"linux", "amd64"},
	{"linux", "arm64"},
	{"darwin", "amd64"},
	{"darwin", "arm64"},
}

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	keyrecover := NewAppBuild("keyrecover", "cmd/keyrecover", keyrecoverVersion)
	keyrecover.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", keyrecoverVersion).
			CgoEnabled(false)
	})
	keyscreen := NewAppBuild("keyscreen", "cmd/keyscreen", keyscreenVersion)
	keyscreen.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", keyscreenVersion).
			CgoEnabled(false)
	})
	for _, v := range variants {
		keyrecover.Variant(v[0], v[1])
		keyscreen.Variant(v[0], v[1])
	}
	b.ImportApp(keyrecover)
	b.ImportApp(keyscreen)

	b.Execute()
}
