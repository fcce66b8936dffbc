package main

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/respondchat/mdbench/internal/bench"
	"github.com/respondchat/mdbench/internal/markdown"
)

const (
	iterations   = 1000
	label        = "goldmark"
	documentName = "TEST.md"
)

func Must[T any](t T, err error) T {
	if err != nil {
		panic(err)
	}
	return t
}

// documentPath locates TEST.md at the repository root, two levels above
// this source file.
func documentPath() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		panic("mdbench: cannot resolve source location")
	}
	return filepath.Join(filepath.Dir(file), "..", "..", documentName)
}

func main() {
	md := markdown.New(markdown.Options{Linkify: true})
	runner := bench.New(md, os.Stdout,
		bench.WithIterations(iterations),
		bench.WithLabel(label),
	)
	Must(runner.RunFile(documentPath()))
}
