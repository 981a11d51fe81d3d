// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Command reify loads declaration files and runs their checks.
//
//	reify check [-v] FILE...
//
// Each check is reported on its own line. The exit status is 1 if any check fails.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/wdamron/reify"
	"github.com/wdamron/reify/decl"
)

const (
	colorReset = "\x1b[0m"
	colorPass  = "\x1b[32m"
	colorFail  = "\x1b[31m"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("reify: ")
	if len(os.Args) < 2 || os.Args[1] != "check" {
		log.Fatal("usage: reify check [-v] FILE...")
	}
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	verbose := fs.Bool("v", false, "log reification and cache events to stderr")
	fs.Parse(os.Args[2:])
	if fs.NArg() == 0 {
		log.Fatal("usage: reify check [-v] FILE...")
	}

	fd := os.Stdout.Fd()
	color := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	var logger *slog.Logger
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	failed, err := check(os.Stdout, color, logger, fs.Args())
	if err != nil {
		log.Fatal(err)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// Run the checks of each file in a fresh environment, and return the number of failed checks.
func check(w io.Writer, color bool, logger *slog.Logger, paths []string) (int, error) {
	failed := 0
	for _, path := range paths {
		f, err := decl.Load(path)
		if err != nil {
			return failed, err
		}
		env := reify.NewTypeEnv(nil, reify.NewEngine(reify.WithLogger(logger)))
		if err = f.Declare(env); err != nil {
			return failed, fmt.Errorf("%s: %w", path, err)
		}
		for _, r := range f.Run(env) {
			status, paint := "PASS", colorPass
			if !r.Pass() {
				status, paint = "FAIL", colorFail
				failed++
			}
			if color {
				status = paint + status + colorReset
			}
			fmt.Fprintf(w, "%s %s:%d: %s", status, path, r.Index+1, r.Check)
			if !r.Pass() {
				fmt.Fprintf(w, " (got %s, want %s)", r.Got, r.Want)
				if r.Err != nil {
					fmt.Fprintf(w, ": %v", r.Err)
				}
			}
			fmt.Fprintln(w)
		}
	}
	return failed, nil
}
