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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheck(t *testing.T) {
	var out bytes.Buffer
	failed, err := check(&out, false, nil, []string{"../../decl/testdata/animals.yaml"})
	if err != nil {
		t.Fatal(err)
	}
	if failed != 0 {
		t.Fatalf("failed checks: %d\n%s", failed, out.String())
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	for _, line := range lines {
		if !strings.HasPrefix(line, "PASS ") {
			t.Fatalf("line: %s", line)
		}
	}
	t.Logf("%d checks", len(lines))
}

func TestCheckFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failing.yaml")
	src := `
vars: [{name: T}]
classes:
  - {name: int}
  - {name: str}
  - {name: Box, params: [T]}
checks:
  - subtype: ["Box[int]", "Box[str]"]
  - same: ["Box[int]", "Box[int]"]
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	failed, err := check(&out, true, nil, []string{path})
	if err != nil {
		t.Fatal(err)
	}
	if failed != 1 {
		t.Fatalf("failed checks: %d\n%s", failed, out.String())
	}
	if s := out.String(); !strings.Contains(s, colorFail+"FAIL"+colorReset) || !strings.Contains(s, "(got false, want true)") {
		t.Fatalf("output: %s", s)
	}

	if _, err = check(&out, false, nil, []string{filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
