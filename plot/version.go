// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kballard/go-shellquote"
)

// Version is a gnuplot version number. The patch level is kept as a
// string because releases ship levels like "5a".
type Version struct {
	Major int
	Minor int
	Patch string
}

// An ExecError reports that the renderer command could not be run at
// all.
type ExecError struct {
	Command string
	Err     error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("`%s --version` failed: %s", e.Command, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// A RunError reports that the renderer command ran but exited with an
// error message.
type RunError struct {
	Command string
	Stderr  string
}

func (e *RunError) Error() string {
	return fmt.Sprintf("`%s --version` failed with error message:\n%s", e.Command, e.Stderr)
}

// ErrInvalidUTF8 reports that the renderer produced output that is
// not valid UTF-8.
var ErrInvalidUTF8 = errors.New("renderer returned invalid utf-8")

// A ParseError reports a version announcement that does not match the
// expected "<name> <major>.<minor> patchlevel <patch>" shape. Text is
// the offending output.
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable version string: %q", e.Text)
}

// GnuplotVersion runs `<command> --version` and parses the announced
// version. The command is split with shell quoting rules.
func GnuplotVersion(command string) (Version, error) {
	words, err := shellquote.Split(command)
	if err != nil || len(words) == 0 {
		return Version{}, &ExecError{Command: command, Err: fmt.Errorf("bad command line: %v", err)}
	}
	cmd := exec.Command(words[0], append(words[1:], "--version")...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			if !utf8.Valid(stderr.Bytes()) {
				return Version{}, ErrInvalidUTF8
			}
			return Version{}, &RunError{Command: words[0], Stderr: stderr.String()}
		}
		return Version{}, &ExecError{Command: words[0], Err: err}
	}
	if !utf8.Valid(stdout.Bytes()) {
		return Version{}, ErrInvalidUTF8
	}
	v, ok := parseVersion(stdout.String())
	if !ok {
		return Version{}, &ParseError{Text: stdout.String()}
	}
	return v, nil
}

// parseVersion parses "<name> <major>.<minor> patchlevel <patch>[ …]".
// The token after the dotted version is skipped without inspection,
// matching gnuplot's fixed "patchlevel" slot.
func parseVersion(s string) (Version, bool) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return Version{}, false
	}
	dotted := strings.SplitN(fields[1], ".", 3)
	if len(dotted) < 2 {
		return Version{}, false
	}
	major, err := strconv.Atoi(dotted[0])
	if err != nil {
		return Version{}, false
	}
	minor, err := strconv.Atoi(dotted[1])
	if err != nil {
		return Version{}, false
	}
	return Version{Major: major, Minor: minor, Patch: fields[3]}, true
}
