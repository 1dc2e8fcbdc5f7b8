// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/intellicard-client/internal/service"
	"golang.org/x/term"
)

// newTerminalPrompt reads the cloud password from in without echo when in is
// a terminal, and as a plain line otherwise.
func newTerminalPrompt(in *os.File, out io.Writer) service.PasswordPrompt {
	return func(ctx context.Context, username string) (string, error) {
		fmt.Fprintf(out, "Cloud password for %s: ", username)

		type answer struct {
			password string
			err      error
		}
		done := make(chan answer, 1)

		go func() {
			fd := int(in.Fd())
			if term.IsTerminal(fd) {
				pw, err := term.ReadPassword(fd)
				fmt.Fprintln(out)
				done <- answer{password: string(pw), err: err}
				return
			}

			line, err := bufio.NewReader(in).ReadString('\n')
			if err == io.EOF {
				err = nil
			}
			done <- answer{password: strings.TrimRight(line, "\r\n"), err: err}
		}()

		select {
		case a := <-done:
			return a.password, a.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}

// stderrNotifier prints service notifications as single lines.
type stderrNotifier struct {
	w io.Writer
}

func newStderrNotifier(w io.Writer) *stderrNotifier {
	return &stderrNotifier{w: w}
}

func (n *stderrNotifier) Loading(_, message string) {
	fmt.Fprintf(n.w, "… %s\n", message)
}

func (n *stderrNotifier) Dismiss(string) {}

func (n *stderrNotifier) Success(message string) {
	fmt.Fprintf(n.w, "✓ %s\n", message)
}

func (n *stderrNotifier) Error(message string) {
	fmt.Fprintf(n.w, "✗ %s\n", message)
}
