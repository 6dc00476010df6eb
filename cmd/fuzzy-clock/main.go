package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	fuzzyclock "github.com/goliatone/go-fuzzyclock"
)

func main() {
	cmd := newRootCommand(defaultApp())
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	if err := cmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	var idErr *fuzzyclock.IdentifierError
	if errors.As(err, &idErr) {
		fmt.Fprintf(w, "Error: Unknown %s '%s'\n", idErr.Option, idErr.Value)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
