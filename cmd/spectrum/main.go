package main

import (
	"errors"
	"fmt"
	"os"

	spectrumerrors "github.com/alexisbeaulieu97/spectrum/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps command errors to process exit codes: 1 for token drift,
// 2 for unreadable or invalid input, 3 for anything else.
func exitCode(err error) int {
	var (
		drift      *spectrumerrors.DriftError
		parse      *spectrumerrors.ParseError
		validation *spectrumerrors.ValidationError
		notFound   *spectrumerrors.NotFoundError
	)
	switch {
	case err == nil:
		return 0
	case errors.As(err, &drift):
		return 1
	case errors.As(err, &parse), errors.As(err, &validation), errors.As(err, &notFound):
		return 2
	default:
		return 3
	}
}
