package main

import (
	"fmt"
	"io"

	internalstrings "github.com/amonks/rtodo/internal/strings"
)

func resolveDescriptionFromStdin(description string, reader io.Reader) (string, error) {
	if description != "-" {
		return description, nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}

	value := internalstrings.NormalizeNewlines(string(input))
	return internalstrings.TrimTrailingNewlines(value), nil
}
