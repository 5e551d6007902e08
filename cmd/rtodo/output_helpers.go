package main

import (
	"encoding/json"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
	outputYAML  outputFormat = "yaml"
)

func resolveOutputFormat(jsonFlag, yamlFlag bool) (outputFormat, error) {
	switch {
	case jsonFlag && yamlFlag:
		return "", &usageError{msg: "--json and --yaml are mutually exclusive"}
	case jsonFlag:
		return outputJSON, nil
	case yamlFlag:
		return outputYAML, nil
	default:
		return outputTable, nil
	}
}

func encodeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func encodeYAML(w io.Writer, value any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		return errors.Join(err, enc.Close())
	}
	return enc.Close()
}

func encodeStructured(w io.Writer, format outputFormat, value any) error {
	if format == outputYAML {
		return encodeYAML(w, value)
	}
	return encodeJSON(w, value)
}
