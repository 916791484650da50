package main

import (
	"fmt"
	"io"

	"duelist/internal/utils"
)

type outputFormat int

const (
	outputText outputFormat = iota
	outputJSON
	outputYAML
)

func selectOutput(jsonOutput, yamlOutput bool) (outputFormat, error) {
	switch {
	case jsonOutput && yamlOutput:
		return outputText, fmt.Errorf("--json and --yaml cannot be used together")
	case jsonOutput:
		return outputJSON, nil
	case yamlOutput:
		return outputYAML, nil
	default:
		return outputText, nil
	}
}

// writeStructured writes data as JSON or YAML; text output is the caller's.
func writeStructured(w io.Writer, format outputFormat, data interface{}) error {
	switch format {
	case outputJSON:
		return utils.WriteJSON(w, data)
	case outputYAML:
		return utils.WriteYAML(w, data)
	default:
		return fmt.Errorf("no structured output selected")
	}
}
