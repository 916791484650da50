package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// PromptYesNo asks a yes/no question on stdin
func PromptYesNo(question string) bool {
	return PromptYesNoFrom(os.Stdin, os.Stdout, question)
}

// PromptYesNoFrom asks a yes/no question, reading answers from r.
// End of input counts as no.
func PromptYesNoFrom(r io.Reader, w io.Writer, question string) bool {
	reader := bufio.NewReader(r)
	for {
		fmt.Fprintf(w, "%s (y/n): ", question)
		response, err := reader.ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))

		switch response {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		if err != nil {
			return false
		}
		fmt.Fprintln(w, "Please enter y or n")
	}
}
