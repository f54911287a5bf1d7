// Package transform implements the text transformation behind the upcase CLI.
package transform

import "strings"

// Prefix is prepended to every transformed value.
const Prefix = "Processed: "

// Process returns Prefix followed by the uppercase form of input.
// It accepts any string, including the empty string, and cannot fail.
func Process(input string) string {
	return Prefix + strings.ToUpper(input)
}
