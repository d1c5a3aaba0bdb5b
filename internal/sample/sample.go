// Package sample holds the text block linefilter runs over. The block is a
// small program in a class/field/method notation; nothing here reads it as
// anything other than lines of text.
package sample

import _ "embed"

//go:embed program.txt
var program string

// Text returns the embedded block verbatim, blank lines and indentation included.
func Text() string { return program }
