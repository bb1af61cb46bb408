// This file is part of just-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"strings"
	"unicode/utf8"
)

const optionTerminator = "--"

// isOptionTerminator - A literal "--" stops option parsing.
func isOptionTerminator(s string) bool {
	return s == optionTerminator
}

// isLongOption - "--" followed by at least one character that is not a dash.
// "---foo" is not an option of any kind.
func isLongOption(s string) bool {
	return len(s) > 2 && strings.HasPrefix(s, "--") && s[2] != '-'
}

// longOptionArg - Splits a long option token into its name and the
// "=" attached argument. The dash prefix is stripped and the token is cut at
// the first "=": for "--file=a=b" the name is "file" and the argument "a=b".
// hasArg tells whether an "=" was present at all, so that an empty argument
// ("--file=") can be told apart from no argument ("--file").
func longOptionArg(s string) (name, arg string, hasArg bool) {
	return strings.Cut(s[2:], "=")
}

// isShortOption - A single dash followed by at least one valid short option
// character. A lonesome dash is not an option.
func isShortOption(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[1:])
	return isValidShortName(string(r))
}

// shortOptionCluster - The characters after the dash, each a candidate
// short option.
func shortOptionCluster(s string) string {
	return s[1:]
}

// isValidShortName - A single character other than dash and space.
func isValidShortName(s string) bool {
	return utf8.RuneCountInString(s) == 1 && !strings.ContainsAny(s, " -")
}

// isValidLongName - Validates a long option name as typed on the command
// line. A single character is accepted here, unlike in definitions, so that
// one-character abbreviations of defined long names can resolve.
func isValidLongName(s string) bool {
	return s != "" && !strings.Contains(s, " ") && !strings.HasPrefix(s, "-")
}
