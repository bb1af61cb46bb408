// This file is part of just-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt_test

import (
	"fmt"

	getopt "github.com/tlikonen/just-getopt"
)

func Example() {
	specs := getopt.MustSpecs(
		getopt.OptSpec{ID: "help", Short: "h", Long: "help"},
		getopt.OptSpec{ID: "file", Short: "f", Long: "file", Value: getopt.ValueRequired},
		getopt.OptSpec{ID: "verbose", Short: "v", Long: "verbose", Value: getopt.ValueOptional},
	)

	// With a real program this would be os.Args[1:].
	parsed := specs.Getopt([]string{"--file=123", "-f456", "foo", "-av", "bar"})

	// Report unknown options and missing values; the library never
	// prints anything on its own.
	for _, u := range parsed.Unknown {
		fmt.Printf("Unknown option: %s\n", u)
	}
	for _, m := range parsed.Missing {
		fmt.Printf("Value is required for option '%s'.\n", m.Name)
	}

	if parsed.Called("help") {
		fmt.Println("A friendly help message.")
	}
	for _, f := range parsed.Values("file") {
		fmt.Printf("File name: %s\n", f)
	}
	if parsed.Called("verbose") {
		fmt.Println("Option 'verbose' was given.")
	}
	for _, o := range parsed.Other {
		fmt.Printf("Other argument: %s\n", o)
	}

	// Output:
	// Unknown option: a
	// File name: 123
	// File name: 456
	// Option 'verbose' was given.
	// Other argument: foo
	// Other argument: bar
}

func ExampleArgs_Last() {
	specs := getopt.MustSpecs(
		getopt.OptSpec{ID: "color", Long: "color", Value: getopt.ValueRequired},
	)

	// The same option given several times: the last value wins.
	parsed := specs.Getopt([]string{"--color=auto", "--color=never", "--color=always"})

	if value, ok := parsed.LastValue("color"); ok {
		fmt.Println(value)
	}
	// Output:
	// always
}
