// This file is part of just-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package getopt - Posix getopt-like command line option parser with GNU
getopt_long style long options and a simple programming interface.

The name of the module is just-getopt because this is just a getopt parser
and (almost) nothing more. It classifies a program's argument list and
returns the parsed output together with methods for examining it. There is
nothing for interpreting the output or for printing messages to the
program's user: the responsibility of interpretation is left to the caller,
and the library never writes to an output stream or terminates the process.

In getopt logic there are two types of options:

  - short options with a single character name ("-f")
  - long options with a multi character name ("--file")

Both types may accept an optional value or require a value.

# Parsing rules

The pseudo option "--" (two dashes) always stops the option parser. The rest
of the command line is parsed as regular non-option arguments. A lonesome
dash "-" is a regular argument too, commonly used to mean standard input.

Short options in the command line start with the "-" character followed by
option's name character ("-c"). If the option requires a value the value
must be entered either directly after the option character ("-cVALUE") or as
the next command line argument ("-c VALUE"). In the latter case anything
that follows "-c" is parsed as the option's value, unless it begins with a
dash: then the value is considered missing and the parsed output records
that. If the option accepts an optional value the value must always be
entered directly after the option character ("-cVALUE").

Several short options can be entered together after one "-" character
("-abc") but then only the last option in the series may have a value. An
unknown character in the series is recorded as an unknown option and does
not stop the parsing of the rest of the series.

Long options start with "--" and the name comes directly after it
("--foo"). A defined long name is at least two characters long. Values work
like with short options but the direct form uses an equal sign:
"--foo=VALUE" or, for required values only, "--foo VALUE". The form
"--foo=" is a valid way to give an empty string as the value.

Long options can be abbreviated as long as the abbreviation is a prefix of
exactly one defined long name. An ambiguous abbreviation is recorded as an
unknown option because no single definition can be chosen safely.

# Usage

Define the valid options with NewSpecs or MustSpecs. Each definition binds
an identifier to its spellings and its value requirement; several
definitions may share an identifier when different spellings mean the same
thing:

	specs := getopt.MustSpecs(
		getopt.OptSpec{ID: "help", Short: "h", Long: "help"},
		getopt.OptSpec{ID: "file", Short: "f", Long: "file", Value: getopt.ValueRequired},
		getopt.OptSpec{ID: "verbose", Short: "v", Long: "verbose", Value: getopt.ValueOptional},
	)

Then parse the command line and examine the result:

	parsed := specs.Getopt(os.Args[1:])

	for _, u := range parsed.Unknown {
		fmt.Fprintf(os.Stderr, "Unknown option: %s\n", u)
	}
	for _, m := range parsed.Missing {
		fmt.Fprintf(os.Stderr, "Value is required for option '%s'.\n", m.Name)
	}
	if parsed.Called("help") {
		// print usage and exit
	}
	for _, f := range parsed.Values("file") {
		// use the file names
	}

Getopt never fails and never panics on end user input: all anomalies are
data in the returned Args value. The only errors the library reports are
structural errors in the option definitions themselves, returned when the
specification table is built.
*/
package getopt
