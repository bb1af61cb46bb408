// This file is part of just-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - user facing strings.
// Use this package to override the error messages of the library.
package text

var ErrorNoID = "option definition has no id"

var ErrorNoSpelling = "option definition has no short or long name"

var ErrorBadShortName = "invalid short option name"

var ErrorBadLongName = "invalid long option name"
