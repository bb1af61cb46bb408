// This file is part of just-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"errors"

	"github.com/tlikonen/just-getopt/text"
)

// Errors returned by NewSpecs and Add when an option definition is
// structurally malformed. They are reported when the specification table is
// built; Getopt itself never fails.

// ErrorNoID - Indicates a definition with an empty ID.
var ErrorNoID = errors.New(text.ErrorNoID)

// ErrorNoSpelling - Indicates a definition with neither a short nor a long name.
var ErrorNoSpelling = errors.New(text.ErrorNoSpelling)

// ErrorBadShortName - Indicates a short name that is not a single character
// or is one of the reserved characters '-' and space.
var ErrorBadShortName = errors.New(text.ErrorBadShortName)

// ErrorBadLongName - Indicates a long name that is shorter than two
// characters, contains '=' or space, or begins with '-'.
var ErrorBadLongName = errors.New(text.ErrorBadLongName)
