// This file is part of just-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"fmt"
	"io"
	"log"
	"strings"
	"unicode/utf8"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// ValueType - Indicates whether an option takes a value.
type ValueType int

const (
	// ValueNone - The option does not accept a value.
	ValueNone ValueType = iota
	// ValueOptional - The option accepts a value but does not require one.
	// The value must be attached to the option token itself ("-cVALUE",
	// "--name=VALUE").
	ValueOptional
	// ValueRequired - The option requires a value. The value can be
	// attached to the option token or given as the next argument.
	ValueRequired
)

// OptSpec - A single option definition.
//
// An option may have a short spelling, a long spelling or both. Several
// definitions may share the same ID; this makes sense when different
// spellings represent the same meaning, like "-h" and "--help". Duplicate
// spellings across definitions are permitted, lookup resolves to the first
// definition in table order.
type OptSpec struct {
	ID    string    // Identifier used to query the parsed result
	Short string    // Single character spelling, as in "-h"
	Long  string    // Multi character spelling, as in "--help"
	Value ValueType // Whether the option takes a value
}

// OptSpecs - Specification table for a program's valid command line options.
//
// The table is built once with NewSpecs, optionally adjusted with the
// Set methods, and is read-only during parsing.
type OptSpecs struct {
	options      []OptSpec
	requireOrder bool
	exactLong    bool
	argLimit     int
}

// NewSpecs - Builds a specification table from the given definitions.
//
// Only structural well-formedness is validated and violations are reported
// here, never during parsing: a definition must have a non-empty ID and at
// least one spelling, a short name must be a single character other than
// '-' and space, and a long name must be at least two characters without
// '=' or space and without a leading '-'.
func NewSpecs(defs ...OptSpec) (*OptSpecs, error) {
	specs := &OptSpecs{}
	if err := specs.Add(defs...); err != nil {
		return nil, err
	}
	return specs, nil
}

// MustSpecs - Like NewSpecs but panics on a malformed definition.
// Intended for tables built from static definitions.
func MustSpecs(defs ...OptSpec) *OptSpecs {
	specs, err := NewSpecs(defs...)
	if err != nil {
		panic(err)
	}
	return specs
}

// Add - Appends definitions to the table. On error the table is left
// unchanged.
func (specs *OptSpecs) Add(defs ...OptSpec) error {
	for _, def := range defs {
		if err := validateSpec(def); err != nil {
			return err
		}
	}
	specs.options = append(specs.options, defs...)
	return nil
}

func validateSpec(def OptSpec) error {
	if def.ID == "" {
		return fmt.Errorf("%w: %+v", ErrorNoID, def)
	}
	if def.Short == "" && def.Long == "" {
		return fmt.Errorf("option %q: %w", def.ID, ErrorNoSpelling)
	}
	if def.Short != "" && !isValidShortName(def.Short) {
		return fmt.Errorf("option %q: %w: %q", def.ID, ErrorBadShortName, def.Short)
	}
	if def.Long != "" && !validLongDefinition(def.Long) {
		return fmt.Errorf("option %q: %w: %q", def.ID, ErrorBadLongName, def.Long)
	}
	return nil
}

func validLongDefinition(s string) bool {
	return utf8.RuneCountInString(s) >= 2 &&
		!strings.ContainsAny(s, " =") &&
		!strings.HasPrefix(s, "-")
}

// SetRequireOrder - The first non-option argument stops option parsing and
// the rest of the command line is passed through as non-options, even if it
// looks like options. By default options and non-options can be mixed.
func (specs *OptSpecs) SetRequireOrder() *OptSpecs {
	specs.requireOrder = true
	return specs
}

// SetExactLongOptions - Long options must be written in full. By default
// they can be abbreviated as long as the abbreviation is a prefix of exactly
// one defined long name.
func (specs *OptSpecs) SetExactLongOptions() *OptSpecs {
	specs.exactLong = true
	return specs
}

// SetArgLimit - Sets the maximum number of raw arguments to process.
// Arguments beyond the limit are dropped and the parsed result has its
// LimitExceeded field set. Zero, the default, means no limit.
func (specs *OptSpecs) SetArgLimit(n int) *OptSpecs {
	specs.argLimit = n
	return specs
}

// Getopt - Parses the given command line arguments, typically os.Args[1:],
// against the specification table.
//
// Parsing is a pure function of the table and the arguments: it always
// returns a complete Args value and never fails, no matter the input.
// Unrecognized options, missing values and other anomalies are recorded in
// the result for the caller to inspect.
func (specs *OptSpecs) Getopt(args []string) *Args {
	return parse(specs, args)
}

// shortSpec - Exact single character match. With duplicate spellings the
// first definition in table order wins.
func (specs *OptSpecs) shortSpec(name string) (OptSpec, bool) {
	for _, def := range specs.options {
		if def.Short == name {
			return def, true
		}
	}
	return OptSpec{}, false
}

// longSpec - Resolves a long option name as typed: an exact match wins,
// otherwise the name must be a prefix of exactly one defined long name.
// A prefix matching two or more distinct names is ambiguous and resolves to
// nothing.
func (specs *OptSpecs) longSpec(name string) (OptSpec, bool) {
	for _, def := range specs.options {
		if def.Long == name {
			return def, true
		}
	}
	if specs.exactLong || name == "" {
		return OptSpec{}, false
	}
	var match OptSpec
	found := ""
	for _, def := range specs.options {
		if def.Long == "" || !strings.HasPrefix(def.Long, name) {
			continue
		}
		if found == "" {
			match, found = def, def.Long
		} else if def.Long != found {
			return OptSpec{}, false
		}
	}
	return match, found != ""
}
