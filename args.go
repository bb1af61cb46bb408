// This file is part of just-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

// ValueKind - Classifies how a parsed option's value was supplied.
type ValueKind int

const (
	// ValueAbsent - No value was supplied.
	ValueAbsent ValueKind = iota
	// ValuePresent - A value was supplied, either attached to the option
	// token ("--name=value", "-nvalue") or taken from the following
	// argument. The two forms parse identically.
	ValuePresent
	// ValueExtra - A value was attached to an option that takes none, as
	// in "--verbose=yes". The occurrence is still recorded; callers that
	// care can detect and reject it.
	ValueExtra
)

// Opt - A single recognized option occurrence.
type Opt struct {
	// Identifier from the matching definition in the specification table.
	ID string

	// Name as typed in the command line, without the dash prefix. For
	// short options this is a single character. For an abbreviated long
	// option this is the abbreviation, not the full defined name.
	Name string

	// Long tells whether the long form was used. The Name length alone
	// can not tell: a one-character abbreviation of a long name is
	// possible.
	Long bool

	// Value for the option. Meaningful only when Kind says a value was
	// supplied; an empty string can be a valid value.
	Value string

	// Kind classifies the value: absent, attached, taken from the next
	// argument, or extraneous.
	Kind ValueKind
}

// HasValue - Tells whether any value was supplied for the occurrence.
func (opt Opt) HasValue() bool {
	return opt.Kind != ValueAbsent
}

// MissingValue - Records an option that requires a value when no value was
// available in the command line.
type MissingValue struct {
	ID   string // Identifier from the matching definition
	Name string // Spelling as typed, without the dash prefix
	Long bool   // Whether the long form was used
}

// Args - Parsed command line in organized form.
//
// An Args value is created by OptSpecs.Getopt and is read-only afterwards.
// Each sequence keeps the order in which its entries appeared in the
// command line.
type Args struct {
	// Options - Recognized option occurrences.
	Options []Opt

	// Other - Non-option arguments.
	Other []string

	// Unknown - Spellings that looked like options but matched no
	// definition, including ambiguous long option abbreviations. Entries
	// are recorded without the dash prefix, one per occurrence: a single
	// character for short options, the name as typed for long options.
	Unknown []string

	// Missing - Required-value options that had no value available.
	Missing []MissingValue

	// LimitExceeded - Arguments were available beyond the limit set with
	// SetArgLimit and were dropped.
	LimitExceeded bool
}

// All - Returns all option occurrences with the given id, oldest first.
func (a *Args) All(id string) []Opt {
	var opts []Opt
	for _, opt := range a.Options {
		if opt.ID == id {
			opts = append(opts, opt)
		}
	}
	return opts
}

// First - Returns the first occurrence of the given id.
func (a *Args) First(id string) (Opt, bool) {
	for _, opt := range a.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Opt{}, false
}

// Last - Returns the most recent occurrence of the given id, for "last one
// wins" option semantics.
func (a *Args) Last(id string) (Opt, bool) {
	for i := len(a.Options) - 1; i >= 0; i-- {
		if a.Options[i].ID == id {
			return a.Options[i], true
		}
	}
	return Opt{}, false
}

// Called - Tells whether the given id occurred at all.
func (a *Args) Called(id string) bool {
	_, ok := a.First(id)
	return ok
}

// Values - Returns the values of all occurrences of the given id that have
// one, oldest first.
func (a *Args) Values(id string) []string {
	var values []string
	for _, opt := range a.Options {
		if opt.ID == id && opt.HasValue() {
			values = append(values, opt.Value)
		}
	}
	return values
}

// FirstValue - Returns the value of the first occurrence of the given id
// that has one. Occurrences without a value are skipped.
func (a *Args) FirstValue(id string) (string, bool) {
	for _, opt := range a.Options {
		if opt.ID == id && opt.HasValue() {
			return opt.Value, true
		}
	}
	return "", false
}

// LastValue - Returns the value of the most recent occurrence of the given
// id that has one. Occurrences without a value are skipped.
func (a *Args) LastValue(id string) (string, bool) {
	for i := len(a.Options) - 1; i >= 0; i-- {
		opt := a.Options[i]
		if opt.ID == id && opt.HasValue() {
			return opt.Value, true
		}
	}
	return "", false
}
