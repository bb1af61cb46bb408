// This file is part of just-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"strings"

	"github.com/tlikonen/just-getopt/internal/sliceiterator"
)

// parse - Single forward pass over the raw arguments, left to right, no
// backtracking. Every raw token ends up in exactly one of the four result
// sequences or is consumed as the value of a preceding option.
func parse(specs *OptSpecs, args []string) *Args {
	parsed := &Args{}
	iter := sliceiterator.New(args)

	for iter.Next() {
		if specs.overLimit(iter.Index()) {
			parsed.LimitExceeded = true
			return parsed
		}
		arg := iter.Value()
		Logger.Printf("arg %d: %q\n", iter.Index(), arg)

		switch {
		case isOptionTerminator(arg):
			// Everything after "--" is a non-option, verbatim.
			specs.drain(parsed, iter)
			return parsed
		case isLongOption(arg):
			specs.parseLongOption(parsed, iter, arg)
		case isShortOption(arg):
			specs.parseShortCluster(parsed, iter, arg)
		default:
			parsed.Other = append(parsed.Other, arg)
			if specs.requireOrder {
				specs.drain(parsed, iter)
				return parsed
			}
		}
	}
	return parsed
}

// parseLongOption - Handles a "--name", "--name=value" or abbreviated long
// option token.
func (specs *OptSpecs) parseLongOption(parsed *Args, iter *sliceiterator.Iterator, arg string) {
	name, value, hasValue := longOptionArg(arg)
	if !isValidLongName(name) {
		parsed.Unknown = append(parsed.Unknown, name)
		return
	}
	spec, ok := specs.longSpec(name)
	if !ok {
		// Unknown name or ambiguous abbreviation.
		parsed.Unknown = append(parsed.Unknown, name)
		return
	}

	opt := Opt{ID: spec.ID, Name: name, Long: true}
	switch spec.Value {
	case ValueRequired:
		switch {
		case hasValue:
			opt.Value, opt.Kind = value, ValuePresent
		case specs.takeNextAsValue(iter, &opt):
		default:
			parsed.Missing = append(parsed.Missing, MissingValue{ID: spec.ID, Name: name, Long: true})
			return
		}
	case ValueOptional:
		if hasValue {
			opt.Value, opt.Kind = value, ValuePresent
		}
	case ValueNone:
		if hasValue {
			// Value given to an option that takes none. Keep the
			// occurrence and let the caller decide from the Kind.
			opt.Value, opt.Kind = value, ValueExtra
		}
	}
	parsed.Options = append(parsed.Options, opt)
}

// parseShortCluster - Handles a "-abc" token. Characters are resolved left
// to right; the first one that takes a value consumes the rest of the
// cluster, or for required values the next argument, and ends the cluster.
// An unknown character is recorded and does not abort the cluster.
func (specs *OptSpecs) parseShortCluster(parsed *Args, iter *sliceiterator.Iterator, arg string) {
	cluster := []rune(shortOptionCluster(arg))
	for i, r := range cluster {
		name := string(r)
		if !isValidShortName(name) {
			parsed.Unknown = append(parsed.Unknown, name)
			continue
		}
		spec, ok := specs.shortSpec(name)
		if !ok {
			parsed.Unknown = append(parsed.Unknown, name)
			continue
		}

		opt := Opt{ID: spec.ID, Name: name}
		rest := string(cluster[i+1:])
		switch spec.Value {
		case ValueRequired:
			switch {
			case rest != "":
				opt.Value, opt.Kind = rest, ValuePresent
			case specs.takeNextAsValue(iter, &opt):
			default:
				parsed.Missing = append(parsed.Missing, MissingValue{ID: spec.ID, Name: name})
				return
			}
			parsed.Options = append(parsed.Options, opt)
			return
		case ValueOptional:
			if rest != "" {
				opt.Value, opt.Kind = rest, ValuePresent
				parsed.Options = append(parsed.Options, opt)
				return
			}
		}
		parsed.Options = append(parsed.Options, opt)
	}
}

// takeNextAsValue - Consumes the next raw argument as the option's value
// unless it is absent or looks like an option. An empty string is a valid
// value.
func (specs *OptSpecs) takeNextAsValue(iter *sliceiterator.Iterator, opt *Opt) bool {
	next, ok := iter.PeekNextValue()
	if !ok || strings.HasPrefix(next, "-") {
		return false
	}
	if specs.overLimit(iter.Index() + 1) {
		return false
	}
	iter.Next()
	opt.Value, opt.Kind = next, ValuePresent
	return true
}

// drain - Appends the remaining arguments to the non-option sequence,
// verbatim, honoring the argument limit.
func (specs *OptSpecs) drain(parsed *Args, iter *sliceiterator.Iterator) {
	if specs.argLimit <= 0 {
		parsed.Other = append(parsed.Other, iter.Rest()...)
		return
	}
	for iter.Next() {
		if specs.overLimit(iter.Index()) {
			parsed.LimitExceeded = true
			return
		}
		parsed.Other = append(parsed.Other, iter.Value())
	}
}

func (specs *OptSpecs) overLimit(index int) bool {
	return specs.argLimit > 0 && index >= specs.argLimit
}
