// This file is part of just-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - a cursor over the raw argument list with one token
// of lookahead, so the parser can decide whether to consume the next
// argument as an option's value.
package sliceiterator

// Iterator - iterator data
type Iterator struct {
	data []string
	idx  int
}

// New - builds a string Iterator positioned before the first element.
func New(s []string) *Iterator {
	return &Iterator{data: s, idx: -1}
}

// Next - moves the index forward and reports whether there is a value.
func (a *Iterator) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// Index - returns the current index.
func (a *Iterator) Index() int {
	return a.idx
}

// Value - returns the value at the current index or an empty string when the
// list has been fully read.
func (a *Iterator) Value() string {
	if a.idx < 0 || a.idx >= len(a.data) {
		return ""
	}
	return a.data[a.idx]
}

// PeekNextValue - returns the next value without consuming it and indicates
// whether it exists.
func (a *Iterator) PeekNextValue() (string, bool) {
	if a.idx+1 >= len(a.data) {
		return "", false
	}
	return a.data[a.idx+1], true
}

// Rest - returns all values after the current index without consuming them.
func (a *Iterator) Rest() []string {
	if a.idx+1 >= len(a.data) {
		return nil
	}
	return a.data[a.idx+1:]
}
