// This file is part of just-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import "testing"

func TestIsLongOption(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"--ab", true},
		{"--abc", true},
		{"--a", true},
		{"--ä", true},
		{"--a=b", true},
		{"---ab", false},
		{"---", false},
		{"", false},
		{" ", false},
		{"-x", false},
		{"--", false},
		{"-", false},
	}
	for _, c := range cases {
		if got := isLongOption(c.in); got != c.want {
			t.Errorf("isLongOption(%q) == %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLongOptionArg(t *testing.T) {
	cases := []struct {
		in     string
		name   string
		arg    string
		hasArg bool
	}{
		{"--abc", "abc", "", false},
		{"--ä€", "ä€", "", false},
		{"--abc=", "abc", "", true},
		{"--abc=1", "abc", "1", true},
		{"--abc==", "abc", "=", true},
		{"--abc=134=123", "abc", "134=123", true},
		{"--abc-def=  ", "abc-def", "  ", true},
		{"--abc-ä€=öOö", "abc-ä€", "öOö", true},
	}
	for _, c := range cases {
		name, arg, hasArg := longOptionArg(c.in)
		if name != c.name || arg != c.arg || hasArg != c.hasArg {
			t.Errorf("longOptionArg(%q) == (%q, %q, %v), want (%q, %q, %v)",
				c.in, name, arg, hasArg, c.name, c.arg, c.hasArg)
		}
	}
}

func TestIsShortOption(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"-a", true},
		{"-ä", true},
		{"-€", true},
		{"-=", true},
		{"-?", true},
		{"-abcd", true},
		{"-", false},
		{"--", false},
		{"a", false},
		{"aa", false},
		{"", false},
		{" ", false},
		{"- ", false},
		{"--ab", false},
		{"--a", false},
	}
	for _, c := range cases {
		if got := isShortOption(c.in); got != c.want {
			t.Errorf("isShortOption(%q) == %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsValidShortName(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"a", true},
		{"ä", true},
		{"€", true},
		{"1", true},
		{"?", true},
		{"=", true},
		{"%", true},
		{"-", false},
		{" ", false},
		{"", false},
		{"ab", false},
	}
	for _, c := range cases {
		if got := isValidShortName(c.in); got != c.want {
			t.Errorf("isValidShortName(%q) == %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsValidLongName(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"ab", true},
		{"ab-", true},
		{"ab-abc", true},
		{"ä€", true},
		// A single character is a valid abbreviation of a defined name.
		{"f", true},
		{"-abc", false},
		{"abc ", false},
		{" abc ", false},
		{"abc ab", false},
		{"", false},
	}
	for _, c := range cases {
		if got := isValidLongName(c.in); got != c.want {
			t.Errorf("isValidLongName(%q) == %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsOptionTerminator(t *testing.T) {
	if !isOptionTerminator("--") {
		t.Error("\"--\" not recognized as the option terminator")
	}
	for _, s := range []string{"-", "---", "--a", ""} {
		if isOptionTerminator(s) {
			t.Errorf("%q wrongly recognized as the option terminator", s)
		}
	}
}
