// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdargs

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func asMap(v Values) map[string]any {
	out := make(map[string]any, v.Len())
	v.Each(func(name string, val any) {
		out[name] = val
	})
	return out
}

func TestBind(t *testing.T) {
	tests := []struct {
		name   string
		params []Param
		args   string
		want   map[string]any
	}{
		{name: "long option equals", params: needsEmail, args: "--email=info@x.com", want: map[string]any{"email": "info@x.com"}},
		{name: "long option space", params: needsEmail, args: "--email info@phpkg.com", want: map[string]any{"email": "info@phpkg.com"}},
		{name: "later long option wins", params: needsEmail, args: "--email=info@phpkg.com --email=support@phpkg.com", want: map[string]any{"email": "support@phpkg.com"}},
		{name: "optional option absent", params: needsOptionalUsername, args: "", want: map[string]any{"username": nil}},
		{name: "short option equals", params: needsOptionalTeam, args: "-t=development", want: map[string]any{"team": "development"}},
		{name: "short option space", params: needsOptionalTeam, args: "-t marketing", want: map[string]any{"team": "marketing"}},
		{name: "short option default", params: needsOptionalTeam, args: "", want: map[string]any{"team": "default-team"}},
		{name: "short then equals", params: needsOptionalTeam, args: "-t marketing -t=development", want: map[string]any{"team": "development"}},
		{name: "long then short", params: needsOptionalUsername, args: "--username=JohnDoe -u JaneDoe", want: map[string]any{"username": "JaneDoe"}},
		{name: "short then long", params: needsOptionalUsername, args: "-u JaneDoe --username=JohnDoe", want: map[string]any{"username": "JohnDoe"}},
		{name: "bool option", params: needsForceOption, args: "-f", want: map[string]any{"force": true}},
		{name: "required bool absent is false", params: needsForceOption, args: "", want: map[string]any{"force": false}},
		{name: "optional bool absent is unset", params: needsOptionalForceOption, args: "", want: map[string]any{"force": nil}},
		{name: "array option", params: needsIDs, args: "--ids=1 --ids=2 --ids=3", want: map[string]any{"ids": []string{"1", "2", "3"}}},
		{name: "array option short and long", params: needsOptionalList, args: "-l=1 --list=2 -l=3", want: map[string]any{"list": []string{"1", "2", "3"}}},
		{name: "optional array absent", params: needsOptionalList, args: "", want: map[string]any{"list": nil}},
		{name: "two options", params: needsTwoOptions, args: "--email info@phpkg.com --username=john", want: map[string]any{"email": "info@phpkg.com", "username": "john"}},
		{name: "two options any order", params: needsTwoOptions, args: "--username=john --email info@phpkg.com", want: map[string]any{"email": "info@phpkg.com", "username": "john"}},
		{name: "option default", params: needsTwoOptions, args: "--email info@phpkg.com", want: map[string]any{"email": "info@phpkg.com", "username": "default"}},
		{name: "arguments", params: needsEmailUsernameArgs, args: "info@phpkg.com john", want: map[string]any{"email": "info@phpkg.com", "username": "john"}},
		{name: "optional argument absent", params: needsOptionalArgument, args: "", want: map[string]any{"name": nil}},
		{name: "bool argument true", params: needsBoolArgument, args: "true", want: map[string]any{"force": true}},
		{name: "bool argument false", params: needsBoolArgument, args: "false", want: map[string]any{"force": false}},
		{name: "array argument", params: needsArrayArgument, args: "--email info@phpkg.com JohnDoe 1 2 3 4 5", want: map[string]any{"email": "info@phpkg.com", "username": "JohnDoe", "ids": []string{"1", "2", "3", "4", "5"}}},
		{name: "string argument default", params: defaultStringArgument, args: "", want: map[string]any{"env": "development"}},
		{name: "bool argument default", params: defaultBoolArgument, args: "", want: map[string]any{"force": true}},
		{name: "excess", params: acceptExcessiveArguments, args: "--email=info@phpkg.com --password=secret john -l -p", want: map[string]any{"email": "info@phpkg.com", "remaining": []string{"--password=secret", "john", "-l", "-p"}}},
		{name: "excess empty", params: acceptExcessiveArguments, args: "--email=a@b.c", want: map[string]any{"email": "a@b.c", "remaining": []string{}}},
		{name: "defaults without optional flag", params: defaultsWithoutOptional, args: "", want: map[string]any{"name": "World", "env": "dev", "verbose": true}},
		{name: "defaulted bool option given", params: defaultsWithoutOptional, args: "Bob --verbose -e prod", want: map[string]any{"name": "Bob", "env": "prod", "verbose": true}},
		{name: "late short help", params: supportsHelp, args: "-h", want: map[string]any{"h": true, "help": false}},
		{name: "late long help", params: supportsHelp, args: "--help", want: map[string]any{"h": false, "help": true}},
		{
			name:   "full fledged",
			params: fullFledged,
			args:   "--email=info@phpkg.com -u JohnDoe password -f user customer supplier",
			want: map[string]any{
				"email":    "info@phpkg.com",
				"username": "JohnDoe",
				"password": "password",
				"force":    true,
				"roles":    []string{"user", "customer", "supplier"},
			},
		},
		{
			name:   "full fledged option bound argument",
			params: fullFledged,
			args:   "--password=secret --email=a@b.c -u JohnDoe",
			want: map[string]any{
				"email":    "a@b.c",
				"username": "JohnDoe",
				"password": "secret",
				"force":    nil,
				"roles":    []string{},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStream(strings.Fields(tt.args))
			got, err := Bind(tt.params, s)
			if err != nil {
				t.Fatalf("Bind failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, asMap(got)); diff != "" {
				t.Fatalf("Bind mismatch (-want +got):\n%s", diff)
			}
			if !s.AllUsed() {
				t.Fatalf("Remaining = %#v, want none", s.Remaining())
			}
		})
	}
}

func TestBindPromptErrors(t *testing.T) {
	tests := []struct {
		name   string
		params []Param
		args   string
		want   string
	}{
		{name: "required long option", params: needsEmail, args: "", want: "Option `email` is required."},
		{name: "required array option", params: needsIDs, args: "", want: "Option `ids` is required."},
		{name: "required short and long array option", params: needsList, args: "", want: "Option `l|list` is required."},
		{name: "bool equals long", params: needsForceOption, args: "-f --force=false", want: "Long option `force` must be boolean and does not accept values."},
		{name: "bool equals short", params: needsForceOption, args: "-f=any-value", want: "Short option `f` must be boolean and does not accept values."},
		{name: "repeated bool flag", params: needsForceOption, args: "-f -f", want: "You passed invalid argument to the command."},
		{name: "repeated long bool flag", params: needsForceOption, args: "--force -f", want: "You passed invalid argument to the command."},
		{name: "short without value", params: needsUsername, args: "-u", want: "Option needs value."},
		{name: "long without value", params: needsUsername, args: "--username", want: "Option needs value."},
		{name: "last without value", params: needsUsername, args: "-u john --username", want: "Option needs value."},
		{name: "extra argument", params: needsEmail, args: "--email=info@phpkg.com extra-argument", want: "You passed invalid argument to the command."},
		{name: "too many arguments", params: needsEmailUsernameArgs, args: "info@phpkg.com john extra", want: "You passed invalid argument to the command."},
		{name: "missing argument", params: needsEmailUsernameArgs, args: "", want: "Argument `email` is required."},
		{name: "bool argument literal", params: needsBoolArgument, args: "any-value", want: "Bool argument accepts true or false."},
		{name: "missing option bound argument", params: fullFledged, args: "--email=a -u b", want: "Argument `password` is required."},
		{name: "int option", params: []Param{{Name: "lines", Kind: Option, Type: Int, Short: "n", Long: "lines"}}, args: "-n ten", want: "Option `n|lines` must be an integer."},
		{name: "int argument", params: []Param{{Name: "n", Kind: Argument, Type: Int}}, args: "ten", want: "Argument `n` must be an integer."},
		{
			name:   "leftover positional token",
			params: []Param{{Name: "x", Kind: Argument, Type: String}},
			args:   "x y",
			want:   "You passed invalid argument to the command.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Bind(tt.params, NewStream(strings.Fields(tt.args)))
			var perr *PromptError
			if !errors.As(err, &perr) {
				t.Fatalf("Bind error = %#v, want *PromptError", err)
			}
			if perr.Msg != tt.want {
				t.Fatalf("Bind error = %q, want %q", perr.Msg, tt.want)
			}
		})
	}
}

func TestBindInt(t *testing.T) {
	params := []Param{
		{Name: "lines", Kind: Option, Type: Int, Short: "n", Optional: true, Default: -1},
		{Name: "count", Kind: Argument, Type: Int},
	}
	got, err := Bind(params, NewStream([]string{"3", "-n", "20"}))
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if got.Int("lines") != 20 || got.Int("count") != 3 {
		t.Fatalf("Bind = %#v, want lines=20 count=3", asMap(got))
	}
	got, err = Bind(params, NewStream([]string{"3"}))
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if got.Int("lines") != -1 {
		t.Fatalf("lines = %d, want default -1", got.Int("lines"))
	}
}

func TestBindKeepsDeclarationOrder(t *testing.T) {
	got, err := Bind(fullFledged, NewStream(strings.Fields("pw --email=a -u b")))
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	want := []string{"email", "username", "password", "force", "roles"}
	if !reflect.DeepEqual(got.Names(), want) {
		t.Fatalf("Names = %#v, want %#v", got.Names(), want)
	}
}

func TestBindDefinitionErrorConsumesNothing(t *testing.T) {
	params := []Param{
		{Name: "email", Kind: Option, Type: String, Long: "email"},
		{Name: "broken", Kind: Option, Type: String},
	}
	s := NewStream([]string{"--email=a"})
	_, err := Bind(params, s)
	var derr *DefinitionError
	if !errors.As(err, &derr) {
		t.Fatalf("Bind error = %#v, want *DefinitionError", err)
	}
	if derr.Msg != "No option or argument has been defined." {
		t.Fatalf("Bind error = %q", derr.Msg)
	}
	if s.AllUsed() {
		t.Fatalf("stream was consumed before the definition error")
	}
}

// A successful bind without an excess collector always leaves an empty
// stream.
func TestBindSuccessUsesAllTokens(t *testing.T) {
	inputs := []string{
		"--email=a",
		"--email a --email=b",
		"--email a extra",
		"extra --email a",
		"--email",
		"",
	}
	for _, in := range inputs {
		s := NewStream(strings.Fields(in))
		_, err := Bind(needsEmail, s)
		if err == nil && !s.AllUsed() {
			t.Fatalf("Bind(%q) succeeded with remaining %#v", in, s.Remaining())
		}
	}
}
