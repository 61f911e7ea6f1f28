// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmdargs binds raw command-line tokens to declared command
// parameters and resolves multi-word command names.
//
// A command declares an ordered list of Param values. Each Param is a
// positional argument, an option, or the excess collector that receives
// every token nothing else claimed:
//
//	cmd := &cmdargs.Command{
//	    Name: "user add",
//	    Params: []cmdargs.Param{
//	        {Name: "email", Kind: cmdargs.Option, Type: cmdargs.String, Long: "email"},
//	        {Name: "force", Kind: cmdargs.Option, Type: cmdargs.Bool, Short: "f", Long: "force"},
//	        {Name: "roles", Kind: cmdargs.Argument, Type: cmdargs.Strings, Optional: true},
//	    },
//	    Run: func(ctx context.Context, in cmdargs.Values) error { ... },
//	}
//
// # Resolution
//
// Resolve picks the command from a Table by scoring word prefixes of the
// input. With commands "a" and "a b", the input "a b extra" resolves to
// "a b" and leaves "extra" for binding.
//
// # Binding
//
// Bind runs two passes over a Stream. The first pass extracts every
// flagged parameter; the second fills positional arguments in
// declaration order and applies defaults. Tokens are consumed at most
// once and keep their original index, so a bare flag always pairs with
// the token that followed it on the command line.
//
// Option grammar:
//   - Scalars accept --long=value, --long value, -s=value and -s value.
//     The last occurrence wins and every occurrence is consumed.
//   - Booleans accept --long and -s only. A missing required boolean is
//     false; a missing optional boolean is unset.
//   - Arrays accept only --long=value and -s=value and collect every
//     occurrence in order.
//
// Errors are *PromptError when the user input does not fit the command
// and *DefinitionError when the command's parameters are malformed.
//
// # Help
//
// RenderUsage, RenderCommandList and RenderConsoleUsage produce the help
// texts shown by the console runner.
package cmdargs
