// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdargs

var (
	needsEmail = []Param{
		{Name: "email", Kind: Option, Type: String, Long: "email", Description: "The email option for the command"},
	}
	needsUsername = []Param{
		{Name: "username", Kind: Option, Type: String, Short: "u", Long: "username", Description: "The username option for the command"},
	}
	needsOptionalUsername = []Param{
		{Name: "username", Kind: Option, Type: String, Short: "u", Long: "username", Optional: true, Description: "The username option for the command"},
	}
	defaultsWithoutOptional = []Param{
		{Name: "name", Kind: Argument, Type: String, Default: "World", Description: "Who to greet"},
		{Name: "env", Kind: Option, Type: String, Short: "e", Long: "env", Default: "dev", Description: "Target environment"},
		{Name: "verbose", Kind: Option, Type: Bool, Long: "verbose", Default: true},
	}
	needsOptionalTeam = []Param{
		{Name: "team", Kind: Option, Type: String, Short: "t", Optional: true, Default: "default-team", Description: "The team option for the command"},
	}
	needsForceOption = []Param{
		{Name: "force", Kind: Option, Type: Bool, Short: "f", Long: "force", Description: "The force option for the command"},
	}
	needsOptionalForceOption = []Param{
		{Name: "force", Kind: Option, Type: Bool, Short: "f", Long: "force", Optional: true},
	}
	needsIDs = []Param{
		{Name: "ids", Kind: Option, Type: Strings, Long: "ids", Description: "The ids array option"},
	}
	needsList = []Param{
		{Name: "list", Kind: Option, Type: Strings, Short: "l", Long: "list"},
	}
	needsOptionalList = []Param{
		{Name: "list", Kind: Option, Type: Strings, Short: "l", Long: "list", Optional: true},
	}
	needsTwoOptions = []Param{
		{Name: "email", Kind: Option, Type: String, Long: "email"},
		{Name: "username", Kind: Option, Type: String, Long: "username", Optional: true, Default: "default"},
	}
	needsEmailUsernameArgs = []Param{
		{Name: "email", Kind: Argument, Type: String, Description: "Required email argument"},
		{Name: "username", Kind: Argument, Type: String},
	}
	needsOptionalArgument = []Param{
		{Name: "name", Kind: Argument, Type: String, Optional: true},
	}
	needsBoolArgument = []Param{
		{Name: "force", Kind: Argument, Type: Bool},
	}
	needsArrayArgument = []Param{
		{Name: "email", Kind: Option, Type: String, Long: "email"},
		{Name: "username", Kind: Argument, Type: String},
		{Name: "ids", Kind: Argument, Type: Strings},
	}
	defaultStringArgument = []Param{
		{Name: "env", Kind: Argument, Type: String, Optional: true, Default: "development"},
	}
	defaultBoolArgument = []Param{
		{Name: "force", Kind: Argument, Type: Bool, Optional: true, Default: true},
	}
	acceptExcessiveArguments = []Param{
		{Name: "email", Kind: Option, Type: String, Long: "email", Description: "The email option for the command"},
		{Name: "remaining", Kind: Excess, Type: Strings},
	}
	supportsHelp = []Param{
		{Name: "h", Kind: Option, Type: Bool, Short: "h"},
		{Name: "help", Kind: Option, Type: Bool, Long: "help"},
	}
	fullFledgedDescription = " This is the full-fledged command\n" +
		" It uses both options and arguments\n" +
		" Example: console full-fledged --email=info@phpkg.com -u JohnDoe password -f user customer supplier"
	fullFledged = []Param{
		{Name: "email", Kind: Option, Type: String, Long: "email", Description: "The required email option"},
		{Name: "username", Kind: Option, Type: String, Short: "u", Description: "The required username option"},
		{Name: "password", Kind: Argument, Type: String, Long: "password", Description: "The password to be passed using option or argument"},
		{Name: "force", Kind: Option, Type: Bool, Short: "f", Long: "force", Optional: true, Description: "Optional force option"},
		{Name: "roles", Kind: Argument, Type: Strings, Optional: true, Default: []string{}, Description: "List of rules for user"},
	}
)
