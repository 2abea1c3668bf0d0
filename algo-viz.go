// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"flag"
	"os"

	"github.com/Lexer747/algo-viz/cmd/subcommands/demo"
	"github.com/Lexer747/algo-viz/utils/errors"
	"github.com/Lexer747/algo-viz/utils/exit"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "demo":
			d := demo.GetFlags()
			FlagParseError(d.Parse(os.Args[2:]))
			demo.RunDemo(d)
			exit.Success()
		default:
			// fallthrough
		}
	}
	d := demo.GetFlags()
	FlagParseError(d.Parse(os.Args[1:]))
	demo.RunDemo(d)
	exit.Success()
}

func FlagParseError(err error) {
	if errors.Is(err, flag.ErrHelp) {
		exit.Silent()
	} else {
		exit.OnError(err)
	}
}
