package main

import (
	"fmt"

	"github.com/Hebububu/msv/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `Usage:
  %[1]s [--watch=false] [--theme=light] file.mmd [file.svg]

%[1]s renders the Mermaid sequence diagram in file.mmd to file.svg.
Use - to have %[1]s read from stdin or write to stdout.

Flags:
%[2]s

Subcommands:
  %[1]s validate file.mmd - Report ignored lines and messages to unknown participants
  %[1]s layout file.mmd [file.json] - Print the computed layout as JSON
  %[1]s themes - List the available themes
  %[1]s version - Print the version
`, ms.Name, ms.Opts.Help())
}
