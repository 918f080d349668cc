package main

import (
	"context"

	"github.com/buildbarn/bb-pathlib/internal/cli"
	"github.com/buildbarn/bb-pathlib/pkg/program"
)

const (
	cmdName = "bb_pathlib"

	shortDesc = "Inspect and manipulate POSIX and Windows paths"
	longDesc  = `bb_pathlib parses, joins, compares and matches pathnames according to the
rules of POSIX or Windows, regardless of the operating system it runs on.

Paths are never resolved against the file system. "." and ".." components
are simplified lexically, and Windows paths are compared case
insensitively.
`
)

func main() {
	program.RunMain(func(ctx context.Context) error {
		return cli.NewRootCmd(cmdName, shortDesc, longDesc).ExecuteContext(ctx)
	})
}
