// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/botcity-dev/botcity-maestro-sdk-go/lib/cmd"
	"github.com/botcity-dev/botcity-maestro-sdk-go/maestro"
	"github.com/dustin/go-humanize"
)

var uploadArtifactCommand = newUploadArtifactCommand()

func newUploadArtifactCommand() cmd.RunFunc {
	var taskID int
	var name string
	return clientCommand("file", func(flags *flag.FlagSet) {
		flags.IntVar(&taskID, "task", 0, "owning task `id`")
		flags.StringVar(&name, "name", "", "display name on the portal (default: file basename)")
	}, func(ctx context.Context, client *maestro.Client, args []string) (interface{}, error) {
		if len(args) != 1 {
			return nil, errors.New("expected argument: file")
		}
		if name == "" {
			name = filepath.Base(args[0])
		}
		return client.PostArtifactFile(ctx, taskID, name, args[0])
	})
}

// downloadArtifactCommand is not a clientCommand because its result
// is a file on disk, not a JSON document.
var downloadArtifactCommand cmd.RunFunc = func(prog string, args []string, _ io.Reader, stdout, stderr io.Writer) int {
	var opts clientOpts
	var out string
	flags := flag.NewFlagSet(prog, flag.ContinueOnError)
	opts.addFlags(flags)
	flags.StringVar(&out, "out", "", "output `path` (default: the artifact's own filename)")
	if ok, code := cmd.ParseFlags(flags, prog, args, "artifactID", stderr); !ok {
		return code
	}
	if flags.NArg() != 1 {
		fmt.Fprintf(stderr, "%s: expected argument: artifactID\n", prog)
		return 2
	}
	id, err := strconv.Atoi(flags.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "%s: artifactID: %s\n", prog, err)
		return 2
	}
	client, err := opts.client()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", prog, err)
		return 1
	}
	ctx := opts.context(stderr)
	if err := client.Login(ctx); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", prog, err)
		return 1
	}
	name, data, err := client.GetArtifact(ctx, id)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", prog, err)
		return 1
	}
	if out == "" {
		out = name
	}
	if err := os.WriteFile(out, data, 0666); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", prog, err)
		return 1
	}
	fmt.Fprintf(stdout, "%s (%s)\n", out, humanize.Bytes(uint64(len(data))))
	return 0
}
