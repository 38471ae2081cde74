// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

// Command botmaestro is a command line front end for the BotCity
// Maestro portal: every portal operation exposed by the SDK is
// available as a subcommand.
package main

import (
	"os"

	"github.com/botcity-dev/botcity-maestro-sdk-go/lib/cmd"
)

var handler = cmd.Multi(map[string]cmd.RunFunc{
	"version":   cmd.Version,
	"-version":  cmd.Version,
	"--version": cmd.Version,

	"config": configCommand,

	"alert":   alertCommand,
	"message": messageCommand,

	"create-task":  createTaskCommand,
	"finish-task":  finishTaskCommand,
	"restart-task": restartTaskCommand,
	"get-task":     getTaskCommand,

	"create-log": createLogCommand,
	"log-entry":  logEntryCommand,
	"read-log":   readLogCommand,
	"delete-log": deleteLogCommand,

	"upload-artifact":   uploadArtifactCommand,
	"download-artifact": downloadArtifactCommand,
})

func main() {
	os.Exit(handler("botmaestro", os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
