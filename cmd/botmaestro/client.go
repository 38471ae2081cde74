// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/botcity-dev/botcity-maestro-sdk-go/config"
	"github.com/botcity-dev/botcity-maestro-sdk-go/ctxlog"
	"github.com/botcity-dev/botcity-maestro-sdk-go/lib/cmd"
	"github.com/botcity-dev/botcity-maestro-sdk-go/maestro"
	"github.com/sirupsen/logrus"
)

// clientOpts are the flags shared by every subcommand that talks to
// the portal. Explicit flags override environment variables, which
// override the credentials file.
type clientOpts struct {
	server    string
	login     string
	key       string
	confPath  string
	logLevel  string
	logFormat string
}

func (opts *clientOpts) addFlags(flags *flag.FlagSet) {
	flags.StringVar(&opts.server, "server", "", "portal base `URL` (overrides env/config file)")
	flags.StringVar(&opts.login, "login", "", "login identifier (overrides env/config file)")
	flags.StringVar(&opts.key, "key", "", "access key (overrides env/config file)")
	flags.StringVar(&opts.confPath, "config", "", "credentials `file` (default ~/.config/botmaestro/credentials.json)")
	flags.StringVar(&opts.logLevel, "log-level", "warning", "logging level")
	flags.StringVar(&opts.logFormat, "log-format", "text", "logging format: text or json")
}

func (opts *clientOpts) credentials() (config.Credentials, error) {
	creds, err := config.Load(opts.confPath)
	if err != nil {
		return config.Credentials{}, err
	}
	if opts.server != "" {
		creds.Server = opts.server
	}
	if opts.login != "" {
		creds.Login = opts.login
	}
	if opts.key != "" {
		creds.Key = opts.key
	}
	return creds, nil
}

func (opts *clientOpts) client() (*maestro.Client, error) {
	creds, err := opts.credentials()
	if err != nil {
		return nil, err
	}
	return maestro.NewClient(creds.Server, creds.Login, creds.Key), nil
}

func (opts *clientOpts) context(stderr io.Writer) context.Context {
	logger := ctxlog.New(stderr, opts.logFormat, opts.logLevel)
	return ctxlog.Context(context.Background(), logrus.NewEntry(logger))
}

// clientCommand adapts a portal operation into a RunFunc: it parses
// the shared client flags plus the command's own, logs in, runs fn,
// and prints fn's result to stdout as JSON.
func clientCommand(positional string, setup func(flags *flag.FlagSet), fn func(ctx context.Context, client *maestro.Client, args []string) (interface{}, error)) cmd.RunFunc {
	return func(prog string, args []string, _ io.Reader, stdout, stderr io.Writer) int {
		var opts clientOpts
		flags := flag.NewFlagSet(prog, flag.ContinueOnError)
		opts.addFlags(flags)
		if setup != nil {
			setup(flags)
		}
		if ok, code := cmd.ParseFlags(flags, prog, args, positional, stderr); !ok {
			return code
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
		result, err := fn(ctx, client, flags.Args())
		if err != nil {
			fmt.Fprintf(stderr, "%s: %s\n", prog, err)
			return 1
		}
		if result != nil {
			buf, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				fmt.Fprintf(stderr, "%s: %s\n", prog, err)
				return 1
			}
			fmt.Fprintln(stdout, string(buf))
		}
		return 0
	}
}

// configCommand prints the effective credentials as YAML, after
// resolving the file/env/flag precedence.
var configCommand cmd.RunFunc = func(prog string, args []string, _ io.Reader, stdout, stderr io.Writer) int {
	var opts clientOpts
	flags := flag.NewFlagSet(prog, flag.ContinueOnError)
	opts.addFlags(flags)
	if ok, code := cmd.ParseFlags(flags, prog, args, "", stderr); !ok {
		return code
	}
	creds, err := opts.credentials()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", prog, err)
		return 1
	}
	if err := config.Dump(stdout, creds); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", prog, err)
		return 1
	}
	return 0
}
