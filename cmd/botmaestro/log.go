// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/botcity-dev/botcity-maestro-sdk-go/lib/cmd"
	"github.com/botcity-dev/botcity-maestro-sdk-go/maestro"
)

var createLogCommand = clientCommand("activityLabel name=label ...", nil, func(ctx context.Context, client *maestro.Client, args []string) (interface{}, error) {
	if len(args) < 2 {
		return nil, errors.New("expected arguments: activityLabel and at least one name=label column")
	}
	var columns []maestro.Column
	for _, arg := range args[1:] {
		name, label, err := splitPair(arg)
		if err != nil {
			return nil, err
		}
		columns = append(columns, maestro.Column{Name: name, Label: label})
	}
	return client.CreateLog(ctx, args[0], columns)
})

var logEntryCommand = clientCommand("activityLabel label=value ...", nil, func(ctx context.Context, client *maestro.Client, args []string) (interface{}, error) {
	if len(args) < 2 {
		return nil, errors.New("expected arguments: activityLabel and at least one label=value pair")
	}
	values := maestro.LogEntry{}
	for _, arg := range args[1:] {
		label, value, err := splitPair(arg)
		if err != nil {
			return nil, err
		}
		values[label] = value
	}
	return client.NewLogEntry(ctx, args[0], values)
})

var readLogCommand = newReadLogCommand()

func newReadLogCommand() cmd.RunFunc {
	var date string
	return clientCommand("activityLabel", func(flags *flag.FlagSet) {
		flags.StringVar(&date, "date", "", "initial date, format DD/MM/YYYY (empty retrieves everything)")
	}, func(ctx context.Context, client *maestro.Client, args []string) (interface{}, error) {
		if len(args) != 1 {
			return nil, errors.New("expected argument: activityLabel")
		}
		return client.GetLog(ctx, args[0], date)
	})
}

var deleteLogCommand = clientCommand("activityLabel", nil, func(ctx context.Context, client *maestro.Client, args []string) (interface{}, error) {
	if len(args) != 1 {
		return nil, errors.New("expected argument: activityLabel")
	}
	return client.DeleteLog(ctx, args[0])
})

func splitPair(arg string) (string, string, error) {
	k, v, ok := strings.Cut(arg, "=")
	if !ok || k == "" {
		return "", "", fmt.Errorf("%q: expected key=value", arg)
	}
	return k, v, nil
}
