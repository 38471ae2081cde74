// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"strings"

	"github.com/botcity-dev/botcity-maestro-sdk-go/lib/cmd"
	"github.com/botcity-dev/botcity-maestro-sdk-go/maestro"
)

var alertCommand = newAlertCommand()

func newAlertCommand() cmd.RunFunc {
	var alertType string
	return clientCommand("taskID title message", func(flags *flag.FlagSet) {
		flags.StringVar(&alertType, "type", string(maestro.AlertTypeInfo), "alert type: INFO, WARN or ERROR")
	}, func(ctx context.Context, client *maestro.Client, args []string) (interface{}, error) {
		if len(args) != 3 {
			return nil, errors.New("expected arguments: taskID title message")
		}
		return client.Alert(ctx, args[0], args[1], args[2], maestro.AlertType(alertType))
	})
}

var messageCommand = newMessageCommand()

func newMessageCommand() cmd.RunFunc {
	var msgType, group, emails, users string
	return clientCommand("subject body", func(flags *flag.FlagSet) {
		flags.StringVar(&msgType, "type", string(maestro.MessageTypeText), "message body type: TEXT or HTML")
		flags.StringVar(&group, "group", "", "message group information")
		flags.StringVar(&emails, "email", "", "comma-separated email recipients")
		flags.StringVar(&users, "user", "", "comma-separated portal user recipients")
	}, func(ctx context.Context, client *maestro.Client, args []string) (interface{}, error) {
		if len(args) != 2 {
			return nil, errors.New("expected arguments: subject body")
		}
		return client.SendMessage(ctx, splitList(emails), splitList(users), args[0], args[1], maestro.MessageType(msgType), group)
	})
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
