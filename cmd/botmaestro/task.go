// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"

	"github.com/botcity-dev/botcity-maestro-sdk-go/lib/cmd"
	"github.com/botcity-dev/botcity-maestro-sdk-go/maestro"
)

var createTaskCommand = newCreateTaskCommand()

func newCreateTaskCommand() cmd.RunFunc {
	var jsonParams string
	var test bool
	return clientCommand("activityLabel", func(flags *flag.FlagSet) {
		flags.StringVar(&jsonParams, "params", "{}", "task parameters as a JSON object")
		flags.BoolVar(&test, "test", false, "create the task as a test task")
	}, func(ctx context.Context, client *maestro.Client, args []string) (interface{}, error) {
		if len(args) != 1 {
			return nil, errors.New("expected argument: activityLabel")
		}
		var params map[string]interface{}
		if err := json.Unmarshal([]byte(jsonParams), &params); err != nil {
			return nil, fmt.Errorf("-params: %v", err)
		}
		return client.CreateTask(ctx, args[0], params, test)
	})
}

var finishTaskCommand = newFinishTaskCommand()

func newFinishTaskCommand() cmd.RunFunc {
	var status, message string
	return clientCommand("taskID", func(flags *flag.FlagSet) {
		flags.StringVar(&status, "status", string(maestro.FinishStatusSuccess), "finish status: SUCCESS, FAILED or PARTIALLY_COMPLETED")
		flags.StringVar(&message, "message", "", "message associated with the finish")
	}, func(ctx context.Context, client *maestro.Client, args []string) (interface{}, error) {
		if len(args) != 1 {
			return nil, errors.New("expected argument: taskID")
		}
		return client.FinishTask(ctx, args[0], maestro.TaskFinishStatus(status), message)
	})
}

var restartTaskCommand = clientCommand("taskID", nil, func(ctx context.Context, client *maestro.Client, args []string) (interface{}, error) {
	if len(args) != 1 {
		return nil, errors.New("expected argument: taskID")
	}
	return client.RestartTask(ctx, args[0])
})

var getTaskCommand = clientCommand("taskID", nil, func(ctx context.Context, client *maestro.Client, args []string) (interface{}, error) {
	if len(args) != 1 {
		return nil, errors.New("expected argument: taskID")
	}
	return client.GetTask(ctx, args[0])
})
