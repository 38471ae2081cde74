// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package maestro

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// TaskState is a string corresponding to a portal task state.
type TaskState string

const (
	TaskStateStart    TaskState = "START"
	TaskStateRunning  TaskState = "RUNNING"
	TaskStateFinished TaskState = "FINISHED"
	TaskStateCanceled TaskState = "CANCELED"
)

// TaskFinishStatus is the condition in which a task is finished.
// Values are passed through to the portal without validation.
type TaskFinishStatus string

const (
	FinishStatusSuccess            TaskFinishStatus = "SUCCESS"
	FinishStatusFailed             TaskFinishStatus = "FAILED"
	FinishStatusPartiallyCompleted TaskFinishStatus = "PARTIALLY_COMPLETED"
)

// AutomationTask is a unit of automation work tracked by the portal.
type AutomationTask struct {
	ID            int                    `json:"id"`
	ActivityLabel string                 `json:"activityLabel"`
	Parameters    map[string]interface{} `json:"parameters"`
	State         TaskState              `json:"state"`
	Test          bool                   `json:"test"`
	FinishStatus  TaskFinishStatus       `json:"finishStatus"`
	FinishMessage string                 `json:"finishMessage"`
}

// CreateTask creates a task for the activity identified by
// activityLabel. The portal wraps the created task in a JSON-encoded
// "payload" string inside the response envelope.
func (c *Client) CreateTask(ctx context.Context, activityLabel string, parameters map[string]interface{}, test bool) (*AutomationTask, error) {
	if parameters == nil {
		parameters = map[string]interface{}{}
	}
	jsonParams, err := json.Marshal(parameters)
	if err != nil {
		return nil, err
	}
	params := url.Values{
		"activityLabel": {activityLabel},
		"jsonParams":    {string(jsonParams)},
		"taskForTest":   {strconv.FormatBool(test)},
	}
	var envelope struct {
		Payload string `json:"payload"`
	}
	if err := c.call(ctx, &envelope, "POST", "app/api/task/create", params); err != nil {
		return nil, err
	}
	var task AutomationTask
	if err := json.Unmarshal([]byte(envelope.Payload), &task); err != nil {
		return nil, &ProtocolError{URL: c.Server + "/app/api/task/create", Err: err}
	}
	return &task, nil
}

// FinishTask finishes the given task with the given status and an
// optional message.
func (c *Client) FinishTask(ctx context.Context, taskID string, status TaskFinishStatus, message string) (*ServerMessage, error) {
	// The portal requires a processedItems count, but the SDK keeps
	// no per-item accounting, so a single processed item is
	// reported.
	params := url.Values{
		"taskId":         {taskID},
		"finishStatus":   {string(status)},
		"finishMessage":  {message},
		"processedItems": {"1"},
	}
	var sm ServerMessage
	if err := c.call(ctx, &sm, "POST", "app/api/task/finish", params); err != nil {
		return nil, err
	}
	return &sm, nil
}

// RestartTask queues the given task to run again.
func (c *Client) RestartTask(ctx context.Context, taskID string) (*ServerMessage, error) {
	params := url.Values{"id": {taskID}}
	var sm ServerMessage
	if err := c.call(ctx, &sm, "POST", "app/api/task/restart", params); err != nil {
		return nil, err
	}
	return &sm, nil
}

// GetTask fetches details about the given task.
func (c *Client) GetTask(ctx context.Context, taskID string) (*AutomationTask, error) {
	params := url.Values{"id": {taskID}}
	var task AutomationTask
	if err := c.call(ctx, &task, "GET", "app/api/task/get", params); err != nil {
		return nil, err
	}
	return &task, nil
}
