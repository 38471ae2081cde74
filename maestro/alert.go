// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package maestro

import (
	"context"
	"net/url"
)

// AlertType is the severity of a portal alert. The portal is the
// source of truth for permitted values; the client passes them
// through without validation.
type AlertType string

const (
	AlertTypeInfo  AlertType = "INFO"
	AlertTypeWarn  AlertType = "WARN"
	AlertTypeError AlertType = "ERROR"
)

// Alert registers an alert message for the given task on the portal.
func (c *Client) Alert(ctx context.Context, taskID, title, message string, alertType AlertType) (*ServerMessage, error) {
	params := url.Values{
		"taskId":  {taskID},
		"title":   {title},
		"message": {message},
		"type":    {string(alertType)},
	}
	var sm ServerMessage
	if err := c.call(ctx, &sm, "POST", "app/api/alert/send", params); err != nil {
		return nil, err
	}
	return &sm, nil
}
