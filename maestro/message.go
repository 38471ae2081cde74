// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package maestro

import (
	"context"
	"net/url"
	"strings"
)

// ServerMessage is the generic success envelope returned by most
// mutating portal endpoints.
type ServerMessage struct {
	Result  string `json:"result"`
	Message string `json:"message"`
}

// MessageType selects the body format of a portal email message.
// Values are passed through to the portal without validation.
type MessageType string

const (
	MessageTypeText MessageType = "TEXT"
	MessageTypeHTML MessageType = "HTML"
)

// SendMessage emails the given addresses and registered portal users.
func (c *Client) SendMessage(ctx context.Context, emails, users []string, subject, body string, msgType MessageType, group string) (*ServerMessage, error) {
	params := url.Values{
		"email":   {strings.Join(emails, ",")},
		"users":   {strings.Join(users, ",")},
		"subject": {subject},
		"body":    {body},
		"type":    {string(msgType)},
		"group":   {group},
	}
	var sm ServerMessage
	if err := c.call(ctx, &sm, "POST", "app/api/message/send", params); err != nil {
		return nil, err
	}
	return &sm, nil
}
