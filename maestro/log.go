// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package maestro

import (
	"context"
	"encoding/json"
	"net/url"
)

// Column describes one field of a portal log schema. A log is defined
// by an ordered sequence of Columns.
type Column struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// LogEntry is one row of a portal log, keyed by column label. Values
// are whatever the portal stored; the client does not narrow them.
type LogEntry map[string]interface{}

// CreateLog creates a new log for the activity identified by
// activityLabel, with the given column schema.
func (c *Client) CreateLog(ctx context.Context, activityLabel string, columns []Column) (*ServerMessage, error) {
	cols, err := json.Marshal(columns)
	if err != nil {
		return nil, err
	}
	params := url.Values{
		"activityLabel": {activityLabel},
		"columns":       {string(cols)},
	}
	var sm ServerMessage
	if err := c.call(ctx, &sm, "POST", "app/api/log/create", params); err != nil {
		return nil, err
	}
	return &sm, nil
}

// NewLogEntry appends one row to the log named by activityLabel.
func (c *Client) NewLogEntry(ctx context.Context, activityLabel string, values LogEntry) (*ServerMessage, error) {
	cols, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	params := url.Values{
		"logName": {activityLabel},
		"columns": {string(cols)},
	}
	var sm ServerMessage
	if err := c.call(ctx, &sm, "POST", "app/api/newLogEntry", params); err != nil {
		return nil, err
	}
	return &sm, nil
}

// GetLog fetches log rows for the given activity, starting at date
// (format DD/MM/YYYY). An empty date retrieves everything.
//
// The portal returns the rows as a JSON array serialized inside the
// envelope's message field, each element wrapping one row in a
// "columns" object; GetLog unwraps that into plain entries.
func (c *Client) GetLog(ctx context.Context, activityLabel, date string) ([]LogEntry, error) {
	params := url.Values{
		"activityLabel": {activityLabel},
		"date":          {date},
	}
	var sm ServerMessage
	if err := c.call(ctx, &sm, "GET", "app/api/log/read", params); err != nil {
		return nil, err
	}
	var rows []struct {
		Columns LogEntry `json:"columns"`
	}
	if err := json.Unmarshal([]byte(sm.Message), &rows); err != nil {
		return nil, &ProtocolError{URL: c.Server + "/app/api/log/read", Err: err}
	}
	entries := make([]LogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.Columns)
	}
	return entries, nil
}

// DeleteLog removes the given activity's log and all of its entries.
func (c *Client) DeleteLog(ctx context.Context, activityLabel string) (*ServerMessage, error) {
	params := url.Values{"activityLabel": {activityLabel}}
	var sm ServerMessage
	if err := c.call(ctx, &sm, "POST", "app/api/log/delete", params); err != nil {
		return nil, err
	}
	return &sm, nil
}
