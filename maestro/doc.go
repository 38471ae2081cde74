// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

// Package maestro is a Go SDK for the BotCity Maestro portal.
//
// A Client authenticates with a login/key pair, obtains an access
// token, and exposes one method per portal endpoint: sending alerts
// and messages, creating/finishing/restarting/fetching automation
// tasks, managing structured logs, and uploading/downloading binary
// artifacts.
//
// Typical use:
//
//	client := maestro.NewClient("https://developers.botcity.dev", login, key)
//	err := client.Login(ctx)
//	...
//	task, err := client.CreateTask(ctx, "my-activity", params, false)
package maestro
