// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package maestro

import (
	"context"

	check "gopkg.in/check.v1"
)

var _ = check.Suite(&messageSuite{})

type messageSuite struct{}

func (*messageSuite) TestSendMessage(c *check.C) {
	stub := loginStub()
	stub.Responses["/app/api/message/send"] = stubResponse{body: `{"message":"sent"}`}
	client := stubClient(stub)
	ctx := context.Background()
	c.Assert(client.Login(ctx), check.IsNil)

	sm, err := client.SendMessage(ctx,
		[]string{"ops@example.com", "dev@example.com"},
		[]string{"jane"},
		"nightly report", "all good", MessageTypeHTML, "finance")
	c.Assert(err, check.IsNil)
	c.Check(sm.Message, check.Equals, "sent")

	req := stub.lastRequest()
	c.Check(req.Params.Get("email"), check.Equals, "ops@example.com,dev@example.com")
	c.Check(req.Params.Get("users"), check.Equals, "jane")
	c.Check(req.Params.Get("subject"), check.Equals, "nightly report")
	c.Check(req.Params.Get("body"), check.Equals, "all good")
	c.Check(req.Params.Get("type"), check.Equals, "HTML")
	c.Check(req.Params.Get("group"), check.Equals, "finance")
}

func (*messageSuite) TestAlert(c *check.C) {
	stub := loginStub()
	stub.Responses["/app/api/alert/send"] = stubResponse{body: `{"message":"alert sent"}`}
	client := stubClient(stub)
	ctx := context.Background()
	c.Assert(client.Login(ctx), check.IsNil)

	sm, err := client.Alert(ctx, "123", "disk full", "cleanup needed", AlertTypeWarn)
	c.Assert(err, check.IsNil)
	c.Check(sm.Message, check.Equals, "alert sent")

	req := stub.lastRequest()
	c.Check(req.Params.Get("taskId"), check.Equals, "123")
	c.Check(req.Params.Get("title"), check.Equals, "disk full")
	c.Check(req.Params.Get("message"), check.Equals, "cleanup needed")
	c.Check(req.Params.Get("type"), check.Equals, "WARN")
}
