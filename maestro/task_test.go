// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package maestro

import (
	"context"
	"encoding/json"

	check "gopkg.in/check.v1"
)

var _ = check.Suite(&taskSuite{})

type taskSuite struct{}

func (*taskSuite) TestCreateTask(c *check.C) {
	stub := loginStub()
	stub.Responses["/app/api/task/create"] = stubResponse{
		body: `{"payload":"{\"id\":123,\"activityLabel\":\"nightly-report\",\"state\":\"START\",\"test\":true}"}`,
	}
	client := stubClient(stub)
	ctx := context.Background()
	c.Assert(client.Login(ctx), check.IsNil)

	task, err := client.CreateTask(ctx, "nightly-report", map[string]interface{}{"region": "br"}, true)
	c.Assert(err, check.IsNil)
	c.Check(task.ID, check.Equals, 123)
	c.Check(task.ActivityLabel, check.Equals, "nightly-report")
	c.Check(task.State, check.Equals, TaskStateStart)
	c.Check(task.Test, check.Equals, true)

	req := stub.lastRequest()
	c.Check(req.Params.Get("activityLabel"), check.Equals, "nightly-report")
	c.Check(req.Params.Get("taskForTest"), check.Equals, "true")
	var params map[string]interface{}
	c.Assert(json.Unmarshal([]byte(req.Params.Get("jsonParams")), &params), check.IsNil)
	c.Check(params["region"], check.Equals, "br")
}

func (*taskSuite) TestCreateTaskNilParameters(c *check.C) {
	stub := loginStub()
	stub.Responses["/app/api/task/create"] = stubResponse{body: `{"payload":"{\"id\":1}"}`}
	client := stubClient(stub)
	ctx := context.Background()
	c.Assert(client.Login(ctx), check.IsNil)

	_, err := client.CreateTask(ctx, "act", nil, false)
	c.Assert(err, check.IsNil)
	req := stub.lastRequest()
	c.Check(req.Params.Get("jsonParams"), check.Equals, "{}")
	c.Check(req.Params.Get("taskForTest"), check.Equals, "false")
}

func (*taskSuite) TestCreateTaskBadPayload(c *check.C) {
	stub := loginStub()
	stub.Responses["/app/api/task/create"] = stubResponse{body: `{"payload":"not json"}`}
	client := stubClient(stub)
	ctx := context.Background()
	c.Assert(client.Login(ctx), check.IsNil)

	_, err := client.CreateTask(ctx, "act", nil, false)
	c.Check(err, check.FitsTypeOf, &ProtocolError{})
}

func (*taskSuite) TestFinishTask(c *check.C) {
	stub := loginStub()
	stub.Responses["/app/api/task/finish"] = stubResponse{body: `{"message":"task finished"}`}
	client := stubClient(stub)
	ctx := context.Background()
	c.Assert(client.Login(ctx), check.IsNil)

	sm, err := client.FinishTask(ctx, "123", FinishStatusSuccess, "all done")
	c.Assert(err, check.IsNil)
	c.Check(sm.Message, check.Equals, "task finished")

	req := stub.lastRequest()
	c.Check(req.Params.Get("taskId"), check.Equals, "123")
	c.Check(req.Params.Get("finishStatus"), check.Equals, "SUCCESS")
	c.Check(req.Params.Get("finishMessage"), check.Equals, "all done")
	c.Check(req.Params.Get("processedItems"), check.Equals, "1")
}

func (*taskSuite) TestRestartTask(c *check.C) {
	stub := loginStub()
	stub.Responses["/app/api/task/restart"] = stubResponse{body: `{"message":"restarted"}`}
	client := stubClient(stub)
	ctx := context.Background()
	c.Assert(client.Login(ctx), check.IsNil)

	sm, err := client.RestartTask(ctx, "42")
	c.Assert(err, check.IsNil)
	c.Check(sm.Message, check.Equals, "restarted")
	c.Check(stub.lastRequest().Params.Get("id"), check.Equals, "42")
}

func (*taskSuite) TestGetTask(c *check.C) {
	stub := loginStub()
	stub.Responses["/app/api/task/get"] = stubResponse{
		body: `{"id":42,"activityLabel":"act","state":"FINISHED","finishStatus":"FAILED","finishMessage":"boom"}`,
	}
	client := stubClient(stub)
	ctx := context.Background()
	c.Assert(client.Login(ctx), check.IsNil)

	task, err := client.GetTask(ctx, "42")
	c.Assert(err, check.IsNil)
	c.Check(task.ID, check.Equals, 42)
	c.Check(task.State, check.Equals, TaskStateFinished)
	c.Check(task.FinishStatus, check.Equals, FinishStatusFailed)
	c.Check(task.FinishMessage, check.Equals, "boom")

	req := stub.lastRequest()
	c.Check(req.Method, check.Equals, "GET")
	c.Check(req.Params.Get("id"), check.Equals, "42")
}
