// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package maestro

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// PostArtifact uploads an artifact for the given task. The content is
// read from body and sent as a multipart part named "body" with
// content type application/octet-stream; name is the display name
// shown on the portal.
func (c *Client) PostArtifact(ctx context.Context, taskID int, name string, body io.Reader) (*ServerMessage, error) {
	if err := c.ensureToken(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := map[string]string{
		"taskId":       strconv.Itoa(taskID),
		"name":         name,
		"access_token": c.AccessToken,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="body"; filename=%q`, name))
	hdr.Set("Content-Type", "application/octet-stream")
	part, err := w.CreatePart(hdr)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, body); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.Server+"/app/api/newArtifact", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	respBuf, err := readResponse(resp)
	if err != nil {
		return nil, err
	}
	var sm ServerMessage
	if err := json.Unmarshal(respBuf, &sm); err != nil {
		return nil, &ProtocolError{URL: requestURL(req), Err: err}
	}
	return &sm, nil
}

// PostArtifactFile uploads the file at path as an artifact for the
// given task. The file handle is opened, read and released within
// this call.
func (c *Client) PostArtifactFile(ctx context.Context, taskID int, name, path string) (*ServerMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return c.PostArtifact(ctx, taskID, name, f)
}

// GetArtifact retrieves an artifact from the portal, returning its
// display filename and raw content.
func (c *Client) GetArtifact(ctx context.Context, artifactID int) (string, []byte, error) {
	params := url.Values{"id": {strconv.Itoa(artifactID)}}
	resp, err := c.callRaw(ctx, "GET", "app/api/artifact/get", params)
	if err != nil {
		return "", nil, err
	}
	buf, err := readResponse(resp)
	if err != nil {
		return "", nil, err
	}
	return artifactFilename(resp.Header.Get("Content-Disposition")), buf, nil
}

// artifactFilename extracts an artifact's display name from a
// Content-Disposition header value. The portal stores files as
// "name_<suffix>.ext" where the suffix between the last "_" and the
// last "." is internal bookkeeping, so that segment is dropped to
// recover "name.ext".
func artifactFilename(disposition string) string {
	name := disposition
	if i := strings.LastIndex(name, "="); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Trim(name, `"`)
	us := strings.LastIndex(name, "_")
	dot := strings.LastIndex(name, ".")
	if us >= 0 && dot > us {
		name = name[:us] + name[dot:]
	}
	return name
}
