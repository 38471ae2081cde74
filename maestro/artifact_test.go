// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package maestro

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	check "gopkg.in/check.v1"
)

var _ = check.Suite(&artifactSuite{})

type artifactSuite struct {
	server *httptest.Server
	client *Client

	// fields of the last multipart upload, captured by the handler
	uploadFields   map[string]string
	uploadBody     []byte
	uploadBodyName string
	uploadBodyType string
}

func (s *artifactSuite) SetUpTest(c *check.C) {
	mux := http.NewServeMux()
	mux.HandleFunc("/app/api/login", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"access_token":"tok-123"}`)
	})
	mux.HandleFunc("/app/api/newArtifact", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.uploadFields = map[string]string{}
		for k := range r.MultipartForm.Value {
			s.uploadFields[k] = r.FormValue(k)
		}
		f, hdr, err := r.FormFile("body")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer f.Close()
		s.uploadBody, _ = io.ReadAll(f)
		s.uploadBodyName = hdr.Filename
		s.uploadBodyType = hdr.Header.Get("Content-Type")
		fmt.Fprint(w, `{"message":"artifact stored"}`)
	})
	mux.HandleFunc("/app/api/artifact/get", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("access_token") != "tok-123" {
			http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Disposition", `attachment; filename=report_20240101.pdf`)
		w.Write([]byte("%PDF-1.4 fake"))
	})
	s.server = httptest.NewServer(mux)
	s.client = NewClient(s.server.URL, "jane", "xyzzy")
	c.Assert(s.client.Login(context.Background()), check.IsNil)
}

func (s *artifactSuite) TearDownTest(c *check.C) {
	s.server.Close()
}

func (s *artifactSuite) TestPostArtifact(c *check.C) {
	sm, err := s.client.PostArtifact(context.Background(), 123, "report.pdf", strings.NewReader("hello artifact"))
	c.Assert(err, check.IsNil)
	c.Check(sm.Message, check.Equals, "artifact stored")

	c.Check(s.uploadFields["taskId"], check.Equals, "123")
	c.Check(s.uploadFields["name"], check.Equals, "report.pdf")
	c.Check(s.uploadFields["access_token"], check.Equals, "tok-123")
	c.Check(string(s.uploadBody), check.Equals, "hello artifact")
	c.Check(s.uploadBodyName, check.Equals, "report.pdf")
	c.Check(s.uploadBodyType, check.Equals, "application/octet-stream")
}

func (s *artifactSuite) TestPostArtifactFile(c *check.C) {
	path := filepath.Join(c.MkDir(), "out.csv")
	c.Assert(os.WriteFile(path, []byte("a,b\n1,2\n"), 0666), check.IsNil)

	sm, err := s.client.PostArtifactFile(context.Background(), 7, "out.csv", path)
	c.Assert(err, check.IsNil)
	c.Check(sm.Message, check.Equals, "artifact stored")
	c.Check(string(s.uploadBody), check.Equals, "a,b\n1,2\n")
}

func (s *artifactSuite) TestPostArtifactFileMissing(c *check.C) {
	_, err := s.client.PostArtifactFile(context.Background(), 7, "nope", filepath.Join(c.MkDir(), "nope"))
	c.Check(os.IsNotExist(err), check.Equals, true)
}

func (s *artifactSuite) TestGetArtifact(c *check.C) {
	name, data, err := s.client.GetArtifact(context.Background(), 55)
	c.Assert(err, check.IsNil)
	c.Check(name, check.Equals, "report.pdf")
	c.Check(string(data), check.Equals, "%PDF-1.4 fake")
}

func (s *artifactSuite) TestArtifactFilename(c *check.C) {
	for _, trial := range []struct {
		disposition string
		expect      string
	}{
		{`attachment; filename=report_20240101.pdf`, "report.pdf"},
		{`attachment; filename="report_20240101.pdf"`, "report.pdf"},
		{`attachment; filename=orders_v2_20240101.csv`, "orders_v2.csv"},
		{`attachment; filename=plain.pdf`, "plain.pdf"},
		{`attachment; filename=noext_123`, "noext_123"},
		{``, ""},
	} {
		c.Check(artifactFilename(trial.disposition), check.Equals, trial.expect,
			check.Commentf("disposition %q", trial.disposition))
	}
}
