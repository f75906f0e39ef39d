// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukondude/Cinch/db/dbtest"
	"github.com/yukondude/Cinch/exception"
	"github.com/yukondude/Cinch/repository"
)

type sentMail struct {
	from, to, subject, body string
}

type recordingSender struct {
	sent []sentMail
	err  error
}

func (r *recordingSender) Send(ctx context.Context, from string, to string, subject string, body string) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, sentMail{from: from, to: to, subject: subject, body: body})
	return nil
}

func TestUserMail(t *testing.T) {
	cp := dbtest.NewSqlite(t)
	dbtest.Exec(t, cp, `INSERT INTO "user" (id, username) VALUES (1, 'Reader@Example.org'), (2, '  ')`)
	sender := &recordingSender{}
	svc := NewMailService(repository.NewUserRepositorySQLite(cp), sender, "admin@example.org")

	require.NoError(t, svc.UserMail(context.Background(), 1, "subject", "body"))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, sentMail{from: "admin@example.org", to: "reader@example.org", subject: "subject", body: "body"}, sender.sent[0])

	err := svc.UserMail(context.Background(), 3, "subject", "body")
	var notFound exception.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	assert.EqualError(t, svc.UserMail(context.Background(), 2, "subject", "body"), "user 2 has no email address")
	assert.Len(t, sender.sent, 1)
}

func TestAdminMail(t *testing.T) {
	cp := dbtest.NewSqlite(t)
	sender := &recordingSender{}
	svc := NewMailService(repository.NewUserRepositorySQLite(cp), sender, "from@example.org")

	require.NoError(t, svc.AdminMail(context.Background(), "admin@example.org", "s", "b"))
	assert.Equal(t, []sentMail{{from: "from@example.org", to: "admin@example.org", subject: "s", body: "b"}}, sender.sent)

	sender.err = errors.New("smtp down")
	assert.EqualError(t, svc.AdminMail(context.Background(), "admin@example.org", "s", "b"), "smtp down")
}

func TestBuildMessage(t *testing.T) {
	msg, err := buildMessage("admin@example.org", "reader@example.org", "You have files", "line one\r\nline two")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, "Subject: You have files")
	assert.Contains(t, raw, "<admin@example.org>")
	assert.Contains(t, raw, "<reader@example.org>")
	assert.Contains(t, raw, "line one")

	_, err = buildMessage("not an address", "reader@example.org", "s", "b")
	assert.Error(t, err)
	_, err = buildMessage("admin@example.org", "", "s", "b")
	assert.Error(t, err)
}
