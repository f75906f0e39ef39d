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
	"context"

	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"
	"github.com/yukondude/Cinch/config"
)

// MailSender delivers a single plain text message.
type MailSender interface {
	Send(ctx context.Context, from string, to string, subject string, body string) error
}

func NewSmtpMailSender(cfg config.MailConfig) MailSender {
	return &smtpMailSenderImpl{cfg: cfg}
}

type smtpMailSenderImpl struct {
	cfg config.MailConfig
}

func (s smtpMailSenderImpl) Send(ctx context.Context, from string, to string, subject string, body string) error {
	msg, err := buildMessage(from, to, subject, body)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(s.cfg.SmtpPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	client, err := mail.NewClient(s.cfg.SmtpHost, opts...)
	if err != nil {
		return errors.Wrap(err, "failed to create smtp client")
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrapf(err, "failed to send mail to %s", to)
	}
	return nil
}

func buildMessage(from string, to string, subject string, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, errors.Wrapf(err, "invalid sender address %s", from)
	}
	if err := msg.To(to); err != nil {
		return nil, errors.Wrapf(err, "invalid recipient address %s", to)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}
