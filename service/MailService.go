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
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/yukondude/Cinch/repository"
)

type MailService interface {
	// UserMail sends a message to the email address registered for userId.
	UserMail(ctx context.Context, userId int64, subject string, message string) error
	AdminMail(ctx context.Context, to string, subject string, message string) error
}

func NewMailService(userRepository repository.UserRepository, sender MailSender, from string) MailService {
	return &mailServiceImpl{
		userRepository: userRepository,
		sender:         sender,
		from:           from,
	}
}

type mailServiceImpl struct {
	userRepository repository.UserRepository
	sender         MailSender
	from           string
}

func (m mailServiceImpl) UserMail(ctx context.Context, userId int64, subject string, message string) error {
	user, err := m.userRepository.GetUserById(ctx, userId)
	if err != nil {
		return err
	}
	email := user.Email()
	if email == "" {
		return fmt.Errorf("user %d has no email address", userId)
	}
	if err := m.sender.Send(ctx, m.from, email, subject, message); err != nil {
		return err
	}
	log.Debugf("Mail '%s' sent to user %d", subject, userId)
	return nil
}

func (m mailServiceImpl) AdminMail(ctx context.Context, to string, subject string, message string) error {
	if err := m.sender.Send(ctx, m.from, to, subject, message); err != nil {
		return err
	}
	log.Debugf("Mail '%s' sent to %s", subject, to)
	return nil
}
