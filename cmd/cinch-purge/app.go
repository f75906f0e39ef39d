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

package main

import (
	"fmt"

	"github.com/yukondude/Cinch/config"
	"github.com/yukondude/Cinch/db"
	"github.com/yukondude/Cinch/repository"
	"github.com/yukondude/Cinch/service"
	"github.com/yukondude/Cinch/service/purge"
)

type app struct {
	purger purge.Purger
	close  func() error
}

func newApp(cfg *config.Config) (*app, error) {
	var purgeRepository repository.PurgeRepository
	var userRepository repository.UserRepository
	var closer func() error

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		cp := db.NewConnectionProvider(cfg.Database)
		purgeRepository = repository.NewPurgeRepositoryPG(cp)
		userRepository = repository.NewUserRepositoryPG(cp)
		closer = cp.Close
	case config.DriverSqlite:
		cp, err := db.NewSqliteConnectionProvider(cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		purgeRepository = repository.NewPurgeRepositorySQLite(cp)
		userRepository = repository.NewUserRepositorySQLite(cp)
		closer = cp.Close
	default:
		return nil, fmt.Errorf("unsupported database driver %s", cfg.Database.Driver)
	}

	mailService := service.NewMailService(userRepository, service.NewSmtpMailSender(cfg.Mail), cfg.Mail.Sender())
	return &app{
		purger: purge.NewPurger(purgeRepository, mailService, purge.NewConfig(cfg)),
		close:  closer,
	}, nil
}

func (a *app) Close() error {
	return a.close()
}
