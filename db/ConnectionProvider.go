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

package db

import (
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/yukondude/Cinch/config"
)

type ConnectionProvider interface {
	GetConnection() *pg.DB
	Close() error
}

type connectionProviderImpl struct {
	creds config.DatabaseConfig
	db    *pg.DB
}

func NewConnectionProvider(creds config.DatabaseConfig) ConnectionProvider {
	return &connectionProviderImpl{creds: creds}
}

func (c *connectionProviderImpl) GetConnection() *pg.DB {
	if c.db == nil {
		c.db = pg.Connect(&pg.Options{
			Addr:       fmt.Sprintf("%s:%d", c.creds.Host, c.creds.Port),
			User:       c.creds.Username,
			Password:   c.creds.Password,
			Database:   c.creds.Name,
			PoolSize:   c.creds.PoolSize,
			MaxRetries: 5,
		})
	}
	return c.db
}

func (c *connectionProviderImpl) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}
