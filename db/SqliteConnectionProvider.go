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
	"database/sql"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const (
	sqliteDriverName = "sqlite"
	sqliteMemory     = ":memory:"
	busyTimeoutMs    = 5000
)

// SqliteConnectionProvider gives access to a SQLite database, the backend Cinch uses for
// small installations.
type SqliteConnectionProvider interface {
	GetConnection() *sql.DB
	Close() error
}

type sqliteConnectionProviderImpl struct {
	db *sql.DB
}

// NewSqliteConnectionProvider opens the database file at path (or ":memory:").
// A single connection is used: the purge is sequential and an in-memory database only
// lives as long as its connection.
func NewSqliteConnectionProvider(path string) (SqliteConnectionProvider, error) {
	conn, err := sql.Open(sqliteDriverName, sqliteDsn(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %s", path)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, errors.Wrapf(err, "failed to connect to sqlite database %s", path)
	}
	return &sqliteConnectionProviderImpl{db: conn}, nil
}

func sqliteDsn(path string) string {
	if path == sqliteMemory || strings.Contains(path, "?") {
		return path
	}
	return fmt.Sprintf("%s?_pragma=busy_timeout(%d)", path, busyTimeoutMs)
}

func (s *sqliteConnectionProviderImpl) GetConnection() *sql.DB {
	return s.db
}

func (s *sqliteConnectionProviderImpl) Close() error {
	return s.db.Close()
}

// QuoteIdent quotes a table or column name for SQLite.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
