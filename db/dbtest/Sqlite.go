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

// Package dbtest provides throwaway databases carrying the Cinch tables the purge touches.
package dbtest

import (
	"testing"

	"github.com/yukondude/Cinch/db"
)

const SqliteSchema = `
CREATE TABLE file_info (
	id INTEGER PRIMARY KEY,
	temp_file_path TEXT,
	file_type_id INTEGER,
	download_time TEXT,
	virus_check INTEGER NOT NULL DEFAULT 0,
	checksum_run INTEGER NOT NULL DEFAULT 0,
	metadata INTEGER NOT NULL DEFAULT 0,
	expired_deleted INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE zip_gz_downloads (
	id INTEGER PRIMARY KEY,
	user_id INTEGER NOT NULL,
	path TEXT,
	creationdate TEXT,
	deletion_reminder INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE csv_meta_paths (
	id INTEGER PRIMARY KEY,
	user_id INTEGER NOT NULL,
	path TEXT,
	creationdate TEXT
);
CREATE TABLE upload (
	id INTEGER PRIMARY KEY,
	user_id INTEGER NOT NULL,
	path TEXT,
	process_time TEXT,
	processed INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE files_for_download (
	id INTEGER PRIMARY KEY,
	user_id INTEGER NOT NULL,
	url TEXT,
	processed INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE "user" (
	id INTEGER PRIMARY KEY,
	username TEXT NOT NULL
);
`

// PostgresSchema is SqliteSchema with Postgres column types.
const PostgresSchema = `
CREATE TABLE file_info (
	id SERIAL PRIMARY KEY,
	temp_file_path VARCHAR,
	file_type_id INTEGER,
	download_time TIMESTAMP WITHOUT TIME ZONE,
	virus_check INTEGER NOT NULL DEFAULT 0,
	checksum_run INTEGER NOT NULL DEFAULT 0,
	metadata INTEGER NOT NULL DEFAULT 0,
	expired_deleted INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE zip_gz_downloads (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL,
	path VARCHAR,
	creationdate TIMESTAMP WITHOUT TIME ZONE,
	deletion_reminder INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE csv_meta_paths (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL,
	path VARCHAR,
	creationdate TIMESTAMP WITHOUT TIME ZONE
);
CREATE TABLE upload (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL,
	path VARCHAR,
	process_time TIMESTAMP WITHOUT TIME ZONE,
	processed INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE files_for_download (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL,
	url VARCHAR,
	processed INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE "user" (
	id SERIAL PRIMARY KEY,
	username VARCHAR NOT NULL
);
`

// NewSqlite returns an in-memory database with SqliteSchema applied, closed when the test ends.
func NewSqlite(t testing.TB) db.SqliteConnectionProvider {
	t.Helper()
	cp, err := db.NewSqliteConnectionProvider(":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	t.Cleanup(func() { cp.Close() })

	if _, err := cp.GetConnection().Exec(SqliteSchema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return cp
}

// Exec runs a statement and fails the test on error.
func Exec(t testing.TB, cp db.SqliteConnectionProvider, query string, args ...interface{}) int64 {
	t.Helper()
	res, err := cp.GetConnection().Exec(query, args...)
	if err != nil {
		t.Fatalf("failed to execute %q: %v", query, err)
	}
	id, _ := res.LastInsertId()
	return id
}

// Count returns the number of rows of table matching where (may be empty).
func Count(t testing.TB, cp db.SqliteConnectionProvider, table string, where string, args ...interface{}) int {
	t.Helper()
	query := "SELECT count(*) FROM " + db.QuoteIdent(table)
	if where != "" {
		query += " WHERE " + where
	}
	var count int
	if err := cp.GetConnection().QueryRow(query, args...).Scan(&count); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return count
}
