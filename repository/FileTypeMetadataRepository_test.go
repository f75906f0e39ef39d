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

package repository

import (
	"context"
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukondude/Cinch/db/dbtest"
)

func orderedOf(pairs ...interface{}) *orderedmap.OrderedMap {
	m := orderedmap.New()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i].(string), pairs[i+1])
	}
	return m
}

func TestWriteMetadata(t *testing.T) {
	cp := dbtest.NewSqlite(t)
	dbtest.Exec(t, cp, `CREATE TABLE pdf_metadata (
		id INTEGER PRIMARY KEY,
		author TEXT,
		title TEXT,
		file_id INTEGER,
		user_id INTEGER
	)`)

	possible := orderedOf("Author", "author", "dc:title", "title")
	metadata := orderedOf("dc:title", ": My <b>Doc</b>", "Author", "  Jane  ", "Producer", "ignored")
	ids := orderedOf("file_id", 5, "user_id", 2)

	repo := NewFileTypeMetadataRepositorySQLite(cp)
	require.NoError(t, repo.WriteMetadata(context.Background(), "pdf_metadata", possible, metadata, ids))

	var author, title string
	var fileId, userId int64
	err := cp.GetConnection().QueryRow(`SELECT author, title, file_id, user_id FROM pdf_metadata`).
		Scan(&author, &title, &fileId, &userId)
	require.NoError(t, err)
	assert.Equal(t, "Jane", author)
	assert.Equal(t, "My Doc", title)
	assert.Equal(t, int64(5), fileId)
	assert.Equal(t, int64(2), userId)
}

func TestWriteMetadataWithoutKnownFields(t *testing.T) {
	cp := dbtest.NewSqlite(t)
	repo := NewFileTypeMetadataRepositorySQLite(cp)

	err := repo.WriteMetadata(context.Background(), "pdf_metadata",
		orderedOf("Author", "author"), orderedOf("Producer", "x"), orderedOf("file_id", 1))
	assert.EqualError(t, err, "no known metadata fields for pdf_metadata")
}

func TestBuildMetadataInsert(t *testing.T) {
	insert, err := buildMetadataInsert("doc_metadata",
		orderedOf("a", "col_a", "b", "col_b", "c", "col_c"),
		orderedOf("c", "3", "a", "1"),
		orderedOf("file_id", 9))
	require.NoError(t, err)
	assert.Equal(t, "col_c,col_a,file_id", insert.columns)
	assert.Equal(t, "?,?,?", insert.placeholders)
	assert.Equal(t, []interface{}{"3", "1", "9"}, insert.params)

	_, err = buildMetadataInsert("doc_metadata", orderedOf("file_id", "file_id"), orderedOf("file_id", "1"), orderedOf("file_id", 1))
	assert.Error(t, err)
}
