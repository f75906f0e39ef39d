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

package utils

import (
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/stretchr/testify/assert"
)

func orderedOf(pairs ...string) *orderedmap.OrderedMap {
	m := orderedmap.New()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}

func TestReturnedFields(t *testing.T) {
	possible := orderedOf(
		"Author", "author",
		"Creation-Date", "creation_date",
		"title", "title",
		"Page-Count", "pages",
	)
	metadata := orderedOf(
		"title", ": Annual report",
		"Author", ": Jane Doe",
		"Producer", ": Acrobat",
	)

	fields := ReturnedFields(possible, metadata)

	assert.Equal(t, []string{"Author", "title"}, fields.Keys())
	value, _ := fields.Get("Author")
	assert.Equal(t, "author", value)
}

func TestQueryBuilder(t *testing.T) {
	fields := orderedOf("Author", "author", "title", "title")

	assert.Equal(t, "author,title", QueryBuilder(fields, false))
	assert.Equal(t, "?,?", QueryBuilder(fields, true))
	assert.Equal(t, "", QueryBuilder(orderedmap.New(), true))
}

func TestBindValuesBuilder(t *testing.T) {
	fields := orderedOf("Author", "author", "title", "title")
	metadata := orderedOf(
		"title", "  : <b>Annual</b> report ",
		"Producer", ": Acrobat",
		"Author", ": Jane Doe",
	)

	params := BindValuesBuilder(fields, metadata)

	assert.Equal(t, []interface{}{"Annual report", "Jane Doe"}, params)
}

func TestCleanMetadataValue(t *testing.T) {
	assert.Equal(t, "Adobe", CleanMetadataValue(" : <i>Adobe</i>\n"))
	assert.Equal(t, "value: kept", CleanMetadataValue("value: kept"))
	assert.Equal(t, ":no space", CleanMetadataValue(":no space"))
	assert.Equal(t, "", CleanMetadataValue("   "))
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "bold text", StripTags("<b>bold</b> text"))
	assert.Equal(t, "a  b", StripTags("a <!-- note --> b"))
	assert.Equal(t, "AT&amp;T", StripTags("<span>AT&amp;T</span>"))
	assert.Equal(t, "no markup", StripTags("no markup"))
}

func TestAddIdInfo(t *testing.T) {
	metadata := orderedOf("author", "Jane", "file_id", "0")
	ids := orderedOf("file_id", "15", "user_id", "3")

	merged := AddIdInfo(metadata, ids)

	assert.Equal(t, []string{"author", "file_id", "user_id"}, merged.Keys())
	value, _ := merged.Get("file_id")
	assert.Equal(t, "15", value)
	assert.Equal(t, []string{"author", "file_id"}, metadata.Keys(), "source must stay untouched")
}

func TestAddIdField(t *testing.T) {
	merged := AddIdField(orderedOf("author", "Jane"), "file_id")

	assert.Equal(t, []string{"author", "file_id"}, merged.Keys())
	value, _ := merged.Get("file_id")
	assert.Equal(t, "file_id", value)
}
