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
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/yukondude/Cinch/db"
	"github.com/yukondude/Cinch/utils"
)

// FileTypeMetadataRepository stores document metadata into the table of the document's file type.
type FileTypeMetadataRepository interface {
	// WriteMetadata inserts one row into table. possibleFields maps metadata keys to the
	// table's columns; metadata keys without a column are ignored. ids (file_id, user_id, ...)
	// are stored under columns of the same name after the metadata columns.
	WriteMetadata(ctx context.Context, table string, possibleFields, metadata, ids *orderedmap.OrderedMap) error
}

type metadataInsert struct {
	columns      string
	placeholders string
	params       []interface{}
}

func buildMetadataInsert(table string, possibleFields, metadata, ids *orderedmap.OrderedMap) (*metadataInsert, error) {
	idColumns := orderedmap.New()
	for _, key := range ids.Keys() {
		if _, exists := possibleFields.Get(key); exists {
			return nil, fmt.Errorf("id field %s clashes with a metadata field of %s", key, table)
		}
		idColumns = utils.AddIdField(idColumns, key)
	}

	values := utils.AddIdInfo(metadata, ids)
	fields := utils.ReturnedFields(utils.AddIdInfo(possibleFields, idColumns), values)
	if len(fields.Keys()) == len(idColumns.Keys()) {
		return nil, fmt.Errorf("no known metadata fields for %s", table)
	}

	// bind values follow metadata order, so the column list has to as well
	columns := orderedmap.New()
	for _, key := range utils.ReturnedFields(values, fields).Keys() {
		column, _ := fields.Get(key)
		columns.Set(key, column)
	}

	return &metadataInsert{
		columns:      utils.QueryBuilder(columns, false),
		placeholders: utils.QueryBuilder(columns, true),
		params:       utils.BindValuesBuilder(fields, values),
	}, nil
}

func NewFileTypeMetadataRepositoryPG(cp db.ConnectionProvider) FileTypeMetadataRepository {
	return &fileTypeMetadataRepositoryPGImpl{cp: cp}
}

type fileTypeMetadataRepositoryPGImpl struct {
	cp db.ConnectionProvider
}

func (f fileTypeMetadataRepositoryPGImpl) WriteMetadata(ctx context.Context, table string, possibleFields, metadata, ids *orderedmap.OrderedMap) error {
	insert, err := buildMetadataInsert(table, possibleFields, metadata, ids)
	if err != nil {
		return err
	}
	query := fmt.Sprintf("insert into ? (%s) values (%s)", insert.columns, insert.placeholders)
	params := append([]interface{}{pg.Ident(table)}, insert.params...)
	if _, err := f.cp.GetConnection().ExecContext(ctx, query, params...); err != nil {
		return errors.Wrapf(err, "failed to write metadata into %s", table)
	}
	return nil
}

func NewFileTypeMetadataRepositorySQLite(cp db.SqliteConnectionProvider) FileTypeMetadataRepository {
	return &fileTypeMetadataRepositorySQLiteImpl{cp: cp}
}

type fileTypeMetadataRepositorySQLiteImpl struct {
	cp db.SqliteConnectionProvider
}

func (f fileTypeMetadataRepositorySQLiteImpl) WriteMetadata(ctx context.Context, table string, possibleFields, metadata, ids *orderedmap.OrderedMap) error {
	insert, err := buildMetadataInsert(table, possibleFields, metadata, ids)
	if err != nil {
		return err
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", db.QuoteIdent(table), insert.columns, insert.placeholders)
	if _, err := f.cp.GetConnection().ExecContext(ctx, query, insert.params...); err != nil {
		return errors.Wrapf(err, "failed to write metadata into %s", table)
	}
	return nil
}
