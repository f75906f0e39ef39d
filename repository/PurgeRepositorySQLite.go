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
	"database/sql"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/yukondude/Cinch/db"
	"github.com/yukondude/Cinch/entity"
	"github.com/yukondude/Cinch/utils"
)

func NewPurgeRepositorySQLite(cp db.SqliteConnectionProvider) PurgeRepository {
	return &purgeRepositorySQLiteImpl{cp: cp}
}

type purgeRepositorySQLiteImpl struct {
	cp db.SqliteConnectionProvider
}

func (p purgeRepositorySQLiteImpl) GetExpiredFiles(ctx context.Context, downloadedBefore string, limit int) ([]entity.FileInfoEntity, error) {
	query := fmt.Sprintf(`SELECT id, temp_file_path, file_type_id, download_time FROM %s
		WHERE download_time <= ? AND virus_check = ? AND checksum_run = ? AND metadata = ?
		AND temp_file_path != ''
		ORDER BY download_time, id
		LIMIT ?`, db.QuoteIdent(FileInfoTable.Name))
	rows, err := p.cp.GetConnection().QueryContext(ctx, query, downloadedBefore, flagDone, flagDone, flagDone, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get expired files from %s", FileInfoTable.Name)
	}
	defer rows.Close()

	var result []entity.FileInfoEntity
	for rows.Next() {
		var ent entity.FileInfoEntity
		var path, downloadTime sql.NullString
		var fileTypeId sql.NullInt64
		if err := rows.Scan(&ent.Id, &path, &fileTypeId, &downloadTime); err != nil {
			return nil, errors.Wrapf(err, "failed to scan %s row", FileInfoTable.Name)
		}
		ent.TempFilePath = path.String
		ent.FileTypeId = int(fileTypeId.Int64)
		if t, err := time.Parse(utils.DbTimestampLayout, downloadTime.String); err == nil {
			ent.DownloadTime = &t
		}
		result = append(result, ent)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s rows", FileInfoTable.Name)
	}
	return result, nil
}

func (p purgeRepositorySQLiteImpl) GetGeneratedFiles(ctx context.Context, table TableDescriptor, createdBefore string) ([]entity.GeneratedFileEntity, error) {
	query := fmt.Sprintf(`SELECT id, %s, user_id FROM %s WHERE %s <= ? ORDER BY id`,
		db.QuoteIdent(table.PathField), db.QuoteIdent(table.Name), db.QuoteIdent(table.AgeField))
	rows, err := p.cp.GetConnection().QueryContext(ctx, query, createdBefore)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get generated files from %s", table.Name)
	}
	defer rows.Close()

	var result []entity.GeneratedFileEntity
	for rows.Next() {
		var ent entity.GeneratedFileEntity
		var path sql.NullString
		if err := rows.Scan(&ent.Id, &path, &ent.UserId); err != nil {
			return nil, errors.Wrapf(err, "failed to scan %s row", table.Name)
		}
		ent.Path = path.String
		result = append(result, ent)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s rows", table.Name)
	}
	return result, nil
}

func (p purgeRepositorySQLiteImpl) GetUserReminders(ctx context.Context, createdBefore string) ([]entity.ReminderEntity, error) {
	query := fmt.Sprintf(`SELECT MIN(id) AS id, user_id FROM %s
		WHERE deletion_reminder = ? AND creationdate <= ?
		GROUP BY user_id
		ORDER BY user_id`, db.QuoteIdent(ZipGzDownloadsTable.Name))
	rows, err := p.cp.GetConnection().QueryContext(ctx, query, reminderNotSent, createdBefore)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user reminders")
	}
	defer rows.Close()

	var result []entity.ReminderEntity
	for rows.Next() {
		var ent entity.ReminderEntity
		if err := rows.Scan(&ent.Id, &ent.UserId); err != nil {
			return nil, errors.Wrap(err, "failed to scan user reminder")
		}
		result = append(result, ent)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read user reminders")
	}
	return result, nil
}

func (p purgeRepositorySQLiteImpl) MarkReminderSent(ctx context.Context, fileId int64) error {
	query := fmt.Sprintf(`UPDATE %s SET deletion_reminder = ? WHERE id = ?`, db.QuoteIdent(ZipGzDownloadsTable.Name))
	if _, err := p.cp.GetConnection().ExecContext(ctx, query, reminderSent, fileId); err != nil {
		return errors.Wrapf(err, "failed to mark reminder sent for %s %d", ZipGzDownloadsTable.Name, fileId)
	}
	return nil
}

func (p purgeRepositorySQLiteImpl) ClearProcessedList(ctx context.Context, table TableDescriptor) (int, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE processed = ?`, db.QuoteIdent(table.Name))
	res, err := p.cp.GetConnection().ExecContext(ctx, query, flagDone)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to clear processed rows of %s", table.Name)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to count cleared rows of %s", table.Name)
	}
	return int(affected), nil
}

func (p purgeRepositorySQLiteImpl) MarkFileExpired(ctx context.Context, fileId int64) error {
	query := fmt.Sprintf(`UPDATE %s SET temp_file_path = NULL, expired_deleted = ? WHERE id = ?`, db.QuoteIdent(FileInfoTable.Name))
	if _, err := p.cp.GetConnection().ExecContext(ctx, query, flagDone, fileId); err != nil {
		return errors.Wrapf(err, "failed to mark %s %d as expired", FileInfoTable.Name, fileId)
	}
	return nil
}

func (p purgeRepositorySQLiteImpl) DeleteGeneratedFile(ctx context.Context, table TableDescriptor, fileId int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, db.QuoteIdent(table.Name))
	if _, err := p.cp.GetConnection().ExecContext(ctx, query, fileId); err != nil {
		return errors.Wrapf(err, "failed to delete %s %d", table.Name, fileId)
	}
	return nil
}
