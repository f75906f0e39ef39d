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

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
	"github.com/yukondude/Cinch/db"
	"github.com/yukondude/Cinch/entity"
)

func NewPurgeRepositoryPG(cp db.ConnectionProvider) PurgeRepository {
	return &purgeRepositoryPGImpl{cp: cp}
}

type purgeRepositoryPGImpl struct {
	cp db.ConnectionProvider
}

func (p purgeRepositoryPGImpl) GetExpiredFiles(ctx context.Context, downloadedBefore string, limit int) ([]entity.FileInfoEntity, error) {
	var result []entity.FileInfoEntity
	err := p.cp.GetConnection().ModelContext(ctx, &result).
		Column("id", "temp_file_path", "file_type_id", "download_time").
		Where("download_time <= ?", downloadedBefore).
		Where("virus_check = ?", flagDone).
		Where("checksum_run = ?", flagDone).
		Where("metadata = ?", flagDone).
		Where("temp_file_path != ''").
		Order("download_time ASC", "id ASC").
		Limit(limit).
		Select()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get expired files from %s", FileInfoTable.Name)
	}
	return result, nil
}

func (p purgeRepositoryPGImpl) GetGeneratedFiles(ctx context.Context, table TableDescriptor, createdBefore string) ([]entity.GeneratedFileEntity, error) {
	var result []entity.GeneratedFileEntity
	query := `select id, coalesce(?, '') as path, user_id from ? where ? <= ? order by id`
	_, err := p.cp.GetConnection().QueryContext(ctx, &result, query,
		pg.Ident(table.PathField), pg.Ident(table.Name), pg.Ident(table.AgeField), createdBefore)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get generated files from %s", table.Name)
	}
	return result, nil
}

func (p purgeRepositoryPGImpl) GetUserReminders(ctx context.Context, createdBefore string) ([]entity.ReminderEntity, error) {
	var result []entity.ReminderEntity
	query := `select min(id) as id, user_id from ?
		where deletion_reminder = ? and creationdate <= ?
		group by user_id
		order by user_id`
	_, err := p.cp.GetConnection().QueryContext(ctx, &result, query,
		pg.Ident(ZipGzDownloadsTable.Name), reminderNotSent, createdBefore)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user reminders")
	}
	return result, nil
}

func (p purgeRepositoryPGImpl) MarkReminderSent(ctx context.Context, fileId int64) error {
	_, err := p.cp.GetConnection().ExecContext(ctx, `update ? set deletion_reminder = ? where id = ?`,
		pg.Ident(ZipGzDownloadsTable.Name), reminderSent, fileId)
	if err != nil {
		return errors.Wrapf(err, "failed to mark reminder sent for %s %d", ZipGzDownloadsTable.Name, fileId)
	}
	return nil
}

func (p purgeRepositoryPGImpl) ClearProcessedList(ctx context.Context, table TableDescriptor) (int, error) {
	res, err := p.cp.GetConnection().ExecContext(ctx, `delete from ? where processed = ?`,
		pg.Ident(table.Name), flagDone)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to clear processed rows of %s", table.Name)
	}
	return res.RowsAffected(), nil
}

func (p purgeRepositoryPGImpl) MarkFileExpired(ctx context.Context, fileId int64) error {
	_, err := p.cp.GetConnection().ModelContext(ctx, &entity.FileInfoEntity{}).
		Set("temp_file_path = NULL").
		Set("expired_deleted = ?", flagDone).
		Where("id = ?", fileId).
		Update()
	if err != nil {
		return errors.Wrapf(err, "failed to mark %s %d as expired", FileInfoTable.Name, fileId)
	}
	return nil
}

func (p purgeRepositoryPGImpl) DeleteGeneratedFile(ctx context.Context, table TableDescriptor, fileId int64) error {
	_, err := p.cp.GetConnection().ExecContext(ctx, `delete from ? where id = ?`, pg.Ident(table.Name), fileId)
	if err != nil {
		return errors.Wrapf(err, "failed to delete %s %d", table.Name, fileId)
	}
	return nil
}
