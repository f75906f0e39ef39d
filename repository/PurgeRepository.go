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

	"github.com/yukondude/Cinch/entity"
)

const (
	flagDone        = 1
	reminderNotSent = 0
	reminderSent    = 1
)

// PurgeRepository is the query surface of the retention purge.
// Cutoffs are timestamps in utils.DbTimestampLayout; rows aged exactly at the cutoff qualify.
type PurgeRepository interface {
	// GetExpiredFiles returns tracked files downloaded at or before the cutoff that passed
	// virus check, checksum and metadata extraction and still have a path, at most limit rows.
	GetExpiredFiles(ctx context.Context, downloadedBefore string, limit int) ([]entity.FileInfoEntity, error)
	// GetGeneratedFiles returns rows of table whose age field is at or before the cutoff.
	GetGeneratedFiles(ctx context.Context, table TableDescriptor, createdBefore string) ([]entity.GeneratedFileEntity, error)
	// GetUserReminders returns one not yet reminded zip download per user, created at or
	// before the cutoff. The representative row is the user's lowest id.
	GetUserReminders(ctx context.Context, createdBefore string) ([]entity.ReminderEntity, error)
	MarkReminderSent(ctx context.Context, fileId int64) error
	// ClearProcessedList deletes processed rows of a list table and returns how many went.
	ClearProcessedList(ctx context.Context, table TableDescriptor) (int, error)
	MarkFileExpired(ctx context.Context, fileId int64) error
	DeleteGeneratedFile(ctx context.Context, table TableDescriptor, fileId int64) error
}
