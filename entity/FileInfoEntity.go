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

package entity

import "time"

// FileInfoEntity is a source file tracked from upload ingestion through checks.
// The purge never deletes these rows, it clears the path and sets ExpiredDeleted.
type FileInfoEntity struct {
	tableName struct{} `pg:"file_info"`

	Id             int64      `pg:"id, pk, type:integer"`
	TempFilePath   string     `pg:"temp_file_path, type:varchar"`
	FileTypeId     int        `pg:"file_type_id, type:integer"`
	DownloadTime   *time.Time `pg:"download_time, type:timestamp without time zone"`
	VirusCheck     int        `pg:"virus_check, use_zero, type:integer"`
	ChecksumRun    int        `pg:"checksum_run, use_zero, type:integer"`
	Metadata       int        `pg:"metadata, use_zero, type:integer"`
	ExpiredDeleted int        `pg:"expired_deleted, use_zero, type:integer"`
}
