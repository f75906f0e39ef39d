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

// GeneratedFileEntity is a row of one of the generated file tables
// (zip_gz_downloads, csv_meta_paths, upload). The table is chosen per query.
type GeneratedFileEntity struct {
	Id     int64  `pg:"id, type:integer"`
	Path   string `pg:"path, type:varchar"`
	UserId int64  `pg:"user_id, type:integer"`
}

// ReminderEntity is one zip_gz_downloads row standing in for all of a user's
// files that are due for a deletion reminder.
type ReminderEntity struct {
	Id     int64 `pg:"id, type:integer"`
	UserId int64 `pg:"user_id, type:integer"`
}
