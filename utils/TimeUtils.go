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

import "time"

const (
	// DbTimestampLayout is the layout timestamps are stored and compared with in the database.
	DbTimestampLayout = "2006-01-02 15:04:05"
	// LogTimestampLayout is ISO 8601, used in error list lines.
	LogTimestampLayout = time.RFC3339
)

// TimeOffset returns the moment `days` days before now, formatted for comparison against
// stored timestamps. SQLite has no DATE_SUB.
func TimeOffset(now time.Time, days int) string {
	return now.Add(-time.Duration(days) * 24 * time.Hour).Format(DbTimestampLayout)
}

// GetDateTime formats t the way error list lines carry it.
func GetDateTime(t time.Time) string {
	return t.Format(LogTimestampLayout)
}
