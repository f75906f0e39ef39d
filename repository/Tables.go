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

// RowPolicy says what happens to a row once its file is gone from disk.
type RowPolicy int

const (
	// ExpireRow keeps the row, clears its path and marks it expired.
	ExpireRow RowPolicy = iota
	// DeleteRow removes the row.
	DeleteRow
	// ListOnly rows have no file on disk; processed rows are deleted outright.
	ListOnly
)

func (p RowPolicy) String() string {
	switch p {
	case ExpireRow:
		return "expire"
	case DeleteRow:
		return "delete"
	case ListOnly:
		return "list"
	}
	return "unknown"
}

// TableDescriptor maps a table to the columns and row policy the purge uses for it.
type TableDescriptor struct {
	Name string
	// AgeField holds the timestamp compared against the retention cutoff.
	AgeField  string
	PathField string
	Policy    RowPolicy
}

var (
	FileInfoTable = TableDescriptor{
		Name:      "file_info",
		AgeField:  "download_time",
		PathField: "temp_file_path",
		Policy:    ExpireRow,
	}
	ZipGzDownloadsTable = TableDescriptor{
		Name:      "zip_gz_downloads",
		AgeField:  "creationdate",
		PathField: "path",
		Policy:    DeleteRow,
	}
	CsvMetaPathsTable = TableDescriptor{
		Name:      "csv_meta_paths",
		AgeField:  "creationdate",
		PathField: "path",
		Policy:    DeleteRow,
	}
	UploadTable = TableDescriptor{
		Name:      "upload",
		AgeField:  "process_time",
		PathField: "path",
		Policy:    DeleteRow,
	}
	FilesForDownloadTable = TableDescriptor{
		Name:   "files_for_download",
		Policy: ListOnly,
	}
)

// GeneratedTables are cleaned in this order during a delete run.
func GeneratedTables() []TableDescriptor {
	return []TableDescriptor{ZipGzDownloadsTable, CsvMetaPathsTable, UploadTable}
}

func ProcessedListTables() []TableDescriptor {
	return []TableDescriptor{FilesForDownloadTable}
}
