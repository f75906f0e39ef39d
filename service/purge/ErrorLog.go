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

package purge

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

const errorListDateLayout = "2006-01-02"

// errorLog is the day's list of files and directories that could not be removed.
// It is only ever appended to; the file is created by the first failure.
type errorLog struct {
	path string
}

func newErrorLog(messagesDir string, date time.Time) *errorLog {
	return &errorLog{
		path: filepath.Join(messagesDir, "error_list_"+date.Format(errorListDateLayout)+".txt"),
	}
}

func (e *errorLog) Append(line string) error {
	if err := os.MkdirAll(filepath.Dir(e.path), 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", e.path)
	}
	f, err := os.OpenFile(e.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", e.path)
	}
	_, err = f.WriteString(line + mailLineBreak)
	closeErr := f.Close()
	if err != nil {
		return errors.Wrapf(err, "failed to write %s", e.path)
	}
	if closeErr != nil {
		return errors.Wrapf(closeErr, "failed to close %s", e.path)
	}
	return nil
}

// Contents returns the whole list, empty when nothing failed today.
func (e *errorLog) Contents() (string, error) {
	data, err := os.ReadFile(e.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "failed to read %s", e.path)
	}
	return string(data), nil
}
