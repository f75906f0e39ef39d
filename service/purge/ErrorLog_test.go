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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukondude/Cinch/exception"
)

func TestErrorLogAppend(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "messages")
	at := time.Date(2024, 3, 4, 14, 23, 46, 0, time.UTC)
	errorLog := newErrorLog(dir, at)
	assert.Equal(t, filepath.Join(dir, "error_list_2024-03-04.txt"), errorLog.path)

	contents, err := errorLog.Contents()
	require.NoError(t, err)
	assert.Empty(t, contents)
	_, err = os.Stat(errorLog.path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, errorLog.Append(exception.RemovalError{Path: "/u/1", Directory: true, At: at}.Error()))
	require.NoError(t, errorLog.Append("second"))

	contents, err = errorLog.Contents()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04T14:23:46Z - Directory: /u/1 could not be deleted.\r\nsecond\r\n", contents)
}

func TestErrorLogKeepsEarlierLines(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "error_list_2024-03-04.txt"), []byte("earlier\r\n"), 0644))

	errorLog := newErrorLog(dir, at)
	require.NoError(t, errorLog.Append("later"))

	contents, err := errorLog.Contents()
	require.NoError(t, err)
	assert.Equal(t, "earlier\r\nlater\r\n", contents)
}
