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
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/yukondude/Cinch/config"
	"github.com/yukondude/Cinch/db"
	"github.com/yukondude/Cinch/db/dbtest"
)

func setupPostgres(t *testing.T) db.ConnectionProvider {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("skipping integration test: TEST_INTEGRATION is not set")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		postgres.WithDatabase("cinch_test"),
		postgres.WithUsername("cinch"),
		postgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)
	portNum, err := strconv.Atoi(port.Port())
	require.NoError(t, err)

	cp := db.NewConnectionProvider(config.DatabaseConfig{
		Driver:   config.DriverPostgres,
		Host:     host,
		Port:     portNum,
		Name:     "cinch_test",
		Username: "cinch",
		Password: "test-password",
		PoolSize: 2,
	})
	t.Cleanup(func() { cp.Close() })

	_, err = cp.GetConnection().ExecContext(ctx, dbtest.PostgresSchema)
	require.NoError(t, err)
	return cp
}

func TestPurgeRepositoryPG(t *testing.T) {
	cp := setupPostgres(t)
	conn := cp.GetConnection()
	ctx := context.Background()

	_, err := conn.Exec(`INSERT INTO file_info (id, temp_file_path, file_type_id, download_time, virus_check, checksum_run, metadata) VALUES
		(1, '/tmp/a', 1, '2024-04-01 00:00:00', 1, 1, 1),
		(2, '/tmp/b', 1, ?, 1, 1, 1),
		(3, '/tmp/c', 1, '2024-06-01 00:00:00', 1, 1, 1),
		(4, '', 1, '2024-04-01 00:00:00', 1, 1, 1)`, testCutoff)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO zip_gz_downloads (id, user_id, path, creationdate, deletion_reminder) VALUES
		(5, 1, '/z/5', '2024-04-10 00:00:00', 0),
		(3, 1, '/z/3', '2024-04-11 00:00:00', 0),
		(4, 2, '/z/4', '2024-04-10 00:00:00', 1)`)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO files_for_download (user_id, url, processed) VALUES (1, 'a', 1), (1, 'b', 0)`)
	require.NoError(t, err)

	repo := NewPurgeRepositoryPG(cp)

	files, err := repo.GetExpiredFiles(ctx, testCutoff, 10)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, int64(1), files[0].Id)
	assert.Equal(t, int64(2), files[1].Id)

	require.NoError(t, repo.MarkFileExpired(ctx, 1))
	files, err = repo.GetExpiredFiles(ctx, testCutoff, 10)
	require.NoError(t, err)
	require.Len(t, files, 1)

	zips, err := repo.GetGeneratedFiles(ctx, ZipGzDownloadsTable, testCutoff)
	require.NoError(t, err)
	assert.Len(t, zips, 3)

	reminders, err := repo.GetUserReminders(ctx, testCutoff)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, int64(3), reminders[0].Id)

	require.NoError(t, repo.MarkReminderSent(ctx, reminders[0].Id))
	reminders, err = repo.GetUserReminders(ctx, testCutoff)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, int64(5), reminders[0].Id)

	cleared, err := repo.ClearProcessedList(ctx, FilesForDownloadTable)
	require.NoError(t, err)
	assert.Equal(t, 1, cleared)

	require.NoError(t, repo.DeleteGeneratedFile(ctx, ZipGzDownloadsTable, 4))
	zips, err = repo.GetGeneratedFiles(ctx, ZipGzDownloadsTable, testCutoff)
	require.NoError(t, err)
	assert.Len(t, zips, 2)
}
