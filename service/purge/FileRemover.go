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
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yukondude/Cinch/exception"
	"github.com/yukondude/Cinch/metrics"
	"github.com/yukondude/Cinch/repository"
	"github.com/yukondude/Cinch/service/purge/logger"
)

// removeFile deletes path from disk and then updates its row in table according to the table's policy.
// A file that cannot be deleted is written to the error log and its row is left alone, so the next run retries it.
func (p *purgerImpl) removeFile(ctx context.Context, path string, id int64, table repository.TableDescriptor) error {
	if err := deleteRegularFile(path); err != nil {
		logger.Debugf(ctx, "failed to delete %s: %v", path, err)
		p.reportFailure(ctx, exception.RemovalError{Id: id, Path: path, At: p.cfg.Now()}, metrics.KindFile)
		return nil
	}

	var err error
	if table.Policy == repository.ExpireRow {
		err = p.repo.MarkFileExpired(ctx, id)
	} else {
		err = p.repo.DeleteGeneratedFile(ctx, table, id)
	}
	if err != nil {
		return err
	}
	metrics.FilesRemoved.WithLabelValues(table.Name).Inc()
	logger.Infof(ctx, "%s deleted", path)
	return nil
}

func deleteRegularFile(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return os.Remove(path)
}

// removeDir removes every empty directory below root, visiting parents before children.
// A parent emptied by removing its children is left for the next run.
func (p *purgerImpl) removeDir(ctx context.Context, root string) {
	dirs, err := subdirectories(root)
	if err != nil {
		logger.Warnf(ctx, "Failed to list directories of %s: %v", root, err)
		return
	}

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			logger.Debugf(ctx, "failed to read %s: %v", dir, err)
			p.reportFailure(ctx, exception.RemovalError{Path: dir, Directory: true, At: p.cfg.Now()}, metrics.KindDirectory)
			continue
		}
		if len(entries) > 0 {
			logger.Debugf(ctx, "%s is not empty", dir)
			continue
		}
		if err := p.removeEmptyDir(dir); err != nil {
			logger.Debugf(ctx, "failed to delete %s: %v", dir, err)
			p.reportFailure(ctx, exception.RemovalError{Path: dir, Directory: true, At: p.cfg.Now()}, metrics.KindDirectory)
			continue
		}
		metrics.DirectoriesRemoved.WithLabelValues().Inc()
		logger.Infof(ctx, "%s deleted", dir)
	}
}

func subdirectories(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

func (p *purgerImpl) reportFailure(ctx context.Context, removalErr exception.RemovalError, kind string) {
	metrics.RemovalFailures.WithLabelValues(kind).Inc()
	logger.Warn(ctx, removalErr.Error())
	if err := p.errorLog.Append(removalErr.Error()); err != nil {
		logger.Errorf(ctx, "Failed to write error list: %v", err)
	}
}
