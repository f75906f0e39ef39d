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
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/yukondude/Cinch/config"
	"github.com/yukondude/Cinch/metrics"
	"github.com/yukondude/Cinch/repository"
	"github.com/yukondude/Cinch/service"
	"github.com/yukondude/Cinch/service/purge/logger"
	"github.com/yukondude/Cinch/utils"
)

const expectedRunDuration = time.Hour

// Config is everything a Purger needs besides its repository and mail service.
type Config struct {
	MessagesDir string
	// SweepRoots are walked for empty directories after files are removed. The roots themselves stay.
	SweepRoots          []string
	AdminEmail          string
	SiteUrl             string
	FileTable           repository.TableDescriptor
	GeneratedTables     []repository.TableDescriptor
	ProcessedListTables []repository.TableDescriptor
	MaxFilesPerRun      int
	Now                 func() time.Time
}

func NewConfig(cfg *config.Config) Config {
	return Config{
		MessagesDir:         cfg.Purge.MessagesDir,
		SweepRoots:          []string{cfg.Purge.UploadsDir, cfg.Purge.DownloadsDir},
		AdminEmail:          cfg.Mail.AdminEmail,
		SiteUrl:             cfg.Mail.SiteUrl,
		FileTable:           repository.FileInfoTable,
		GeneratedTables:     repository.GeneratedTables(),
		ProcessedListTables: repository.ProcessedListTables(),
		MaxFilesPerRun:      MaxFilesPerRun,
		Now:                 time.Now,
	}
}

type Purger interface {
	// Check mails a deletion reminder to every user with zip downloads close to expiry.
	Check(ctx context.Context) error
	// Delete removes expired files and empty directories and reports failures to the admin.
	// Only database errors are returned; they stop the run where it is.
	Delete(ctx context.Context) error
	ErrorListPath() string
}

func NewPurger(purgeRepository repository.PurgeRepository, mailService service.MailService, cfg Config) Purger {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.MaxFilesPerRun <= 0 {
		cfg.MaxFilesPerRun = MaxFilesPerRun
	}
	return &purgerImpl{
		repo:           purgeRepository,
		mailService:    mailService,
		cfg:            cfg,
		errorLog:       newErrorLog(cfg.MessagesDir, cfg.Now()),
		removeEmptyDir: os.Remove,
	}
}

type purgerImpl struct {
	repo           repository.PurgeRepository
	mailService    service.MailService
	cfg            Config
	// errorLog is replaced at the start of every Delete run with the list for that run's day.
	errorLog       *errorLog
	removeEmptyDir func(string) error
}

// ErrorListPath is the error list of the most recent Delete run, or today's list before the first run.
func (p *purgerImpl) ErrorListPath() string {
	return p.errorLog.path
}

func (p *purgerImpl) Check(ctx context.Context) error {
	ctx = runContext(ctx, CheckAction)
	return p.measure(ctx, CheckAction, p.sendReminders)
}

func (p *purgerImpl) Delete(ctx context.Context) error {
	ctx = runContext(ctx, DeleteAction)
	p.errorLog = newErrorLog(p.cfg.MessagesDir, p.cfg.Now())
	return p.measure(ctx, DeleteAction, func(ctx context.Context) error {
		for _, table := range p.cfg.GeneratedTables {
			if err := p.clearGenerated(ctx, table); err != nil {
				return err
			}
		}
		for _, table := range p.cfg.ProcessedListTables {
			if err := p.clearList(ctx, table); err != nil {
				return err
			}
		}
		if err := p.purgeExpiredFiles(ctx); err != nil {
			return err
		}
		for _, root := range p.cfg.SweepRoots {
			p.removeDir(ctx, root)
		}
		p.mailErrors(ctx)
		return nil
	})
}

func runContext(ctx context.Context, action string) context.Context {
	if logger.RunId(ctx) != "" {
		return ctx
	}
	return logger.WithRun(ctx, action, uuid.New().String())
}

func (p *purgerImpl) measure(ctx context.Context, action string, run func(ctx context.Context) error) error {
	start := time.Now()
	logger.Infof(ctx, "Starting %s run", action)
	err := run(ctx)
	result := "success"
	if err != nil {
		result = "error"
		logger.Errorf(ctx, "%s run failed after %s: %v", action, time.Since(start), err)
	} else {
		metrics.LastSuccess.WithLabelValues(action).Set(float64(p.cfg.Now().Unix()))
		logger.Infof(ctx, "Finished %s run in %s", action, time.Since(start))
	}
	elapsed := time.Since(start)
	metrics.RunDuration.WithLabelValues(action, result).Observe(elapsed.Seconds())
	utils.PerfLog(elapsed, expectedRunDuration, action+" run")
	return err
}
