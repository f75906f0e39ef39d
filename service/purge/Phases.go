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

	"github.com/yukondude/Cinch/metrics"
	"github.com/yukondude/Cinch/repository"
	"github.com/yukondude/Cinch/service/purge/logger"
	"github.com/yukondude/Cinch/utils"
)

func (p *purgerImpl) cutoff(days int) string {
	return utils.TimeOffset(p.cfg.Now(), days)
}

func (p *purgerImpl) clearGenerated(ctx context.Context, table repository.TableDescriptor) error {
	files, err := p.repo.GetGeneratedFiles(ctx, table, p.cutoff(RetentionDays))
	if err != nil {
		return err
	}
	logger.Debugf(ctx, "%d expired rows in %s", len(files), table.Name)
	for _, file := range files {
		if err := p.removeFile(ctx, file.Path, file.Id, table); err != nil {
			return err
		}
	}
	return nil
}

func (p *purgerImpl) clearList(ctx context.Context, table repository.TableDescriptor) error {
	cleared, err := p.repo.ClearProcessedList(ctx, table)
	if err != nil {
		return err
	}
	metrics.ListRowsCleared.WithLabelValues(table.Name).Add(float64(cleared))
	logger.Debugf(ctx, "%d processed rows cleared from %s", cleared, table.Name)
	return nil
}

func (p *purgerImpl) purgeExpiredFiles(ctx context.Context) error {
	files, err := p.repo.GetExpiredFiles(ctx, p.cutoff(RetentionDays), p.cfg.MaxFilesPerRun)
	if err != nil {
		return err
	}
	logger.Debugf(ctx, "%d expired files in %s", len(files), p.cfg.FileTable.Name)
	for _, file := range files {
		if err := p.removeFile(ctx, file.TempFilePath, file.Id, p.cfg.FileTable); err != nil {
			return err
		}
	}
	return nil
}

func (p *purgerImpl) sendReminders(ctx context.Context) error {
	reminders, err := p.repo.GetUserReminders(ctx, p.cutoff(ReminderAgeDays))
	if err != nil {
		return err
	}
	if len(reminders) == 0 {
		logger.Info(ctx, noRemindersMessage)
		return nil
	}

	message := ReminderMessage(p.cfg.SiteUrl)
	for _, reminder := range reminders {
		if err := p.mailService.UserMail(ctx, reminder.UserId, ReminderSubject, message); err != nil {
			metrics.RemindersFailed.WithLabelValues().Inc()
			logger.Warnf(ctx, "Failed to send deletion reminder to user %d: %v", reminder.UserId, err)
			continue
		}
		if err := p.repo.MarkReminderSent(ctx, reminder.Id); err != nil {
			return err
		}
		metrics.RemindersSent.WithLabelValues().Inc()
		logger.Infof(ctx, "Deletion reminder sent to user %d", reminder.UserId)
	}
	return nil
}

func (p *purgerImpl) mailErrors(ctx context.Context) {
	contents, err := p.errorLog.Contents()
	if err != nil {
		logger.Errorf(ctx, "Failed to read error list: %v", err)
		return
	}
	if contents == "" {
		return
	}
	if err := p.mailService.AdminMail(ctx, p.cfg.AdminEmail, AdminReportSubject, AdminReportMessage(contents)); err != nil {
		logger.Warnf(ctx, "Failed to mail deletion errors to %s: %v", p.cfg.AdminEmail, err)
		return
	}
	logger.Infof(ctx, "Deletion errors mailed to %s", p.cfg.AdminEmail)
}
