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
	"fmt"
	"strings"
)

const (
	// ReminderAgeDays is how old a zip download gets before its owner is warned.
	ReminderAgeDays = 20
	RetentionDays   = 30
	MaxFilesPerRun  = 7500
)

const (
	CheckAction  = "check"
	DeleteAction = "delete"
)

const (
	ReminderSubject    = "You have files on CINCH! marked for deletion"
	AdminReportSubject = "Cinch file and directory deletion errors"
	adminReportIntro   = "The following deletion errors occured:\r\n"
	noRemindersMessage = "No users need reminding."
	mailLineBreak      = "\r\n"
)

func ReminderMessage(siteUrl string) string {
	return strings.Join([]string{
		"You have files marked for deletion from Cinch!",
		fmt.Sprintf("They will be deleted %d days from now.", RetentionDays-ReminderAgeDays),
		fmt.Sprintf("If you haven't done so please retrieve your downloads soon from %s.", siteUrl),
		"",
		"Thanks, from your CINCH administrators",
	}, mailLineBreak)
}

func AdminReportMessage(errorList string) string {
	return adminReportIntro + errorList
}
