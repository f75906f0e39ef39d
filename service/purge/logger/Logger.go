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

package logger

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type contextKey string

const (
	runTypeKey contextKey = "runType"
	runIdKey   contextKey = "runId"
)

// WithRun tags ctx so every line logged through this package carries the run type and id.
func WithRun(ctx context.Context, runType string, runId string) context.Context {
	ctx = context.WithValue(ctx, runTypeKey, runType)
	return context.WithValue(ctx, runIdKey, runId)
}

// RunId returns the id set by WithRun or an empty string.
func RunId(ctx context.Context) string {
	id, _ := ctx.Value(runIdKey).(string)
	return id
}

func getRunPrefix(ctx context.Context) string {
	runType, _ := ctx.Value(runTypeKey).(string)
	runId, _ := ctx.Value(runIdKey).(string)

	if runType != "" && runId != "" {
		return fmt.Sprintf("%s id=%s", runType, runId)
	}
	return ""
}

func entry(ctx context.Context) *log.Entry {
	if prefix := getRunPrefix(ctx); prefix != "" {
		return log.WithField("prefix", prefix)
	}
	return log.NewEntry(log.StandardLogger())
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Debugf(format, args...)
}

func Debug(ctx context.Context, args ...interface{}) {
	entry(ctx).Debug(args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Infof(format, args...)
}

func Info(ctx context.Context, args ...interface{}) {
	entry(ctx).Info(args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Warnf(format, args...)
}

func Warn(ctx context.Context, args ...interface{}) {
	entry(ctx).Warn(args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Errorf(format, args...)
}

func Error(ctx context.Context, args ...interface{}) {
	entry(ctx).Error(args...)
}
