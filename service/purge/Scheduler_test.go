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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukondude/Cinch/config"
)

type countingPurger struct {
	checks, deletes int
	panicOnDelete   bool
}

func (c *countingPurger) Check(ctx context.Context) error {
	c.checks++
	return nil
}

func (c *countingPurger) Delete(ctx context.Context) error {
	c.deletes++
	if c.panicOnDelete {
		panic("disk on fire")
	}
	return nil
}

func (c *countingPurger) ErrorListPath() string {
	return ""
}

func TestPurgeJobsShareGuard(t *testing.T) {
	purger := &countingPurger{}
	s := NewScheduler(context.Background(), purger, config.ScheduleConfig{Check: "0 6 * * *", Delete: "0 2 * * *"}).(*schedulerImpl)

	check := s.newJob(CheckAction)
	del := s.newJob(DeleteAction)

	check.Run()
	del.Run()
	assert.Equal(t, 1, purger.checks)
	assert.Equal(t, 1, purger.deletes)

	s.guard.Lock()
	check.Run()
	del.Run()
	s.guard.Unlock()
	assert.Equal(t, 1, purger.checks)
	assert.Equal(t, 1, purger.deletes)
}

func TestPurgeJobRecoversPanic(t *testing.T) {
	purger := &countingPurger{panicOnDelete: true}
	job := &purgeJob{ctx: context.Background(), action: DeleteAction, run: purger.Delete, guard: &sync.Mutex{}}

	assert.NotPanics(t, job.Run)
	assert.True(t, job.guard.TryLock())
}

func TestSchedulerStartStop(t *testing.T) {
	s := NewScheduler(context.Background(), &countingPurger{}, config.ScheduleConfig{Check: "0 6 * * *", Delete: "0 2 * * *"})
	require.NoError(t, s.Start())
	assert.Len(t, s.(*schedulerImpl).cron.Entries(), 2)
	<-s.Stop().Done()
}

func TestSchedulerRejectsBadSchedule(t *testing.T) {
	s := NewScheduler(context.Background(), &countingPurger{}, config.ScheduleConfig{Check: "not a schedule", Delete: "0 2 * * *"})
	assert.Error(t, s.Start())
	<-s.Stop().Done()
}
