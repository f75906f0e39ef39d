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
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/yukondude/Cinch/config"
	"github.com/yukondude/Cinch/utils"
)

// Scheduler runs check and delete on their cron schedules. The two jobs share one guard,
// a run that fires while another one is in progress is skipped.
type Scheduler interface {
	Start() error
	// Stop stops scheduling and returns a context that is done once running jobs finish.
	Stop() context.Context
}

func NewScheduler(ctx context.Context, purger Purger, schedule config.ScheduleConfig) Scheduler {
	return &schedulerImpl{
		ctx:      ctx,
		purger:   purger,
		schedule: schedule,
		guard:    &sync.Mutex{},
	}
}

type schedulerImpl struct {
	ctx      context.Context
	purger   Purger
	schedule config.ScheduleConfig
	guard    *sync.Mutex
	cron     *cron.Cron
}

func (s *schedulerImpl) Start() error {
	location, err := time.LoadLocation("")
	if err != nil {
		return err
	}
	s.cron = cron.New(cron.WithLocation(location))

	jobs := map[string]string{
		CheckAction:  s.schedule.Check,
		DeleteAction: s.schedule.Delete,
	}
	for _, action := range []string{CheckAction, DeleteAction} {
		job := s.newJob(action)
		wrappedJob := cron.NewChain(cron.SkipIfStillRunning(cron.DefaultLogger)).Then(job)
		if _, err := s.cron.AddJob(jobs[action], wrappedJob); err != nil {
			log.Warnf("Purge %s job wasn't added for schedule - %s. With error - %s", action, jobs[action], err)
			return err
		}
		log.Infof("Purge %s job was created with schedule - %s", action, jobs[action])
	}
	s.cron.Start()
	return nil
}

func (s *schedulerImpl) Stop() context.Context {
	if s.cron == nil {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}
	return s.cron.Stop()
}

func (s *schedulerImpl) newJob(action string) *purgeJob {
	run := s.purger.Delete
	if action == CheckAction {
		run = s.purger.Check
	}
	return &purgeJob{ctx: s.ctx, action: action, run: run, guard: s.guard}
}

type purgeJob struct {
	ctx    context.Context
	action string
	run    func(ctx context.Context) error
	guard  *sync.Mutex
}

func (j *purgeJob) Run() {
	if !j.guard.TryLock() {
		log.Infof("Purge %s run was skipped at %s: another run is in progress", j.action, time.Now().Round(time.Second))
		return
	}
	defer j.guard.Unlock()

	err := utils.SafeSync(func() error {
		return j.run(j.ctx)
	})
	if err != nil {
		log.Errorf("Scheduled purge %s run failed: %v", j.action, err)
	}
}
