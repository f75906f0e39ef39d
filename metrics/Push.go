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

package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const PushJobName = "cinch_purge"

// Push sends everything gathered by gatherer to a Pushgateway, grouped by instance when one is given.
func Push(gatewayUrl string, instance string, gatherer prometheus.Gatherer) error {
	pusher := push.New(gatewayUrl, PushJobName).Gatherer(gatherer)
	if instance != "" {
		pusher = pusher.Grouping("instance", instance)
	}
	if err := pusher.Push(); err != nil {
		return errors.Wrapf(err, "failed to push metrics to %s", gatewayUrl)
	}
	return nil
}
