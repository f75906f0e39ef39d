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

package utils

import (
	"time"

	"github.com/sirupsen/logrus"
)

// PerfLog warns when an operation ran longer than threshold and otherwise logs its duration at debug.
func PerfLog(elapsed time.Duration, threshold time.Duration, str string) {
	if elapsed > threshold {
		logrus.Warnf("PERF: "+str+" took %s more than expected (%s)", elapsed.Round(time.Millisecond), threshold)
	} else {
		logrus.Debugf("PERF: "+str+" took %s", elapsed.Round(time.Millisecond))
	}
}
