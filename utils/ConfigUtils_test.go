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
	"testing"

	"github.com/stretchr/testify/assert"
)

type testDbConfig struct {
	Host     string
	Password string `sensitive:"true"`
	Token    string `sensitive:"true"`
}

type testConfig struct {
	Database  testDbConfig
	SmtpPort  int `mapstructure:"smtpPort"`
	Roots     []string
	internal  string
	Optional  *testDbConfig
}

func TestConfigLinesMasksSensitiveValues(t *testing.T) {
	cfg := testConfig{
		Database: testDbConfig{Host: "db", Password: "secret"},
		SmtpPort: 25,
		Roots:    []string{"a", "b"},
		internal: "hidden",
	}

	lines := ConfigLines(&cfg)

	assert.Equal(t, []string{
		"database.host=db",
		"database.password=*****",
		"database.token=",
		"smtpPort=25",
		"roots=[a b]",
		"optional=<nil>",
	}, lines)
}
