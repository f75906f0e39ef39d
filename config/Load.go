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

package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "CINCH"

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "cinch")
	v.SetDefault("database.username", "cinch")
	v.SetDefault("database.password", "")
	v.SetDefault("database.poolSize", 10)
	v.SetDefault("database.path", "")

	v.SetDefault("purge.messagesDir", "protected/messages")
	v.SetDefault("purge.uploadsDir", "protected/uploads")
	v.SetDefault("purge.downloadsDir", "protected/curl_downloads")

	v.SetDefault("mail.smtpHost", "localhost")
	v.SetDefault("mail.smtpPort", 25)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.from", "")
	v.SetDefault("mail.adminEmail", "")
	v.SetDefault("mail.siteUrl", "http://cinch.nclive.org")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.maxSizeMb", 100)
	v.SetDefault("logging.maxBackups", 5)
	v.SetDefault("logging.maxAgeDays", 30)
	v.SetDefault("logging.disableColors", false)

	v.SetDefault("schedule.check", "0 6 * * *")
	v.SetDefault("schedule.delete", "0 2 * * *")

	v.SetDefault("monitoring.pushGatewayUrl", "")

	v.SetDefault("technical.instanceId", "")
	v.SetDefault("technical.listenAddress", ":8080")
}

// Load reads configuration from the optional file at path, then from CINCH_* environment
// variables (CINCH_DATABASE_HOST, CINCH_MAIL_ADMINEMAIL, ...), and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode configuration")
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "configuration is not valid")
	}
	return nil
}
