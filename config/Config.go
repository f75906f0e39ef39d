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

type Config struct {
	Database   DatabaseConfig      `mapstructure:"database"`
	Purge      PurgeConfig         `mapstructure:"purge"`
	Mail       MailConfig          `mapstructure:"mail"`
	Logging    LoggingConfig       `mapstructure:"logging"`
	Schedule   ScheduleConfig      `mapstructure:"schedule"`
	Monitoring MonitoringConfig    `mapstructure:"monitoring"`
	Technical  TechnicalParameters `mapstructure:"technical"`
}

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver" validate:"required,oneof=postgres sqlite"`
	Host     string `mapstructure:"host" validate:"required_if=Driver postgres"`
	Port     int    `mapstructure:"port" validate:"required_if=Driver postgres,gte=0,lte=65535"`
	Name     string `mapstructure:"name" validate:"required_if=Driver postgres"`
	Username string `mapstructure:"username" validate:"required_if=Driver postgres"`
	Password string `mapstructure:"password" sensitive:"true"`
	PoolSize int    `mapstructure:"poolSize" validate:"gte=1"`
	// Path is the database file for the sqlite driver.
	Path string `mapstructure:"path" validate:"required_if=Driver sqlite"`
}

// PurgeConfig holds the directories the purge works on. Retention periods are fixed in code.
type PurgeConfig struct {
	MessagesDir  string `mapstructure:"messagesDir" validate:"required"`
	UploadsDir   string `mapstructure:"uploadsDir" validate:"required"`
	DownloadsDir string `mapstructure:"downloadsDir" validate:"required"`
}

type MailConfig struct {
	SmtpHost   string `mapstructure:"smtpHost" validate:"required"`
	SmtpPort   int    `mapstructure:"smtpPort" validate:"gt=0,lte=65535"`
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password" sensitive:"true"`
	From       string `mapstructure:"from" validate:"omitempty,email"`
	AdminEmail string `mapstructure:"adminEmail" validate:"required,email"`
	SiteUrl    string `mapstructure:"siteUrl" validate:"required,url"`
}

// Sender returns the From address for outgoing mail, the admin address unless overridden.
func (m MailConfig) Sender() string {
	if m.From != "" {
		return m.From
	}
	return m.AdminEmail
}

type LoggingConfig struct {
	Level         string `mapstructure:"level" validate:"oneof=trace debug info warn warning error"`
	File          string `mapstructure:"file"`
	MaxSizeMb     int    `mapstructure:"maxSizeMb" validate:"gte=0"`
	MaxBackups    int    `mapstructure:"maxBackups" validate:"gte=0"`
	MaxAgeDays    int    `mapstructure:"maxAgeDays" validate:"gte=0"`
	DisableColors bool   `mapstructure:"disableColors"`
}

type ScheduleConfig struct {
	Check  string `mapstructure:"check" validate:"required"`
	Delete string `mapstructure:"delete" validate:"required"`
}

type MonitoringConfig struct {
	PushGatewayUrl string `mapstructure:"pushGatewayUrl" validate:"omitempty,url"`
}

type TechnicalParameters struct {
	InstanceId    string `mapstructure:"instanceId"`
	ListenAddress string `mapstructure:"listenAddress" validate:"required"`
}
