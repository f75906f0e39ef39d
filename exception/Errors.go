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

package exception

import (
	"fmt"
	"time"

	"github.com/yukondude/Cinch/utils"
)

type NotFoundError struct {
	Id      string
	Name    string
	Message string
}

func (g NotFoundError) Error() string {
	if g.Message != "" {
		return g.Message
	}
	if g.Id != "" {
		return fmt.Sprintf("entity with id = %s not found", g.Id)
	} else {
		return fmt.Sprintf("entity with name = %s not found", g.Name)
	}
}

// RemovalError describes a file or directory that could not be removed from disk.
// Its message is the line written to the daily error list.
type RemovalError struct {
	Id        int64
	Path      string
	Directory bool
	At        time.Time
}

func (r RemovalError) Error() string {
	timestamp := utils.GetDateTime(r.At)
	if r.Directory {
		return fmt.Sprintf("%s - Directory: %s could not be deleted.", timestamp, r.Path)
	}
	return fmt.Sprintf("%s - %d, with path: %s could not be deleted.", timestamp, r.Id, r.Path)
}
