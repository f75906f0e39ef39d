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

package repository

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/pkg/errors"
	"github.com/yukondude/Cinch/db"
	"github.com/yukondude/Cinch/entity"
	"github.com/yukondude/Cinch/exception"
)

func NewUserRepositorySQLite(cp db.SqliteConnectionProvider) UserRepository {
	return &userRepositorySQLiteImpl{cp: cp}
}

type userRepositorySQLiteImpl struct {
	cp db.SqliteConnectionProvider
}

func (u userRepositorySQLiteImpl) GetUserById(ctx context.Context, userId int64) (*entity.UserEntity, error) {
	result := new(entity.UserEntity)
	err := u.cp.GetConnection().QueryRowContext(ctx, `SELECT id, username FROM "user" WHERE id = ?`, userId).
		Scan(&result.Id, &result.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exception.NotFoundError{Id: strconv.FormatInt(userId, 10), Message: "user with id = " + strconv.FormatInt(userId, 10) + " not found"}
		}
		return nil, errors.Wrapf(err, "failed to get user %d", userId)
	}
	return result, nil
}
