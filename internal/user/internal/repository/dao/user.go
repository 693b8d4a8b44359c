// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 这个算是 user 专属的
var ErrUserDuplicate = errors.New("用户名或邮箱已经被注册")

//go:generate mockgen -source=./user.go -package=daomocks -destination=mocks/user.mock.go UserDAO
type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	// UpdateNonZeroFields 只更新非零值字段
	UpdateNonZeroFields(ctx context.Context, u User) error
	FindById(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	// FindByUsernameOrEmail 用户名或者邮箱任意一个命中都算
	FindByUsernameOrEmail(ctx context.Context, username, email string) ([]User, error)
	List(ctx context.Context, offset, limit int) ([]User, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if isDuplicate(err) {
		return 0, ErrUserDuplicate
	}
	return u.Id, err
}

func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	err := ud.db.WithContext(ctx).Updates(&u).Error
	if isDuplicate(err) {
		return ErrUserDuplicate
	}
	return err
}

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) FindByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "username = ?", username).Error
	return u, err
}

func (ud *GORMUserDAO) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).
		Where("username = ? OR email = ?", username, email).
		Order("id").
		Find(&us).Error
	return us, err
}

func (ud *GORMUserDAO) List(ctx context.Context, offset, limit int) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&us).Error
	return us, err
}

func (ud *GORMUserDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := ud.db.WithContext(ctx).Model(&User{}).Count(&res).Error
	return res, err
}

func (ud *GORMUserDAO) Delete(ctx context.Context, id int64) error {
	res := ud.db.WithContext(ctx).Where("id = ?", id).Delete(&User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

type User struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Username string `gorm:"type:varchar(64);not null;unique"`
	Email    string `gorm:"type:varchar(128);not null;unique"`
	// bcrypt 之后的密码
	Password string `gorm:"type:varchar(256);not null"`
	Role     string `gorm:"type:varchar(32);not null;index"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}
