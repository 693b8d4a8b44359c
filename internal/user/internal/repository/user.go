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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/webshop/internal/user/internal/domain"
	"github.com/ecodeclub/webshop/internal/user/internal/repository/cache"
	"github.com/ecodeclub/webshop/internal/user/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go -typed UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 更新数据，只有非 0 值才会更新
	Update(ctx context.Context, u domain.User) error
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) ([]domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, error)
	Total(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao    dao.UserDAO
	cache  cache.UserCache
	logger *elog.Component
}

// NewCachedUserRepository 支持缓存的实现
func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.domainToEntity(u))
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, ur.domainToEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.Id)
}

func (ur *CachedUserRepository) FindById(ctx context.Context,
	id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, err
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	if er := ur.cache.Set(ctx, u); er != nil {
		// 忽略掉这里的错误
		ur.logger.Warn("回写用户缓存失败", elog.Int64("uid", id), elog.FieldErr(er))
	}
	return u, nil
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	return ur.entityToDomain(u), err
}

func (ur *CachedUserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := ur.dao.FindByUsername(ctx, username)
	return ur.entityToDomain(u), err
}

func (ur *CachedUserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]domain.User, error) {
	us, err := ur.dao.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	}), nil
}

func (ur *CachedUserRepository) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	us, err := ur.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	}), nil
}

func (ur *CachedUserRepository) Total(ctx context.Context) (int64, error) {
	return ur.dao.Count(ctx)
}

func (ur *CachedUserRepository) Delete(ctx context.Context, id int64) error {
	err := ur.dao.Delete(ctx, id)
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, id)
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.Id,
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role.String(),
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:       ue.Id,
		Username: ue.Username,
		Email:    ue.Email,
		Password: ue.Password,
		Role:     domain.Role(ue.Role),
		Ctime:    ue.Ctime,
		Utime:    ue.Utime,
	}
}
