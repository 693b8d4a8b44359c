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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecodeclub/webshop/internal/user/internal/domain"
	"github.com/ecodeclub/webshop/internal/user/internal/event"
	"github.com/ecodeclub/webshop/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUserNotFound       = repository.ErrUserNotFound
	ErrDuplicateIdentity  = repository.ErrUserDuplicate
	ErrInvalidCredentials = errors.New("用户名或密码不对")
	ErrInvalidRole        = errors.New("用户角色非法")
	ErrInvalidUserInfo    = errors.New("用户名、邮箱和密码都不能为空")
)

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go -typed UserService
type UserService interface {
	// Create 角色为空时默认为普通用户
	Create(ctx context.Context, u domain.User) (domain.User, error)
	// Authenticate 优先使用邮箱，邮箱为空再使用用户名
	Authenticate(ctx context.Context, email, username, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
	// Update 只更新非空字段，密码会重新加密
	Update(ctx context.Context, u domain.User) (domain.User, error)
	Delete(ctx context.Context, id int64) error
	// EnsureAdministrator 用户名或者邮箱已经存在就什么也不做
	EnsureAdministrator(ctx context.Context, u domain.User) error
}

type userService struct {
	repo     repository.UserRepository
	producer event.RegistrationEventProducer
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository, p event.RegistrationEventProducer) UserService {
	return &userService{
		repo:     repo,
		producer: p,
		logger:   elog.DefaultLogger,
	}
}

func (svc *userService) Create(ctx context.Context, u domain.User) (domain.User, error) {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)
	if u.Username == "" || u.Email == "" || u.Password == "" {
		return domain.User{}, ErrInvalidUserInfo
	}
	if u.Role == "" {
		u.Role = domain.RoleCustomer
	}
	if !u.Role.Valid() {
		return domain.User{}, fmt.Errorf("%w: %s", ErrInvalidRole, u.Role)
	}
	if err := svc.checkIdentity(ctx, 0, u.Username, u.Email); err != nil {
		return domain.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = string(hash)
	u.Id, err = svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}

	// 发送注册成功消息
	evt := event.RegistrationEvent{Uid: u.Id, Role: u.Role.String()}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送注册成功消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
	u.Password = ""
	return u, nil
}

// checkIdentity 用户名或者邮箱被 self 以外的用户占用了就返回 ErrDuplicateIdentity
func (svc *userService) checkIdentity(ctx context.Context, self int64, username, email string) error {
	us, err := svc.repo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return err
	}
	for _, other := range us {
		if other.Id == self {
			continue
		}
		if other.Username == username {
			return fmt.Errorf("%w: 用户名 %s", ErrDuplicateIdentity, username)
		}
		return fmt.Errorf("%w: 邮箱 %s", ErrDuplicateIdentity, email)
	}
	return nil
}

func (svc *userService) Authenticate(ctx context.Context, email, username, password string) (domain.User, error) {
	var (
		u   domain.User
		err error
	)
	switch {
	case email != "":
		u, err = svc.repo.FindByEmail(ctx, email)
	case username != "":
		u, err = svc.repo.FindByUsername(ctx, username)
	default:
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) Profile(ctx context.Context,
	id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	var (
		eg    errgroup.Group
		us    []domain.User
		total int64
	)
	eg.Go(func() error {
		var err error
		us, err = svc.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = svc.repo.Total(ctx)
		return err
	})
	return us, total, eg.Wait()
}

func (svc *userService) Update(ctx context.Context, u domain.User) (domain.User, error) {
	if u.Role != "" && !u.Role.Valid() {
		return domain.User{}, fmt.Errorf("%w: %s", ErrInvalidRole, u.Role)
	}
	old, err := svc.repo.FindById(ctx, u.Id)
	if err != nil {
		return domain.User{}, err
	}
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)
	if u.Username != "" || u.Email != "" {
		err = svc.checkIdentity(ctx, u.Id, u.Username, u.Email)
		if err != nil {
			return domain.User{}, err
		}
	}
	if u.Password != "" {
		hash, er := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if er != nil {
			return domain.User{}, er
		}
		u.Password = string(hash)
	}
	if err = svc.repo.Update(ctx, u); err != nil {
		return domain.User{}, err
	}
	if u.Username != "" {
		old.Username = u.Username
	}
	if u.Email != "" {
		old.Email = u.Email
	}
	if u.Role != "" {
		old.Role = u.Role
	}
	old.Password = ""
	return old, nil
}

func (svc *userService) Delete(ctx context.Context, id int64) error {
	return svc.repo.Delete(ctx, id)
}

func (svc *userService) EnsureAdministrator(ctx context.Context, u domain.User) error {
	u.Role = domain.RoleAdministrator
	_, err := svc.Create(ctx, u)
	if errors.Is(err, ErrDuplicateIdentity) {
		return nil
	}
	return err
}
