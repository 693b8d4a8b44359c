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

	"github.com/ecodeclub/webshop/internal/product/internal/domain"
	"github.com/ecodeclub/webshop/internal/product/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProductNotFound = repository.ErrProductNotFound
	ErrInvalidVariant  = errors.New("商品类型非法")
	ErrInvalidPrice    = errors.New("商品价格或库存非法")
	ErrInvalidName     = errors.New("商品名称不能为空")
)

//go:generate mockgen -source=./product.go -package=productmocks -destination=../../mocks/product.mock.go -typed Service
type Service interface {
	Create(ctx context.Context, p domain.Product) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	// FindByName 名字不区分大小写
	FindByName(ctx context.Context, name string) (domain.Product, error)
	Search(ctx context.Context, keyword string, offset, limit int) ([]domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	Update(ctx context.Context, id int64, u domain.Update) (domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   repository.ProductRepository
	logger *elog.Component
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo, logger: elog.DefaultLogger}
}

func (s *service) Create(ctx context.Context, p domain.Product) (int64, error) {
	if err := s.validate(p); err != nil {
		return 0, err
	}
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return 0, err
	}
	s.logger.Info("创建商品成功",
		elog.Int64("pid", id),
		elog.String("kind", p.Kind.String()))
	return id, nil
}

func (s *service) validate(p domain.Product) error {
	if !p.Kind.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidVariant, p.Kind)
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidName
	}
	if !p.Price.IsPositive() {
		return fmt.Errorf("%w: 价格 %s", ErrInvalidPrice, p.Price)
	}
	if p.IsPhysical() && p.Physical.Stock < 0 {
		return fmt.Errorf("%w: 库存 %d", ErrInvalidPrice, p.Physical.Stock)
	}
	return nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindByName(ctx context.Context, name string) (domain.Product, error) {
	return s.repo.FindByName(ctx, strings.TrimSpace(name))
}

func (s *service) Search(ctx context.Context, keyword string, offset, limit int) ([]domain.Product, error) {
	return s.repo.Search(ctx, strings.TrimSpace(keyword), offset, limit)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Product
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	return ps, total, eg.Wait()
}

func (s *service) Update(ctx context.Context, id int64, u domain.Update) (domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	p = p.Apply(u)
	if err = s.validate(p); err != nil {
		return domain.Product{}, err
	}
	if err = s.repo.Update(ctx, p, p.IsPhysical() && u.Stock != nil); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.logger.Info("删除商品", elog.Int64("pid", id))
	return nil
}
