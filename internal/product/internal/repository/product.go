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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/webshop/internal/product/internal/domain"
	"github.com/ecodeclub/webshop/internal/product/internal/repository/dao"
)

var ErrProductNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./product.go -package=repomocks -destination=mocks/product.mock.go -typed ProductRepository
type ProductRepository interface {
	Create(ctx context.Context, p domain.Product) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindByName(ctx context.Context, name string) (domain.Product, error)
	Search(ctx context.Context, keyword string, offset, limit int) ([]domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, error)
	Total(ctx context.Context) (int64, error)
	// Update setStock 为 false 时不写库存，避免覆盖并发的扣减
	Update(ctx context.Context, p domain.Product, setStock bool) error
	Delete(ctx context.Context, id int64) error
}

type productRepository struct {
	dao dao.ProductDAO
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{dao: d}
}

func (r *productRepository) Create(ctx context.Context, p domain.Product) (int64, error) {
	switch p.Kind {
	case domain.KindPhysical:
		return r.dao.CreatePhysical(ctx, r.toEntity(p), dao.PhysicalProduct{
			Weight: p.Physical.Weight,
			Stock:  p.Physical.Stock,
		})
	case domain.KindDigital:
		return r.dao.CreateDigital(ctx, r.toEntity(p), dao.DigitalProduct{
			FileSize:     p.Digital.FileSize,
			DownloadLink: p.Digital.DownloadLink,
		})
	default:
		return 0, fmt.Errorf("未知的商品类型 %s", p.Kind)
	}
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return r.withDetails(ctx, p)
}

func (r *productRepository) FindByName(ctx context.Context, name string) (domain.Product, error) {
	p, err := r.dao.FindByName(ctx, name)
	if err != nil {
		return domain.Product{}, err
	}
	return r.withDetails(ctx, p)
}

func (r *productRepository) Search(ctx context.Context, keyword string, offset, limit int) ([]domain.Product, error) {
	ps, err := r.dao.Search(ctx, keyword, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.batchWithDetails(ctx, ps)
}

func (r *productRepository) List(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	ps, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.batchWithDetails(ctx, ps)
}

func (r *productRepository) Total(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *productRepository) Update(ctx context.Context, p domain.Product, setStock bool) error {
	switch p.Kind {
	case domain.KindPhysical:
		return r.dao.UpdatePhysical(ctx, r.toEntity(p), dao.PhysicalProduct{
			Weight: p.Physical.Weight,
			Stock:  p.Physical.Stock,
		}, setStock)
	case domain.KindDigital:
		return r.dao.UpdateDigital(ctx, r.toEntity(p), dao.DigitalProduct{
			FileSize:     p.Digital.FileSize,
			DownloadLink: p.Digital.DownloadLink,
		})
	default:
		return fmt.Errorf("未知的商品类型 %s", p.Kind)
	}
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *productRepository) withDetails(ctx context.Context, p dao.Product) (domain.Product, error) {
	res, err := r.batchWithDetails(ctx, []dao.Product{p})
	if err != nil {
		return domain.Product{}, err
	}
	return res[0], nil
}

// batchWithDetails 按类型分批查扩展表，避免一条商品查一次
func (r *productRepository) batchWithDetails(ctx context.Context, ps []dao.Product) ([]domain.Product, error) {
	var physicalIDs, digitalIDs []int64
	for _, p := range ps {
		switch domain.Kind(p.Kind) {
		case domain.KindPhysical:
			physicalIDs = append(physicalIDs, p.Id)
		case domain.KindDigital:
			digitalIDs = append(digitalIDs, p.Id)
		}
	}
	physicals, err := r.dao.FindPhysicalByIDs(ctx, physicalIDs)
	if err != nil {
		return nil, err
	}
	digitals, err := r.dao.FindDigitalByIDs(ctx, digitalIDs)
	if err != nil {
		return nil, err
	}
	physicalMap := make(map[int64]dao.PhysicalProduct, len(physicals))
	for _, ext := range physicals {
		physicalMap[ext.Id] = ext
	}
	digitalMap := make(map[int64]dao.DigitalProduct, len(digitals))
	for _, ext := range digitals {
		digitalMap[ext.Id] = ext
	}
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		res := r.toDomain(src)
		if ext, ok := physicalMap[src.Id]; ok {
			res.Physical = domain.Physical{Weight: ext.Weight, Stock: ext.Stock}
		}
		if ext, ok := digitalMap[src.Id]; ok {
			res.Digital = domain.Digital{FileSize: ext.FileSize, DownloadLink: ext.DownloadLink}
		}
		return res
	}), nil
}

func (r *productRepository) toEntity(p domain.Product) dao.Product {
	return dao.Product{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Kind:        p.Kind.String(),
	}
}

func (r *productRepository) toDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Kind:        domain.Kind(p.Kind),
		Ctime:       p.Ctime,
		Utime:       p.Utime,
	}
}
