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
	"strings"
	"time"

	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./product.go -package=daomocks -destination=mocks/product.mock.go -typed ProductDAO
type ProductDAO interface {
	CreatePhysical(ctx context.Context, p Product, ext PhysicalProduct) (int64, error)
	CreateDigital(ctx context.Context, p Product, ext DigitalProduct) (int64, error)
	FindByID(ctx context.Context, id int64) (Product, error)
	// FindByName 名称精确匹配，不区分大小写
	FindByName(ctx context.Context, name string) (Product, error)
	// Search 名称模糊匹配，不区分大小写
	Search(ctx context.Context, keyword string, offset, limit int) ([]Product, error)
	List(ctx context.Context, offset, limit int) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	FindPhysicalByIDs(ctx context.Context, ids []int64) ([]PhysicalProduct, error)
	FindDigitalByIDs(ctx context.Context, ids []int64) ([]DigitalProduct, error)
	// UpdatePhysical setStock 为 false 时不更新 stock 列
	UpdatePhysical(ctx context.Context, p Product, ext PhysicalProduct, setStock bool) error
	UpdateDigital(ctx context.Context, p Product, ext DigitalProduct) error
	Delete(ctx context.Context, id int64) error
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) CreatePhysical(ctx context.Context, p Product, ext PhysicalProduct) (int64, error) {
	now := time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p.Ctime, p.Utime = now, now
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		ext.Id, ext.Ctime, ext.Utime = p.Id, now, now
		return tx.Create(&ext).Error
	})
	return p.Id, err
}

func (d *ProductGORMDAO) CreateDigital(ctx context.Context, p Product, ext DigitalProduct) (int64, error) {
	now := time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p.Ctime, p.Utime = now, now
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		ext.Id, ext.Ctime, ext.Utime = p.Id, now, now
		return tx.Create(&ext).Error
	})
	return p.Id, err
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindByName(ctx context.Context, name string) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Order("id ASC").
		First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Search(ctx context.Context, keyword string, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+escapeLike(strings.ToLower(keyword))+"%").
		Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike MySQL 默认用反斜杠作为 LIKE 的转义符
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (d *ProductGORMDAO) List(ctx context.Context, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Product{}).Count(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindPhysicalByIDs(ctx context.Context, ids []int64) ([]PhysicalProduct, error) {
	var res []PhysicalProduct
	if len(ids) == 0 {
		return res, nil
	}
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindDigitalByIDs(ctx context.Context, ids []int64) ([]DigitalProduct, error) {
	var res []DigitalProduct
	if len(ids) == 0 {
		return res, nil
	}
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) UpdatePhysical(ctx context.Context, p Product, ext PhysicalProduct, setStock bool) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := d.updateBase(tx, p, now); err != nil {
			return err
		}
		cols := map[string]any{
			"weight": ext.Weight,
			"utime":  now,
		}
		// 库存由下单和审批按增量修改，这里只在明确指定时覆盖
		if setStock {
			cols["stock"] = ext.Stock
		}
		return tx.Model(&PhysicalProduct{}).Where("id = ?", p.Id).Updates(cols).Error
	})
}

func (d *ProductGORMDAO) UpdateDigital(ctx context.Context, p Product, ext DigitalProduct) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := d.updateBase(tx, p, now); err != nil {
			return err
		}
		return tx.Model(&DigitalProduct{}).Where("id = ?", p.Id).Updates(map[string]any{
			"file_size":     ext.FileSize,
			"download_link": ext.DownloadLink,
			"utime":         now,
		}).Error
	})
}

func (d *ProductGORMDAO) updateBase(tx *gorm.DB, p Product, now int64) error {
	return tx.Model(&Product{}).Where("id = ?", p.Id).Updates(map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"utime":       now,
	}).Error
}

func (d *ProductGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&Product{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		if err := tx.Where("id = ?", id).Delete(&PhysicalProduct{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&DigitalProduct{}).Error
	})
}

// Product 商品基础表，Kind 决定扩展字段在哪张表
type Product struct {
	Id          int64           `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	Name        string          `gorm:"type:varchar(255);not null;index:idx_name;comment:商品名称"`
	Description string          `gorm:"type:text;comment:商品描述"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:价格"`
	Kind        string          `gorm:"type:varchar(32);not null;comment:商品类型 physical=实体 digital=数字"`
	Ctime       int64
	Utime       int64
}

// PhysicalProduct 实体商品扩展表，Id 即 products.id
type PhysicalProduct struct {
	Id     int64           `gorm:"primaryKey;autoIncrement:false;comment:商品ID"`
	Weight decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0;comment:重量"`
	Stock  int64           `gorm:"not null;default:0;comment:库存数量"`
	Ctime  int64
	Utime  int64
}

// DigitalProduct 数字商品扩展表，Id 即 products.id
type DigitalProduct struct {
	Id           int64           `gorm:"primaryKey;autoIncrement:false;comment:商品ID"`
	FileSize     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0;comment:文件大小,单位MB"`
	DownloadLink string          `gorm:"type:varchar(512);comment:下载链接"`
	Ctime        int64
	Utime        int64
}
