// Package service implements the domain core: content store, follow graph,
// reaction engine and feed assembly. All mutual exclusion is delegated to the
// database through uniqueness constraints and row-level locks; the service
// itself holds no in-process state beyond the connection pool.
package service

import (
	"github.com/chirpmux/chirpmux/utils"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service struct {
	DB    *gorm.DB
	Cache *utils.RedisClient
}

func New(db *gorm.DB, cache *utils.RedisClient) *Service {
	return &Service{DB: db, Cache: cache}
}

// PageParams is the page/size contract shared by every listing: page is
// 1-based, size is clamped to 1..100 and defaults to 20.
type PageParams struct {
	Page int
	Size int
}

func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = defaultPageSize
	}
	p.Size = utils.Min(p.Size, maxPageSize)
	return p
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Size
}
