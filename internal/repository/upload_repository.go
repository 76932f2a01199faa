package repository

import (
	"context"
	"time"

	"github.com/estiak0001/SUROVI-DASH/internal/domain"
)

// UploadTx is the unit of work available to a load while its transaction is
// open. Dimension lookups are insert-or-fetch on the natural key: the
// returned row carries its surrogate key even before the transaction
// commits, and an existing row is never modified.
type UploadTx interface {
	GetOrCreateTime(ctx context.Context, month, year int, now time.Time) (*domain.DimTime, error)
	GetOrCreateRegion(ctx context.Context, areaCode, areaName, division, zone string) (*domain.DimRegion, error)
	GetOrCreateProduct(ctx context.Context, name, category string) (*domain.DimProduct, error)

	// DeleteSalesFacts removes every sales fact for one time period and
	// returns the removed count.
	DeleteSalesFacts(ctx context.Context, timeID int64) (int64, error)
	InsertSalesFact(ctx context.Context, fact *domain.FactSales) error

	// DeleteProductFacts removes every product performance fact for one
	// time period, regardless of product.
	DeleteProductFacts(ctx context.Context, timeID int64) (int64, error)
	InsertProductFact(ctx context.Context, fact *domain.FactProductPerformance) error
}

// UploadRepository runs a load inside a single transaction. When fn returns
// an error the whole transaction rolls back, dimension creations included.
type UploadRepository interface {
	InTx(ctx context.Context, fn func(tx UploadTx) error) error
}
