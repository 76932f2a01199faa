package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/estiak0001/SUROVI-DASH/internal/cache"
	"github.com/estiak0001/SUROVI-DASH/internal/domain"
	"github.com/estiak0001/SUROVI-DASH/internal/ingest"
	"github.com/estiak0001/SUROVI-DASH/internal/repository"
	"github.com/estiak0001/SUROVI-DASH/internal/storage"
	"github.com/estiak0001/SUROVI-DASH/pkg/logger"
)

// ErrUnknownFileType is returned when a filename carries none of the report
// keywords and no loader can claim it.
var ErrUnknownFileType = errors.New("unknown file type: filename should contain 'sales', 'collection', 'product', or 'comparison'")

// UploadService loads report workbooks into the star schema. Each load runs
// in a single transaction that replaces the period's facts wholesale, so
// re-uploading a corrected file is safe.
type UploadService struct {
	repo    repository.UploadRepository
	cache   cache.DashboardSummaryCache
	archive storage.ObjectStorage
	now     func() time.Time
}

func NewUploadService(repo repository.UploadRepository, cache cache.DashboardSummaryCache, archive storage.ObjectStorage) *UploadService {
	return &UploadService{
		repo:    repo,
		cache:   cache,
		archive: archive,
		now:     time.Now,
	}
}

// Process detects the report type from the filename, parses the workbook and
// loads it. overrideMonth/overrideYear of 0 mean "not provided".
func (s *UploadService) Process(ctx context.Context, filename string, data []byte, overrideMonth, overrideYear int) (*domain.UploadResult, error) {
	fileType := ingest.DetectFileType(filename)

	var (
		result *domain.UploadResult
		err    error
	)
	switch fileType {
	case domain.FileTypeSalesCollection:
		result, err = s.processSalesCollection(ctx, filename, data, overrideMonth, overrideYear)
	case domain.FileTypeProductComparison:
		result, err = s.processProductComparison(ctx, filename, data, overrideMonth, overrideYear)
	default:
		return nil, ErrUnknownFileType
	}
	if err != nil {
		return nil, err
	}

	s.afterLoad(ctx, filename, data, result)
	return result, nil
}

func (s *UploadService) processSalesCollection(ctx context.Context, filename string, data []byte, overrideMonth, overrideYear int) (*domain.UploadResult, error) {
	report, err := ingest.ParseSalesWorkbook(data)
	if err != nil {
		return nil, fmt.Errorf("parse sales workbook: %w", err)
	}

	now := s.now()
	month, year := ingest.ResolvePeriod(filename, report.HeadRows, overrideMonth, overrideYear, now)

	var deleted int64
	var inserted, regions int

	err = s.repo.InTx(ctx, func(tx repository.UploadTx) error {
		timeDim, err := tx.GetOrCreateTime(ctx, month, year, now)
		if err != nil {
			return err
		}

		// Replace the period's facts wholesale before inserting.
		deleted, err = tx.DeleteSalesFacts(ctx, timeDim.TimeID)
		if err != nil {
			return err
		}

		for _, rec := range report.Records {
			region, err := tx.GetOrCreateRegion(ctx, rec.AreaCode, rec.AreaName, rec.Division, ingest.ZoneForDivision(rec.Division))
			if err != nil {
				return err
			}
			regions++

			fact := &domain.FactSales{
				RegionID:            region.RegionID,
				TimeID:              timeDim.TimeID,
				SalesTarget:         rec.SalesTarget,
				GrossSales:          rec.GrossSales,
				SalesReturn:         rec.SalesReturn,
				NetSales:            rec.NetSales,
				SalesAchievementPct: rec.SalesAchievementPct,
				CollTarget:          rec.CollTarget,
				TotalCollection:     rec.TotalCollection,
				CashCollection:      rec.CashCollection,
				CreditCollection:    rec.CreditCollection,
				SeedCollection:      rec.SeedCollection,
				CollAchievementPct:  rec.CollAchievementPct,
				Outstanding:         rec.Outstanding,
				ReturnRatePct:       rec.ReturnRatePct,
			}
			if err := tx.InsertSalesFact(ctx, fact); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load sales collection: %w", err)
	}

	message := fmt.Sprintf("Sales & Collection data for %s %d processed successfully. ", ingest.MonthName(month), year)
	if deleted > 0 {
		message += fmt.Sprintf("Replaced %d existing records. ", deleted)
	}
	message += fmt.Sprintf("Inserted %d new records.", inserted)

	return &domain.UploadResult{
		Success:          true,
		Message:          message,
		FileType:         domain.FileTypeSalesCollection,
		RecordsProcessed: inserted,
		Details: map[string]any{
			"month":               month,
			"year":                year,
			"month_name":          ingest.MonthName(month),
			"deleted_records":     deleted,
			"regions_processed":   regions,
			"fact_sales_inserted": inserted,
		},
	}, nil
}

func (s *UploadService) processProductComparison(ctx context.Context, filename string, data []byte, overrideMonth, overrideYear int) (*domain.UploadResult, error) {
	report, err := ingest.ParseProductWorkbook(data)
	if err != nil {
		return nil, fmt.Errorf("parse product workbook: %w", err)
	}

	now := s.now()
	month, year := ingest.ResolvePeriod(filename, report.HeadRows, overrideMonth, overrideYear, now)
	prevYear := year - 1

	var deleted int64
	var inserted, products int

	err = s.repo.InTx(ctx, func(tx repository.UploadTx) error {
		timePrev, err := tx.GetOrCreateTime(ctx, month, prevYear, now)
		if err != nil {
			return err
		}
		timeCurr, err := tx.GetOrCreateTime(ctx, month, year, now)
		if err != nil {
			return err
		}

		// Both the snapshot year and the comparison year are owned by this
		// upload; clear both before inserting.
		deletedPrev, err := tx.DeleteProductFacts(ctx, timePrev.TimeID)
		if err != nil {
			return err
		}
		deletedCurr, err := tx.DeleteProductFacts(ctx, timeCurr.TimeID)
		if err != nil {
			return err
		}
		deleted = deletedPrev + deletedCurr

		for _, rec := range report.Records {
			product, err := tx.GetOrCreateProduct(ctx, rec.Name, "General")
			if err != nil {
				return err
			}
			products++

			// Previous year snapshot carries no comparison fields.
			prevFact := &domain.FactProductPerformance{
				ProductID:   product.ProductID,
				TimeID:      timePrev.TimeID,
				SalesValue:  rec.ValuePrev,
				SalesVolume: rec.VolumePrev,
			}
			if err := tx.InsertProductFact(ctx, prevFact); err != nil {
				return err
			}
			inserted++

			currFact := &domain.FactProductPerformance{
				ProductID:       product.ProductID,
				TimeID:          timeCurr.TimeID,
				SalesValue:      rec.ValueCurr,
				SalesVolume:     rec.VolumeCurr,
				PrevYearValue:   rec.ValuePrev,
				PrevYearVolume:  rec.VolumePrev,
				ValueGrowth:     rec.ValueGrowth,
				VolumeGrowth:    rec.VolumeGrowth,
				ValueGrowthPct:  rec.ValueGrowthPct,
				VolumeGrowthPct: rec.VolumeGrowthPct,
			}
			if err := tx.InsertProductFact(ctx, currFact); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load product comparison: %w", err)
	}

	if len(report.MissingVolume) > 0 {
		logger.Log.Warn().
			Strs("products", report.MissingVolume).
			Msg("volume sheet missing entries, volumes loaded as zero")
	}

	message := fmt.Sprintf("Product comparison data for %s %d processed successfully. ", ingest.MonthName(month), year)
	if deleted > 0 {
		message += fmt.Sprintf("Replaced %d existing records. ", deleted)
	}
	message += fmt.Sprintf("Inserted %d new records for %d products.", inserted, products)

	return &domain.UploadResult{
		Success:          true,
		Message:          message,
		FileType:         domain.FileTypeProductComparison,
		RecordsProcessed: inserted,
		Details: map[string]any{
			"month":                 month,
			"year":                  year,
			"month_name":            ingest.MonthName(month),
			"deleted_records":       deleted,
			"products_processed":    products,
			"fact_records_inserted": inserted,
		},
	}, nil
}

// afterLoad runs the best-effort side effects of a successful load: cache
// invalidation and workbook archival. Failures here are logged, never
// surfaced, the data is already committed.
func (s *UploadService) afterLoad(ctx context.Context, filename string, data []byte, result *domain.UploadResult) {
	if err := s.cache.InvalidateAll(ctx); err != nil {
		logger.Log.Warn().Err(err).Msg("failed to invalidate dashboard cache after upload")
	}

	if s.archive == nil {
		return
	}
	month, _ := result.Details["month"].(int)
	year, _ := result.Details["year"].(int)
	key := fmt.Sprintf("uploads/%d/%02d/%s", year, month, filename)
	if err := s.archive.UploadObject(ctx, key, data); err != nil {
		logger.Log.Warn().Err(err).Str("key", key).Msg("failed to archive uploaded workbook")
	}
}
