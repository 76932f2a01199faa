package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/estiak0001/SUROVI-DASH/internal/domain"
	"github.com/estiak0001/SUROVI-DASH/internal/repository"
	"github.com/estiak0001/SUROVI-DASH/internal/storage"
)

// fakeStore is an in-memory stand-in for the postgres upload repository. It
// stages all writes inside InTx and commits them only when fn succeeds,
// mirroring transaction semantics.
type fakeStore struct {
	times    map[string]*domain.DimTime
	regions  map[string]*domain.DimRegion
	products map[string]*domain.DimProduct

	salesFacts   []*domain.FactSales
	productFacts []*domain.FactProductPerformance

	nextID int64

	failInsertSales bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		times:    make(map[string]*domain.DimTime),
		regions:  make(map[string]*domain.DimRegion),
		products: make(map[string]*domain.DimProduct),
	}
}

type fakeTx struct {
	store *fakeStore

	salesFacts   []*domain.FactSales
	productFacts []*domain.FactProductPerformance

	deletedSalesTimeIDs   []int64
	deletedProductTimeIDs []int64
}

func (s *fakeStore) InTx(ctx context.Context, fn func(tx repository.UploadTx) error) error {
	tx := &fakeTx{
		store:        s,
		salesFacts:   append([]*domain.FactSales(nil), s.salesFacts...),
		productFacts: append([]*domain.FactProductPerformance(nil), s.productFacts...),
	}
	if err := fn(tx); err != nil {
		return err
	}
	s.salesFacts = tx.salesFacts
	s.productFacts = tx.productFacts
	return nil
}

func (t *fakeTx) GetOrCreateTime(ctx context.Context, month, year int, now time.Time) (*domain.DimTime, error) {
	key := fmt.Sprintf("%d-%d", month, year)
	if existing, ok := t.store.times[key]; ok {
		return existing, nil
	}
	t.store.nextID++
	created := &domain.DimTime{TimeID: t.store.nextID, Month: month, Year: year}
	t.store.times[key] = created
	return created, nil
}

func (t *fakeTx) GetOrCreateRegion(ctx context.Context, areaCode, areaName, division, zone string) (*domain.DimRegion, error) {
	if existing, ok := t.store.regions[areaName]; ok {
		return existing, nil
	}
	t.store.nextID++
	created := &domain.DimRegion{
		RegionID: t.store.nextID,
		AreaCode: areaCode,
		AreaName: areaName,
		Division: division,
		Zone:     zone,
	}
	t.store.regions[areaName] = created
	return created, nil
}

func (t *fakeTx) GetOrCreateProduct(ctx context.Context, name, category string) (*domain.DimProduct, error) {
	if existing, ok := t.store.products[name]; ok {
		return existing, nil
	}
	t.store.nextID++
	created := &domain.DimProduct{ProductID: t.store.nextID, ProductName: name, Category: category}
	t.store.products[name] = created
	return created, nil
}

func (t *fakeTx) DeleteSalesFacts(ctx context.Context, timeID int64) (int64, error) {
	t.deletedSalesTimeIDs = append(t.deletedSalesTimeIDs, timeID)
	var kept []*domain.FactSales
	var deleted int64
	for _, f := range t.salesFacts {
		if f.TimeID == timeID {
			deleted++
			continue
		}
		kept = append(kept, f)
	}
	t.salesFacts = kept
	return deleted, nil
}

func (t *fakeTx) InsertSalesFact(ctx context.Context, fact *domain.FactSales) error {
	if t.store.failInsertSales {
		return errors.New("insert failed")
	}
	t.salesFacts = append(t.salesFacts, fact)
	return nil
}

func (t *fakeTx) DeleteProductFacts(ctx context.Context, timeID int64) (int64, error) {
	t.deletedProductTimeIDs = append(t.deletedProductTimeIDs, timeID)
	var kept []*domain.FactProductPerformance
	var deleted int64
	for _, f := range t.productFacts {
		if f.TimeID == timeID {
			deleted++
			continue
		}
		kept = append(kept, f)
	}
	t.productFacts = kept
	return deleted, nil
}

func (t *fakeTx) InsertProductFact(ctx context.Context, fact *domain.FactProductPerformance) error {
	t.productFacts = append(t.productFacts, fact)
	return nil
}

type fakeCache struct {
	invalidations int
}

func (c *fakeCache) GetSummary(ctx context.Context, month, year int) (*domain.DashboardSummary, bool, error) {
	return nil, false, nil
}

func (c *fakeCache) SetSummary(ctx context.Context, month, year int, summary *domain.DashboardSummary) error {
	return nil
}

func (c *fakeCache) InvalidateAll(ctx context.Context) error {
	c.invalidations++
	return nil
}

type fakeArchive struct {
	keys []string
}

func (a *fakeArchive) ListObjects(ctx context.Context, prefix string) ([]storage.ObjectInfo, error) {
	return nil, nil
}

func (a *fakeArchive) UploadObject(ctx context.Context, key string, data []byte) error {
	a.keys = append(a.keys, key)
	return nil
}

func salesWorkbook(t *testing.T, areas ...string) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]

	codes := []string{"A", "B", "C", "D", "E"}
	for i, area := range areas {
		row := []string{
			codes[i%len(codes)], area, "5000000", "4800000", "50000", "4750000",
			"Collection", "4500000", "4200000",
			"-", "-", "2000000",
			"-", "-", "1500000",
			"-", "-", "700000",
		}
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, i+5)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func productWorkbook(t *testing.T, names ...string) []byte {
	t.Helper()
	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetList()[0], "Monthly Value")
	if _, err := f.NewSheet("Monthly Volume"); err != nil {
		t.Fatal(err)
	}

	for _, sheet := range []string{"Monthly Value", "Monthly Volume"} {
		for i, name := range names {
			row := []string{fmt.Sprint(i + 1), name, "1000000", "1200000"}
			for c, v := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, i+6)
				if err != nil {
					t.Fatal(err)
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					t.Fatal(err)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newTestService(store *fakeStore) (*UploadService, *fakeCache) {
	c := &fakeCache{}
	svc := NewUploadService(store, c, nil)
	svc.now = func() time.Time {
		return time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	}
	return svc, c
}

func TestProcessUnknownFileType(t *testing.T) {
	svc, _ := newTestService(newFakeStore())

	_, err := svc.Process(context.Background(), "report.xlsx", nil, 0, 0)
	if !errors.Is(err, ErrUnknownFileType) {
		t.Fatalf("expected ErrUnknownFileType, got %v", err)
	}
}

func TestProcessSalesCollection(t *testing.T) {
	store := newFakeStore()
	svc, cache := newTestService(store)

	data := salesWorkbook(t, "Rangpur", "Bogura", "Dhaka")
	result, err := svc.Process(context.Background(), "Sales_Collection_Nov_2025.xlsx", data, 0, 0)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if !result.Success {
		t.Error("result should be successful")
	}
	if result.FileType != domain.FileTypeSalesCollection {
		t.Errorf("FileType = %q", result.FileType)
	}
	if result.RecordsProcessed != 3 {
		t.Errorf("RecordsProcessed = %d, want 3", result.RecordsProcessed)
	}
	if len(store.salesFacts) != 3 {
		t.Fatalf("committed %d facts, want 3", len(store.salesFacts))
	}
	if result.Details["month"] != 11 || result.Details["year"] != 2025 {
		t.Errorf("period details = %v/%v, want 11/2025", result.Details["month"], result.Details["year"])
	}
	if cache.invalidations != 1 {
		t.Errorf("cache invalidated %d times, want 1", cache.invalidations)
	}

	region, ok := store.regions["Rangpur"]
	if !ok {
		t.Fatal("Rangpur region not created")
	}
	if region.Division != "Rangpur Division" || region.Zone != "North" {
		t.Errorf("region classified as %s/%s", region.Division, region.Zone)
	}
}

func TestProcessSalesCollectionReplacesPeriod(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)

	data := salesWorkbook(t, "Rangpur", "Bogura")
	if _, err := svc.Process(context.Background(), "Sales_Collection_Nov_2025.xlsx", data, 0, 0); err != nil {
		t.Fatalf("first upload: %v", err)
	}

	result, err := svc.Process(context.Background(), "Sales_Collection_Nov_2025.xlsx", data, 0, 0)
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}

	if result.Details["deleted_records"] != int64(2) {
		t.Errorf("deleted_records = %v, want 2", result.Details["deleted_records"])
	}
	if len(store.salesFacts) != 2 {
		t.Errorf("re-upload must not accumulate facts, got %d", len(store.salesFacts))
	}
	if len(store.regions) != 2 {
		t.Errorf("dimensions must stay unique, got %d regions", len(store.regions))
	}
	if len(store.times) != 1 {
		t.Errorf("re-upload must reuse the time dimension, got %d", len(store.times))
	}
}

func TestProcessSalesCollectionDoesNotTouchOtherPeriods(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)

	data := salesWorkbook(t, "Rangpur")
	if _, err := svc.Process(context.Background(), "Sales_Collection_Oct_2025.xlsx", data, 0, 0); err != nil {
		t.Fatalf("october upload: %v", err)
	}
	if _, err := svc.Process(context.Background(), "Sales_Collection_Nov_2025.xlsx", data, 0, 0); err != nil {
		t.Fatalf("november upload: %v", err)
	}

	if len(store.salesFacts) != 2 {
		t.Fatalf("expected one fact per period, got %d", len(store.salesFacts))
	}
	if len(store.times) != 2 {
		t.Fatalf("expected two time periods, got %d", len(store.times))
	}
}

func TestProcessSalesCollectionRollsBackOnError(t *testing.T) {
	store := newFakeStore()
	store.failInsertSales = true
	svc, cache := newTestService(store)

	data := salesWorkbook(t, "Rangpur")
	_, err := svc.Process(context.Background(), "Sales_Collection_Nov_2025.xlsx", data, 0, 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(store.salesFacts) != 0 {
		t.Errorf("failed load must not commit facts, got %d", len(store.salesFacts))
	}
	if cache.invalidations != 0 {
		t.Errorf("failed load must not invalidate cache, got %d", cache.invalidations)
	}
}

func TestProcessProductComparison(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)

	data := productWorkbook(t, "Premium Ghee 500ml", "Butter 200g")
	result, err := svc.Process(context.Background(), "Product_Comparison_Nov_2025.xlsx", data, 0, 0)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if result.FileType != domain.FileTypeProductComparison {
		t.Errorf("FileType = %q", result.FileType)
	}
	// Two facts per product: a previous year snapshot and a current year row.
	if result.RecordsProcessed != 4 {
		t.Errorf("RecordsProcessed = %d, want 4", result.RecordsProcessed)
	}
	if len(store.productFacts) != 4 {
		t.Fatalf("committed %d facts, want 4", len(store.productFacts))
	}
	if len(store.times) != 2 {
		t.Fatalf("expected periods for both years, got %d", len(store.times))
	}

	prev := store.times["11-2024"]
	curr := store.times["11-2025"]
	if prev == nil || curr == nil {
		t.Fatalf("missing time dimensions: %v", store.times)
	}

	var prevFacts, currFacts int
	for _, f := range store.productFacts {
		switch f.TimeID {
		case prev.TimeID:
			prevFacts++
			if f.PrevYearValue != 0 || f.ValueGrowthPct != 0 {
				t.Errorf("snapshot row carries comparison fields: %+v", f)
			}
			if f.SalesValue != 1000000 {
				t.Errorf("snapshot SalesValue = %v, want 1000000", f.SalesValue)
			}
		case curr.TimeID:
			currFacts++
			if f.SalesValue != 1200000 || f.PrevYearValue != 1000000 {
				t.Errorf("current row values: %+v", f)
			}
			if f.ValueGrowthPct != 20.0 {
				t.Errorf("ValueGrowthPct = %v, want 20.0", f.ValueGrowthPct)
			}
		default:
			t.Errorf("fact with unexpected time id: %+v", f)
		}
	}
	if prevFacts != 2 || currFacts != 2 {
		t.Errorf("fact split = (%d, %d), want (2, 2)", prevFacts, currFacts)
	}
}

func TestProcessProductComparisonReplacesBothPeriods(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)

	data := productWorkbook(t, "Premium Ghee 500ml")
	if _, err := svc.Process(context.Background(), "Product_Comparison_Nov_2025.xlsx", data, 0, 0); err != nil {
		t.Fatalf("first upload: %v", err)
	}

	result, err := svc.Process(context.Background(), "Product_Comparison_Nov_2025.xlsx", data, 0, 0)
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}

	if result.Details["deleted_records"] != int64(2) {
		t.Errorf("deleted_records = %v, want 2", result.Details["deleted_records"])
	}
	if len(store.productFacts) != 2 {
		t.Errorf("re-upload must not accumulate facts, got %d", len(store.productFacts))
	}
	if len(store.products) != 1 {
		t.Errorf("product dimension must stay unique, got %d", len(store.products))
	}
}

func TestProcessArchivesWorkbook(t *testing.T) {
	store := newFakeStore()
	archive := &fakeArchive{}
	svc := NewUploadService(store, &fakeCache{}, archive)
	svc.now = func() time.Time {
		return time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	}

	data := salesWorkbook(t, "Rangpur")
	if _, err := svc.Process(context.Background(), "Sales_Collection_Nov_2025.xlsx", data, 0, 0); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if len(archive.keys) != 1 {
		t.Fatalf("archived %d objects, want 1", len(archive.keys))
	}
	want := "uploads/2025/11/Sales_Collection_Nov_2025.xlsx"
	if archive.keys[0] != want {
		t.Errorf("archive key = %q, want %q", archive.keys[0], want)
	}
}

func TestProcessOverridesPeriod(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)

	data := salesWorkbook(t, "Rangpur")
	result, err := svc.Process(context.Background(), "Sales_Collection_Nov_2025.xlsx", data, 3, 2024)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if result.Details["month"] != 3 || result.Details["year"] != 2024 {
		t.Errorf("period = %v/%v, want 3/2024", result.Details["month"], result.Details["year"])
	}
	if _, ok := store.times["3-2024"]; !ok {
		t.Errorf("expected time dimension 3-2024, got %v", store.times)
	}
}
