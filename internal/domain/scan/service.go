// internal/domain/scan/service.go
package scan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/freshify/freshify-backend/internal/domain/catalog"
	"github.com/freshify/freshify-backend/internal/infrastructure/storage"
	"github.com/freshify/freshify-backend/internal/pkg/userlock"
)

// Service handles the per-user barcode scan log
type Service struct {
	store   storage.Store
	catalog *catalog.Catalog
	locks   *userlock.Keyed
	log     *logrus.Logger

	now func() time.Time
}

// NewService creates a new scan service
func NewService(store storage.Store, cat *catalog.Catalog, locks *userlock.Keyed, log *logrus.Logger) *Service {
	return &Service{
		store:   store,
		catalog: cat,
		locks:   locks,
		log:     log,
		now:     time.Now,
	}
}

// LogScan records a barcode lookup, keeping the most recent entries first
// and truncating the history to its bound. The product may be identified by
// id or, when the id is empty, by barcode.
func (s *Service) LogScan(ctx context.Context, userID, productID, barcode string) (*Record, error) {
	var (
		prod catalog.Product
		err  error
	)
	if productID != "" {
		prod, err = s.catalog.ByID(productID)
	} else {
		prod, err = s.catalog.ByBarcode(barcode)
	}
	if err != nil {
		return nil, err
	}
	productID = prod.ID
	if barcode == "" {
		barcode = prod.Barcode
	}

	record := Record{
		ID:          "SCAN" + uuid.NewString(),
		ProductID:   productID,
		Barcode:     barcode,
		ProductName: prod.Name,
		ScannedAt:   s.now().UTC(),
	}

	unlock := s.locks.Lock(lockKey(userID))
	defer unlock()

	records, err := s.loadRecords(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scan history: %w", err)
	}

	records = append([]Record{record}, records...)
	if len(records) > maxHistory {
		records = records[:maxHistory]
	}

	if err := s.store.Set(ctx, userID, storage.KindScans, records); err != nil {
		return nil, fmt.Errorf("failed to save scan history: %w", err)
	}

	return &record, nil
}

// GetHistory returns the scan log most-recent-first. Read failures degrade
// to an empty history.
func (s *Service) GetHistory(ctx context.Context, userID string) []Record {
	records, err := s.loadRecords(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("scan history read degraded to empty")
		return []Record{}
	}
	return records
}

func (s *Service) loadRecords(ctx context.Context, userID string) ([]Record, error) {
	var records []Record
	err := s.store.Get(ctx, userID, storage.KindScans, &records)
	if errors.Is(err, storage.ErrNotFound) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, err
	}
	return records, nil
}

func lockKey(userID string) string {
	return userID + ":" + string(storage.KindScans)
}
