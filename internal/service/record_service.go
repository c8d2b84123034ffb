package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/basilogast/portfolio-server/internal/db"
	"github.com/basilogast/portfolio-server/internal/storage"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrNoUpdates      = errors.New("no updates provided")
)

// RecordStore is the record CRUD surface the HTTP layer consumes.
type RecordStore interface {
	List(table db.Table) ([]db.Record, error)
	Get(table db.Table, id int) (*db.Record, error)
	Create(table db.Table, input RecordInput) (*db.Record, error)
	Update(table db.Table, id int, input RecordInput) (*db.Record, error)
	Delete(ctx context.Context, table db.Table, id int) error
}

// RecordService implements record CRUD over the allow-listed tables and
// owns the asset cleanup that accompanies a row deletion.
type RecordService struct {
	db      *gorm.DB
	objects storage.ObjectStore
	logger  *logrus.Logger
}

var _ RecordStore = (*RecordService)(nil)

// NewRecordService creates a RecordService instance.
func NewRecordService(gdb *gorm.DB, objects storage.ObjectStore, logger *logrus.Logger) *RecordService {
	return &RecordService{db: gdb, objects: objects, logger: logger}
}

// List returns every record of the table in insertion order.
func (s *RecordService) List(table db.Table) ([]db.Record, error) {
	records := []db.Record{}
	if err := s.db.Table(table.String()).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Get fetches a single record by id.
func (s *RecordService) Get(table db.Table, id int) (*db.Record, error) {
	var record db.Record
	err := s.db.Table(table.String()).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Create inserts a new record with exactly the supplied fields. Unsupplied
// fields keep their column defaults; a nil paragraph list becomes empty.
func (s *RecordService) Create(table db.Table, input RecordInput) (*db.Record, error) {
	textPara := input.TextPara
	if textPara == nil {
		textPara = db.StringList{}
	}

	record := db.Record{
		Size:         input.Size,
		Img:          input.Img,
		Text:         input.Text,
		PDFURL:       input.PDFURL,
		TextPara:     textPara,
		DetailsRoute: input.DetailsRoute,
	}

	if err := s.db.Table(table.String()).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Update applies a sparse patch: only fields carrying a value are written,
// everything else is left untouched. Returns the reloaded record.
func (s *RecordService) Update(table db.Table, id int, input RecordInput) (*db.Record, error) {
	updates, values := buildUpdates(input)
	if len(updates) == 0 {
		return nil, ErrNoUpdates
	}

	// The table name comes from the closed Table enum, never from request
	// input, so interpolating it here is safe.
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(updates, ", "))
	values = append(values, id)

	if err := s.db.Exec(query, values...).Error; err != nil {
		return nil, err
	}

	return s.Get(table, id)
}

// Delete removes a record and best-effort-deletes the assets its img and
// pdfUrl reference. Asset deletion failures are logged and never block the
// row deletion.
func (s *RecordService) Delete(ctx context.Context, table db.Table, id int) error {
	record, err := s.Get(table, id)
	if err != nil {
		return err
	}

	s.deleteAsset(ctx, table, record.Img)
	s.deleteAsset(ctx, table, record.PDFURL)

	return s.db.Table(table.String()).Where("id = ?", id).Delete(&db.Record{}).Error
}

func (s *RecordService) deleteAsset(ctx context.Context, table db.Table, assetURL string) {
	if assetURL == "" {
		return
	}

	path, ok := storage.ObjectPathFromURL(assetURL)
	if !ok {
		return
	}

	if err := s.objects.DeleteObject(ctx, path); err != nil && s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"table": table.String(),
			"path":  path,
		}).WithError(err).Warn("failed to delete stored asset")
	}
}
