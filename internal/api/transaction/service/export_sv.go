package transactionService

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	"FinanceTracker/internal/report"
	contextPkg "FinanceTracker/pkg/context"
	"bytes"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const csvContentType = "text/csv; charset=utf-8"

func (s *transactionService) ExportCSV(ctx context.Context, userID string, locale entity.Locale) ([]byte, error) {
	requestID := contextPkg.GetRequestID(ctx)

	txs, err := s.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	catRepo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	custom, err := catRepo.Categories.GetCategoriesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, txs, report.NewCategoryTable(locale, custom), locale, s.location); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to write CSV export")
		return nil, transaction.ErrExportTransactions
	}

	return buf.Bytes(), nil
}

// ArchiveCSV uploads the export to object storage and hands back a short-lived link.
func (s *transactionService) ArchiveCSV(ctx context.Context, userID string, locale entity.Locale) (transaction.ArchiveResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if s.s3 == nil {
		return transaction.ArchiveResponse{}, transaction.ErrArchiveUnavailable
	}

	body, err := s.ExportCSV(ctx, userID, locale)
	if err != nil {
		return transaction.ArchiveResponse{}, err
	}

	now := s.now()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return transaction.ArchiveResponse{}, err
	}

	key := fmt.Sprintf("exports/%s/%s-%s.csv", userID, now.UTC().Format("20060102"), id)

	if _, err := s.s3.UploadReport(key, csvContentType, body); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload CSV archive")
		return transaction.ArchiveResponse{}, transaction.ErrExportTransactions
	}

	url, err := s.s3.PresignUrl(key)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to presign CSV archive")
		if err := s.s3.DeleteFile(key); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"key":        key,
				"error":      err.Error(),
			}).Warn("Failed to remove unreachable CSV archive")
		}
		return transaction.ArchiveResponse{}, transaction.ErrExportTransactions
	}

	return transaction.ArchiveResponse{Key: key, URL: url}, nil
}
