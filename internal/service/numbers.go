package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tutorbase/backend/internal/models"
)

// Business number prefixes
const (
	PrefixInvoice     = "INV"
	PrefixRefund      = "REF"
	PrefixTransaction = "TRN"
)

const maxNumberAttempts = 3

// GenerateNumber formats PREFIX-YYYYMMDD-XXXX, where XXXX is the last four
// digits of the millisecond timestamp. The number is for display; the unique
// index on the column is what guarantees uniqueness.
func GenerateNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, now.UTC().Format("20060102"), now.UnixMilli()%10000)
}

// createWithNumber calls create with freshly generated numbers until it
// succeeds or the unique index rejects maxNumberAttempts of them.
func createWithNumber(ctx context.Context, prefix string, now func() time.Time, create func(number string) error) error {
	var err error
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		number := GenerateNumber(prefix, now().Add(time.Duration(attempt)*time.Millisecond))
		err = create(number)
		if !errors.Is(err, models.ErrDuplicateNumber) {
			return err
		}
	}

	return &ServiceError{
		Code:    ErrCodeDuplicateNumber,
		Message: fmt.Sprintf("could not allocate a unique %s number", prefix),
		Err:     err,
	}
}
