package domain

import (
	"fmt"

	"github.com/alisyos/daily-report-sub000/internal/apperrors"
)

// Batch validation failures. All wrap apperrors.ErrValidation so handlers can
// translate them uniformly.
var (
	ErrEmptyReportBatch     = fmt.Errorf("%w: no employee in the batch has content or is on leave", apperrors.ErrValidation)
	ErrMixedReportDates     = fmt.Errorf("%w: a report batch must cover a single date", apperrors.ErrValidation)
	ErrNegativeAchievement  = fmt.Errorf("%w: achievement rate must not be negative", apperrors.ErrValidation)
	ErrLeaveConflict        = fmt.Errorf("%w: an employee on annual leave cannot also submit work items", apperrors.ErrValidation)
	ErrPlaceholderSubmitted = fmt.Errorf("%w: the not-submitted placeholder cannot be stored", apperrors.ErrValidation)
)
