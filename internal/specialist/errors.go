package specialist

import "backoffice/pkg/serrors"

// Error kinds returned by the service besides serrors.ErrNotFound,
// serrors.ErrTimeout, fee.ErrNoTierConfigured and objectstore.ErrStoreUnavailable.
var (
	ErrValidation               = serrors.NewKind("VALIDATION_ERROR")
	ErrDuplicateSlug            = serrors.NewKind("DUPLICATE_SLUG")
	ErrInvalidOfferingReference = serrors.NewKind("INVALID_OFFERING_REFERENCE")
	ErrVersionConflict          = serrors.NewKind("VERSION_CONFLICT")
)
