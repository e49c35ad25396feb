package variance

import "errors"

var (
	ErrInvalidCategory     = errors.New("invalid cost category")
	ErrCostItemNotFound    = errors.New("cost item not found")
	ErrInvalidItemUpdate   = errors.New("invalid cost item update")
	ErrMilestoneNotFound   = errors.New("milestone not found")
	ErrInvalidMilestone    = errors.New("invalid milestone")
	ErrInvalidCompletion   = errors.New("completion percentage must be between 0 and 100")
	ErrInvalidThresholds   = errors.New("invalid variance thresholds")
	ErrInvalidRecordStatus = errors.New("invalid record status")
	ErrInvalidAWBID        = errors.New("invalid awb id")
	ErrInvalidQuotation    = errors.New("invalid quotation")
	ErrInvalidAmount       = errors.New("invalid amount")
)
