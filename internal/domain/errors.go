package domain

import "errors"

// Domain errors
var (
	ErrNotFound               = errors.New("resource not found")
	ErrAssetNotFound          = errors.New("asset not found")
	ErrGoalNotFound           = errors.New("savings goal not found")
	ErrDuplicateID            = errors.New("identifier already in use")
	ErrNameRequired           = errors.New("name is required")
	ErrNameTooLong            = errors.New("name exceeds maximum length")
	ErrDescriptionRequired    = errors.New("description is required")
	ErrDescriptionTooLong     = errors.New("description exceeds maximum length")
	ErrCategoryTooLong        = errors.New("category exceeds maximum length")
	ErrSymbolRequired         = errors.New("symbol is required")
	ErrSymbolTooLong          = errors.New("symbol exceeds maximum length")
	ErrInvalidAmount          = errors.New("amount must be a non-negative number")
	ErrAmountOutOfRange       = errors.New("number has too many digits")
	ErrInvalidContribution    = errors.New("contribution must be a positive number")
	ErrInvalidTarget          = errors.New("target amount must be positive")
	ErrInvalidQuantity        = errors.New("quantity must be a non-negative number")
	ErrInvalidPrice           = errors.New("price must be a non-negative number")
	ErrInvalidTransactionType = errors.New("transaction type must be income or expense")
	ErrInvalidAssetType       = errors.New("asset type must be stock, crypto, etf or bond")
	ErrInvalidDate            = errors.New("invalid date")
	ErrInvalidSnapshot        = errors.New("invalid snapshot")
)
