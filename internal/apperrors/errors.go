package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnsupportedCurrency indicates a conversion involved a currency that is
// missing from the exchange-rate table. Input validation normally keeps this
// from surfacing; it is a distinct kind so a divergence between the table and
// the accepted input set is distinguishable from bad client input.
var ErrUnsupportedCurrency = errors.New("unsupported currency")
