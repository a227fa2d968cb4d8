package httperr

import "errors"

// Códigos de erro de negócio usados pelos use cases.
const (
	CodeUserNotFound          = "user_not_found"
	CodeEstablishmentNotFound = "establishment_not_found"
	CodeReviewNotFound        = "review_not_found"
	CodeDuplicateReview       = "duplicate_review"
	CodeForbidden             = "forbidden"
	CodeStorageError          = "storage_error"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
