package usecase

import (
	"errors"

	"news-service/app/domain"
	apperrors "news-service/app/utils/errors"
)

// toAppError translates domain sentinels into transport-facing errors.
// Anything unrecognized is treated as internal so raw driver errors never
// leak to clients.
func toAppError(err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.IsAppError(err):
		return err
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidCategory):
		return apperrors.NewValidation(err.Error())
	case errors.Is(err, domain.ErrArticleNotFound):
		return apperrors.NewNotFound("article")
	case errors.Is(err, domain.ErrUserNotFound):
		return apperrors.NewNotFound("user")
	case errors.Is(err, domain.ErrDuplicateTitle):
		return apperrors.NewConflict("an article with this title already exists")
	case errors.Is(err, domain.ErrDuplicateUser):
		return apperrors.NewConflict("username or email already taken")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return apperrors.ErrInvalidCredentials
	default:
		return apperrors.NewInternal(err)
	}
}
