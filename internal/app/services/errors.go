package services

import (
	"errors"

	"github.com/emre/alumnihub/internal/pkg/apperrors"
)

// isNotFound reports whether err is any of the entity lookup failures.
func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrResourceNotFound) ||
		errors.Is(err, apperrors.ErrUserNotFound) ||
		errors.Is(err, apperrors.ErrAlumnusNotFound) ||
		errors.Is(err, apperrors.ErrCourseNotFound) ||
		errors.Is(err, apperrors.ErrEventNotFound) ||
		errors.Is(err, apperrors.ErrForumNotFound) ||
		errors.Is(err, apperrors.ErrCommentNotFound) ||
		errors.Is(err, apperrors.ErrJobNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, apperrors.ErrEmailAlreadyExists)
}
