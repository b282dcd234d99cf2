package build_week_view

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("build_week_view: invalid input data")

	// ErrInvalidStatus возвращается при некорректном фильтре статуса
	ErrInvalidStatus = errors.New("build_week_view: invalid status filter")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("build_week_view: internal error")
)
