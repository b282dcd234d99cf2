package feed

import "errors"

var (
	// ErrStaleResponse ответ отброшен: успел примениться более новый запрос
	ErrStaleResponse = errors.New("feed: stale response discarded")
	// ErrTimeout обновление не уложилось в отведенное время
	ErrTimeout = errors.New("feed: refresh timed out")
	// ErrUnavailable источник недоступен, повторы исчерпаны
	ErrUnavailable = errors.New("feed: source unavailable")
)
