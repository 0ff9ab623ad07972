package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

var ErrParsingError = errors.New("failed to parse request")

type (
	DataExtractor[T any] func(*http.Request) (T, error)

	parsingTypes interface {
		string | int | bool
	}
)

func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	result, err := extractor(r)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrParsingError, err)
	}

	return result, nil
}

// ParseRequestOptional returns nil when the value is absent or malformed.
func ParseRequestOptional[T any](r *http.Request, extractor DataExtractor[T]) *T {
	result, err := extractor(r)
	if err != nil {
		return nil
	}

	return &result
}

func QueryParameter[T parsingTypes](param string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		value := r.URL.Query().Get(param)
		if value == "" {
			var result T
			return result, fmt.Errorf("query parameter %s not found", param)
		}
		return parseValue[T](value)
	}
}

func Header[T parsingTypes](key string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		value := r.Header.Get(key)
		if value == "" {
			var result T
			return result, fmt.Errorf("header with key %s not found", key)
		}
		return parseValue[T](value)
	}
}

func JSONBody[T any]() DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		var body T
		err := json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			return body, fmt.Errorf("decode json body: %w", err)
		}
		return body, nil
	}
}

func parseValue[T parsingTypes](value string) (T, error) {
	var result T
	var parsed any
	var err error
	switch any(result).(type) {
	case string:
		parsed = value
	case int:
		parsed, err = strconv.Atoi(value)
	case bool:
		parsed, err = strconv.ParseBool(value)
	}
	if err != nil {
		return result, fmt.Errorf("parse %T value: %w", result, err)
	}

	return parsed.(T), nil
}
