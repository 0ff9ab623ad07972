package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type HandlerFunc func(w ResponseWriter, r *http.Request) error

type Handler interface {
	Method() string
	Path() string
	Handle(w ResponseWriter, r *http.Request) error
}

type ResponseWriter interface {
	SetHeader(key, value string) ResponseWriter
	SetStatusCode(httpCode int) ResponseWriter
	SetJSONBody(data any) ResponseWriter
}

type responseWriter struct {
	impl http.ResponseWriter

	body     any
	hasBody  bool
	httpCode int
	codeSet  bool
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	w.codeSet = true
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	w.hasBody = true
	return w
}

func (w *responseWriter) Write(ctx context.Context, err error) {
	var bodyEncoded []byte
	httpCode := w.httpCode
	switch {
	case errors.Is(err, ErrParsingError):
		httpCode = http.StatusBadRequest
	case err != nil && !w.codeSet:
		httpCode = http.StatusInternalServerError
	case err == nil && w.hasBody:
		bodyEncoded, err = json.Marshal(w.body)
		if err != nil {
			err = fmt.Errorf("encode body: %w", err)
			httpCode = http.StatusInternalServerError
			bodyEncoded = nil
		}
	}

	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = err

	if bodyEncoded != nil {
		w.impl.Header().Set("Content-Type", "application/json")
	}
	w.impl.WriteHeader(httpCode)
	if bodyEncoded != nil {
		_, _ = w.impl.Write(bodyEncoded)
	}
}

func (w *responseWriter) WritePanic(ctx context.Context, p Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Code = http.StatusInternalServerError
	meta.Panic = &p

	w.impl.WriteHeader(http.StatusInternalServerError)
}

func httpHandlerWrapper(handler HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
		}

		defer func() {
			if msg := recover(); msg != nil {
				respWriter.WritePanic(r.Context(), newPanic(msg))
			}
		}()
		err := handler(respWriter, r)
		respWriter.Write(r.Context(), err)
	}
}
