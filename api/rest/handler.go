package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Err is an error with the http status it should be reported with.
type Err struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *Err) Error() string {
	return e.Message
}

func NewErrf(statusCode int, format string, args ...any) *Err {
	return &Err{
		StatusCode: statusCode,
		Message:    fmt.Sprintf(format, args...),
	}
}

// HandlerFunc handles a decoded request.
type HandlerFunc[Req, Resp any] func(ctx context.Context, req *Req) (*Resp, error)

// RegisterFunc serves h on pattern. The request is decoded from the JSON body, if any, and
// then from the path wildcards and query parameters named by the `path` and `query` struct
// tags of Req.
func RegisterFunc[Req, Resp any](logger *logrus.Logger, mux *http.ServeMux, method, pattern string, h HandlerFunc[Req, Resp]) {
	mux.HandleFunc(method+" "+pattern, func(w http.ResponseWriter, r *http.Request) {
		logger := logger.WithContext(r.Context()).WithFields(logrus.Fields{
			"method":  r.Method,
			"pattern": pattern,
		})

		req := new(Req)
		if r.Body != nil && r.ContentLength != 0 {
			err := json.NewDecoder(r.Body).Decode(req)
			if err != nil {
				logger.WithError(err).Warn("Failed to decode request body")
				writeJSON(logger, w, http.StatusBadRequest, NewErrf(http.StatusBadRequest, "Invalid request body"))
				return
			}
		}
		err := bindParams(r, req)
		if err != nil {
			logger.WithError(err).Warn("Failed to bind request parameters")
			writeJSON(logger, w, http.StatusBadRequest, NewErrf(http.StatusBadRequest, "%s", err.Error()))
			return
		}

		resp, err := h(r.Context(), req)
		if err != nil {
			var restErr *Err
			if !errors.As(err, &restErr) {
				logger.WithError(err).Error("Handler failed with unexpected error")
				restErr = NewErrf(http.StatusInternalServerError, "Internal server error")
			}
			writeJSON(logger, w, restErr.StatusCode, restErr)
			return
		}

		writeJSON(logger, w, http.StatusOK, resp)
	})
}

func writeJSON(logger *logrus.Entry, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		logger.WithError(err).Error("Failed to write response")
	}
}

// bindParams sets the string, bool and int fields of req tagged with `path` or `query`.
func bindParams(r *http.Request, req any) error {
	v := reflect.ValueOf(req).Elem()
	if v.Kind() != reflect.Struct {
		return nil
	}
	t := v.Type()

	query := r.URL.Query()
	for i := range t.NumField() {
		field := t.Field(i)
		var raw string
		if name, ok := field.Tag.Lookup("path"); ok {
			raw = r.PathValue(name)
		} else if name, ok := field.Tag.Lookup("query"); ok {
			raw = query.Get(name)
		} else {
			continue
		}
		if raw == "" {
			continue
		}

		fv := v.Field(i)
		switch fv.Kind() {
		case reflect.String:
			fv.SetString(raw)
		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("invalid value %q for %s", raw, field.Name)
			}
			fv.SetBool(b)
		case reflect.Int:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("invalid value %q for %s", raw, field.Name)
			}
			fv.SetInt(int64(n))
		default:
			return fmt.Errorf("unsupported parameter type for %s", field.Name)
		}
	}

	return nil
}
