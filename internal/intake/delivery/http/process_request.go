package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	pkgErrors "task-intake-service/pkg/errors"
)

const (
	msgFieldRequired = "Field required"
	msgStringType    = "Input should be a valid string"
	msgDictType      = "Input should be a valid dictionary"
	msgJSONInvalid   = "JSON decode error"
)

var jsonNull = []byte("null")

// processParseReq reads the parse_task body and turns shape failures into field-level detail.
// Keys match exactly; the body must be exactly one valid UTF-8 JSON value.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq

	raw, err := c.GetRawData()
	if err != nil {
		return req, pkgErrors.NewValidationError(pkgErrors.Body(pkgErrors.TypeJSONInvalid, msgJSONInvalid))
	}

	fields, vErr := decodeObject(raw)
	if vErr != nil {
		return req, vErr
	}

	key := jsonName(req, "TaskText")
	if v, ok := fields[key]; ok && !bytes.Equal(v, jsonNull) {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return req, pkgErrors.NewValidationError(pkgErrors.BodyField(key, pkgErrors.TypeStringType, msgStringType))
		}
		req.TaskText = &s
	}

	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return req, toValidationError(err, req)
	}
	return req, nil
}

// decodeObject parses raw into its top-level keys.
// An empty body or top-level null yields no keys, so every required field reports missing.
func decodeObject(raw []byte) (map[string]json.RawMessage, *pkgErrors.ValidationError) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	if !utf8.Valid(raw) || !json.Valid(raw) {
		return nil, pkgErrors.NewValidationError(pkgErrors.Body(pkgErrors.TypeJSONInvalid, msgJSONInvalid))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, pkgErrors.NewValidationError(pkgErrors.Body(pkgErrors.TypeDictType, msgDictType))
	}
	return fields, nil
}

// toValidationError maps validator failures onto a ValidationError.
func toValidationError(err error, obj any) *pkgErrors.ValidationError {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return pkgErrors.NewValidationError(pkgErrors.Body(pkgErrors.TypeJSONInvalid, err.Error()))
	}

	details := make([]pkgErrors.FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		details = append(details, pkgErrors.BodyField(jsonName(obj, fe.StructField()), pkgErrors.TypeMissing, msgFieldRequired))
	}
	return pkgErrors.NewValidationError(details...)
}

// jsonName returns the JSON key of struct field name in obj.
func jsonName(obj any, name string) string {
	f, ok := reflect.TypeOf(obj).FieldByName(name)
	if !ok {
		return name
	}
	tag := strings.Split(f.Tag.Get("json"), ",")[0]
	if tag == "" || tag == "-" {
		return name
	}
	return tag
}
