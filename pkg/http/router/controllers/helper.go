package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/congestion-router/pkg"
	"github.com/lintang-b-s/congestion-router/pkg/engine"
	"github.com/lintang-b-s/congestion-router/pkg/util"
	"go.uber.org/zap"
)

type envelope map[string]interface{}

const maxBodyBytes = 1 << 20

func (api *routingAPI) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func (api *routingAPI) readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case errors.As(err, &maxBytesErr):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesErr.Limit)
		default:
			return fmt.Errorf("body contains badly-formed JSON: %v", err)
		}
	}
	if dec.More() {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}

func (api *routingAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	if err := api.writeJSON(w, status, envelope{"error": errorBody{Code: code, Message: message}}, nil); err != nil {
		api.log.Error("write error response", zap.String("path", r.URL.Path), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *routingAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, "bad_request", err.Error())
}

func (api *routingAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("server error", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
	api.errorResponse(w, r, http.StatusInternalServerError, "internal", util.MessageInternalServerError)
}

// getStatusCode writes err with the status matching its util.Error code.
func (api *routingAPI) getStatusCode(w http.ResponseWriter, r *http.Request, err error) {
	body := publicError(err)
	switch util.ErrorCode(err) {
	case util.ErrNotFound:
		api.errorResponse(w, r, http.StatusNotFound, body.Code, body.Message)
	case util.ErrBadParamInput:
		api.errorResponse(w, r, http.StatusBadRequest, body.Code, body.Message)
	default:
		api.log.Error("route request failed", zap.String("path", r.URL.Path), zap.Error(err))
		api.errorResponse(w, r, http.StatusInternalServerError, body.Code, body.Message)
	}
}

// publicError hides internal error details. user input errors keep their message.
func publicError(err error) errorBody {
	kind := engine.KindOf(err)
	switch util.ErrorCode(err) {
	case util.ErrNotFound, util.ErrBadParamInput:
		return errorBody{Code: string(kind), Message: err.Error()}
	default:
		return errorBody{Code: string(kind), Message: util.MessageInternalServerError}
	}
}

var (
	validate = validator.New()
	trans    ut.Translator
)

func init() {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ = uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	// maxbatch caps a batch request at MAX_BATCH_QUERIES queries
	_ = validate.RegisterValidation("maxbatch", func(fl validator.FieldLevel) bool {
		return fl.Field().Len() <= pkg.MAX_BATCH_QUERIES
	})
	_ = validate.RegisterTranslation("maxbatch", trans, func(tr ut.Translator) error {
		return tr.Add("maxbatch", "{0} must contain at most {1} items", true)
	}, func(tr ut.Translator, fe validator.FieldError) string {
		msg, _ := tr.T("maxbatch", fe.Field(), strconv.Itoa(pkg.MAX_BATCH_QUERIES))
		return msg
	})
}

// validateStruct returns nil or an error listing every translated validation failure.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	vv := translateError(err, trans)
	vvString := make([]string, 0, len(vv))
	for _, v := range vv {
		vvString = append(vvString, v.Error())
	}
	return fmt.Errorf("validation error: %s", strings.Join(vvString, "; "))
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
