package api

import (
	"encoding/json"
	"errors"

	"github.com/valyala/fasthttp"
)

var (
	ErrEmployeeIDRequired = errors.New("employee id is required")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrValidation         = errors.New("validation failed")
)

type okResponse struct {
	Status string `json:"status" example:"ok"`
	Msg    string `json:"msg" example:"Done"`
}

type errorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(ctx *fasthttp.RequestCtx, statusCode int, body any) {
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.SetStatusCode(statusCode)

	_ = json.NewEncoder(ctx).Encode(body)
}

func ok(ctx *fasthttp.RequestCtx, msg string) {
	writeJSON(ctx, fasthttp.StatusOK, okResponse{Status: "ok", Msg: msg})
}

func writeError(ctx *fasthttp.RequestCtx, httpStatus int, err error) {
	writeJSON(ctx, httpStatus, errorResponse{Code: fasthttp.StatusMessage(httpStatus), Message: err.Error()})
}

func writeValidationError(ctx *fasthttp.RequestCtx, fields map[string]string) {
	writeJSON(ctx, fasthttp.StatusBadRequest, errorResponse{
		Code:    fasthttp.StatusMessage(fasthttp.StatusBadRequest),
		Message: ErrValidation.Error(),
		Fields:  fields,
	})
}
