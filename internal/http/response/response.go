// Package response writes JSON bodies and the error envelope shared by every
// fitserver endpoint.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitpick/internal/domain"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondDomainError maps err to its wire code and status.
func RespondDomainError(c *gin.Context, err error) {
	code := domain.ErrorCode(err)
	_ = c.Error(err)
	RespondError(c, StatusFor(code), code, err)
}

// RespondBadRequest reports a request that could not be parsed.
func RespondBadRequest(c *gin.Context, err error) {
	if err == nil {
		err = errors.New("bad request")
	}
	RespondError(c, http.StatusBadRequest, domain.CodeBadRequest, err)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// StatusFor returns the HTTP status of a wire code.
func StatusFor(code string) int {
	switch code {
	case domain.CodeUnknownFitName:
		return http.StatusNotFound
	case domain.CodeOutOfRange, domain.CodeMalformedClass, domain.CodeUnknownShape, domain.CodeBadRequest:
		return http.StatusBadRequest
	case domain.CodeUnsupportedGrade, domain.CodeUnsupportedLetterOrBand:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
