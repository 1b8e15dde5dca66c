package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Omerhrr/Booklet/internal/apperrors"
)

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	respondError(c, logger, err, "request failed")
	return w
}

func TestRespondErrorMissingCoreAccount(t *testing.T) {
	w := respond(fmt.Errorf("%w: %q", apperrors.ErrMissingCoreAccount, "Cash"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "required system account missing")
	assert.Contains(t, w.Body.String(), "Cash")
}

func TestRespondErrorStatusByKind(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, respond(apperrors.ErrUnbalancedEntry).Code)
	assert.Equal(t, http.StatusBadRequest, respond(apperrors.ErrInvalidTransferTarget).Code)
	assert.Equal(t, http.StatusNotFound, respond(apperrors.ErrNotFound).Code)
	assert.Equal(t, http.StatusForbidden, respond(apperrors.ErrForbidden).Code)
	assert.Equal(t, http.StatusConflict, respond(apperrors.ErrDuplicateDocumentNumber).Code)
	assert.Equal(t, http.StatusInternalServerError, respond(errors.New("connection reset")).Code)
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	w := respond(errors.New("pq: deadlock detected"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "deadlock")
	assert.Contains(t, w.Body.String(), "request failed")
}
