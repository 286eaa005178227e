package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitebox/internal/core/application/usecases/queries"
	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/order"
	"bitebox/internal/core/domain/model/user"
	"bitebox/internal/core/domain/services"
	"bitebox/internal/core/ports"
	"bitebox/internal/generated/servers"
	"bitebox/internal/pkg/errs"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "authorization failure is forbidden",
			err:      errs.NewUnauthorizedError("delete order"),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "missing object is not found",
			err:      errs.NewObjectNotFoundError("order", kernel.NewUUID().String()),
			wantCode: http.StatusNotFound,
		},
		{
			name:     "lost conditional update is a conflict",
			err:      ports.ErrOrderStateConflict,
			wantCode: http.StatusConflict,
		},
		{
			name:     "invalid transition is a bad request",
			err:      errs.NewInvalidTransitionError(order.Created.String()),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "finished order is a bad request",
			err:      order.ErrAlreadyFinished,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "empty order after pricing is a bad request",
			err:      services.ErrEmptyOrder,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing value is a bad request",
			err:      errs.NewValueIsRequiredError("name"),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown reporting period is a bad request",
			err:      queries.ErrInvalidPeriod,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "anything else is an internal error",
			err:      errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			err := writeError(ctx, tt.err)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)

			var body servers.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestWriteErrorRejectsBogusFinishedOrdersPeriod(t *testing.T) {
	act, err := actor.NewContext(kernel.NewUUID(), user.RoleAdmin, []string{"Pasta Place"})
	require.NoError(t, err)

	_, queryErr := queries.NewGetRestaurantFinishedOrdersQuery(act, "Pasta Place", "bogus")
	require.ErrorIs(t, queryErr, queries.ErrInvalidPeriod)

	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, writeError(ctx, queryErr))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
