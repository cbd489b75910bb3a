package add_period

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	addPeriod "github.com/m04kA/SMC-SeasonPricingService/internal/usecase/add_period"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/logger"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/types"
)

type fakeUseCase struct {
	called bool
	got    *addPeriod.Request
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *addPeriod.Request) (*addPeriod.Response, error) {
	f.called = true
	f.got = req
	if f.err != nil {
		return nil, f.err
	}

	now := time.Date(2021, time.January, 1, 10, 0, 0, 0, time.UTC)
	return &addPeriod.Response{
		ID:        3,
		SeasonID:  req.SeasonID,
		HousingID: 1,
		Name:      req.Start.String() + " - " + req.End.String(),
		Start:     req.Start,
		End:       req.End,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func serve(uc AddPeriodUseCase, seasonID, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/seasons/{seasonId}/periods", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPost)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/seasons/"+seasonID+"/periods", strings.NewReader(body)))
	return w
}

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{}
	w := serve(uc, "2", `{"start":"15/01","end":"31/03"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, &addPeriod.Request{
		SeasonID: 2,
		Start:    types.YearPeriod{Day: 15, Month: 1},
		End:      types.YearPeriod{Day: 31, Month: 3},
	}, uc.got)

	var body PeriodResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "15/01 - 31/03", body.Name)
	assert.Equal(t, types.YearPeriod{Day: 15, Month: 1}, body.Start)
	assert.Contains(t, w.Body.String(), `"start":"15/01","end":"31/03"`)
	assert.Equal(t, "2021-01-01T10:00:00Z", body.CreatedAt)
}

func TestHandler_RejectsBeforeUseCase(t *testing.T) {
	tests := []struct {
		name     string
		seasonID string
		body     string
	}{
		{"bad season id", "x", `{"start":"15/01","end":"31/03"}`},
		{"malformed body", "2", `{"start":`},
		{"bad day", "2", `{"start":"32/01","end":"31/03"}`},
		{"bad format", "2", `{"start":"2021-01-15","end":"31/03"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			w := serve(uc, tt.seasonID, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, uc.called)
		})
	}
}

func TestHandler_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{addPeriod.ErrPeriodOverlap, http.StatusConflict},
		{addPeriod.ErrInvalidRange, http.StatusBadRequest},
		{addPeriod.ErrInvalidInput, http.StatusBadRequest},
		{addPeriod.ErrSeasonNotFound, http.StatusNotFound},
		{addPeriod.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := serve(&fakeUseCase{err: tt.err}, "2", `{"start":"01/04","end":"31/05"}`)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
