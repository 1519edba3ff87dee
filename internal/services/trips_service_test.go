package services

import (
	"context"
	"testing"
	"tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	"tripwise/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTripRepo struct {
	trips []db_models.TripPlan
}

func (r *stubTripRepo) Insert(_ context.Context, trip *db_models.TripPlan) (uuid.UUID, error) {
	trip.ID = uuid.New()
	r.trips = append(r.trips, *trip)
	return trip.ID, nil
}

func (r *stubTripRepo) ListByUser(_ context.Context, userID uuid.UUID, _, _ int) ([]db_models.TripPlan, error) {
	var out []db_models.TripPlan
	for _, trip := range r.trips {
		if trip.UserID == userID {
			out = append(out, trip)
		}
	}
	return out, nil
}

type stubPreferenceRepo struct {
	prefs map[uuid.UUID]db_models.UserPreference
}

func (r *stubPreferenceRepo) GetByUser(_ context.Context, userID uuid.UUID) (*db_models.UserPreference, error) {
	if pref, ok := r.prefs[userID]; ok {
		return &pref, nil
	}
	return nil, nil
}

func (r *stubPreferenceRepo) Upsert(_ context.Context, pref *db_models.UserPreference) error {
	if r.prefs == nil {
		r.prefs = map[uuid.UUID]db_models.UserPreference{}
	}
	r.prefs[pref.UserID] = *pref
	return nil
}

func newTestTripsService() (TripsServiceInterface, *stubTripRepo) {
	tripRepo := &stubTripRepo{}
	return NewTripsService(tripRepo, &stubPreferenceRepo{}, &stubHistoryRepo{}), tripRepo
}

func TestSaveTripRequiresDestination(t *testing.T) {
	svc, _ := newTestTripsService()

	_, err := svc.SaveTrip(context.Background(), uuid.New(), request_models.SaveTripRequest{})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestSaveAndListTrips(t *testing.T) {
	svc, _ := newTestTripsService()
	userID := uuid.New()

	tripID, err := svc.SaveTrip(context.Background(), userID, request_models.SaveTripRequest{
		Destination: "Paris",
		Country:     "France",
		Days:        5,
		Activities:  []string{"Visit Eiffel Tower"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tripID)

	trips, err := svc.ListTrips(context.Background(), userID, 1, 20)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Paris", trips[0].Destination)
}

func TestListTripsValidatesPaging(t *testing.T) {
	svc, _ := newTestTripsService()

	_, err := svc.ListTrips(context.Background(), uuid.New(), 0, 20)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = svc.ListTrips(context.Background(), uuid.New(), 1, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	_, err = svc.ListTrips(context.Background(), uuid.New(), 1, 500)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
}

func TestPreferencesRoundTrip(t *testing.T) {
	svc, _ := newTestTripsService()
	userID := uuid.New()

	missing, err := svc.GetPreferences(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = svc.UpsertPreferences(context.Background(), userID, request_models.PreferenceRequest{
		DestinationTypes: []string{"beach"},
		Activities:       []string{"swimming"},
		BudgetCeiling:    2000,
	})
	require.NoError(t, err)

	pref, err := svc.GetPreferences(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, pref)
	assert.Equal(t, 2000, pref.BudgetCeiling)
}
