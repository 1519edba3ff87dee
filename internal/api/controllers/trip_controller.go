package controllers

import (
	"net/http"
	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TripController struct {
	tripsService services.TripsServiceInterface
}

func NewTripController(tripsService services.TripsServiceInterface) *TripController {
	return &TripController{
		tripsService: tripsService,
	}
}

// SaveTrip godoc
// @Summary Save a trip plan
// @Description Persist a composed itinerary for the authenticated user
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SaveTripRequest true "Trip payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips [post]
func (t *TripController) SaveTrip(c *gin.Context) {
	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing user identity")
		return
	}

	tripID, err := t.tripsService.SaveTrip(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"trip_id": tripID}, "Trip saved successfully")
}

// ListTrips godoc
// @Summary List saved trips
// @Tags Trips
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing user identity")
		return
	}

	page, pageSize := pagingParams(c)
	trips, err := t.tripsService.ListTrips(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips retrieved successfully")
}

// SavePreferences godoc
// @Summary Save travel preferences
// @Tags Preferences
// @Accept json
// @Produce json
// @Param request body request_models.PreferenceRequest true "Preference payload"
// @Success 200 {object} utils.APIResponse
// @Router /preferences [put]
func (t *TripController) SavePreferences(c *gin.Context) {
	var req request_models.PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing user identity")
		return
	}

	if err := t.tripsService.UpsertPreferences(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Preferences saved successfully")
}

// GetPreferences godoc
// @Summary Get travel preferences
// @Tags Preferences
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /preferences [get]
func (t *TripController) GetPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing user identity")
		return
	}

	pref, err := t.tripsService.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pref, "Preferences retrieved successfully")
}
