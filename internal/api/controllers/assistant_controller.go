package controllers

import (
	"net/http"
	"strconv"
	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
	tripsService     services.TripsServiceInterface
}

func NewAssistantController(assistantService services.AssistantServiceInterface, tripsService services.TripsServiceInterface) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
		tripsService:     tripsService,
	}
}

// currentUserID pulls the authenticated user id set by the JWT middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func pagingParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

// Query godoc
// @Summary Ask the travel assistant
// @Description Classify a free-text travel query and return a composed answer
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body request_models.QueryRequest true "Query payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /assistant/query [post]
func (a *AssistantController) Query(c *gin.Context) {
	var req request_models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing user identity")
		return
	}

	reply, err := a.assistantService.ProcessQuery(c.Request.Context(), userID, req.Query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "Query processed successfully")
}

// History godoc
// @Summary List past queries
// @Description Page through the authenticated user's query history
// @Tags Assistant
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /assistant/history [get]
func (a *AssistantController) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing user identity")
		return
	}

	page, pageSize := pagingParams(c)
	entries, err := a.tripsService.ListHistory(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "History retrieved successfully")
}
