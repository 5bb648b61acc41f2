package records

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/selimyuksel/NetTakip/internal/controller"
	"github.com/selimyuksel/NetTakip/internal/dto"
	"github.com/selimyuksel/NetTakip/internal/middleware"
	"github.com/selimyuksel/NetTakip/internal/model"
	"github.com/selimyuksel/NetTakip/internal/service"
)

type MistakeController struct {
	mistakeService service.MistakeService
}

func NewMistakeController(svc service.MistakeService) *MistakeController {
	return &MistakeController{mistakeService: svc}
}

// CreateMistake godoc
// @Summary Log a mistake
// @Description Create a mistake entry for the current user, optionally linked to a practice-test record.
// @Tags Records - Mistakes
// @Accept json
// @Produce json
// @Param mistake body dto.MistakeCreateRequest true "Mistake"
// @Success 201 {object} dto.MistakeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /records/mistakes [post]
func (c *MistakeController) CreateMistake(ctx *gin.Context) {
	var req dto.MistakeCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userID, _ := middleware.CurrentUser(ctx)
	mistake, err := c.mistakeService.Create(userID, req)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("CreateMistake: Service error")
		controller.WriteServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, mistake)
}

// ListMistakes godoc
// @Summary List the current user's mistakes
// @Tags Records - Mistakes
// @Produce json
// @Success 200 {array} dto.MistakeResponse
// @Router /records/mistakes [get]
func (c *MistakeController) ListMistakes(ctx *gin.Context) {
	userID, _ := middleware.CurrentUser(ctx)
	mistakes, err := c.mistakeService.ListMine(userID)
	if err != nil {
		log.Error().Err(err).Msg("ListMistakes: Service error")
		controller.WriteServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mistakes)
}

// ListDueMistakes godoc
// @Summary List mistakes due for review
// @Description Non-archived mistakes whose scheduled review time has passed.
// @Tags Records - Mistakes
// @Produce json
// @Success 200 {array} dto.MistakeResponse
// @Router /records/mistakes/due [get]
func (c *MistakeController) ListDueMistakes(ctx *gin.Context) {
	userID, _ := middleware.CurrentUser(ctx)
	mistakes, err := c.mistakeService.ListDue(userID, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("ListDueMistakes: Service error")
		controller.WriteServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mistakes)
}

// UpdateMistakeStatus godoc
// @Summary Move a mistake through the review states
// @Description Forward-only: open to reviewed or archived, reviewed to archived. Marking reviewed schedules the next review.
// @Tags Records - Mistakes
// @Accept json
// @Produce json
// @Param id path string true "Mistake ID"
// @Param status body dto.MistakeStatusRequest true "Target status"
// @Success 200 {object} dto.MistakeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID or body"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Mistake not found"
// @Failure 422 {object} dto.ErrorResponse "Transition not allowed"
// @Router /records/mistakes/{id}/status [patch]
func (c *MistakeController) UpdateMistakeStatus(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid mistake ID"})
		return
	}

	var req dto.MistakeStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userID, _ := middleware.CurrentUser(ctx)
	mistake, err := c.mistakeService.UpdateStatus(userID, id, model.MistakeStatus(req.Status))
	if err != nil {
		log.Warn().Err(err).Str("id", id.String()).Msg("UpdateMistakeStatus: Service error")
		controller.WriteServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mistake)
}

// DeleteMistake godoc
// @Summary Delete a mistake
// @Tags Records - Mistakes
// @Produce json
// @Param id path string true "Mistake ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Mistake not found"
// @Router /records/mistakes/{id} [delete]
func (c *MistakeController) DeleteMistake(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid mistake ID"})
		return
	}

	userID, _ := middleware.CurrentUser(ctx)
	if err := c.mistakeService.Delete(userID, id); err != nil {
		log.Warn().Err(err).Str("id", id.String()).Msg("DeleteMistake: Service error")
		controller.WriteServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Mistake deleted"})
}
