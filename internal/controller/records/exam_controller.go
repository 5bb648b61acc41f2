package records

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/selimyuksel/NetTakip/internal/controller"
	"github.com/selimyuksel/NetTakip/internal/dto"
	"github.com/selimyuksel/NetTakip/internal/middleware"
	"github.com/selimyuksel/NetTakip/internal/service"
)

type ExamController struct {
	examService service.ExamService
}

func NewExamController(svc service.ExamService) *ExamController {
	return &ExamController{examService: svc}
}

// CreateExam godoc
// @Summary Log a mock-exam result
// @Description Create a mock-exam record with the six fixed subject branches. Branch counts are bounded by 20/20/20/10/10/10.
// @Tags Records - Mock Exams
// @Accept json
// @Produce json
// @Param exam body dto.ExamRecordRequest true "Exam record"
// @Success 201 {object} dto.ExamRecordResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or branch counts"
// @Router /records/exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.ExamRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userID, _ := middleware.CurrentUser(ctx)
	exam, err := c.examService.Create(userID, req)
	if err != nil {
		log.Warn().Err(err).Str("userID", userID).Msg("CreateExam: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, exam)
}

// ListExams godoc
// @Summary List the current user's mock exams
// @Tags Records - Mock Exams
// @Produce json
// @Success 200 {array} dto.ExamRecordResponse
// @Router /records/exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	userID, _ := middleware.CurrentUser(ctx)
	exams, err := c.examService.ListMine(userID)
	if err != nil {
		log.Error().Err(err).Msg("ListExams: Service error")
		controller.WriteServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// UpdateExam godoc
// @Summary Edit a mock-exam record
// @Description Full overwrite of the branch triples and name. Owner only.
// @Tags Records - Mock Exams
// @Accept json
// @Produce json
// @Param id path string true "Exam ID"
// @Param exam body dto.ExamRecordRequest true "Replacement fields"
// @Success 200 {object} dto.ExamRecordResponse
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /records/exams/{id} [put]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid exam ID"})
		return
	}

	var req dto.ExamRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userID, _ := middleware.CurrentUser(ctx)
	exam, err := c.examService.Update(userID, id, req)
	if err != nil {
		log.Warn().Err(err).Str("id", id.String()).Msg("UpdateExam: Service error")
		controller.WriteServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// DeleteExam godoc
// @Summary Delete a mock-exam record
// @Tags Records - Mock Exams
// @Produce json
// @Param id path string true "Exam ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /records/exams/{id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid exam ID"})
		return
	}

	userID, _ := middleware.CurrentUser(ctx)
	if err := c.examService.Delete(userID, id); err != nil {
		log.Warn().Err(err).Str("id", id.String()).Msg("DeleteExam: Service error")
		controller.WriteServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Exam deleted"})
}
