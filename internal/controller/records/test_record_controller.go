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

type TestRecordController struct {
	testRecordService service.TestRecordService
}

func NewTestRecordController(svc service.TestRecordService) *TestRecordController {
	return &TestRecordController{testRecordService: svc}
}

// CreateTestRecord godoc
// @Summary Log a practice-test result
// @Description Create a practice-test record for the current user. Missing blank count defaults to 0; counts clamp to the subject's question count.
// @Tags Records - Practice Tests
// @Accept json
// @Produce json
// @Param record body dto.TestRecordRequest true "Test record"
// @Success 201 {object} dto.TestRecordResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /records/tests [post]
func (c *TestRecordController) CreateTestRecord(ctx *gin.Context) {
	var req dto.TestRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userID, userEmail := middleware.CurrentUser(ctx)
	record, err := c.testRecordService.Create(userID, userEmail, req)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("CreateTestRecord: Service error")
		controller.WriteServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, record)
}

// ListTestRecords godoc
// @Summary List practice-test records
// @Description List records newest-first. scope=self (default) returns the current user's records; scope=school returns everyone's.
// @Tags Records - Practice Tests
// @Produce json
// @Param scope query string false "self or school" Enums(self, school)
// @Success 200 {array} dto.TestRecordResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /records/tests [get]
func (c *TestRecordController) ListTestRecords(ctx *gin.Context) {
	userID, _ := middleware.CurrentUser(ctx)

	var (
		records []dto.TestRecordResponse
		err     error
	)
	if ctx.DefaultQuery("scope", service.ScopeSelf) == service.ScopeSchool {
		records, err = c.testRecordService.ListAll()
	} else {
		records, err = c.testRecordService.ListMine(userID)
	}
	if err != nil {
		log.Error().Err(err).Msg("ListTestRecords: Service error")
		controller.WriteServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records)
}

// UpdateTestRecord godoc
// @Summary Edit a practice-test record
// @Description Full-field overwrite of the scoring fields and topic list. Owner only.
// @Tags Records - Practice Tests
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param record body dto.TestRecordRequest true "Replacement fields"
// @Success 200 {object} dto.TestRecordResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID or body"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /records/tests/{id} [put]
func (c *TestRecordController) UpdateTestRecord(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid record ID"})
		return
	}

	var req dto.TestRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userID, _ := middleware.CurrentUser(ctx)
	record, err := c.testRecordService.Update(userID, id, req)
	if err != nil {
		log.Warn().Err(err).Str("id", id.String()).Msg("UpdateTestRecord: Service error")
		controller.WriteServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, record)
}

// DeleteTestRecord godoc
// @Summary Delete a practice-test record
// @Description Hard delete. Owner only.
// @Tags Records - Practice Tests
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /records/tests/{id} [delete]
func (c *TestRecordController) DeleteTestRecord(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid record ID"})
		return
	}

	userID, _ := middleware.CurrentUser(ctx)
	if err := c.testRecordService.Delete(userID, id); err != nil {
		log.Warn().Err(err).Str("id", id.String()).Msg("DeleteTestRecord: Service error")
		controller.WriteServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Record deleted"})
}
