package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/selimyuksel/NetTakip/internal/catalog"
	"github.com/selimyuksel/NetTakip/internal/controller"
	"github.com/selimyuksel/NetTakip/internal/middleware"
	"github.com/selimyuksel/NetTakip/internal/service"
)

type AnalyticsController struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsController(svc service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: svc}
}

// GetDashboard godoc
// @Summary Dashboard summary
// @Description Overall average, trend delta, risk tier, streak, badges and target projection, recomputed from the current record set.
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /analytics/dashboard [get]
func (c *AnalyticsController) GetDashboard(ctx *gin.Context) {
	userID, _ := middleware.CurrentUser(ctx)
	dashboard, err := c.analyticsService.Dashboard(userID)
	if err != nil {
		log.Error().Err(err).Msg("GetDashboard: Service error")
		controller.WriteServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dashboard)
}

// GetSubjectBreakdown godoc
// @Summary Per-subject success rates
// @Description Pooled per-subject buckets. scope=self (default) or scope=school.
// @Tags Analytics
// @Produce json
// @Param scope query string false "self or school" Enums(self, school)
// @Success 200 {array} dto.BucketDTO
// @Router /analytics/subjects [get]
func (c *AnalyticsController) GetSubjectBreakdown(ctx *gin.Context) {
	userID, _ := middleware.CurrentUser(ctx)
	scope := ctx.DefaultQuery("scope", service.ScopeSelf)

	buckets, err := c.analyticsService.SubjectBreakdown(userID, scope)
	if err != nil {
		log.Error().Err(err).Str("scope", scope).Msg("GetSubjectBreakdown: Service error")
		controller.WriteServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, buckets)
}

// GetDailyBreakdown godoc
// @Summary Per-day success rates
// @Description Pooled per-calendar-day buckets for the current user, for trend charts.
// @Tags Analytics
// @Produce json
// @Success 200 {array} dto.BucketDTO
// @Router /analytics/daily [get]
func (c *AnalyticsController) GetDailyBreakdown(ctx *gin.Context) {
	userID, _ := middleware.CurrentUser(ctx)
	buckets, err := c.analyticsService.DailyBreakdown(userID)
	if err != nil {
		log.Error().Err(err).Msg("GetDailyBreakdown: Service error")
		controller.WriteServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, buckets)
}

// GetRankings godoc
// @Summary Per-subject class rankings
// @Description The current user's standing per subject against all users, as "#R / N" strings or "no data".
// @Tags Analytics
// @Produce json
// @Success 200 {array} dto.SubjectRankDTO
// @Router /analytics/rankings [get]
func (c *AnalyticsController) GetRankings(ctx *gin.Context) {
	userID, _ := middleware.CurrentUser(ctx)
	ranks, err := c.analyticsService.Rankings(userID)
	if err != nil {
		log.Error().Err(err).Msg("GetRankings: Service error")
		controller.WriteServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ranks)
}

// GetExamAnalytics godoc
// @Summary Mock-exam analytics
// @Description Per-branch pooled rates, exam trend and per-exam totals for the current user.
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.ExamAnalyticsResponse
// @Router /analytics/exams [get]
func (c *AnalyticsController) GetExamAnalytics(ctx *gin.Context) {
	userID, _ := middleware.CurrentUser(ctx)
	out, err := c.analyticsService.ExamAnalytics(userID)
	if err != nil {
		log.Error().Err(err).Msg("GetExamAnalytics: Service error")
		controller.WriteServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, out)
}

// GetSubjectCatalog godoc
// @Summary Subject and topic catalog
// @Description The fixed six LGS branches with question counts and topic labels. Compiled in, never fetched.
// @Tags Analytics
// @Produce json
// @Success 200 {array} catalog.Subject
// @Router /catalog/subjects [get]
func (c *AnalyticsController) GetSubjectCatalog(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.Subjects())
}
