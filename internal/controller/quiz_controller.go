package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"factor_quiz_backend/internal/report"
	"factor_quiz_backend/internal/scoring"
	"factor_quiz_backend/internal/service"
	"factor_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

// @Summary List the question bank
// @Tags quiz
// @Produce json
// @Param locale query string false "en or ko"
// @Success 200 {object} util.Response{data=[]model.QuestionView}
// @Router /api/questions [get]
func (c *QuizController) ListCatalog(ctx *gin.Context) {
	qs, err := c.Service.Catalog(ctx.Query("locale"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, qs)
}

// @Summary Score an explicit working set
// @Tags quiz
// @Accept json
// @Produce json
// @Param body body service.ScoreRequest true "question ids and answers"
// @Success 200 {object} util.Response{data=model.QuizResult}
// @Router /api/score [post]
func (c *QuizController) Score(ctx *gin.Context) {
	var req service.ScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	res, err := c.Service.Score(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, res)
}

// @Summary Start a quiz session
// @Tags session
// @Accept json
// @Produce json
// @Param body body service.StartSessionRequest false "locale, limit, seed, blend"
// @Success 201 {object} util.Response{data=model.StartedSession}
// @Router /api/sessions [post]
func (c *QuizController) StartSession(ctx *gin.Context) {
	var req service.StartSessionRequest
	// An empty body starts a session with the configured defaults.
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		util.BadRequest(ctx, err.Error())
		return
	}

	started, err := c.Service.StartSession(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, started)
}

// @Summary Working set of a session
// @Tags session
// @Produce json
// @Security BearerAuth
// @Param id path string true "session id"
// @Success 200 {object} util.Response{data=model.SessionQuestions}
// @Router /api/sessions/{id}/questions [get]
func (c *QuizController) ListQuestions(ctx *gin.Context) {
	qs, err := c.Service.ListQuestions(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, qs)
}

// @Summary Record one answer
// @Tags session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "session id"
// @Param questionId path string true "question id"
// @Param body body service.SubmitAnswerRequest true "Likert value 1-5"
// @Success 200 {object} util.Response{data=model.AnswerProgress}
// @Router /api/sessions/{id}/answers/{questionId} [put]
func (c *QuizController) SubmitAnswer(ctx *gin.Context) {
	var req service.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, err := c.Service.SubmitAnswer(ctx.Request.Context(), ctx.Param("id"), ctx.Param("questionId"), req.Value)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

// @Summary Record a batch of answers
// @Tags session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "session id"
// @Param body body service.SubmitAnswersRequest true "question id to value"
// @Success 200 {object} util.Response{data=model.AnswerProgress}
// @Router /api/sessions/{id}/answers [post]
func (c *QuizController) SubmitAnswers(ctx *gin.Context) {
	var req service.SubmitAnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, err := c.Service.SubmitAnswers(ctx.Request.Context(), ctx.Param("id"), req.Answers)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

// @Summary Clear one answer
// @Tags session
// @Produce json
// @Security BearerAuth
// @Param id path string true "session id"
// @Param questionId path string true "question id"
// @Success 200 {object} util.Response{data=model.AnswerProgress}
// @Router /api/sessions/{id}/answers/{questionId} [delete]
func (c *QuizController) ClearAnswer(ctx *gin.Context) {
	p, err := c.Service.ClearAnswer(ctx.Request.Context(), ctx.Param("id"), ctx.Param("questionId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

// @Summary Clear every answer
// @Tags session
// @Produce json
// @Security BearerAuth
// @Param id path string true "session id"
// @Success 200 {object} util.Response{data=model.AnswerProgress}
// @Router /api/sessions/{id}/reset [post]
func (c *QuizController) ResetSession(ctx *gin.Context) {
	p, err := c.Service.ResetSession(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

// @Summary Toggle MBTI blending
// @Tags session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "session id"
// @Param body body service.SetBlendRequest true "blend flag"
// @Success 200 {object} util.Response{data=model.QuizResult}
// @Router /api/sessions/{id}/blend [put]
func (c *QuizController) SetBlend(ctx *gin.Context) {
	var req service.SetBlendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	res, err := c.Service.SetBlend(ctx.Request.Context(), ctx.Param("id"), *req.Blend)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, res)
}

// @Summary Current result
// @Tags session
// @Produce json
// @Security BearerAuth
// @Param id path string true "session id"
// @Param blend query bool false "override the session blend toggle"
// @Success 200 {object} util.Response{data=model.QuizResult}
// @Router /api/sessions/{id}/result [get]
func (c *QuizController) GetResult(ctx *gin.Context) {
	var blend *bool
	if raw, ok := ctx.GetQuery("blend"); ok {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			util.BadRequest(ctx, "blend must be true or false")
			return
		}
		blend = &b
	}

	res, err := c.Service.GetResult(ctx.Request.Context(), ctx.Param("id"), blend)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, res)
}

// @Summary Export the CSV report to storage
// @Tags session
// @Produce json
// @Security BearerAuth
// @Param id path string true "session id"
// @Success 201 {object} util.Response{data=model.ReportExport}
// @Router /api/sessions/{id}/export [post]
func (c *QuizController) ExportReport(ctx *gin.Context) {
	exp, err := c.Service.ExportReport(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, exp)
}

// @Summary Download the CSV report
// @Tags session
// @Produce text/csv
// @Security BearerAuth
// @Param id path string true "session id"
// @Success 200 {file} file
// @Router /api/sessions/{id}/export.csv [get]
func (c *QuizController) DownloadReport(ctx *gin.Context) {
	name, data, err := c.Service.RenderReport(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	ctx.Data(http.StatusOK, report.ContentType, data)
}

var validationErrors = []error{
	scoring.ErrInvalidAnswer,
	scoring.ErrUnknownQuestion,
	scoring.ErrUnknownAxis,
	scoring.ErrInvalidWeight,
	scoring.ErrDuplicateQuestion,
	scoring.ErrEmptyWorkingSet,
	util.ErrInvalidLocale,
	util.ErrInvalidRequest,
}

func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSessionNotFound), errors.Is(err, util.ErrSessionExpired):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrExportFailed):
		util.Error(ctx, http.StatusBadGateway, err.Error())
	default:
		for _, target := range validationErrors {
			if errors.Is(err, target) {
				util.BadRequest(ctx, err.Error())
				return
			}
		}
		util.LogInternalError(ctx, err)
	}
}
