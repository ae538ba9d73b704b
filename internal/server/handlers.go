package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jpsleep/sleepcheck/internal/advisor"
	"github.com/jpsleep/sleepcheck/internal/assess"
	"github.com/jpsleep/sleepcheck/internal/disorder"
	"github.com/jpsleep/sleepcheck/internal/features"
	"github.com/jpsleep/sleepcheck/internal/model"
	"github.com/jpsleep/sleepcheck/internal/report"
)

func (s *Server) registerRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.POST("/assessments", s.handleAssess)
		api.POST("/reports", s.handleReport)
		api.GET("/disorders", s.handleDisorders)
		api.GET("/fields", s.handleFields)
	}
}

type assessmentResponse struct {
	*assess.Assessment
	BMICategory string           `json:"bmi_category"`
	Result      string           `json:"result"`
	Entries     []disorder.Entry `json:"entries"`
	Habits      []disorder.Habit `json:"habits,omitempty"`
	Advice      *advisor.Advice  `json:"advice,omitempty"`
}

// handleAssess evaluates one submission. All thirteen fields are required
// and unknown keys are rejected. ?advice=true asks the advisor for notes
// when one is configured.
func (s *Server) handleAssess(c *gin.Context) {
	var req assessRequest
	if err := bindStrict(c, &req); err != nil {
		var reqErr *requestError
		if errors.As(err, &reqErr) {
			c.JSON(http.StatusBadRequest, requestErrorBody(reqErr))
			return
		}
		s.handleError(c, err)
		return
	}

	ctx := assess.WithSource(c.Request.Context(), assess.SourceHTTP)
	a, err := s.svc.Evaluate(ctx, req.inputs())
	if err != nil {
		s.handleError(c, err)
		return
	}

	resp := assessmentResponse{
		Assessment:  a,
		BMICategory: a.BMICategory.String(),
		Result:      a.Prediction.String(),
		Entries:     a.Entries,
	}
	if resp.Entries == nil {
		resp.Entries = []disorder.Entry{}
	}
	if !a.Positive() {
		resp.Habits = disorder.HealthyHabits()
	}
	if c.Query("advice") == "true" && s.advisor.Enabled() {
		if adv, err := s.advisor.Advise(ctx, a); err == nil {
			resp.Advice = adv
		}
	}
	c.JSON(http.StatusOK, resp)
}

type reportRequest struct {
	AssessmentID string   `json:"assessment_id"`
	Labels       []string `json:"labels"`
	Summary      string   `json:"summary"`
	Notes        []string `json:"notes"`
}

func (s *Server) handleReport(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	labels := make([]disorder.Label, 0, len(req.Labels))
	for _, raw := range req.Labels {
		l, ok := disorder.ParseLabel(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown disorder label %q", raw)})
			return
		}
		labels = append(labels, l)
	}

	ctx := assess.WithSource(c.Request.Context(), assess.SourceHTTP)
	b, err := s.svc.ReportBytes(ctx, req.AssessmentID, labels, report.Options{
		Summary: req.Summary,
		Notes:   req.Notes,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.DefaultFileName))
	c.Data(http.StatusOK, "application/pdf", b)
}

func (s *Server) handleDisorders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"disorders": disorder.AllEntries()})
}

func (s *Server) handleFields(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields":      features.Bounds(),
		"genders":     features.Genders(),
		"occupations": features.Occupations(),
		"defaults":    features.DefaultInputs(),
	})
}

// handleError maps pipeline errors to HTTP responses.
func (s *Server) handleError(c *gin.Context, err error) {
	var (
		validation *features.ValidationError
		unmapped   *features.UnmappedCategoryError
		prediction *model.PredictionError
		export     *report.ExportError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": validation.Field})
	case errors.As(err, &unmapped):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, assess.ErrNothingToExport):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &prediction):
		s.log.Error().Err(err).Msg("prediction failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "stage": prediction.Stage})
	case errors.As(err, &export):
		s.log.Error().Err(err).Msg("report render failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report could not be generated"})
	default:
		s.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
