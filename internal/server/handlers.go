package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ppiankov/factdash/internal/model"
	"github.com/ppiankov/factdash/internal/report"
	"github.com/ppiankov/factdash/internal/score"
)

// Envelope codes
const (
	codeOK         = "ok"
	codeNoData     = "no_data"
	codeBadRequest = "bad_request"
	codeBusy       = "busy"
	codeInternal   = "internal_error"
)

// NoClaimsMessage is shown when a collection finds nothing in range
const NoClaimsMessage = "No claims found for the selected period."

// CollectRequest selects the collection date range; empty fields use the default range
type CollectRequest struct {
	StartDate string `json:"start_date" form:"start_date"`
	EndDate   string `json:"end_date" form:"end_date"`
}

func respond(c *gin.Context, status int, code, message string, data interface{}) {
	body := gin.H{
		"code":    code,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "session_id": s.session.ID})
}

func (s *Server) collect(c *gin.Context) {
	var req CollectRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respond(c, http.StatusBadRequest, codeBadRequest, "invalid request body", nil)
			return
		}
	}
	if req.StartDate == "" {
		req.StartDate = c.Query("start_date")
	}
	if req.EndDate == "" {
		req.EndDate = c.Query("end_date")
	}

	start, end, err := s.dateRange(req)
	if err != nil {
		respond(c, http.StatusBadRequest, codeBadRequest, err.Error(), nil)
		return
	}

	if !s.run.TryLock() {
		respond(c, http.StatusConflict, codeBusy, "a pipeline run is already in progress", nil)
		return
	}
	defer s.run.Unlock()

	result, err := s.runner.Collect(c.Request.Context(), start, end, nil)
	if err != nil && result == nil {
		respond(c, http.StatusInternalServerError, codeInternal, err.Error(), nil)
		return
	}
	s.session.SetClaims(result.Claims)

	data := gin.H{
		"start_date": start.Format(model.DateLayout),
		"end_date":   end.Format(model.DateLayout),
		"pages":      result.Pages,
		"stop":       result.Stop,
		"claims":     s.session.Claims(),
	}
	if result.FetchErr != nil {
		data["warning"] = fmt.Sprintf("Error fetching data: %v", result.FetchErr)
	}
	if err != nil {
		data["export_error"] = err.Error()
	}

	if len(result.Claims) == 0 {
		respond(c, http.StatusOK, codeNoData, NoClaimsMessage, data)
		return
	}
	respond(c, http.StatusOK, codeOK, fmt.Sprintf("collected %d claims", len(result.Claims)), data)
}

func (s *Server) verify(c *gin.Context) {
	if !s.run.TryLock() {
		respond(c, http.StatusConflict, codeBusy, "a pipeline run is already in progress", nil)
		return
	}
	defer s.run.Unlock()

	claims := s.session.Claims()
	if len(claims) == 0 {
		respond(c, http.StatusBadRequest, codeNoData, "collect claims before verifying", nil)
		return
	}

	rows := s.runner.Verify(c.Request.Context(), claims, nil)
	s.session.SetVerified(rows)

	respond(c, http.StatusOK, codeOK, fmt.Sprintf("verified %d claims", len(rows)), gin.H{
		"rows":   rows,
		"shares": score.VerdictShares(rows),
	})
}

func (s *Server) listClaims(c *gin.Context) {
	respond(c, http.StatusOK, codeOK, "success", s.session.Snapshot())
}

func (s *Server) summary(c *gin.Context) {
	rows := s.session.Verified()
	if rows == nil {
		respond(c, http.StatusOK, codeNoData, "no verified claims yet", gin.H{"total": 0, "shares": []model.VerdictShare{}})
		return
	}
	respond(c, http.StatusOK, codeOK, "success", gin.H{
		"total":  len(rows),
		"shares": score.VerdictShares(rows),
	})
}

func (s *Server) claimsCSV(c *gin.Context) {
	claims := s.session.Claims()
	if len(claims) == 0 {
		respond(c, http.StatusNotFound, codeNoData, NoClaimsMessage, nil)
		return
	}

	attachment(c, report.ClaimsDownloadName)
	if err := report.WriteClaimsCSV(c.Writer, claims); err != nil {
		_ = c.Error(err)
	}
}

func (s *Server) verifiedCSV(c *gin.Context) {
	rows := s.session.Verified()
	if len(rows) == 0 {
		respond(c, http.StatusNotFound, codeNoData, "no verified claims yet", nil)
		return
	}

	attachment(c, report.VerifiedDownloadName)
	if err := report.WriteVerifiedCSV(c.Writer, rows); err != nil {
		_ = c.Error(err)
	}
}

func attachment(c *gin.Context, name string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Status(http.StatusOK)
}

// dateRange resolves the request range, defaulting to the last DefaultRangeDays days
func (s *Server) dateRange(req CollectRequest) (time.Time, time.Time, error) {
	today := s.now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	end := today
	if req.EndDate != "" {
		d, err := time.Parse(model.DateLayout, req.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date %q: want YYYY-MM-DD", req.EndDate)
		}
		end = d
	}

	start := end.AddDate(0, 0, -DefaultRangeDays)
	if req.StartDate != "" {
		d, err := time.Parse(model.DateLayout, req.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date %q: want YYYY-MM-DD", req.StartDate)
		}
		start = d
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date %s is after end_date %s",
			start.Format(model.DateLayout), end.Format(model.DateLayout))
	}
	return start, end, nil
}
