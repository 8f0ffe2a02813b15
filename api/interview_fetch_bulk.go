package api

import (
	"jobtrackr/api/internal/model"
	"jobtrackr/api/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// interviewView is an interview with its application's company and
// position joined in, the shape every interview listing returns
type interviewView struct {
	model.Interview
	Application applicationSummary `json:"application"`
}

type applicationSummary struct {
	Company  string `json:"company"`
	Position string `json:"position"`
}

type interviewCounts struct {
	Total     int `json:"total"`
	Upcoming  int `json:"upcoming"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// appSummaries loads the company/position pairs for a set of
// application IDs in one query
func (a *API) appSummaries(userID string, ids []uint) (map[uint]service.AppSummary, error) {
	summaries := map[uint]service.AppSummary{}
	if len(ids) == 0 {
		return summaries, nil
	}

	var rows []model.Application

	err := a.DB.
		Select("id", "company", "position").
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		summaries[r.ID] = service.AppSummary{Company: r.Company, Position: r.Position}
	}

	return summaries, nil
}

func (a *API) joinInterviews(userID string, interviews []model.Interview) ([]interviewView, error) {
	ids := make([]uint, len(interviews))
	for i, iv := range interviews {
		ids[i] = iv.ApplicationID
	}

	summaries, err := a.appSummaries(userID, ids)
	if err != nil {
		return nil, err
	}

	views := make([]interviewView, len(interviews))
	for i, iv := range interviews {
		s := summaries[iv.ApplicationID]
		views[i] = interviewView{
			Interview:   iv,
			Application: applicationSummary{Company: s.Company, Position: s.Position},
		}
	}

	return views, nil
}

func (a *API) InterviewFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var interviews []model.Interview

	err := a.DB.
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&interviews).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load interviews", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	views, err := a.joinInterviews(userID, interviews)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to join applications", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	now := time.Now()
	stats := interviewCounts{Total: len(interviews)}
	for _, iv := range interviews {
		if iv.Date.After(now) {
			stats.Upcoming++
		}

		switch iv.Status {
		case model.InterviewStatusCompleted:
			stats.Completed++
		case model.InterviewStatusCancelled:
			stats.Cancelled++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
		"data":    views,
	})
}
