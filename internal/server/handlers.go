package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/azaliaz/feedbackly/internal/domain/consts"
	"github.com/azaliaz/feedbackly/internal/domain/models"
	"github.com/azaliaz/feedbackly/internal/logger"
	storerrros "github.com/azaliaz/feedbackly/internal/storage/errors"
)

func (s *Server) HealthChecker(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message":   "Build API with Go, Gin, pgx and Postgres",
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) AllFeedbacks(ctx *gin.Context) {
	log := logger.Get()

	var opts models.FilterOptions
	if err := ctx.ShouldBindQuery(&opts); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "invalid pagination parameters"})
		return
	}
	if opts.Page < consts.DefaultPage {
		opts.Page = consts.DefaultPage
	}
	if opts.Limit <= 0 {
		opts.Limit = consts.DefaultLimit
	}
	if opts.Limit > consts.MaxLimit {
		opts.Limit = consts.MaxLimit
	}
	offset := (opts.Page - 1) * opts.Limit

	feedbacks, err := s.Storage.GetFeedbacks(opts.Limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("failed to get feedbacks")
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "something went wrong while fetching feedbacks",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"results":   len(feedbacks),
		"feedbacks": feedbacks,
	})
}

func (s *Server) AddFeedback(ctx *gin.Context) {
	log := logger.Get()

	var req models.CreateFeedback
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "invalid request body"})
		return
	}
	if err := s.valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	feedback, err := s.Storage.SaveFeedback(req)
	if err != nil {
		if errors.Is(err, storerrros.ErrFeedbackExists) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"status":  "fail",
				"message": "feedback with that text already exists",
			})
			return
		}
		log.Error().Err(err).Msg("failed to save feedback")
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "something went wrong while saving feedback",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"feedback": feedback},
	})
}

func (s *Server) FeedbackInfo(ctx *gin.Context) {
	feedbackID, ok := feedbackIDParam(ctx)
	if !ok {
		return
	}

	// a failed lookup is answered 404 whatever the cause, the requester
	// only learns that the id resolves to nothing
	feedback, err := s.Storage.GetFeedback(feedbackID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"status":  "fail",
			"message": fmt.Sprintf("feedback with ID: %s not found", feedbackID),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "feedback": feedback})
}

func (s *Server) EditFeedback(ctx *gin.Context) {
	log := logger.Get()

	feedbackID, ok := feedbackIDParam(ctx)
	if !ok {
		return
	}

	var req models.UpdateFeedback
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "invalid request body"})
		return
	}
	if err := s.valid.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	feedback, err := s.Storage.UpdateFeedback(feedbackID, req)
	if err != nil {
		if errors.Is(err, storerrros.ErrFeedbackNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{
				"status":  "fail",
				"message": fmt.Sprintf("feedback with ID: %s not found", feedbackID),
			})
			return
		}
		log.Error().Err(err).Msg("failed to update feedback")
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "something went wrong while updating feedback",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "feedback": feedback})
}

func (s *Server) RemoveFeedback(ctx *gin.Context) {
	log := logger.Get()

	feedbackID, ok := feedbackIDParam(ctx)
	if !ok {
		return
	}

	if err := s.Storage.DeleteFeedback(feedbackID); err != nil {
		if errors.Is(err, storerrros.ErrFeedbackNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{
				"status":  "fail",
				"message": fmt.Sprintf("feedback with ID: %s not found", feedbackID),
			})
			return
		}
		log.Error().Err(err).Msg("failed to delete feedback")
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "something went wrong while deleting feedback",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// feedbackIDParam rejects malformed ids before they reach the store; a bad id
// can never match a stored record, so the answer is the same 404.
func feedbackIDParam(ctx *gin.Context) (string, bool) {
	id := ctx.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"status":  "fail",
			"message": fmt.Sprintf("feedback with ID: %s not found", id),
		})
		return "", false
	}
	return id, true
}
