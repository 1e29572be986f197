package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumatch-utils/internal/compare"
	"resumatch-utils/internal/config"
	"resumatch-utils/internal/logging"
	"resumatch-utils/pkg/models"
	"resumatch-utils/pkg/utils"
)

// CompareResumeHandler handles the POST /api/v1/resume/compare endpoint
func CompareResumeHandler(cfg *config.Config, engine *compare.Engine, cache *utils.ResultCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		started := time.Now()

		c.Set("request_id", requestID)

		var req models.CompareRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to parse request body", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return writeError(c, requestID, utils.NewBadRequestError(err.Error()))
		}

		if err := requestValidator.Struct(&req); err != nil {
			return writeError(c, requestID, utils.NewValidationError(err.Error()))
		}

		if req.Role == "" {
			req.Role = models.RoleJobSeeker
		}

		logger.Info("Processing resume compare request", map[string]interface{}{
			"request_id":    requestID,
			"endpoint":      "/api/v1/resume/compare",
			"role":          req.Role,
			"resume_length": len(req.ResumeText),
			"job_length":    len(req.JobDescription),
		})

		ctx := c.Request().Context()
		cacheKey := utils.CacheKey("compare", req.ResumeText, req.JobDescription, req.Role)

		var cached models.CompareResponse
		if cache.Get(ctx, cacheKey, &cached) {
			cached.RequestID = requestID
			cached.ProcessingTime = time.Since(started)
			return c.JSON(http.StatusOK, cached)
		}

		report, strategy := engine.Compare(ctx, req)

		response := models.CompareResponse{
			MatchScore:     report.MatchScore,
			Analysis:       report,
			StrategyUsed:   strategy,
			ProcessingTime: time.Since(started),
			RequestID:      requestID,
		}

		cache.Set(ctx, cacheKey, response)

		logger.Info("Resume compare completed", map[string]interface{}{
			"request_id":  requestID,
			"strategy":    strategy,
			"match_score": report.MatchScore,
			"degraded":    report.DegradedMode,
			"duration":    utils.FormatDuration(response.ProcessingTime),
		})

		return c.JSON(http.StatusOK, response)
	}
}
