package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"resumatch-utils/internal/api/validation"
	"resumatch-utils/internal/config"
	"resumatch-utils/internal/extract"
	"resumatch-utils/internal/logging"
	"resumatch-utils/pkg/models"
	"resumatch-utils/pkg/utils"
)

var requestValidator = validator.New()

func init() {
	validation.RegisterTextValidators(requestValidator)
}

// ParseResumeHandler handles the POST /api/v1/resume/parse endpoint
func ParseResumeHandler(cfg *config.Config, resolver *extract.Resolver, cache *utils.ResultCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		started := time.Now()

		c.Set("request_id", requestID)

		var req models.ParseResumeRequest
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

		logger.Info("Processing resume parse request", map[string]interface{}{
			"request_id":  requestID,
			"endpoint":    "/api/v1/resume/parse",
			"text_length": len(req.ResumeText),
		})

		ctx := c.Request().Context()
		cacheKey := utils.CacheKey("parse", req.ResumeText)

		var cached models.ParseResumeResponse
		if cache.Get(ctx, cacheKey, &cached) {
			cached.RequestID = requestID
			cached.ProcessingTime = time.Since(started)
			return c.JSON(http.StatusOK, cached)
		}

		result, strategy, err := resolver.Extract(ctx, req.ResumeText)
		if err != nil {
			if errors.Is(err, extract.ErrEmptyInput) {
				return writeError(c, requestID, utils.NewEmptyInputError())
			}
			logger.Error("Resume extraction failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return writeError(c, requestID, utils.NewExtractionError(err.Error()))
		}

		response := models.ParseResumeResponse{
			Success:        true,
			Data:           result.Resume,
			Warning:        result.Warning,
			StrategyUsed:   strategy,
			ProcessingTime: time.Since(started),
			RequestID:      requestID,
		}

		cache.Set(ctx, cacheKey, response)

		logger.Info("Resume parse completed", map[string]interface{}{
			"request_id":  requestID,
			"strategy":    strategy,
			"experiences": len(result.Resume.Experiences),
			"education":   len(result.Resume.Education),
			"duration":    utils.FormatDuration(response.ProcessingTime),
		})

		return c.JSON(http.StatusOK, response)
	}
}
