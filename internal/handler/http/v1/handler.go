package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/maritime_incident_dedup/internal/config"
	"github.com/shenikar/maritime_incident_dedup/internal/repository"
	"github.com/shenikar/maritime_incident_dedup/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	dedupService service.DeduplicationService
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

func NewHandler(dedupService service.DeduplicationService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dedupService: dedupService,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

// @Summary Run a deduplication pass
// @Description Compare recent unmerged incident reports across sources and merge duplicates. With dry_run only candidates are reported. A zero confidence_threshold or max_records falls back to the defaults (0.8 and 100). Requires API key.
// @Tags Deduplication
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body RunDedupRequest false "Run options"
// @Success 200 {object} RunSummaryResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Another pass is in progress"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dedup/run [post]
func (h *Handler) runDeduplication(c *gin.Context) {
	var input RunDedupRequest
	log := h.logger.WithField("method", "runDeduplication")

	// пустое тело - запуск с параметрами по умолчанию
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.dedupService.RunDeduplicationPass(c.Request.Context(), DTOToRunOptions(input))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOptions):
			log.WithError(err).Warn("Rejected run options")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRunInProgress):
			log.WithError(err).Warn("Deduplication pass already running")
			c.JSON(http.StatusConflict, gin.H{"error": "deduplication run already in progress"})
		default:
			log.WithError(err).Error("Deduplication pass failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, ModelToRunSummaryResponse(summary))
}

// @Summary Resolve the effective primary of a record
// @Description Follow merged_into links from the record and return the record that currently holds the merged data. Requires API key.
// @Tags Deduplication
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident record ID"
// @Success 200 {object} IncidentRecordResponse
// @Failure 400 {object} map[string]string "Invalid record ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Merge chain could not be resolved"
// @Router /records/{id}/primary [get]
func (h *Handler) getPrimary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record ID"})
		return
	}
	log := h.logger.WithField("method", "getPrimary").WithField("id", id)

	primary, err := h.dedupService.ResolvePrimary(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			log.WithError(err).Warn("Record not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		case errors.Is(err, service.ErrMergeChainTooDeep), errors.Is(err, service.ErrBrokenMergeChain):
			log.WithError(err).Error("Merge chain could not be resolved")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "merge chain could not be resolved"})
		default:
			log.WithError(err).Error("Failed to resolve primary in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentRecordResponse(primary))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
