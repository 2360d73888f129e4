package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cuongbtq/cleanmatch-be/internal/api/dto"
	"github.com/cuongbtq/cleanmatch-be/internal/engine"
	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
	"github.com/gin-gonic/gin"
)

// OfferHandler handles offer-related HTTP requests
type OfferHandler struct {
	logger *slog.Logger
	engine *engine.Engine
}

// NewOfferHandler creates a new OfferHandler instance
func NewOfferHandler(deps *Dependencies) *OfferHandler {
	return &OfferHandler{logger: deps.Logger, engine: deps.Engine}
}

// CreateOffer handles POST /api/v1/offers
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	offer, err := h.engine.CreateOffer(sessionToken(c), req.JobID, req.Price)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewOfferDTO(offer))
}

// ListOffersForJob handles GET /api/v1/jobs/:job_id/offers
func (h *OfferHandler) ListOffersForJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job_id must be an integer"})
		return
	}

	offers := h.engine.ListOffersForJob(jobID)
	c.JSON(http.StatusOK, dto.ListOffersResponse{Offers: dto.NewOfferDTOs(offers)})
}

// ListMyOffers handles GET /api/v1/offers
func (h *OfferHandler) ListMyOffers(c *gin.Context) {
	user, err := h.engine.SessionUser(sessionToken(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if user.Role != domain.RoleProvider {
		c.JSON(http.StatusForbidden, gin.H{"error": "only providers list their offers"})
		return
	}

	offers := h.engine.ListOffersByProvider(user.ID)
	c.JSON(http.StatusOK, dto.ListOffersResponse{Offers: dto.NewOfferDTOs(offers)})
}

// AcceptOffer handles POST /api/v1/offers/:offer_id/accept
func (h *OfferHandler) AcceptOffer(c *gin.Context) {
	offerID, err := strconv.ParseInt(c.Param("offer_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offer_id must be an integer"})
		return
	}

	job, err := h.engine.AcceptOffer(sessionToken(c), offerID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewJobDTO(job))
}
