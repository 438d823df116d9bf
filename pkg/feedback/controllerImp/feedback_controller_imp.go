package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agrisense/entities"
	"agrisense/pkg/feedback/repository"
)

type FeedbackCtrl struct{ repo repository.FeedbackRepository }

func New(repo repository.FeedbackRepository) *FeedbackCtrl { return &FeedbackCtrl{repo} }

type submitReq struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Rating   int    `json:"rating"`
}

func (h *FeedbackCtrl) Submit(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
	}
	if req.Category == "" {
		req.Category = "general"
	}
	if req.Rating < 1 {
		req.Rating = 1
	}
	if req.Rating > 5 {
		req.Rating = 5
	}
	f := &entities.Feedback{UserID: uid, Category: req.Category, Message: req.Message, Rating: req.Rating}
	if err := h.repo.Create(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FeedbackCtrl) Mine(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	out, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// ListAll is the admin view across every user.
func (h *FeedbackCtrl) ListAll(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
