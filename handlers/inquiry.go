package handlers

import (
	"net/http"

	"dormhub/services/inquiry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InquiryHandler exposes the contact-form endpoints.
type InquiryHandler struct {
	Svc    inquiry.InquiryService
	Logger *zap.Logger
}

// NewInquiryHandler constructs an InquiryHandler.
func NewInquiryHandler(svc inquiry.InquiryService, logger *zap.Logger) *InquiryHandler {
	return &InquiryHandler{Svc: svc, Logger: logger}
}

// SubmitInquiry accepts a public contact-form submission.
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var req inquiry.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	inq, err := h.Svc.Submit(req)
	if err != nil {
		h.Logger.Error("Failed to submit inquiry", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, inq)
}

// ListInquiries returns inquiries for the back office (admin).
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	unresolvedOnly := c.Query("unresolved") == "true"
	inquiries, err := h.Svc.List(unresolvedOnly)
	if err != nil {
		h.Logger.Error("Failed to list inquiries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve inquiries"})
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

// ResolveInquiry marks an inquiry as handled (admin).
func (h *InquiryHandler) ResolveInquiry(c *gin.Context) {
	if err := h.Svc.Resolve(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inquiry resolved"})
}

// DeleteInquiry removes an inquiry (admin).
func (h *InquiryHandler) DeleteInquiry(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inquiry deleted"})
}
