package handlers

import (
	"errors"
	"net/http"

	request "photostock/internal/adapter/http/dto/request"
	response "photostock/internal/adapter/http/dto/response"
	"photostock/internal/usecase"
	"photostock/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAnalyzePayload = pkg.NewDomainErrorSimple("INVALID_ANALYZE_INPUT", "Text, NAS location and images are required", http.StatusBadRequest)

// AnalyzeHandler handles HTTP requests for the analyze-side pipeline:
// previewing pasted batches and pre-checking duplicates.

type AnalyzeHandler struct {
	usecase usecase.IAnalyzeUseCase
}

func NewAnalyzeHandler(uc usecase.IAnalyzeUseCase) *AnalyzeHandler {
	return &AnalyzeHandler{usecase: uc}
}

// AnalyzeEntries accepts a multipart batch (text, nasLocation, images)
// and returns the parsed entries with their validation state. The image
// files themselves are not stored here; only their names feed the
// matcher — storage happens at save time.
func (h *AnalyzeHandler) AnalyzeEntries(c *gin.Context) {
	text := c.PostForm("text")
	nasLocation := c.PostForm("nasLocation")

	var imageNames []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["images"] {
			imageNames = append(imageNames, fh.Filename)
		}
	}

	entries, err := h.usecase.Analyze(c.Request.Context(), text, nasLocation, imageNames)
	if err != nil {
		appErr := mapAnalyzeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEntries(entries))
}

// CheckDuplicates returns which of the posted invoice numbers already
// exist in the catalog.
func (h *AnalyzeHandler) CheckDuplicates(c *gin.Context) {
	var payload request.CheckDuplicatesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "No invNumbers provided.", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	duplicates, err := h.usecase.CheckDuplicates(c.Request.Context(), payload.ResolveInvNumbers())
	if err != nil {
		appErr := mapAnalyzeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if duplicates == nil {
		duplicates = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"duplicates": duplicates})
}

func mapAnalyzeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyText), errors.Is(err, usecase.ErrEmptyNasLocation):
		return errInvalidAnalyzePayload
	case errors.Is(err, usecase.ErrNoInvNumbers):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "No invNumbers provided.", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
