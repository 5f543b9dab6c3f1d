package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	request "photostock/internal/adapter/http/dto/request"
	response "photostock/internal/adapter/http/dto/response"
	"photostock/internal/usecase"
	"photostock/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBatch   = pkg.NewDomainErrorSimple("INVALID_BATCH", "Invalid data format, expecting arrays", http.StatusBadRequest)
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// InvoiceHandler handles HTTP requests for the persisted catalog:
// listing/searching, saving validated batches, status changes, deletes
// and image overwrites.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// ListInvoices returns one display-ordered page of results. totalCount
// reflects the filtered set, which is what the pagination widget needs.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("perPage", "10"))
	search := c.Query("search")

	results, total, err := h.usecase.List(c.Request.Context(), page, perPage, search)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromResults(results, total))
}

// SaveInvoices persists a multipart batch: parallel field arrays plus
// one image file per entry, index-paired. Mismatched array lengths are
// an input-shape error; validation failures come back per entry and
// nothing is stored.
func (h *InvoiceHandler) SaveInvoices(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(errInvalidBatch.HTTPStatus, errInvalidBatch.ToHTTPError())
		return
	}

	invNumbers := form.Value["invNumber"]
	totals := form.Value["total"]
	contents := form.Value["originalContent"]
	nasLocations := form.Value["nasLocation"]
	images := form.File["image"]

	n := len(invNumbers)
	if n == 0 || len(totals) != n || len(contents) != n || len(nasLocations) != n {
		c.JSON(errInvalidBatch.HTTPStatus, errInvalidBatch.ToHTTPError())
		return
	}

	batch := make([]usecase.SaveEntry, n)
	for i := 0; i < n; i++ {
		batch[i] = usecase.SaveEntry{
			InvNumber:       invNumbers[i],
			Total:           totals[i],
			OriginalContent: contents[i],
			NasLocation:     nasLocations[i],
		}
		if i < len(images) {
			data, err := readUpload(images[i])
			if err != nil {
				appErr := pkg.NewDomainError("UPLOAD_READ_FAILED", "Error processing the form", err, http.StatusInternalServerError)
				c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
				return
			}
			batch[i].ImageName = images[i].Filename
			batch[i].ImageData = data
		}
	}

	saveErrors, err := h.usecase.Save(c.Request.Context(), batch)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(saveErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Entries were unable to save due to errors.",
			"errors":  saveErrors,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Results saved successfully!"})
}

// UpdateStatus moves one result between Ready/Scheduled/Posted.
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	status, err := payload.ResolveStatus()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS", "Status must be Ready, Scheduled or Posted", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.UpdateStatus(c.Request.Context(), payload.ResolveInvNumber(), status)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromResult(result))
}

// DeleteInvoice removes one result and its stored photo.
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	var payload request.DeleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), payload.ResolveInvNumber()); err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Result and image deleted successfully!"})
}

// OverwriteImage replaces a stored photo with a client-compressed
// rendition and updates the record's image path.
func (h *InvoiceHandler) OverwriteImage(c *gin.Context) {
	var payload request.OverwriteImageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	data, err := payload.DecodeImage()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_IMAGE", "compressedImage must be non-empty base64", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.OverwriteImage(c.Request.Context(), payload.ResolveInvNumber(), payload.OriginalFilename, data)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromResult(result))
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyBatch), errors.Is(err, usecase.ErrEmptyInvNumber):
		return errInvalidPayload
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status must be Ready, Scheduled or Posted", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrResultNotFound):
		return pkg.NewDomainErrorSimple("RESULT_NOT_FOUND", "Result not found!", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
