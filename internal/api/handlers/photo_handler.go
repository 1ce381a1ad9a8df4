package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/collabster/backend/internal/models"
	"github.com/collabster/backend/internal/services"
	"github.com/collabster/backend/internal/utils"
)

type PhotoHandler struct {
	svc services.PhotoService
}

func NewPhotoHandler(svc services.PhotoService) *PhotoHandler {
	return &PhotoHandler{svc: svc}
}

// UploadProfilePhoto replaces the avatar. Validation happens before the
// object store is touched.
func (h *PhotoHandler) UploadProfilePhoto(c *gin.Context) {
	userID, email, ok := requireIdentity(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "PhotoHandler.UploadProfilePhoto", "missing multipart field 'photo'", err))
		return
	}
	if err := services.ValidatePhoto(contentTypeOf(fh), fh.Size); err != nil {
		writeError(c, err)
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "PhotoHandler.UploadProfilePhoto", "failed to open upload", err))
		return
	}
	defer file.Close()

	profile, url, err := h.svc.UploadProfilePhoto(c.Request.Context(), userID, email, services.PhotoInput{
		Filename:    fh.Filename,
		ContentType: contentTypeOf(fh),
		Size:        fh.Size,
		Reader:      file,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "profile": profile})
}

type portfolioUploadResponse struct {
	Profile *models.Profile        `json:"profile"`
	Results []services.PhotoResult `json:"results"`
}

// UploadPortfolio accepts many files and is best-effort per file: the
// response reports each file's URL or error.
func (h *PhotoHandler) UploadPortfolio(c *gin.Context) {
	userID, email, ok := requireIdentity(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "PhotoHandler.UploadPortfolio", "invalid multipart form", err))
		return
	}
	headers := form.File["photos"]
	if len(headers) == 0 {
		writeError(c, utils.E(utils.CodeInvalidArgument, "PhotoHandler.UploadPortfolio", "missing multipart field 'photos'", nil))
		return
	}

	files := make([]services.PhotoInput, 0, len(headers))
	var opened []multipart.File
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			writeError(c, utils.E(utils.CodeInternal, "PhotoHandler.UploadPortfolio", "failed to open upload", err))
			return
		}
		opened = append(opened, f)
		files = append(files, services.PhotoInput{
			Filename:    fh.Filename,
			ContentType: contentTypeOf(fh),
			Size:        fh.Size,
			Reader:      f,
		})
	}

	profile, results, err := h.svc.UploadPortfolio(c.Request.Context(), userID, email, files)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, portfolioUploadResponse{Profile: profile, Results: results})
}

type removePortfolioRequest struct {
	URL string `json:"url"`
}

func (h *PhotoHandler) RemovePortfolioPhoto(c *gin.Context) {
	userID, email, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req removePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "PhotoHandler.RemovePortfolioPhoto", "url is required", err))
		return
	}

	profile, err := h.svc.RemovePortfolioPhoto(c.Request.Context(), userID, email, req.URL)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func contentTypeOf(fh *multipart.FileHeader) string {
	return fh.Header.Get("Content-Type")
}
