package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/collabster/backend/internal/models"
	"github.com/collabster/backend/internal/storage"
	"github.com/collabster/backend/internal/utils"
)

const (
	// MaxPhotoSize is the upload cap, checked before any network call.
	MaxPhotoSize = 5 << 20 // 5 MiB

	NamespaceProfile   = "profiles"
	NamespacePortfolio = "portfolio"
)

// PhotoInput is one file from a multipart upload.
type PhotoInput struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// PhotoResult reports the outcome for one file of a batch. Batches are
// best-effort: each file succeeds or fails on its own.
type PhotoResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

type PhotoService interface {
	UploadProfilePhoto(ctx context.Context, userID, email string, in PhotoInput) (*models.Profile, string, error)
	UploadPortfolio(ctx context.Context, userID, email string, files []PhotoInput) (*models.Profile, []PhotoResult, error)
	RemovePortfolioPhoto(ctx context.Context, userID, email, url string) (*models.Profile, error)
}

type photoService struct {
	uploader storage.Uploader
	remover  storage.Remover
	profiles ProfileService
	log      *logrus.Logger
	now      func() time.Time
}

func NewPhotoService(uploader storage.Uploader, remover storage.Remover, profiles ProfileService, log *logrus.Logger) PhotoService {
	return &photoService{uploader: uploader, remover: remover, profiles: profiles, log: log, now: time.Now}
}

// ValidatePhoto rejects non-image or oversize files. It must run before the
// uploader is ever invoked.
func ValidatePhoto(contentType string, size int64) error {
	const op = "PhotoService.ValidatePhoto"

	if !strings.HasPrefix(contentType, "image/") {
		return utils.E(utils.CodeInvalidArgument, op, "file must be an image", nil)
	}
	if size <= 0 || size > MaxPhotoSize {
		return utils.E(utils.CodeInvalidArgument, op, "file exceeds the 5 MiB limit", nil)
	}
	return nil
}

// ObjectName builds the storage path: namespace/owner/millis-filename.
// Time-based uniqueness, same scheme the original used.
func ObjectName(namespace, userID, filename string, at time.Time) string {
	base := filename
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}
	return fmt.Sprintf("%s/%s/%d-%s", namespace, userID, at.UnixMilli(), base)
}

func (s *photoService) UploadProfilePhoto(ctx context.Context, userID, email string, in PhotoInput) (*models.Profile, string, error) {
	const op = "PhotoService.UploadProfilePhoto"

	if err := ValidatePhoto(in.ContentType, in.Size); err != nil {
		return nil, "", err
	}
	if s.uploader == nil {
		return nil, "", utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}

	url, err := s.uploader.Upload(ctx, ObjectName(NamespaceProfile, userID, in.Filename, s.now()), in.ContentType, in.Reader)
	if err != nil {
		return nil, "", utils.E(utils.CodeUnavailable, op, "failed to upload photo", err)
	}

	p, err := s.profiles.UpdateOwn(ctx, userID, email, models.ProfileUpdate{Photo: &url})
	if err != nil {
		return nil, "", err
	}
	return p, url, nil
}

func (s *photoService) UploadPortfolio(ctx context.Context, userID, email string, files []PhotoInput) (*models.Profile, []PhotoResult, error) {
	const op = "PhotoService.UploadPortfolio"

	if len(files) == 0 {
		return nil, nil, utils.E(utils.CodeInvalidArgument, op, "no files provided", nil)
	}
	if s.uploader == nil {
		return nil, nil, utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}

	results := make([]PhotoResult, 0, len(files))
	var uploaded []string
	for _, f := range files {
		res := PhotoResult{Filename: f.Filename}
		if err := ValidatePhoto(f.ContentType, f.Size); err != nil {
			res.Error = err.Error()
			results = append(results, res)
			continue
		}
		url, err := s.uploader.Upload(ctx, ObjectName(NamespacePortfolio, userID, f.Filename, s.now()), f.ContentType, f.Reader)
		if err != nil {
			if s.log != nil {
				s.log.WithError(err).WithField("filename", f.Filename).Warn("portfolio upload failed")
			}
			res.Error = err.Error()
			results = append(results, res)
			continue
		}
		res.URL = url
		uploaded = append(uploaded, url)
		results = append(results, res)
	}

	p, err := s.profiles.AppendPortfolio(ctx, userID, email, uploaded)
	if err != nil {
		return nil, results, err
	}
	return p, results, nil
}

// RemovePortfolioPhoto deletes the stored object best-effort and always
// updates the list state; a storage failure is logged, not fatal.
func (s *photoService) RemovePortfolioPhoto(ctx context.Context, userID, email, url string) (*models.Profile, error) {
	if s.remover != nil && url != "" {
		if err := s.remover.Remove(ctx, url); err != nil {
			if s.log != nil {
				s.log.WithError(err).WithField("url", url).Warn("portfolio object delete failed")
			}
		}
	}
	return s.profiles.RemovePortfolioURL(ctx, userID, email, url)
}
