// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cloudinary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/stockwise/registry-service/internal/logging"
	"github.com/stockwise/registry-service/internal/monitoring"
	"github.com/stockwise/registry-service/internal/tracing"
)

// Sentinel errors for upload operations. Provider errors are never exposed
// to callers, only logged.
var (
	ErrInvalidFileType = errors.New("invalid file type, only images allowed")
	ErrFileTooLarge    = errors.New("file too large")
	ErrUploadFailed    = errors.New("image upload failed")
)

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

const maxPrefixLen = 48

type UploaderInterface interface {
	Upload(ctx context.Context, data []byte, contentType, folder, prefix string) (string, error)
}

var _ UploaderInterface = (*Uploader)(nil)

type Uploader struct {
	client  *cloudinary.Cloudinary
	maxSize int64

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewUploader(cloudinaryURL string, maxSizeMB int64, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Uploader, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}

	return &Uploader{
		client:  client,
		maxSize: maxSizeMB * 1024 * 1024,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}, nil
}

// Upload validates the payload and stores it under a unique public ID
// derived from prefix. The returned URL is the provider's secure URL.
func (u *Uploader) Upload(ctx context.Context, data []byte, contentType, folder, prefix string) (string, error) {
	ctx, span := u.tracer.Start(ctx, "cloudinary.Upload")
	defer span.End()

	if _, ok := allowedTypes[contentType]; !ok {
		u.logger.Warnf("rejected upload with content type %q", contentType)
		return "", ErrInvalidFileType
	}

	if int64(len(data)) > u.maxSize {
		u.logger.Warnf("rejected upload of %d bytes, max is %d", len(data), u.maxSize)
		return "", ErrFileTooLarge
	}

	publicID := UniquePublicID(prefix)

	res, err := u.client.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		Format:       "png",
		Overwrite:    api.Bool(true),
		ResourceType: "image",
	})
	if err != nil {
		u.logger.Errorf("upload of %s/%s failed: %v", folder, publicID, err)
		return "", ErrUploadFailed
	}

	return res.SecureURL, nil
}

var uploadSeq atomic.Uint64

// UniquePublicID derives a storage key from a sanitized prefix, a millisecond
// timestamp, a process-wide sequence number and a random disambiguator. The
// sequence number makes keys distinct even when two uploads share a prefix
// and a timestamp.
func UniquePublicID(prefix string) string {
	return fmt.Sprintf("%s-%d-%d-%d",
		sanitizePrefix(prefix),
		time.Now().UnixMilli(),
		uploadSeq.Add(1),
		rand.Intn(1_000_000_000),
	)
}

func sanitizePrefix(prefix string) string {
	out := make([]rune, 0, len(prefix))
	for _, r := range prefix {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		}
		if len(out) == maxPrefixLen {
			break
		}
	}
	if len(out) == 0 {
		return "upload"
	}
	return string(out)
}
