package app

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"path/filepath"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/services/authoring"
	"github.com/google/uuid"
)

// LocalUploader references files that already live on the local disk. It
// does not copy bytes; the returned URL points at the original path.
type LocalUploader struct {
	newID func() string
}

func NewLocalUploader() *LocalUploader {
	return &LocalUploader{newID: uuid.NewString}
}

func (u *LocalUploader) Upload(_ context.Context, f authoring.File) (domain.Attachment, error) {
	if f.Name == "" {
		return domain.Attachment{}, fmt.Errorf("file name is empty")
	}

	abs, err := filepath.Abs(f.Name)
	if err != nil {
		return domain.Attachment{}, err
	}

	mimetype := f.Mimetype
	if mimetype == "" {
		mimetype = mime.TypeByExtension(filepath.Ext(f.Name))
	}
	if mimetype == "" {
		mimetype = "application/octet-stream"
	}

	base := filepath.Base(f.Name)
	return domain.Attachment{
		URL:          (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(),
		Filename:     u.newID() + "-" + base,
		OriginalName: base,
		Size:         f.Size,
		Mimetype:     mimetype,
	}, nil
}
