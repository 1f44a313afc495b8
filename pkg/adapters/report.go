package adapters

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/models/store"
)

func MapReportStoreToDomain(r store.Report) (domain.Report, error) {
	attachments, err := DecodeAttachments(r.Attachments)
	if err != nil {
		return domain.Report{}, fmt.Errorf("report %s: %w", r.ID, err)
	}
	return domain.Report{
		ID:          r.ID,
		Title:       r.Title,
		Content:     r.Content,
		ReportType:  r.ReportType,
		Department:  r.Department,
		Attachments: attachments,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

func MapReportDraftToStore(id string, d domain.ReportDraft, createdAt, updatedAt time.Time) (store.Report, error) {
	attachments, err := EncodeAttachments(d.Attachments)
	if err != nil {
		return store.Report{}, err
	}
	return store.Report{
		ID:          id,
		Title:       d.Title,
		Content:     d.Content,
		ReportType:  d.ReportType,
		Department:  d.Department,
		Attachments: attachments,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// EncodeAttachments renders a nil or empty list as "[]".
func EncodeAttachments(attachments []domain.Attachment) (string, error) {
	if len(attachments) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(attachments)
	if err != nil {
		return "", fmt.Errorf("encode attachments: %w", err)
	}
	return string(b), nil
}

func DecodeAttachments(raw string) ([]domain.Attachment, error) {
	attachments := []domain.Attachment{}
	if raw == "" {
		return attachments, nil
	}
	if err := json.Unmarshal([]byte(raw), &attachments); err != nil {
		return nil, fmt.Errorf("decode attachments: %w", err)
	}
	return attachments, nil
}
