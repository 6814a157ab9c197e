package notice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"NoticeBoard/internal/form"
)

type NoticeService struct {
	repo *NoticeRepository
}

func NewNoticeService(repo *NoticeRepository) *NoticeService {
	return &NoticeService{repo: repo}
}

// CreateNotice sanitizes rich-text fields, assigns stable keys to every form
// field and persists the notice.
func (s *NoticeService) CreateNotice(ctx context.Context, req CreateNoticeRequest) (*Notice, error) {
	if err := form.Validate(req.FormFields); err != nil {
		return nil, err
	}

	n := &Notice{
		ID:                 primitive.NewObjectID(),
		Title:              sanitizeHTML(req.Title),
		Content:            sanitizeHTML(req.Content),
		ShortDescription:   sanitizeHTML(req.ShortDescription),
		FormTitle:          sanitizeHTML(req.FormTitle),
		FormDescription:    sanitizeHTML(req.FormDescription),
		Date:               time.Now(),
		AcceptingResponses: true,
		NoticeBgImage:      req.NoticeBgImage,
		FormBgImage:        req.FormBgImage,
		Design:             DefaultDesign(),
		FormFields:         form.AssignKeys(req.FormFields),
	}
	if req.AcceptingResponses != nil {
		n.AcceptingResponses = *req.AcceptingResponses
	}
	if req.Design != nil {
		n.Design = *req.Design
	}
	if n.FormFields == nil {
		n.FormFields = []form.FieldDescriptor{}
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NoticeService) ListNotices(ctx context.Context) ([]*Notice, error) {
	return s.repo.FindAll(ctx)
}

func (s *NoticeService) GetNotice(ctx context.Context, id string) (*Notice, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid notice id")
	}
	return s.repo.FindByID(ctx, oid)
}

// UpdateNotice applies a partial update. Unknown keys are dropped rather than
// written through, so a crafted PATCH cannot plant arbitrary document fields.
func (s *NoticeService) UpdateNotice(ctx context.Context, id string, body map[string]interface{}) (*Notice, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid notice id")
	}
	set, err := BuildPatch(body)
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return s.repo.FindByID(ctx, oid)
	}
	return s.repo.Update(ctx, oid, set)
}

func (s *NoticeService) DeleteNotice(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid notice id")
	}
	return s.repo.Delete(ctx, oid)
}

// patchFields maps patchable JSON keys to their stored names. Rich-text
// values pass through the sanitizer.
var patchFields = map[string]struct {
	bsonKey  string
	richText bool
}{
	"title":              {"title", true},
	"content":            {"content", true},
	"shortDescription":   {"short_description", true},
	"formTitle":          {"form_title", true},
	"formDescription":    {"form_description", true},
	"acceptingResponses": {"accepting_responses", false},
	"noticeBgImage":      {"notice_bg_image", false},
	"formBgImage":        {"form_bg_image", false},
}

// BuildPatch converts a partial JSON body into a $set document. Reapplying
// the same patch yields the same document, so toggles like acceptingResponses
// are idempotent.
func BuildPatch(body map[string]interface{}) (bson.M, error) {
	set := bson.M{}
	for key, value := range body {
		if pf, ok := patchFields[key]; ok {
			if pf.richText {
				str, ok := value.(string)
				if !ok {
					return nil, fmt.Errorf("%s must be a string", key)
				}
				set[pf.bsonKey] = sanitizeHTML(str)
				continue
			}
			set[pf.bsonKey] = value
			continue
		}
		switch key {
		case "design":
			var d Design
			if err := reencode(value, &d); err != nil {
				return nil, fmt.Errorf("invalid design: %w", err)
			}
			set["design"] = d
		case "formFields":
			var fields []form.FieldDescriptor
			if err := reencode(value, &fields); err != nil {
				return nil, fmt.Errorf("invalid formFields: %w", err)
			}
			if err := form.Validate(fields); err != nil {
				return nil, err
			}
			set["form_fields"] = form.AssignKeys(fields)
		}
	}
	return set, nil
}

// reencode converts a decoded JSON value into a typed struct.
func reencode(value interface{}, out interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
