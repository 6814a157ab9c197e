package registration

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"NoticeBoard/internal/config"
	"NoticeBoard/internal/form"
	"NoticeBoard/internal/notice"
	"NoticeBoard/internal/upload"
)

// ErrRegistrationClosed is returned when a submission targets a notice that
// is no longer accepting responses. Closed notices are enforced here, not
// just hidden in the UI, so a crafted POST cannot sneak past the gate.
var ErrRegistrationClosed = errors.New("this notice is not accepting responses")

// NoticeFinder is the notice lookup Submit needs to enforce notice-level
// rules. *notice.NoticeRepository satisfies it.
type NoticeFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*notice.Notice, error)
}

// registrationStore is the persistence surface of the service.
// *RegistrationRepository satisfies it.
type registrationStore interface {
	Create(ctx context.Context, reg *Registration) error
	FindAll(ctx context.Context, noticeID string) ([]*Registration, error)
}

type RegistrationService struct {
	repo    registrationStore
	notices NoticeFinder
	store   upload.Store
	email   *config.EmailService
}

func NewRegistrationService(repo *RegistrationRepository, notices *notice.NoticeRepository, store *upload.DiskStore, email *config.EmailService) *RegistrationService {
	return &RegistrationService{repo: repo, notices: notices, store: store, email: email}
}

// Submit ingests one multipart submission: reserved parts fill the fixed
// columns, every other text part lands in details, and file parts are
// validated against the notice's field rules before being written to disk.
func (s *RegistrationService) Submit(ctx context.Context, mf *multipart.Form) (*Registration, error) {
	reg := BuildFromValues(mf.Value)

	n, err := s.resolveNotice(ctx, reg.Details[DetailNoticeID])
	if err != nil {
		return nil, err
	}
	if n != nil {
		if !n.AcceptingResponses {
			return nil, ErrRegistrationClosed
		}
		if err := ValidateFileParts(n.FormFields, mf.File); err != nil {
			return nil, err
		}
	}

	if err := StoreFileParts(s.store, mf.File, reg.Details); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, err
	}

	// Best-effort confirmation; a mail failure never fails the submission.
	if s.email.Enabled() && reg.Email != form.DefaultEmail {
		subject := "Registration received: " + reg.Event
		body := fmt.Sprintf("<p>Hi %s,</p><p>Your registration for <strong>%s</strong> has been recorded.</p>", reg.Name, reg.Event)
		if err := s.email.SendEmail(reg.Email, subject, body); err != nil {
			log.Println("confirmation email failed:", err)
		}
	}

	return reg, nil
}

func (s *RegistrationService) List(ctx context.Context, noticeID string) ([]*Registration, error) {
	return s.repo.FindAll(ctx, noticeID)
}

// resolveNotice looks up the notice a submission claims to target. An absent
// or unresolvable id keeps the legacy permissive path: the submission is
// accepted without notice-level checks.
func (s *RegistrationService) resolveNotice(ctx context.Context, noticeID string) (*notice.Notice, error) {
	if noticeID == "" {
		return nil, nil
	}
	oid, err := primitive.ObjectIDFromHex(noticeID)
	if err != nil {
		return nil, nil
	}
	return s.notices.FindByID(ctx, oid)
}

// BuildFromValues maps the text parts of a submission onto a registration.
// Reserved parts fill the fixed columns; everything else, noticeId included,
// goes into the details map under its part name.
func BuildFromValues(values map[string][]string) *Registration {
	reg := &Registration{
		Name:      form.DefaultName,
		Email:     form.DefaultEmail,
		Details:   map[string]string{},
		CreatedAt: time.Now(),
	}
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		v := vals[0]
		switch key {
		case form.PartName:
			if v != "" {
				reg.Name = v
			}
		case form.PartEmail:
			if v != "" {
				reg.Email = v
			}
		case form.PartEvent:
			reg.Event = v
		default:
			reg.Details[key] = v
		}
	}
	return reg
}

// ValidateFileParts re-runs each file field's rules server-side. Client-side
// validation is advisory only; this is the authoritative check.
func ValidateFileParts(fields []form.FieldDescriptor, files map[string][]*multipart.FileHeader) error {
	for key, fhs := range files {
		fd := form.FieldByKey(fields, key)
		if fd == nil || fd.FileRules == nil {
			continue
		}
		for _, fh := range fhs {
			if err := form.ValidateFile(fh.Filename, fh.Size, fh.Header.Get("Content-Type"), fd.FileRules); err != nil {
				return &form.ValidationError{FieldKey: fd.Key, Message: fd.Label + ": " + err.Error()}
			}
		}
	}
	return nil
}

// StoreFileParts persists each uploaded file and records its public path in
// details under the part name.
func StoreFileParts(store upload.Store, files map[string][]*multipart.FileHeader, details map[string]string) error {
	for key, fhs := range files {
		if len(fhs) == 0 {
			continue
		}
		fh := fhs[0]
		src, err := fh.Open()
		if err != nil {
			return fmt.Errorf("reading upload %s: %w", fh.Filename, err)
		}
		path, err := store.Save(fh.Filename, src)
		src.Close()
		if err != nil {
			return fmt.Errorf("storing upload %s: %w", fh.Filename, err)
		}
		details[key] = path
	}
	return nil
}
