package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rick2303/Olanchito/internal/dto"
	"github.com/rick2303/Olanchito/internal/infra"
	"github.com/rick2303/Olanchito/internal/model"
	"github.com/rick2303/Olanchito/internal/repository"
)

// sinCategoria is the placeholder used in the notification email when the
// submitted category id does not resolve to a display name.
const sinCategoria = "Sin categoría"

// ImageFile describes the optional uploaded image as received from the form.
type ImageFile struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// Uploader stores one object with no-overwrite semantics.
// Implemented by infra.StorageClient.
type Uploader interface {
	Upload(ctx context.Context, objectPath, contentType string, body io.Reader) error
}

// NotificationMailer sends the best-effort new-submission notice.
// Implemented by infra.Mailer.
type NotificationMailer interface {
	SendNotificacion(to, subject, body string) error
}

// SubmissionService runs the write pipeline: validate → upload (optional) →
// insert → notify. Every network call is attempted exactly once; failures
// carry the stage they happened in so the form can react.
type SubmissionService interface {
	Registrar(ctx context.Context, req dto.SubmissionRequest, img *ImageFile) (*dto.SubmissionResponse, error)
}

type submissionService struct {
	repo       repository.SubmissionRepository
	categorias repository.CategoryRepository
	storage    Uploader
	mailer     NotificationMailer
	notifyTo   string
}

func NewSubmissionService(
	repo repository.SubmissionRepository,
	categorias repository.CategoryRepository,
	storage Uploader,
	mailer NotificationMailer,
	notifyTo string,
) SubmissionService {
	return &submissionService{
		repo:       repo,
		categorias: categorias,
		storage:    storage,
		mailer:     mailer,
		notifyTo:   notifyTo,
	}
}

func (s *submissionService) Registrar(ctx context.Context, req dto.SubmissionRequest, img *ImageFile) (*dto.SubmissionResponse, error) {
	// Required-field and image checks must fail before anything leaves the
	// process. The handler's validator tags catch most of this already; the
	// service re-checks so the guarantee doesn't depend on the transport.
	if strings.TrimSpace(req.BusinessName) == "" ||
		strings.TrimSpace(req.ContactName) == "" ||
		strings.TrimSpace(req.Email) == "" {
		return nil, &SubmissionError{Stage: StageValidation, Err: errors.New("faltan campos obligatorios")}
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, &SubmissionError{Stage: StageValidation, Err: errors.New("categoría inválida")}
	}
	if img != nil && !strings.HasPrefix(img.ContentType, "image/") {
		return nil, &SubmissionError{Stage: StageValidation, Err: fmt.Errorf("tipo de archivo no permitido: %s", img.ContentType)}
	}

	var imagePath *string
	if img != nil {
		// Timestamp + random token makes collisions practically impossible;
		// the no-overwrite upload turns the impossible case into a loud error.
		ext := strings.ToLower(filepath.Ext(img.Filename))
		objectPath := fmt.Sprintf("%s%d-%s%s", infra.ObjectPrefix, time.Now().UnixMilli(), uuid.NewString(), ext)

		if err := s.storage.Upload(ctx, objectPath, img.ContentType, img.Reader); err != nil {
			log.Error().Err(err).Str("path", objectPath).Msg("submission: image upload failed")
			return nil, &SubmissionError{Stage: StageUpload, Err: err}
		}
		imagePath = &objectPath
	}

	sub := &model.BusinessSubmission{
		BusinessName: req.BusinessName,
		CategoryID:   &categoryID,
		ContactName:  req.ContactName,
		Email:        req.Email,
		Phone:        optional(req.Phone),
		Description:  optional(req.Description),
		Hours:        optional(req.Hours),
		Image:        imagePath,
		Status:       model.SubmissionStatusNew,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		if imagePath != nil {
			// Known gap: no compensating delete. Log the orphan so operators
			// can sweep the bucket.
			log.Warn().Str("path", *imagePath).Msg("submission: insert failed after upload, object orphaned")
		}
		log.Error().Err(err).Msg("submission: insert failed")
		return nil, &SubmissionError{Stage: StageInsert, Err: err}
	}

	// Notification is best-effort: the record is already stored, so a send
	// failure must never look like a failed submission.
	categoryName := sinCategoria
	if cat, err := s.categorias.FindByID(ctx, categoryID); err == nil {
		categoryName = cat.Name
	}

	sent := true
	subject := "Nueva solicitud de registro: " + req.BusinessName
	if err := s.mailer.SendNotificacion(s.notifyTo, subject, buildNotificationBody(req, categoryName, time.Now())); err != nil {
		log.Error().Err(err).Msg("submission: notification email failed")
		sent = false
	}

	return &dto.SubmissionResponse{
		Detail:           "Solicitud recibida. La revisaremos antes de publicarla.",
		NotificationSent: sent,
	}, nil
}

// buildNotificationBody renders the human-readable email the operators
// receive for each new submission.
func buildNotificationBody(req dto.SubmissionRequest, categoryName string, at time.Time) string {
	lines := []string{
		"Nueva solicitud de registro en el Directorio de Olanchito",
		"",
		"Negocio:        " + req.BusinessName,
		"Representante:  " + req.ContactName,
		"Categoría:      " + categoryName,
		"Correo:         " + req.Email,
	}
	if req.Phone != "" {
		lines = append(lines, "Teléfono:       "+req.Phone)
	}
	if req.Whatsapp != "" {
		lines = append(lines, "WhatsApp:       "+req.Whatsapp)
	}
	if req.Address != "" {
		lines = append(lines, "Dirección:      "+req.Address)
	}
	if req.Hours != "" {
		lines = append(lines, "Horario:        "+req.Hours)
	}
	if req.Description != "" {
		lines = append(lines, "", "Descripción:", req.Description)
	}
	lines = append(lines, "", "Fecha: "+formatFechaLocal(at))
	return strings.Join(lines, "\n")
}

var (
	diasES  = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	mesesES = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

// formatFechaLocal formats a timestamp the way the operators read it:
// Spanish long date in Honduras local time.
func formatFechaLocal(t time.Time) string {
	if loc, err := time.LoadLocation("America/Tegucigalpa"); err == nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%s, %d de %s de %d, %02d:%02d",
		diasES[t.Weekday()], t.Day(), mesesES[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
