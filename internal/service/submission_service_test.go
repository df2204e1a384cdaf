package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rick2303/Olanchito/internal/dto"
	"github.com/rick2303/Olanchito/internal/model"
)

// ── Stubs ────────────────────────────────────────────────────────────────────

type stubSubmissionRepo struct {
	created []*model.BusinessSubmission
	err     error
}

func (r *stubSubmissionRepo) Create(_ context.Context, s *model.BusinessSubmission) error {
	if r.err != nil {
		return r.err
	}
	s.ID = uuid.New()
	r.created = append(r.created, s)
	return nil
}

type stubUploader struct {
	objects map[string]string
	err     error
}

func newStubUploader() *stubUploader {
	return &stubUploader{objects: make(map[string]string)}
}

func (u *stubUploader) Upload(_ context.Context, objectPath, _ string, body io.Reader) error {
	if u.err != nil {
		return u.err
	}
	data, _ := io.ReadAll(body)
	u.objects[objectPath] = string(data)
	return nil
}

type sentMail struct {
	to, subject, body string
}

type stubMailer struct {
	sent []sentMail
	err  error
}

func (m *stubMailer) SendNotificacion(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func validRequest() dto.SubmissionRequest {
	return dto.SubmissionRequest{
		BusinessName: "Pulpería La Esquina",
		ContactName:  "María López",
		CategoryID:   uuid.NewString(),
		Email:        "maria@example.hn",
		Phone:        "9988-7766",
	}
}

func newTestSubmissionService(repo *stubSubmissionRepo, cats *stubCategoryRepo, up *stubUploader, m *stubMailer) SubmissionService {
	return NewSubmissionService(repo, cats, up, m, "admin@example.hn")
}

// ── Validation stage ─────────────────────────────────────────────────────────

func TestRegistrarMissingFieldsBlockEverything(t *testing.T) {
	repo := &stubSubmissionRepo{}
	up := newStubUploader()
	mail := &stubMailer{}
	svc := newTestSubmissionService(repo, &stubCategoryRepo{}, up, mail)

	req := validRequest()
	req.Email = "   "
	_, err := svc.Registrar(context.Background(), req, nil)

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, StageValidation, subErr.Stage)
	assert.Empty(t, repo.created)
	assert.Empty(t, up.objects)
	assert.Empty(t, mail.sent)
}

func TestRegistrarRejectsMalformedCategoryID(t *testing.T) {
	svc := newTestSubmissionService(&stubSubmissionRepo{}, &stubCategoryRepo{}, newStubUploader(), &stubMailer{})

	req := validRequest()
	req.CategoryID = "no-es-uuid"
	_, err := svc.Registrar(context.Background(), req, nil)

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, StageValidation, subErr.Stage)
}

func TestRegistrarRejectsNonImageFile(t *testing.T) {
	up := newStubUploader()
	svc := newTestSubmissionService(&stubSubmissionRepo{}, &stubCategoryRepo{}, up, &stubMailer{})

	img := &ImageFile{Filename: "virus.exe", ContentType: "application/octet-stream", Reader: strings.NewReader("x")}
	_, err := svc.Registrar(context.Background(), validRequest(), img)

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, StageValidation, subErr.Stage)
	assert.Empty(t, up.objects)
}

// ── Upload / insert stages ───────────────────────────────────────────────────

func TestRegistrarWithoutImageSkipsUpload(t *testing.T) {
	repo := &stubSubmissionRepo{}
	up := newStubUploader()
	svc := newTestSubmissionService(repo, &stubCategoryRepo{}, up, &stubMailer{})

	resp, err := svc.Registrar(context.Background(), validRequest(), nil)
	require.NoError(t, err)
	assert.True(t, resp.NotificationSent)

	require.Len(t, repo.created, 1)
	assert.Nil(t, repo.created[0].Image)
	assert.Empty(t, up.objects)
}

func TestRegistrarStoresImageUnderBusinessPrefix(t *testing.T) {
	repo := &stubSubmissionRepo{}
	up := newStubUploader()
	svc := newTestSubmissionService(repo, &stubCategoryRepo{}, up, &stubMailer{})

	img := &ImageFile{Filename: "Fachada.JPG", ContentType: "image/jpeg", Reader: strings.NewReader("jpegdata")}
	_, err := svc.Registrar(context.Background(), validRequest(), img)
	require.NoError(t, err)

	require.Len(t, up.objects, 1)
	require.Len(t, repo.created, 1)
	require.NotNil(t, repo.created[0].Image)
	path := *repo.created[0].Image
	assert.True(t, strings.HasPrefix(path, "business/"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))
	assert.Equal(t, "jpegdata", up.objects[path])
}

func TestRegistrarUploadFailureIsUploadStage(t *testing.T) {
	repo := &stubSubmissionRepo{}
	up := newStubUploader()
	up.err = errors.New("bucket unavailable")
	svc := newTestSubmissionService(repo, &stubCategoryRepo{}, up, &stubMailer{})

	img := &ImageFile{Filename: "foto.png", ContentType: "image/png", Reader: strings.NewReader("png")}
	_, err := svc.Registrar(context.Background(), validRequest(), img)

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, StageUpload, subErr.Stage)
	assert.Empty(t, repo.created)
}

func TestRegistrarInsertFailureAfterUpload(t *testing.T) {
	// The object is already in the bucket when the insert fails; the error
	// must carry the insert stage, not the upload stage.
	repo := &stubSubmissionRepo{err: errors.New("constraint violation")}
	up := newStubUploader()
	mail := &stubMailer{}
	svc := newTestSubmissionService(repo, &stubCategoryRepo{}, up, mail)

	img := &ImageFile{Filename: "foto.png", ContentType: "image/png", Reader: strings.NewReader("png")}
	_, err := svc.Registrar(context.Background(), validRequest(), img)

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, StageInsert, subErr.Stage)
	assert.Len(t, up.objects, 1)
	assert.Empty(t, mail.sent)
}

// ── Notification ─────────────────────────────────────────────────────────────

func TestRegistrarNotifyFailureIsSoft(t *testing.T) {
	repo := &stubSubmissionRepo{}
	mail := &stubMailer{err: errors.New("smtp timeout")}
	svc := newTestSubmissionService(repo, &stubCategoryRepo{}, newStubUploader(), mail)

	resp, err := svc.Registrar(context.Background(), validRequest(), nil)
	require.NoError(t, err)

	assert.False(t, resp.NotificationSent)
	assert.Len(t, repo.created, 1)
}

func TestRegistrarNotificationBody(t *testing.T) {
	catID := uuid.New()
	cats := &stubCategoryRepo{byID: map[uuid.UUID]*model.Category{
		catID: {ID: catID, Name: "Restaurantes", Slug: "restaurantes"},
	}}
	repo := &stubSubmissionRepo{}
	mail := &stubMailer{}
	svc := newTestSubmissionService(repo, cats, newStubUploader(), mail)

	req := validRequest()
	req.CategoryID = catID.String()
	req.Whatsapp = "9911-2233"
	_, err := svc.Registrar(context.Background(), req, nil)
	require.NoError(t, err)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "admin@example.hn", mail.sent[0].to)
	assert.Contains(t, mail.sent[0].subject, req.BusinessName)
	assert.Contains(t, mail.sent[0].body, "Restaurantes")
	assert.Contains(t, mail.sent[0].body, "9911-2233")
	assert.NotContains(t, mail.sent[0].body, "Dirección")
}

func TestRegistrarUnknownCategoryUsesPlaceholder(t *testing.T) {
	// The id parses but resolves to nothing; the record still lands and the
	// email names the placeholder.
	repo := &stubSubmissionRepo{}
	mail := &stubMailer{}
	svc := newTestSubmissionService(repo, &stubCategoryRepo{}, newStubUploader(), mail)

	resp, err := svc.Registrar(context.Background(), validRequest(), nil)
	require.NoError(t, err)
	assert.True(t, resp.NotificationSent)

	require.Len(t, repo.created, 1)
	assert.Equal(t, model.SubmissionStatusNew, repo.created[0].Status)
	require.Len(t, mail.sent, 1)
	assert.Contains(t, mail.sent[0].body, "Sin categoría")
}
