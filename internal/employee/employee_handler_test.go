package employee_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"go-hrm/internal/employee"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn       func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn       func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getOptionsFn   func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getByIDFn      func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	updateFn       func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn       func(ctx context.Context, id string) error
	updateAvatarFn func(ctx context.Context, id, avatarURL string) error
	statisticsFn   func(ctx context.Context) (employee.Statistics, error)
}

func (f *fakeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeService) GetOptions(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getOptionsFn(ctx)
}
func (f *fakeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeService) Delete(ctx context.Context, id string) error { return f.deleteFn(ctx, id) }
func (f *fakeService) UpdateAvatar(ctx context.Context, id, avatarURL string) error {
	return f.updateAvatarFn(ctx, id, avatarURL)
}
func (f *fakeService) Statistics(ctx context.Context) (employee.Statistics, error) {
	return f.statisticsFn(ctx)
}

type fakeStorage struct {
	saveFn func(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

func (f *fakeStorage) Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	return f.saveFn(ctx, filename, contentType, r)
}

func multipartAvatar(t *testing.T, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="avatar"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(payload)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestHandler_UploadAvatar_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	id := uuid.NewString()

	storage := &fakeStorage{
		saveFn: func(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
			assert.Equal(t, "image/png", contentType)
			return "/uploads/" + filename, nil
		},
	}
	var gotURL string
	svc := &fakeService{
		updateAvatarFn: func(ctx context.Context, gotID, avatarURL string) error {
			assert.Equal(t, id, gotID)
			gotURL = avatarURL
			return nil
		},
	}
	h := employee.NewHandler(svc, storage)

	body, contentType := multipartAvatar(t, "me.png", "image/png", []byte("pngdata"))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Request = httptest.NewRequest(http.MethodPost, "/employees/"+id+"/avatar", body)
	c.Request.Header.Set("Content-Type", contentType)
	h.UploadAvatar(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), gotURL)
	assert.Contains(t, w.Body.String(), `"avatarUrl"`)
}

func TestHandler_UploadAvatar_MissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := employee.NewHandler(&fakeService{}, &fakeStorage{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/employees/x/avatar", nil)
	h.UploadAvatar(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UploadAvatar_RejectsNonImage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	storage := &fakeStorage{
		saveFn: func(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
			t.Fatal("storage must not be reached for a non-image upload")
			return "", nil
		},
	}
	h := employee.NewHandler(&fakeService{}, storage)

	body, contentType := multipartAvatar(t, "notes.txt", "text/plain", []byte("hello"))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}
	c.Request = httptest.NewRequest(http.MethodPost, "/employees/x/avatar", body)
	c.Request.Header.Set("Content-Type", contentType)
	h.UploadAvatar(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestHandler_UploadAvatar_RejectsOversizeFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	storage := &fakeStorage{
		saveFn: func(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
			t.Fatal("storage must not be reached for an oversize upload")
			return "", nil
		},
	}
	h := employee.NewHandler(&fakeService{}, storage)

	payload := bytes.Repeat([]byte{0xFF}, 2<<20+1)
	body, contentType := multipartAvatar(t, "huge.png", "image/png", payload)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}
	c.Request = httptest.NewRequest(http.MethodPost, "/employees/x/avatar", body)
	c.Request.Header.Set("Content-Type", contentType)
	h.UploadAvatar(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestHandler_Statistics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		statisticsFn: func(ctx context.Context) (employee.Statistics, error) {
			return employee.Statistics{Total: 5, Male: 3, Female: 2, NoSalary: 1}, nil
		},
	}
	h := employee.NewHandler(svc, &fakeStorage{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/statistics", nil)
	h.Statistics(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":5`)
	assert.Contains(t, w.Body.String(), `"noSalary":1`)
}
