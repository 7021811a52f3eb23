package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"accounts/config"
	apimiddleware "accounts/internal/delivery/api/middleware"
	"accounts/internal/delivery/api/router"
	"accounts/internal/delivery/api/router/handler"
	"accounts/internal/delivery/api/validator"
	"accounts/internal/delivery/middleware"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/infra/auth"
	mockUsecase "accounts/internal/mocks/usecase"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockAccountUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens, err := auth.NewJWTService(&config.Config{SecretKey: config.SecretKeyConfig{Access: "handler-test-secret"}})
	require.NoError(t, err)

	uc := mockUsecase.NewMockAccountUsecase(t)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)

	router.NewRouter(router.RouterParams{
		AccountHandler: handler.NewAccountHandler(uc),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokens),
	}).RegisterRoutes(e)

	return e, uc
}

func doRequest(e *echo.Echo, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)

	return rec, env
}

func TestAccountHandler_Register(t *testing.T) {
	e, uc := newTestServer(t)
	accountID := uuid.New()

	uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Name: "Ana", Email: "a@x.com", Phone: "1", Password: "p1", ConfirmPassword: "p1",
		}).
		Return(&usecase.AuthOutput{
			Token:     "tok",
			ExpiresIn: 24 * time.Hour,
			AccountID: accountID,
			Account:   &entity.Account{ID: accountID, Name: "Ana", Email: "a@x.com", PasswordHash: "$2a$12$secret"},
		}, nil)

	rec, env := doRequest(e, http.MethodPost, "/users/register",
		`{"name":"Ana","email":"a@x.com","phone":"1","password":"p1","confirmpassword":"p1"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, env.Meta.RequestID)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "tok", data["token"])
	assert.EqualValues(t, 86400, data["expiresIn"])
	assert.Equal(t, accountID.String(), data["accountId"])
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.NotContains(t, rec.Body.String(), "PasswordHash")
}

func TestAccountHandler_ErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "validation", err: domainerrors.Required("name"), status: http.StatusUnprocessableEntity, code: "FIELD_REQUIRED"},
		{name: "conflict", err: errors.WithStack(domainerrors.ErrEmailAlreadyUsed), status: http.StatusUnprocessableEntity, code: "EMAIL_ALREADY_USED"},
		{name: "persistence", err: domainerrors.NewDatabaseExecuteError(errors.New("down"), "insert"), status: http.StatusInternalServerError, code: "DATABASE_EXECUTE_FAILED"},
		{name: "unknown", err: errors.New("surprise"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, uc := newTestServer(t)
			uc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec, env := doRequest(e, http.MethodPost, "/users/register", `{"name":"Ana"}`, "")

			assert.Equal(t, tt.status, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			if tt.status >= http.StatusInternalServerError {
				assert.Empty(t, env.Error.Details)
				assert.NotContains(t, rec.Body.String(), "down")
			}
		})
	}
}

func TestAccountHandler_UnhandledErrorRendersInternalError(t *testing.T) {
	e, uc := newTestServer(t)
	uc.EXPECT().GetByID(mock.Anything, mock.Anything).Return(nil, errors.New("driver panic recovered"))

	rec, env := doRequest(e, http.MethodGet, "/users/"+uuid.New().String(), "", "")

	assert.Equal(t, domainerrors.ErrInternalError.HTTPCode(), rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ErrInternalError.ErrorCode(), env.Error.Code)
	assert.Equal(t, domainerrors.ErrInternalError.Message(), env.Error.Message)
	assert.NotContains(t, rec.Body.String(), "driver panic")
}

func TestAccountHandler_RegisterValidationDetails(t *testing.T) {
	e, uc := newTestServer(t)
	uc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.Required("phone"))

	rec, env := doRequest(e, http.MethodPost, "/users/register", `{"name":"Ana","email":"a@x.com"}`, "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "phone is required", env.Error.Details)
}

func TestAccountHandler_RequestShapeRejected(t *testing.T) {
	e, _ := newTestServer(t)

	rec, env := doRequest(e, http.MethodPost, "/users/register", `{"name":"Ana","email":"not-an-email"}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "email must be a valid email address", env.Error.Details)

	rec, env = doRequest(e, http.MethodPost, "/users/login", `{"email":`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}

func TestAccountHandler_Login(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "nobody@x.com", Password: "p1"}).
		Return(nil, errors.WithStack(domainerrors.ErrAccountNotFound))
	rec, _ := doRequest(e, http.MethodPost, "/users/login", `{"email":"nobody@x.com","password":"p1"}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "a@x.com", Password: "wrong"}).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))
	rec, _ = doRequest(e, http.MethodPost, "/users/login", `{"email":"a@x.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "a@x.com", Password: "p1"}).
		Return(&usecase.AuthOutput{Token: "tok", AccountID: uuid.New()}, nil)
	rec, _ = doRequest(e, http.MethodPost, "/users/login", `{"email":"a@x.com","password":"p1"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_BearerRequired(t *testing.T) {
	e, _ := newTestServer(t)
	id := uuid.New().String()

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/users/checkuser", ""},
		{http.MethodPatch, "/users/edit/" + id, `{"name":"x"}`},
		{http.MethodDelete, "/users/" + id, ""},
	} {
		rec, env := doRequest(e, tc.method, tc.path, tc.body, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, tc.path)
		require.NotNil(t, env.Error)
		assert.Equal(t, "MISSING_TOKEN", env.Error.Code)
	}
}

func TestAccountHandler_GetSelf(t *testing.T) {
	e, uc := newTestServer(t)
	account := &entity.Account{ID: uuid.New(), Name: "Ana"}

	uc.EXPECT().GetSelf(mock.Anything, "good").Return(account, nil)
	uc.EXPECT().GetSelf(mock.Anything, "stale").Return(nil, errors.WithStack(domainerrors.ErrUnauthenticated))

	rec, env := doRequest(e, http.MethodGet, "/users/checkuser", "", "good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), account.ID.String())

	rec, _ = doRequest(e, http.MethodGet, "/users/checkuser", "", "stale")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccountHandler_GetByID(t *testing.T) {
	e, uc := newTestServer(t)
	account := &entity.Account{ID: uuid.New(), Name: "Ana"}

	uc.EXPECT().GetByID(mock.Anything, account.ID).Return(account, nil)
	uc.EXPECT().GetByID(mock.Anything, uuid.Nil).Return(nil, errors.WithStack(domainerrors.ErrAccountNotFound))

	rec, _ := doRequest(e, http.MethodGet, "/users/"+account.ID.String(), "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doRequest(e, http.MethodGet, "/users/not-a-uuid", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAccountHandler_EditAccount(t *testing.T) {
	e, uc := newTestServer(t)
	id := uuid.New()

	uc.EXPECT().
		EditAccount(mock.Anything, id, "tok", &usecase.EditAccountInput{Name: "Ana", Email: "a@x.com", Phone: "1"}).
		Return(&entity.Account{ID: id, Name: "Ana"}, nil)
	rec, _ := doRequest(e, http.MethodPatch, "/users/edit/"+id.String(), `{"name":"Ana","email":"a@x.com","phone":"1"}`, "tok")
	assert.Equal(t, http.StatusOK, rec.Code)

	other := uuid.New()
	uc.EXPECT().
		EditAccount(mock.Anything, other, "tok", mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrNotAccountOwner))
	rec, env := doRequest(e, http.MethodPatch, "/users/edit/"+other.String(), `{"name":"Ana","email":"a@x.com","phone":"1"}`, "tok")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_ACCOUNT_OWNER", env.Error.Code)
}

func TestAccountHandler_DeleteAccount(t *testing.T) {
	e, uc := newTestServer(t)
	id := uuid.New()

	uc.EXPECT().DeleteAccount(mock.Anything, id, "tok").Return(&usecase.DeleteOutput{DeletedPosts: 2}, nil)

	rec, env := doRequest(e, http.MethodDelete, "/users/"+id.String(), "", "tok")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"deletedPosts":2}`, string(env.Data))
}

func TestHealthCheck(t *testing.T) {
	e, _ := newTestServer(t)

	rec, env := doRequest(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}
