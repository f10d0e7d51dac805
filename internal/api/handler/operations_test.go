package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/repository/fixture"
	"github.com/vfg2006/inventory-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/scheduler"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
)

const testPassword = "Donezo@2025"

type stubReporter struct {
	content []byte
	err     error
}

func (s stubReporter) DashboardWorkbook(context.Context, domain.DashboardFilters) ([]byte, error) {
	return s.content, s.err
}

func TestExportDashboardReport(t *testing.T) {
	t.Run("Planilha gerada a partir dos dados fixos", func(t *testing.T) {
		rec := serve(ExportDashboardReport(reporting.NewService(newFixtureDashboard())), http.MethodGet, "/v1/reports/inventory", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Equal(t, reporting.ContentType, rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=\"dashboard-")
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")), "xlsx é um arquivo zip")
	})

	t.Run("Falha na fonte de dados", func(t *testing.T) {
		rec := serve(ExportDashboardReport(reporting.NewService(newFailingDashboard(t))), http.MethodGet, "/v1/reports/inventory", nil, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, apiErrors.ErrDataSourceUnavail, decodeAPIError(t, rec).Code)
	})

	t.Run("Falha ao montar planilha", func(t *testing.T) {
		rec := serve(ExportDashboardReport(stubReporter{err: errors.New("disco cheio")}), http.MethodGet, "/v1/reports/inventory", nil, nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrReportGeneration, decodeAPIError(t, rec).Code)
	})

	t.Run("Limite inválido", func(t *testing.T) {
		rec := serve(ExportDashboardReport(stubReporter{}), http.MethodGet, "/v1/reports/inventory?limit=0x10", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

type stubSyncJob struct {
	triggerErr error
	triggered  int
}

func (s *stubSyncJob) TriggerManualSync() error {
	if s.triggerErr != nil {
		return s.triggerErr
	}
	s.triggered++
	return nil
}

func (s *stubSyncJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": false, "triggered": s.triggered}
}

func newCronRouter(job SyncJob) http.Handler {
	return router.New(router.WithRoutes(CronJobs(CronJobServices{SnapshotSyncService: job})...))
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name          string
		job           *stubSyncJob
		target        string
		wantStatus    int
		wantCode      string
		wantTriggered int
	}{
		{
			name:          "Snapshot disparado",
			job:           &stubSyncJob{},
			target:        "/v1/cron/jobs/snapshot/run",
			wantStatus:    http.StatusAccepted,
			wantTriggered: 1,
		},
		{
			name:       "Tipo desconhecido",
			job:        &stubSyncJob{},
			target:     "/v1/cron/jobs/meta/run",
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrResourceNotFound,
		},
		{
			name:       "Snapshot já em execução",
			job:        &stubSyncJob{triggerErr: scheduler.ErrSyncInProgress},
			target:     "/v1/cron/jobs/snapshot/run",
			wantStatus: http.StatusConflict,
			wantCode:   apiErrors.ErrConflict,
		},
		{
			name:       "Erro inesperado",
			job:        &stubSyncJob{triggerErr: errors.New("agendador parado")},
			target:     "/v1/cron/jobs/snapshot/run",
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newCronRouter(tt.job), http.MethodPost, tt.target, nil, &domain.Claims{UserID: 1, UserRoleID: 1})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantTriggered, tt.job.triggered)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestCronJobsRequireDirector(t *testing.T) {
	job := &stubSyncJob{}

	rec := serve(newCronRouter(job), http.MethodPost, "/v1/cron/jobs/snapshot/run", nil, &domain.Claims{UserID: 2, UserRoleID: 2})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, job.triggered)
}

func TestGetCronStatus(t *testing.T) {
	rec := serve(newCronRouter(&stubSyncJob{}), http.MethodGet, "/v1/cron/status", nil, &domain.Claims{UserID: 1, UserRoleID: 1})
	require.Equal(t, http.StatusOK, rec.Code)

	var status map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Contains(t, status, CronJobTypeSnapshot)
	assert.Equal(t, false, status[CronJobTypeSnapshot]["sync_running"])
}

func newFixtureAuthenticator(t *testing.T) *authenticating.Service {
	t.Helper()

	userRepo, err := fixture.NewUserRepository(testPassword)
	require.NoError(t, err)

	return authenticating.NewService(userRepo, config.Auth{SecretKey: "test-secret"})
}

func TestLogin(t *testing.T) {
	authenticator := newFixtureAuthenticator(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
		validate   func(t *testing.T, details any)
	}{
		{
			name:       "Login válido",
			body:       `{"email":"Sayan@Donezo.kz","password":"` + testPassword + `"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "Senha incorreta",
			body:       `{"email":"sayan@donezo.kz","password":"errada"}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name:       "Usuário inexistente",
			body:       `{"email":"ghost@donezo.kz","password":"` + testPassword + `"}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name:       "Email mal formatado",
			body:       `{"email":"sayan","password":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
			validate: func(t *testing.T, details any) {
				assert.Equal(t, map[string]any{"Email": "email"}, details)
			},
		},
		{
			name:       "Senha ausente",
			body:       `{"email":"sayan@donezo.kz"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
			validate: func(t *testing.T, details any) {
				assert.Equal(t, map[string]any{"Password": "required"}, details)
			},
		},
		{
			name:       "JSON inválido",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(Login(authenticator), http.MethodPost, "/v1/login", strings.NewReader(tt.body), nil)
			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode == "" {
				var resp LoginResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				claims, err := authenticator.ValidateToken(resp.Token)
				require.NoError(t, err)
				assert.Equal(t, 1, claims.UserID)
				return
			}

			apiErr := decodeAPIError(t, rec)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			if tt.validate != nil {
				tt.validate(t, apiErr.Details)
			}
		})
	}
}

func TestGetMe(t *testing.T) {
	authenticator := newFixtureAuthenticator(t)

	t.Run("Perfil sem hash de senha", func(t *testing.T) {
		rec := serve(GetMe(authenticator), http.MethodGet, "/v1/me", nil, &domain.Claims{UserID: 3, UserRoleID: 3})
		require.Equal(t, http.StatusOK, rec.Code)

		var user domain.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "nurlan@donezo.kz", user.Email)
		assert.Empty(t, user.PasswordHash)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("Usuário removido", func(t *testing.T) {
		rec := serve(GetMe(authenticator), http.MethodGet, "/v1/me", nil, &domain.Claims{UserID: 99})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrUserNotFound, decodeAPIError(t, rec).Code)
	})

	t.Run("Sem autenticação", func(t *testing.T) {
		rec := serve(GetMe(authenticator), http.MethodGet, "/v1/me", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
