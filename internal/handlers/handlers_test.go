package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/voxgate/voxgate/docs"
	"github.com/voxgate/voxgate/internal/handlers/balance"
	"github.com/voxgate/voxgate/internal/handlers/jobs"
	"github.com/voxgate/voxgate/internal/handlers/workers"
	"github.com/voxgate/voxgate/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		LedgerService: balance.NewMockService(ctrl),
		JobService:    jobs.NewMockService(ctrl),
		WorkerService: workers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockJobHandler := NewMockJobHandler(ctrl)
	mockWorkerHandler := NewMockWorkerHandler(ctrl)

	mockBalanceHandler.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetLedger(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().VerifyLedger(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().PurchaseConfirmed(gomock.Any(), gomock.Any()).AnyTimes()
	mockJobHandler.EXPECT().SubmitJob(gomock.Any(), gomock.Any()).AnyTimes()
	mockJobHandler.EXPECT().GetJobs(gomock.Any(), gomock.Any()).AnyTimes()
	mockJobHandler.EXPECT().GetJob(gomock.Any(), gomock.Any()).AnyTimes()
	mockJobHandler.EXPECT().CancelJob(gomock.Any(), gomock.Any()).AnyTimes()
	mockWorkerHandler.EXPECT().RegisterWorker(gomock.Any(), gomock.Any()).AnyTimes()
	mockWorkerHandler.EXPECT().ListWorkers(gomock.Any(), gomock.Any()).AnyTimes()
	mockWorkerHandler.EXPECT().SetWorkerStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockWorkerHandler.EXPECT().GetWorkerAssignments(gomock.Any(), gomock.Any()).AnyTimes()
	mockWorkerHandler.EXPECT().StartAssignment(gomock.Any(), gomock.Any()).AnyTimes()
	mockWorkerHandler.EXPECT().SubmitAssignment(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		BalanceHandler: mockBalanceHandler,
		JobHandler:     mockJobHandler,
		WorkerHandler:  mockWorkerHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/accounts", http.StatusOK},
		{"GET", "/api/accounts/1/balance", http.StatusOK},
		{"GET", "/api/accounts/1/ledger", http.StatusOK},
		{"GET", "/api/accounts/1/ledger/verify", http.StatusOK},
		{"POST", "/api/accounts/1/jobs", http.StatusOK},
		{"GET", "/api/accounts/1/jobs", http.StatusOK},
		{"GET", "/api/jobs/7", http.StatusOK},
		{"POST", "/api/jobs/7/cancel", http.StatusOK},
		{"POST", "/api/payments/confirmed", http.StatusOK},
		{"POST", "/api/workers", http.StatusOK},
		{"GET", "/api/workers", http.StatusOK},
		{"PATCH", "/api/workers/3/status", http.StatusOK},
		{"GET", "/api/workers/3/assignments", http.StatusOK},
		{"POST", "/api/assignments/5/start", http.StatusOK},
		{"POST", "/api/assignments/5/submit", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
