package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"gestion_oficina/internal/adapter/http/handlers/mocks"
	"gestion_oficina/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBackupRouter(t *testing.T) (*gin.Engine, *mocks.MockIBackupUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBackupUseCase(ctrl)
	h := NewBackupHandler(uc, quietLogger())

	r := newTestRouter()
	r.GET("/v1/backup", h.ExportBackup)
	r.POST("/v1/backup/import", h.ImportBackup)
	return r, uc
}

func TestBackupHandler_ExportBackup(t *testing.T) {
	r, uc := newBackupRouter(t)
	uc.EXPECT().Export(gomock.Any()).Return(entities.Backup{
		Version:   entities.BackupVersion,
		Timestamp: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
		Clientes:  []entities.Cliente{{ID: "c-1", Nombre: "Ana"}},
	}, nil)

	w := doRequest(r, http.MethodGet, "/v1/backup", "")
	expectStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Header().Get("Content-Disposition"), "backup-20240610-090000.json") {
		t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
	}
	var b entities.Backup
	if err := json.Unmarshal(w.Body.Bytes(), &b); err != nil {
		t.Fatalf("backup is not json: %v", err)
	}
	if b.Version != entities.BackupVersion || len(b.Clientes) != 1 {
		t.Fatalf("unexpected backup: %+v", b)
	}
}

func TestBackupHandler_ImportBackup(t *testing.T) {
	doc := `{"version":"1","timestamp":"2024-06-10T09:00:00Z","clientes":[{"id":"c-1","nombre":"Ana","activo":true,"deudaTotalActual":"0"}]}`

	t.Run("without confirmation", func(t *testing.T) {
		r, uc := newBackupRouter(t)
		uc.EXPECT().Import(gomock.Any(), gomock.Any(), false).Return(entities.ErrImportNotConfirmed)
		w := doRequest(r, http.MethodPost, "/v1/backup/import", doc)
		expectStatus(t, w, http.StatusBadRequest)
		if decodeError(t, w).Code != "IMPORT_NOT_CONFIRMED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("confirmed", func(t *testing.T) {
		r, uc := newBackupRouter(t)
		uc.EXPECT().Import(gomock.Any(), gomock.Any(), true).DoAndReturn(func(_ any, b entities.Backup, _ bool) error {
			if len(b.Clientes) != 1 || b.Clientes[0].ID != "c-1" {
				t.Fatalf("unexpected backup: %+v", b)
			}
			return nil
		})
		expectStatus(t, doRequest(r, http.MethodPost, "/v1/backup/import?confirm=true", doc), http.StatusNoContent)
	})

	t.Run("malformed document", func(t *testing.T) {
		r, _ := newBackupRouter(t)
		expectStatus(t, doRequest(r, http.MethodPost, "/v1/backup/import?confirm=true", `{"clientes":"x"}`), http.StatusBadRequest)
	})
}
