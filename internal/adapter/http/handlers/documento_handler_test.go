package handlers

import (
	"net/http"
	"strings"
	"testing"

	"gestion_oficina/internal/adapter/http/handlers/mocks"
	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDocumentoRouter(t *testing.T) (*gin.Engine, *mocks.MockIDocumentoUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDocumentoUseCase(ctrl)
	h := NewDocumentoHandler(uc, quietLogger())

	r := newTestRouter()
	r.POST("/v1/documentos", h.UploadDocumento)
	r.GET("/v1/documentos", h.ListDocumentos)
	r.GET("/v1/documentos/:id", h.GetDocumento)
	r.GET("/v1/documentos/:id/archivo", h.DownloadDocumento)
	r.DELETE("/v1/documentos/:id", h.DeleteDocumento)
	return r, uc
}

func TestDocumentoHandler(t *testing.T) {
	t.Run("upload too large", func(t *testing.T) {
		r, uc := newDocumentoRouter(t)
		uc.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(entities.Documento{}, entities.ErrDocumentoTooLarge)
		w := doRequest(r, http.MethodPost, "/v1/documentos", `{"clienteId":"c-1","nombre":"a.pdf","archivoBase64":"SGVsbG8="}`)
		expectStatus(t, w, http.StatusRequestEntityTooLarge)
	})

	t.Run("upload never echoes content", func(t *testing.T) {
		r, uc := newDocumentoRouter(t)
		uc.EXPECT().Upload(gomock.Any(), usecase.DocumentoInput{ClienteID: "c-1", Nombre: "a.pdf", ArchivoBase64: "SGVsbG8="}).
			Return(entities.Documento{ID: "d-1", ClienteID: "c-1", Nombre: "a.pdf", Tamano: 5, ArchivoBase64: "SGVsbG8="}, nil)
		w := doRequest(r, http.MethodPost, "/v1/documentos", `{"clienteId":"c-1","nombre":"a.pdf","archivoBase64":"SGVsbG8="}`)
		expectStatus(t, w, http.StatusCreated)
		if strings.Contains(w.Body.String(), "SGVsbG8=") {
			t.Fatalf("content leaked: %s", w.Body.String())
		}
	})

	t.Run("list filters", func(t *testing.T) {
		r, uc := newDocumentoRouter(t)
		uc.EXPECT().List(gomock.Any(), usecase.DocumentoFilter{TrabajoID: "t-1"}).Return([]entities.Documento{{ID: "d-1"}}, nil)
		expectStatus(t, doRequest(r, http.MethodGet, "/v1/documentos?trabajoId=t-1", ""), http.StatusOK)
	})

	t.Run("get", func(t *testing.T) {
		r, uc := newDocumentoRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Documento{ID: "d-1"}, nil)
		expectStatus(t, doRequest(r, http.MethodGet, "/v1/documentos/d-1", ""), http.StatusOK)
	})

	t.Run("download", func(t *testing.T) {
		r, uc := newDocumentoRouter(t)
		uc.EXPECT().Download(gomock.Any(), "d-1").Return(entities.Documento{ID: "d-1", Nombre: "a.pdf", TipoMime: "application/pdf"}, []byte("Hello"), nil)
		w := doRequest(r, http.MethodGet, "/v1/documentos/d-1/archivo", "")
		expectStatus(t, w, http.StatusOK)
		if w.Body.String() != "Hello" || w.Header().Get("Content-Type") != "application/pdf" {
			t.Fatalf("unexpected response %q %q", w.Body.String(), w.Header().Get("Content-Type"))
		}
		if !strings.Contains(w.Header().Get("Content-Disposition"), `filename="a.pdf"`) {
			t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		r, uc := newDocumentoRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "d-9").Return(entities.ErrDocumentoNotFound)
		expectStatus(t, doRequest(r, http.MethodDelete, "/v1/documentos/d-9", ""), http.StatusNotFound)
	})
}
