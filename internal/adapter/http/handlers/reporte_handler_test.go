package handlers

import (
	"net/http"
	"testing"

	"gestion_oficina/internal/adapter/http/handlers/mocks"

	"go.uber.org/mock/gomock"
)

func TestReporteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIReportUseCase(ctrl)
	h := NewReporteHandler(uc, quietLogger())

	r := newTestRouter()
	r.GET("/v1/reportes/vencimientos.xlsx", h.VencimientosReport)
	r.GET("/v1/reportes/deudas.xlsx", h.DeudasReport)

	uc.EXPECT().VencimientosWorkbook(gomock.Any(), 0).Return([]byte("PK-vencimientos"), nil)
	uc.EXPECT().VencimientosWorkbook(gomock.Any(), 14).Return([]byte("PK-vencimientos"), nil)
	uc.EXPECT().DeudasWorkbook(gomock.Any()).Return([]byte("PK-deudas"), nil)

	w := doRequest(r, http.MethodGet, "/v1/reportes/vencimientos.xlsx", "")
	expectStatus(t, w, http.StatusOK)
	if w.Header().Get("Content-Type") != xlsxContentType {
		t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
	}
	expectStatus(t, doRequest(r, http.MethodGet, "/v1/reportes/vencimientos.xlsx?horizonte=14", ""), http.StatusOK)
	expectStatus(t, doRequest(r, http.MethodGet, "/v1/reportes/vencimientos.xlsx?horizonte=x", ""), http.StatusBadRequest)

	w = doRequest(r, http.MethodGet, "/v1/reportes/deudas.xlsx", "")
	expectStatus(t, w, http.StatusOK)
	if w.Body.String() != "PK-deudas" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}
