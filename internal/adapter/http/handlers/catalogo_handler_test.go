package handlers

import (
	"net/http"
	"testing"

	"gestion_oficina/internal/adapter/http/handlers/mocks"
	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCatalogoRouter(t *testing.T) (*gin.Engine, *mocks.MockICatalogoUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogoUseCase(ctrl)
	h := NewCatalogoHandler(uc, quietLogger())

	r := newTestRouter()
	r.GET("/v1/catalogos/:tipo", h.ListCatalogo)
	r.POST("/v1/catalogos/:tipo", h.CreateCatalogoEntry)
	r.DELETE("/v1/catalogos/:tipo/:id", h.DeleteCatalogoEntry)
	return r, uc
}

func TestCatalogoHandler(t *testing.T) {
	t.Run("unknown catalogo", func(t *testing.T) {
		r, uc := newCatalogoRouter(t)
		uc.EXPECT().List(gomock.Any(), entities.TipoCatalogo("colores")).Return(nil, entities.ErrUnknownCatalogo)
		expectStatus(t, doRequest(r, http.MethodGet, "/v1/catalogos/colores", ""), http.StatusBadRequest)
	})

	t.Run("create", func(t *testing.T) {
		r, uc := newCatalogoRouter(t)
		uc.EXPECT().Create(gomock.Any(), entities.CatalogoCategorias, usecase.CatalogoInput{Nombre: "Laboral", Color: "#ff0000", Orden: 2}).
			Return(entities.CatalogoEntry{ID: "cat-1", Tipo: entities.CatalogoCategorias, Nombre: "Laboral", Activo: true}, nil)
		w := doRequest(r, http.MethodPost, "/v1/catalogos/categorias", `{"nombre":"Laboral","color":"#ff0000","orden":2}`)
		expectStatus(t, w, http.StatusCreated)
	})

	t.Run("create without nombre", func(t *testing.T) {
		r, _ := newCatalogoRouter(t)
		expectStatus(t, doRequest(r, http.MethodPost, "/v1/catalogos/categorias", `{"color":"#ff0000"}`), http.StatusBadRequest)
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newCatalogoRouter(t)
		uc.EXPECT().Delete(gomock.Any(), entities.CatalogoTiposTrabajo, "tt-1").Return(nil)
		expectStatus(t, doRequest(r, http.MethodDelete, "/v1/catalogos/tiposTrabajo/tt-1", ""), http.StatusNoContent)
	})
}
