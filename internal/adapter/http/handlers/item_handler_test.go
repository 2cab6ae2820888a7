package handlers

import (
	"net/http"
	"testing"

	"gestion_oficina/internal/adapter/http/handlers/mocks"
	"gestion_oficina/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newItemRouter(t *testing.T) (*gin.Engine, *mocks.MockIItemUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIItemUseCase(ctrl)
	h := NewItemHandler(uc, quietLogger())

	r := newTestRouter()
	r.PUT("/v1/items/:id", h.UpdateItem)
	r.PATCH("/v1/items/:id/estado", h.ChangeItemEstado)
	r.DELETE("/v1/items/:id", h.DeleteItem)
	return r, uc
}

func TestItemHandler(t *testing.T) {
	t.Run("update", func(t *testing.T) {
		r, uc := newItemRouter(t)
		uc.EXPECT().Update(gomock.Any(), "i-1", gomock.Any()).Return(entities.Item{ID: "i-1", Titulo: "Escrito"}, nil)
		w := doRequest(r, http.MethodPut, "/v1/items/i-1", `{"titulo":"Escrito","costoTotal":"80"}`)
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("update unknown item", func(t *testing.T) {
		r, uc := newItemRouter(t)
		uc.EXPECT().Update(gomock.Any(), "nope", gomock.Any()).Return(entities.Item{}, entities.ErrItemNotFound)
		w := doRequest(r, http.MethodPut, "/v1/items/nope", `{"titulo":"Escrito"}`)
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("estado", func(t *testing.T) {
		r, uc := newItemRouter(t)
		uc.EXPECT().ChangeEstado(gomock.Any(), "i-1", entities.EstadoItemListoRetirar).Return(entities.Item{ID: "i-1", Estado: entities.EstadoItemListoRetirar}, nil)
		w := doRequest(r, http.MethodPatch, "/v1/items/i-1/estado", `{"estado":"Listo retirar"}`)
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("delete with pagos", func(t *testing.T) {
		r, uc := newItemRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "i-1").Return(entities.ErrItemHasPagos)
		w := doRequest(r, http.MethodDelete, "/v1/items/i-1", "")
		expectStatus(t, w, http.StatusConflict)
		if decodeError(t, w).Code != "ITEM_HAS_PAGOS" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newItemRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "i-2").Return(nil)
		w := doRequest(r, http.MethodDelete, "/v1/items/i-2", "")
		expectStatus(t, w, http.StatusNoContent)
	})
}
