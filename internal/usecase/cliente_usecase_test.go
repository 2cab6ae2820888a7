package usecase

import (
	"context"
	"errors"
	"testing"

	"gestion_oficina/internal/domain/entities"
	mock_interfaces "gestion_oficina/internal/usecase/interfaces/mocks"
	"gestion_oficina/pkg/clock"

	"go.uber.org/mock/gomock"
)

func TestClienteUseCase_Create_Validations(t *testing.T) {
	ctx := context.Background()
	env := newOfficeEnv(t)

	cases := []struct {
		name  string
		in    ClienteInput
		field string
	}{
		{"nombre too short", ClienteInput{Nombre: "A"}, "nombre"},
		{"invalid email", ClienteInput{Nombre: "Ana", Email: "ana-at-example"}, "email"},
		{"invalid telefono", ClienteInput{Nombre: "Ana", Telefono: "12"}, "telefono"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.clientes.Create(ctx, tc.in)
			var verr *entities.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected field %s, got %s", tc.field, verr.Field)
			}
			if !errors.Is(err, entities.ErrValidation) {
				t.Fatalf("expected ErrValidation category")
			}
		})
	}

	t.Run("normalizes telefono and starts active", func(t *testing.T) {
		c, err := env.clientes.Create(ctx, ClienteInput{Nombre: "  Ana Pérez ", Email: "ana@example.com", Telefono: "+1 650-253-0000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Nombre != "Ana Pérez" || c.Telefono != "+16502530000" {
			t.Fatalf("unexpected cliente: %+v", c)
		}
		if !c.Activo || !c.DeudaTotalActual.IsZero() || c.Version != 1 {
			t.Fatalf("unexpected initial state: %+v", c)
		}
	})
}

func TestClienteUseCase_Deactivate(t *testing.T) {
	ctx := context.Background()
	env := newOfficeEnv(t)
	c := env.cliente(t, "Marta Quiroga")
	tr := env.trabajo(t, c.ID, "Sucesión", "100")

	ok, err := env.clientes.CanDeactivate(ctx, c.ID)
	if err != nil || ok {
		t.Fatalf("expected CanDeactivate false, got %v, %v", ok, err)
	}
	if _, err := env.clientes.Deactivate(ctx, c.ID); !errors.Is(err, entities.ErrClienteHasActiveTrabajos) {
		t.Fatalf("expected ErrClienteHasActiveTrabajos, got %v", err)
	}

	if _, err := env.trabajos.ChangeEstado(ctx, tr.ID, entities.EstadoTrabajoCompletado); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := env.clientes.Deactivate(ctx, c.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Activo {
		t.Fatalf("expected cliente to be inactive")
	}
	assertDecimal(t, "deuda kept", got.DeudaTotalActual, "100")

	if _, err := env.trabajos.Create(ctx, TrabajoInput{ClienteID: c.ID, Titulo: "Nuevo", PresupuestoInicial: dec("10")}); !errors.Is(err, entities.ErrClienteInactive) {
		t.Fatalf("expected ErrClienteInactive, got %v", err)
	}

	got, err = env.clientes.Activate(ctx, c.ID)
	if err != nil || !got.Activo {
		t.Fatalf("expected reactivation, got %+v, %v", got, err)
	}
}

func TestClienteUseCase_List(t *testing.T) {
	ctx := context.Background()
	env := newOfficeEnv(t)
	env.cliente(t, "Nora Blanco")
	inactive := env.cliente(t, "Oscar Negro")
	if _, err := env.clientes.Deactivate(ctx, inactive.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	activo := true
	got, err := env.clientes.List(ctx, ClienteFilter{Activo: &activo})
	if err != nil || len(got) != 1 || got[0].Nombre != "Nora Blanco" {
		t.Fatalf("unexpected active list: %+v, %v", got, err)
	}
	got, err = env.clientes.List(ctx, ClienteFilter{Q: "NEGRO"})
	if err != nil || len(got) != 1 || got[0].ID != inactive.ID {
		t.Fatalf("unexpected search result: %+v, %v", got, err)
	}
}

func TestClienteUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewClienteUseCase(nil, nil, nil, clock.NewReal(), "AR", quietLogger())
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidClienteID) {
			t.Fatalf("expected ErrInvalidClienteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo, nil, nil, clock.NewReal(), "AR", quietLogger())

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Cliente{}, nil)

		if _, err := uc.GetByID(context.Background(), "c-1"); !errors.Is(err, entities.ErrClienteNotFound) {
			t.Fatalf("expected ErrClienteNotFound, got %v", err)
		}
	})

	t.Run("update retries on version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo, nil, nil, clock.NewReal(), "AR", quietLogger())

		stored := entities.Cliente{ID: "c-1", Nombre: "Pablo", Activo: true, Version: 3}
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(stored, nil).Times(2)
		gomock.InOrder(
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Cliente{}, entities.ErrVersionConflict),
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Cliente) (entities.Cliente, error) {
				if c.Version != 4 || c.Nombre != "Pablo Ortega" {
					t.Fatalf("unexpected update: %+v", c)
				}
				return c, nil
			}),
		)

		got, err := uc.Update(context.Background(), "c-1", ClienteInput{Nombre: "Pablo Ortega"})
		if err != nil || got.Nombre != "Pablo Ortega" {
			t.Fatalf("unexpected result: %+v, %v", got, err)
		}
	})
}
