package permission

import (
	"context"
	"errors"
	"testing"

	"consorcio_crm/internal/domain/entities"
	mock_interfaces "consorcio_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPerfilGate_CanPerform(t *testing.T) {
	newGate := func(t *testing.T) (*PerfilGate, *mock_interfaces.MockIUsuarioRepository) {
		ctrl := gomock.NewController(t)
		usuarios := mock_interfaces.NewMockIUsuarioRepository(ctrl)
		return NewPerfilGate(usuarios), usuarios
	}

	t.Run("unknown usuario is denied", func(t *testing.T) {
		gate, usuarios := newGate(t)
		usuarios.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.Usuario{}, nil)

		ok, err := gate.CanPerform(context.Background(), "user-1", entities.PermissaoBeneficiosCriar)
		if err != nil || ok {
			t.Fatalf("expected deny, got %v %v", ok, err)
		}
	})

	t.Run("inactive usuario is denied even as admin", func(t *testing.T) {
		gate, usuarios := newGate(t)
		usuarios.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.Usuario{
			ID: "user-1", Perfil: entities.PerfilAdmin, Ativo: false,
		}, nil)

		ok, err := gate.CanPerform(context.Background(), "user-1", entities.PermissaoBeneficiosCriar)
		if err != nil || ok {
			t.Fatalf("expected deny, got %v %v", ok, err)
		}
	})

	t.Run("admin perfil is allowed everything", func(t *testing.T) {
		gate, usuarios := newGate(t)
		usuarios.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.Usuario{
			ID: "user-1", Perfil: entities.PerfilAdmin, Ativo: true,
		}, nil)

		ok, err := gate.CanPerform(context.Background(), "user-1", "qualquer.coisa")
		if err != nil || !ok {
			t.Fatalf("expected allow, got %v %v", ok, err)
		}
	})

	t.Run("perfil with the code is allowed", func(t *testing.T) {
		gate, usuarios := newGate(t)
		usuarios.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.Usuario{
			ID: "user-1", Perfil: "representante", Ativo: true,
			Permissoes: []string{entities.PermissaoBeneficiosCriar},
		}, nil)

		ok, err := gate.CanPerform(context.Background(), "user-1", entities.PermissaoBeneficiosCriar)
		if err != nil || !ok {
			t.Fatalf("expected allow, got %v %v", ok, err)
		}
	})

	t.Run("perfil without the code is denied", func(t *testing.T) {
		gate, usuarios := newGate(t)
		usuarios.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.Usuario{
			ID: "user-1", Perfil: "representante", Ativo: true,
			Permissoes: []string{entities.PermissaoBeneficiosCriar},
		}, nil)

		ok, err := gate.CanPerform(context.Background(), "user-1", entities.PermissaoBeneficiosAlterarStatus)
		if err != nil || ok {
			t.Fatalf("expected deny, got %v %v", ok, err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		gate, usuarios := newGate(t)
		usuarios.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.Usuario{}, errors.New("db"))

		_, err := gate.CanPerform(context.Background(), "user-1", entities.PermissaoBeneficiosCriar)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
