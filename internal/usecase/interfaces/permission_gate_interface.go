package interfaces

import "context"

// IPermissionGate answers "may this user perform this action". The engine
// treats it as an opaque oracle: no caching, re-checked on every request, so
// the concrete mechanism (perfil table, claims, policy engine) is swappable.
//
//go:generate mockgen -source=permission_gate_interface.go -destination=mocks/permission_gate_mock.go -package=mock_interfaces

type IPermissionGate interface {
	CanPerform(ctx context.Context, usuarioID, permissao string) (bool, error)
}
