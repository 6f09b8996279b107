package service

import (
	"context"
	"testing"

	"comidapp/internal/apierror"
	"comidapp/internal/config"
	"comidapp/internal/dto"
	"comidapp/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authFixture() (AuthService, *stubUsuarioRepo, *stubRolRepo) {
	usuarioRepo := newStubUsuarioRepo()
	rolRepo := newStubRolRepo()
	rolRepo.seed(model.RolCliente)
	rolRepo.seed(model.RolAdministrador)
	cfg := &config.Config{JWTSecret: "secreto-de-pruebas", JWTExpirationHours: 24}
	svc := NewAuthService(usuarioRepo, rolRepo, newStubClienteRepo(), nil, cfg)
	return svc, usuarioRepo, rolRepo
}

func registroCliente() dto.RegistroRequest {
	return dto.RegistroRequest{
		NombreUsuario: "anaperez",
		Email:         "ana@comidapp.test",
		Password:      "contrasena123",
		Rol:           model.RolCliente,
		Nombre:        "Ana",
		Apellido:      "Perez",
	}
}

func TestRegistro_ClienteCreaPerfilVinculado(t *testing.T) {
	svc, usuarioRepo, _ := authFixture()

	resp, err := svc.Registro(context.Background(), registroCliente())
	require.NoError(t, err)
	require.NotNil(t, resp.ClienteID)
	assert.Equal(t, model.RolCliente, resp.Rol)
	assert.True(t, resp.Estado)

	user, err := usuarioRepo.ObtenerPorNombreUsuario(context.Background(), "anaperez")
	require.NoError(t, err)
	require.NotNil(t, user.ClienteID)
	assert.Equal(t, *resp.ClienteID, user.ClienteID.String())
	// password never stored in clear
	assert.NotEqual(t, "contrasena123", user.PasswordHash)
}

func TestRegistro_ClienteSinNombre(t *testing.T) {
	svc, _, _ := authFixture()

	req := registroCliente()
	req.Apellido = ""
	_, err := svc.Registro(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}

func TestRegistro_RolInexistente(t *testing.T) {
	svc, _, _ := authFixture()

	req := registroCliente()
	req.Rol = "superheroe"
	_, err := svc.Registro(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}

func TestRegistro_NombreUsuarioDuplicado(t *testing.T) {
	svc, _, _ := authFixture()

	_, err := svc.Registro(context.Background(), registroCliente())
	require.NoError(t, err)

	_, err = svc.Registro(context.Background(), registroCliente())
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

func TestLogin_TokenIncluyeClienteID(t *testing.T) {
	svc, usuarioRepo, rolRepo := authFixture()

	_, err := svc.Registro(context.Background(), registroCliente())
	require.NoError(t, err)

	// the stub does not preload the rol association
	user, err := usuarioRepo.ObtenerPorNombreUsuario(context.Background(), "anaperez")
	require.NoError(t, err)
	rol, err := rolRepo.ObtenerPorNombre(context.Background(), model.RolCliente)
	require.NoError(t, err)
	user.Rol = rol

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		NombreUsuario: "anaperez", Password: "contrasena123",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 24*3600, resp.ExpiresIn)

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("secreto-de-pruebas"), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "anaperez", claims["usuario"])
	assert.Equal(t, model.RolCliente, claims["rol"])
	assert.Equal(t, user.ClienteID.String(), claims["cliente_id"])
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	svc, _, _ := authFixture()

	_, err := svc.Registro(context.Background(), registroCliente())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		NombreUsuario: "anaperez", Password: "otracosa",
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindUnauthorized, apierror.KindOf(err))
}

func TestLogin_UsuarioDesactivado(t *testing.T) {
	svc, usuarioRepo, _ := authFixture()

	_, err := svc.Registro(context.Background(), registroCliente())
	require.NoError(t, err)
	user, err := usuarioRepo.ObtenerPorNombreUsuario(context.Background(), "anaperez")
	require.NoError(t, err)
	require.NoError(t, usuarioRepo.Desactivar(context.Background(), user.ID))

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		NombreUsuario: "anaperez", Password: "contrasena123",
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindUnauthorized, apierror.KindOf(err))
}
