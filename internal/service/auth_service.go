package service

import (
	"context"
	"errors"
	"time"

	"comidapp/internal/apierror"
	"comidapp/internal/config"
	"comidapp/internal/dto"
	"comidapp/internal/model"
	"comidapp/internal/repository"
	"comidapp/internal/worker"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Registro(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	ObtenerUsuario(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	DesactivarUsuario(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	usuarioRepo repository.UsuarioRepository
	rolRepo     repository.RolRepository
	clienteRepo repository.ClienteRepository
	dispatcher  *worker.Dispatcher
	cfg         *config.Config
}

func NewAuthService(
	usuarioRepo repository.UsuarioRepository,
	rolRepo repository.RolRepository,
	clienteRepo repository.ClienteRepository,
	dispatcher *worker.Dispatcher,
	cfg *config.Config,
) AuthService {
	return &authService{
		usuarioRepo: usuarioRepo,
		rolRepo:     rolRepo,
		clienteRepo: clienteRepo,
		dispatcher:  dispatcher,
		cfg:         cfg,
	}
}

// Registro creates a user. The role is resolved by name; registering with the
// "cliente" role also creates the linked Cliente profile and stores its id on
// the Usuario.
func (s *authService) Registro(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error) {
	rol, err := s.rolRepo.ObtenerPorNombre(ctx, req.Rol)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Validation("el rol indicado no existe")
		}
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	user := &model.Usuario{
		NombreUsuario: req.NombreUsuario,
		Email:         req.Email,
		PasswordHash:  string(hash),
		RolID:         rol.ID,
		Estado:        true,
	}

	if rol.Nombre == model.RolCliente {
		if req.Nombre == "" || req.Apellido == "" {
			return nil, apierror.Validation("nombre y apellido son obligatorios para el rol cliente")
		}
		cliente := &model.Cliente{
			Nombre:    req.Nombre,
			Apellido:  req.Apellido,
			Telefono:  req.Telefono,
			Email:     req.Email,
			Direccion: req.Direccion,
			Estado:    true,
		}
		if err := s.clienteRepo.Crear(ctx, cliente); err != nil {
			return nil, err
		}
		user.ClienteID = &cliente.ID
	}

	if err := s.usuarioRepo.Crear(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("el nombre de usuario o email ya esta registrado")
		}
		return nil, err
	}

	// Welcome email — best effort, never blocks registration
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
			ToEmail: req.Email,
			Subject: "Bienvenido a ComidApp",
			Body:    "Tu cuenta fue creada con exito. ¡Ya podes hacer tu primer pedido!",
		})
	}

	resp := usuarioToResponse(user, rol.Nombre)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.usuarioRepo.ObtenerPorNombreUsuario(ctx, req.NombreUsuario)
	if err != nil {
		return nil, apierror.Unauthorized("credenciales invalidas")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized("credenciales invalidas")
	}

	rolNombre := ""
	if user.Rol != nil {
		rolNombre = user.Rol.Nombre
	}

	token, err := s.generateToken(user, rolNombre)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: s.cfg.JWTExpirationHours * 3600,
		Usuario:   usuarioToResponse(user, rolNombre),
	}, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.usuarioRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i, u := range users {
		rolNombre := ""
		if u.Rol != nil {
			rolNombre = u.Rol.Nombre
		}
		resp[i] = usuarioToResponse(&u, rolNombre)
	}
	return resp, nil
}

func (s *authService) ObtenerUsuario(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error) {
	user, err := s.usuarioRepo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("usuario no encontrado")
	}
	rolNombre := ""
	if user.Rol != nil {
		rolNombre = user.Rol.Nombre
	}
	resp := usuarioToResponse(user, rolNombre)
	return &resp, nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.usuarioRepo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("usuario no encontrado")
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	rolNombre := ""
	if user.Rol != nil {
		rolNombre = user.Rol.Nombre
	}
	if req.Rol != nil {
		rol, err := s.rolRepo.ObtenerPorNombre(ctx, *req.Rol)
		if err != nil {
			return nil, apierror.Validation("el rol indicado no existe")
		}
		user.RolID = rol.ID
		rolNombre = rol.Nombre
	}
	if req.Estado != nil {
		user.Estado = *req.Estado
	}

	if err := s.usuarioRepo.Actualizar(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("el email ya esta registrado")
		}
		return nil, err
	}
	resp := usuarioToResponse(user, rolNombre)
	return &resp, nil
}

func (s *authService) DesactivarUsuario(ctx context.Context, id uuid.UUID) error {
	if _, err := s.usuarioRepo.ObtenerPorID(ctx, id); err != nil {
		return apierror.NotFound("usuario no encontrado")
	}
	return s.usuarioRepo.Desactivar(ctx, id)
}

func (s *authService) generateToken(user *model.Usuario, rolNombre string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"usuario": user.NombreUsuario,
		"rol":     rolNombre,
		"exp":     time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	if user.ClienteID != nil {
		claims["cliente_id"] = user.ClienteID.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func usuarioToResponse(u *model.Usuario, rolNombre string) dto.UsuarioResponse {
	resp := dto.UsuarioResponse{
		ID:            u.ID.String(),
		NombreUsuario: u.NombreUsuario,
		Email:         u.Email,
		Rol:           rolNombre,
		Estado:        u.Estado,
	}
	if u.ClienteID != nil {
		id := u.ClienteID.String()
		resp.ClienteID = &id
	}
	return resp
}
