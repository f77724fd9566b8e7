package authenticating

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/bsocial/adhub-api/infrastructure/repository"
	"github.com/bsocial/adhub-api/internal/config"
	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/authenticator_mock.go -package=mocks

type Authenticator interface {
	CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.CreateUserResponse, error)
	DeleteUser(ctx context.Context, requesterID, userID string) error
	ListUsers(ctx context.Context) ([]*domain.User, error)
	LoginUser(ctx context.Context, email, password string) (*domain.LoginResponse, error)
	GetUserProfile(ctx context.Context, userID string) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	UpdateUserConfig(ctx context.Context, userID string, cfg domain.UserConfig) error
	SetUserActive(ctx context.Context, requesterID, userID string, active bool) error
}

type Service struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	cfg         *config.Config
	now         func() time.Time
}

func NewService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, cfg *config.Config) *Service {
	return &Service{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		cfg:         cfg,
		now:         time.Now,
	}
}

// CreateUser cadastra credenciais e perfil. Sem senha informada, uma senha forte é gerada
// e devolvida uma única vez na resposta.
func (s *Service) CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.CreateUserResponse, error) {
	email := handleEmail(req.Email)
	if email == "" || strings.TrimSpace(req.FullName) == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e nome são obrigatórios")
	}

	if req.Role == "" {
		req.Role = domain.RoleClient
	}
	if req.Role != domain.RoleClient && req.Role != domain.RoleAdmin {
		return nil, NewAuthError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, fmt.Sprintf("papel desconhecido: %s", req.Role))
	}

	if err := ValidateConfig(req.Config); err != nil {
		return nil, err
	}

	response := &domain.CreateUserResponse{}

	password := req.Password
	if password == "" {
		generated, err := generateStrongPassword(12)
		if err != nil {
			return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar senha")
		}
		password = generated
		response.GeneratedPassword = generated
	} else if err := s.ValidatePasswordStrength(password); err != nil {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidRequest, err.Error())
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao processar senha")
	}

	user, err := s.userRepo.CreateUser(ctx, &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: string(hashedPassword),
		Role:         req.Role,
		Active:       true,
		Config:       req.Config,
	})
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	user.PasswordHash = ""
	response.User = user

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("Usuário criado")

	return response, nil
}

func (s *Service) DeleteUser(ctx context.Context, requesterID, userID string) error {
	if userID == "" {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID do usuário é obrigatório")
	}
	if requesterID == userID {
		return NewUserAuthError(ErrSelfDeletion, apiErrors.ErrInvalidRequest, userID, "")
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
		}
		return NewUserAuthError(err, apiErrors.ErrDatabaseOperation, userID, "Erro ao remover usuário")
	}

	return nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários")
	}

	return users, nil
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	// Validação de entrada
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Usuário ou senha incorretos")
	}

	if !user.Active {
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Usuário ou senha incorretos")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	user.PasswordHash = ""
	return &domain.LoginResponse{Token: token, User: *user}, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
		}
		logrus.Error(err)
		return nil, NewUserAuthError(err, apiErrors.ErrDatabaseOperation, userID, "Erro ao consultar usuário")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) UpdateUserConfig(ctx context.Context, userID string, cfg domain.UserConfig) error {
	if err := ValidateConfig(cfg); err != nil {
		return err
	}

	return s.updateProfile(userID, s.profileRepo.UpdateConfig(ctx, userID, cfg))
}

func (s *Service) SetUserActive(ctx context.Context, requesterID, userID string, active bool) error {
	if !active && requesterID == userID {
		return NewUserAuthError(ErrSelfDeletion, apiErrors.ErrInvalidRequest, userID, "não é possível desativar o próprio usuário")
	}

	return s.updateProfile(userID, s.profileRepo.SetActive(ctx, userID, active))
}

func (s *Service) updateProfile(userID string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
	}
	return NewUserAuthError(err, apiErrors.ErrDatabaseOperation, userID, "Erro ao atualizar perfil")
}

var knownFeatures = map[domain.Feature]bool{
	domain.FeatureDashboard: true,
	domain.FeatureCampaigns: true,
	domain.FeatureCreatives: true,
	domain.FeatureAILab:     true,
	domain.FeatureAdmin:     true,
}

// ValidateConfig rejeita multiplicadores, intervalos e funcionalidades inválidos.
func ValidateConfig(cfg domain.UserConfig) error {
	if cfg.SpendMultiplier < 0 {
		return NewAuthError(ErrInvalidConfig, apiErrors.ErrInvalidRequest, "spend_multiplier não pode ser negativo")
	}
	if cfg.RefreshInterval < 0 {
		return NewAuthError(ErrInvalidConfig, apiErrors.ErrInvalidRequest, "refresh_interval não pode ser negativo")
	}
	for _, f := range cfg.AllowedFeatures {
		if !knownFeatures[f] {
			return NewAuthError(ErrInvalidConfig, apiErrors.ErrInvalidRequest, fmt.Sprintf("funcionalidade desconhecida: %s", f))
		}
	}

	start, end := cfg.FixedDateStart, cfg.FixedDateEnd
	if (start == nil) != (end == nil) {
		return NewAuthError(ErrInvalidConfig, apiErrors.ErrInvalidRequest, "período fixo exige início e fim")
	}
	if start != nil {
		s, err1 := time.Parse(time.DateOnly, *start)
		e, err2 := time.Parse(time.DateOnly, *end)
		if err1 != nil || err2 != nil || s.After(e) {
			return NewAuthError(ErrInvalidConfig, apiErrors.ErrInvalidRequest, "período fixo inválido")
		}
	}

	return nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	ttl := s.cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	now := s.now()
	claims := domain.Claims{
		UserID:    user.ID,
		UserEmail: user.Email,
		UserName:  user.FullName,
		UserRole:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
}

// generateStrongPassword gera uma senha forte com o comprimento especificado
// incluindo letras maiúsculas, minúsculas, números e caracteres especiais
func generateStrongPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const allChars = lowerChars + upperChars + numberChars + specialChars

	password := make([]byte, length)

	// Um caractere de cada classe, o resto aleatório
	for i, charset := range []string{lowerChars, upperChars, numberChars, specialChars} {
		c, err := getRandomChar(charset)
		if err != nil {
			return "", err
		}
		password[i] = c
	}

	for i := 4; i < length; i++ {
		c, err := getRandomChar(allChars)
		if err != nil {
			return "", err
		}
		password[i] = c
	}

	// Embaralhar a senha para que os caracteres não fiquem em ordem previsível
	for i := range password {
		j, err := randomInt(int64(len(password)))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars  = "0123456789"
	specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
)

// getRandomChar retorna um caractere aleatório do conjunto fornecido
func getRandomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// randomInt gera um número aleatório seguro entre 0 e max-1
func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

// ValidatePasswordStrength verifica se a senha atende aos requisitos de segurança
// Senha deve conter pelo menos 8 caracteres, incluindo maiúsculas, minúsculas, números e caracteres especiais
func (s *Service) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("a senha deve conter pelo menos 8 caracteres")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool

	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return errors.New("a senha deve conter pelo menos uma letra maiúscula")
	}
	if !hasLower {
		return errors.New("a senha deve conter pelo menos uma letra minúscula")
	}
	if !hasNumber {
		return errors.New("a senha deve conter pelo menos um número")
	}
	if !hasSpecial {
		return errors.New("a senha deve conter pelo menos um caractere especial")
	}

	return nil
}
