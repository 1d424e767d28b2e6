package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/countries-explorer/internal/client/storage"
	"github.com/iudanet/countries-explorer/internal/crypto"
	"github.com/iudanet/countries-explorer/internal/validation"
)

// Store keys. The layout is inherited from the original explorer:
// one key with all registered users, one fixed session key, and one
// favorites key per username derived by concatenation.
const (
	usersKey           = "users"
	sessionKey         = "countries_app_user"
	favoritesKeyPrefix = "favorites_"
)

// TokenService issues and validates session tokens
type TokenService interface {
	Issue(ctx context.Context, username string) (string, error)
	Validate(ctx context.Context, token string) (string, error)
}

// UserInfo is the public identity of a user. The password hash never
// leaves the service.
type UserInfo struct {
	Username string `json:"username"`
}

// userRecord представляет учетную запись в хранилище
// Записи создаются при регистрации и никогда не обновляются и не удаляются
type userRecord struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// sessionRecord представляет текущую сессию в хранилище
// Отсутствие записи означает анонимного пользователя
type sessionRecord struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Service simulates backend authentication and per-user favorites
// entirely on top of the local key-value store. There are no network
// calls: the store is the only collaborator besides the token service.
type Service struct {
	store  storage.KV
	tokens TokenService
}

// NewService creates a new session/favorites service
func NewService(store storage.KV, tokens TokenService) *Service {
	return &Service{
		store:  store,
		tokens: tokens,
	}
}

// Register создает нового пользователя
// Возвращает ErrDuplicateUser если username уже занят (точное совпадение)
func (s *Service) Register(ctx context.Context, username, password string) (*UserInfo, error) {
	// Валидация входных данных
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	// Уникальность username проверяется только здесь
	for i := range users {
		if users[i].Username == username {
			return nil, ErrDuplicateUser
		}
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	users = append(users, userRecord{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})

	if err := s.saveUsers(ctx, users); err != nil {
		return nil, err
	}

	return &UserInfo{Username: username}, nil
}

// Login проверяет учетные данные и создает сессию
// Возвращает ErrInvalidCredentials если пара username/password не подходит
func (s *Service) Login(ctx context.Context, username, password string) (*UserInfo, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	var user *userRecord
	for i := range users {
		if users[i].Username == username {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := crypto.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	// Выпускаем токен и сохраняем сессию под фиксированным ключом
	token, err := s.tokens.Issue(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	record := sessionRecord{Username: username, Token: token}
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.store.Set(ctx, sessionKey, data); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &UserInfo{Username: username}, nil
}

// Logout удаляет текущую сессию
// Идемпотентен: повторный вызов без активной сессии не является ошибкой
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, sessionKey); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CurrentUser возвращает текущего пользователя или nil для анонимного.
// Отсутствующая, просроченная или поврежденная сессия трактуется как
// анонимный пользователь; ошибка возвращается только при отказе хранилища.
func (s *Service) CurrentUser(ctx context.Context) (*UserInfo, error) {
	data, err := s.store.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var record sessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, nil
	}

	// Username берем из подписанного токена, а не из записи
	username, err := s.tokens.Validate(ctx, record.Token)
	if err != nil {
		return nil, nil
	}

	return &UserInfo{Username: username}, nil
}

// IsAuthenticated reports whether a valid session exists
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// loadUsers загружает список пользователей
// Отсутствие ключа означает пустой список (первый запуск)
func (s *Service) loadUsers(ctx context.Context) ([]userRecord, error) {
	data, err := s.store.Get(ctx, usersKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	var users []userRecord
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal users: %w", err)
	}

	return users, nil
}

// saveUsers сохраняет список пользователей
func (s *Service) saveUsers(ctx context.Context, users []userRecord) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}

	if err := s.store.Set(ctx, usersKey, data); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}

	return nil
}
