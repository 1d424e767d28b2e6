package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/iudanet/countries-explorer/internal/client/storage"
)

// Favorites are keyed by username, not by session: the set survives
// logout and is picked up again on the next login of the same user.

// AddFavorite добавляет код страны в избранное текущего пользователя
// Для анонимного пользователя ничего не делает и возвращает false
// Добавление уже имеющегося кода идемпотентно
func (s *Service) AddFavorite(ctx context.Context, code string) (bool, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}

	favorites, err := s.loadFavorites(ctx, user.Username)
	if err != nil {
		return false, err
	}

	if !slices.Contains(favorites, code) {
		favorites = append(favorites, code)
		if err := s.saveFavorites(ctx, user.Username, favorites); err != nil {
			return false, err
		}
	}

	return true, nil
}

// RemoveFavorite удаляет код страны из избранного текущего пользователя
// Для анонимного пользователя ничего не делает и возвращает false
// Удаление отсутствующего кода идемпотентно
func (s *Service) RemoveFavorite(ctx context.Context, code string) (bool, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}

	favorites, err := s.loadFavorites(ctx, user.Username)
	if err != nil {
		return false, err
	}

	favorites = slices.DeleteFunc(favorites, func(c string) bool {
		return c == code
	})

	if err := s.saveFavorites(ctx, user.Username, favorites); err != nil {
		return false, err
	}

	return true, nil
}

// Favorites возвращает избранное текущего пользователя
// Для анонимного пользователя возвращает пустой список
func (s *Service) Favorites(ctx context.Context) ([]string, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []string{}, nil
	}

	return s.loadFavorites(ctx, user.Username)
}

// favoritesKey возвращает ключ хранилища для избранного пользователя
func favoritesKey(username string) string {
	return favoritesKeyPrefix + username
}

// loadFavorites загружает избранное пользователя
// Отсутствие ключа означает пустой список
func (s *Service) loadFavorites(ctx context.Context, username string) ([]string, error) {
	data, err := s.store.Get(ctx, favoritesKey(username))
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}

	var favorites []string
	if err := json.Unmarshal(data, &favorites); err != nil {
		return nil, fmt.Errorf("failed to unmarshal favorites: %w", err)
	}

	return favorites, nil
}

// saveFavorites сохраняет избранное пользователя
func (s *Service) saveFavorites(ctx context.Context, username string, favorites []string) error {
	data, err := json.Marshal(favorites)
	if err != nil {
		return fmt.Errorf("failed to marshal favorites: %w", err)
	}

	if err := s.store.Set(ctx, favoritesKey(username), data); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}

	return nil
}
