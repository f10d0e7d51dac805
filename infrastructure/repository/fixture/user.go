package fixture

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/inventory-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Users devolve a equipe padrão, um usuário por papel, sem hash de senha
func Users() []*domain.User {
	createdAt := date(2025, time.July, 1)

	return []*domain.User{
		{ID: 1, Name: "Sayan", Lastname: "Director", Email: "sayan@donezo.kz", Active: true, RoleID: 1, CreatedAt: createdAt, UpdatedAt: createdAt},
		{ID: 2, Name: "Aigerim", Lastname: "Manager", Email: "aigerim@donezo.kz", Active: true, RoleID: 2, CreatedAt: createdAt, UpdatedAt: createdAt},
		{ID: 3, Name: "Nurlan", Lastname: "Packer", Email: "nurlan@donezo.kz", Active: true, RoleID: 3, CreatedAt: createdAt, UpdatedAt: createdAt},
		{ID: 4, Name: "Daniyar", Lastname: "Courier", Email: "daniyar@donezo.kz", Active: true, RoleID: 4, CreatedAt: createdAt, UpdatedAt: createdAt},
	}
}

type userRepository struct {
	byEmail map[string]*domain.User
	byID    map[int]*domain.User
}

// NewUserRepository cria a equipe padrão com a mesma senha para todos os usuários
func NewUserRepository(password string) (repository.UserRepository, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar hash da senha padrão: %w", err)
	}

	repo := &userRepository{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[int]*domain.User),
	}
	for _, user := range Users() {
		user.PasswordHash = string(hash)
		repo.byEmail[strings.ToLower(user.Email)] = user
		repo.byID[user.ID] = user
	}

	return repo, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return copyUser(r.byEmail[strings.ToLower(email)]), nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return copyUser(r.byID[userID]), nil
}

func copyUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	cp := *user
	return &cp
}
