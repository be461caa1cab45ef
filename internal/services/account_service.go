package services

import (
	"context"
	errs "errors"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/rafabene/blog-backend/internal/domain/entities"
	"github.com/rafabene/blog-backend/internal/domain/errors"
	"github.com/rafabene/blog-backend/internal/domain/ports"
	"github.com/rafabene/blog-backend/internal/domain/repositories"
	"github.com/rafabene/blog-backend/internal/domain/valueobjects"
)

// AccountService contém a lógica de cadastro, login e atualização de usuários
type AccountService struct {
	userRepo repositories.UserRepository
	uow      ports.UnitOfWork
	hasher   ports.PasswordHasher
	logger   ports.Logger

	dummyOnce sync.Once
	dummyHash string
}

// NewAccountService cria um novo AccountService
func NewAccountService(
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	hasher ports.PasswordHasher,
	logger ports.Logger,
) *AccountService {
	return &AccountService{
		userRepo: userRepo,
		uow:      uow,
		hasher:   hasher,
		logger:   logger,
	}
}

// RegisterInput representa os dados para cadastrar um usuário
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Validate exige os três campos após normalização
func (in RegisterInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Email, validation.Required),
		validation.Field(&in.Password, validation.Required),
	)
}

// LoginInput representa as credenciais de login
type LoginInput struct {
	Name     string
	Password string
}

// Validate exige nome e senha
func (in LoginInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Password, validation.Required),
	)
}

// UpdateUserInput contém os campos opcionais da atualização.
// String vazia significa "não informado".
type UpdateUserInput struct {
	Name     string
	Email    string
	Password string
}

// Register cadastra um novo usuário
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = valueobjects.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, errors.ErrRegisterFieldsRequired
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrRegisterFieldsRequired
	}

	// Pré-checagem: evita o custo do bcrypt quando já existe conflito.
	// A garantia real é o índice único, verificado no commit.
	exists, err := s.userRepo.ExistsByNameOrEmail(ctx, input.Name, email.String())
	if err != nil {
		return nil, errors.Persistence(errors.MsgStoreFailed, err)
	}
	if exists {
		return nil, errors.ErrUserAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Persistence(errors.MsgStoreFailed, err)
	}

	user := &entities.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.userRepo.Create(txCtx, user)
	})
	if err != nil {
		s.logger.Warn("register failed", "name", input.Name, "error", err)
		return nil, translateStoreError(err, errors.ErrUserAlreadyExists, nil, errors.MsgStoreFailed)
	}

	s.logger.Info("user registered", "user_id", user.ID, "name", user.Name)
	return user, nil
}

// Login verifica credenciais. Usuário inexistente e senha errada
// retornam exatamente o mesmo erro.
func (s *AccountService) Login(ctx context.Context, input LoginInput) (*entities.User, error) {
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return nil, errors.ErrLoginFieldsRequired
	}

	user, err := s.userRepo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, errors.Persistence(errors.MsgStoreFailed, err)
	}

	if user == nil {
		// Mesmo custo de bcrypt do caminho com usuário existente
		s.hasher.Verify(s.getDummyHash(), input.Password)
		s.logger.Info("login rejected", "name", input.Name)
		return nil, errors.ErrInvalidCredentials
	}

	if !s.hasher.Verify(user.PasswordHash, input.Password) {
		s.logger.Info("login rejected", "name", input.Name)
		return nil, errors.ErrInvalidCredentials
	}

	s.logger.Info("login succeeded", "user_id", user.ID)
	return user, nil
}

// GetUser busca um usuário por ID
func (s *AccountService) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Persistence(errors.MsgStoreFailed, err)
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// UpdateUser atualiza nome, email e/ou senha em uma única transação.
// Não há checagem de quem está pedindo a alteração.
func (s *AccountService) UpdateUser(ctx context.Context, id uint, input UpdateUserInput) (*entities.User, error) {
	// Existência antes do bcrypt: id desconhecido não paga o hash
	if _, err := s.GetUser(ctx, id); err != nil {
		return nil, err
	}

	// Hash fora da transação para não segurar a conexão durante o bcrypt
	var newHash string
	if input.Password != "" {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, errors.Persistence(errors.MsgUpdateUserFailed, err)
		}
		newHash = hash
	}

	var updated *entities.User
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return errors.ErrUserNotFound
		}

		if input.Name != "" && input.Name != user.Name {
			other, err := s.userRepo.FindByName(txCtx, input.Name)
			if err != nil {
				return err
			}
			if other != nil && other.ID != user.ID {
				return errors.ErrNameTaken
			}
			user.Rename(input.Name)
		}

		if email, err := valueobjects.NewEmail(input.Email); err == nil && !email.Equals(user.Email) {
			other, err := s.userRepo.FindByEmail(txCtx, email.String())
			if err != nil {
				return err
			}
			if other != nil && other.ID != user.ID {
				return errors.ErrEmailTaken
			}
			user.ChangeEmail(email)
		}

		if newHash != "" {
			user.ChangePasswordHash(newHash)
		}

		if err := s.userRepo.Update(txCtx, user); err != nil {
			if errs.Is(err, repositories.ErrNotFound) {
				return errors.ErrUserNotFound
			}
			return err
		}

		updated = user
		return nil
	})
	if err != nil {
		s.logger.Warn("update user failed", "user_id", id, "error", err)
		return nil, translateStoreError(err, errors.ErrUserAlreadyExists, nil, errors.MsgUpdateUserFailed)
	}

	s.logger.Info("user updated", "user_id", updated.ID)
	return updated, nil
}

func (s *AccountService) getDummyHash() string {
	s.dummyOnce.Do(func() {
		// Falha aqui só deixa o caminho "usuário inexistente" mais rápido
		s.dummyHash, _ = s.hasher.Hash("dummy-password-for-timing")
	})
	return s.dummyHash
}
