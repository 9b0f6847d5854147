package service

import (
	"StudyArchive/internal/model"
	"StudyArchive/internal/passcrypt"
	"StudyArchive/internal/repo"
	"context"
	"errors"

	"gorm.io/gorm"
)

// Ошибки аутентификации. Хендлеры мапят их на HTTP-статусы.
var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	ErrUserNotFound  = errors.New("username not found")
	ErrBadPassword   = errors.New("incorrect password")
)

// UserService инкапсулирует регистрацию и вход.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register проверяет уникальность имени и email, шифрует пароль
// и создаёт пользователя. Открытый пароль нигде не сохраняется.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	taken, err := s.repo.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	ct, err := passcrypt.Encrypt(password)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateUser(ctx, &model.User{Username: username, Email: email, Password: ct})
}

// Login находит пользователя, расшифровывает сохранённый шифртекст
// и сравнивает с предъявленным паролем точным сравнением строк.
// Сбой расшифровки неотличим снаружи от неверного пароля.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	plain, err := passcrypt.Decrypt(u.Password)
	if err != nil || plain != password {
		return nil, ErrBadPassword
	}
	return u, nil
}

// UsernameExists проверяет занятость имени пользователя.
func (s *UserService) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.repo.UsernameExists(ctx, username)
}

// EmailExists проверяет занятость email.
func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.repo.EmailExists(ctx, email)
}
