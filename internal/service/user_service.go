package service

import (
	"context"

	"taskflow-api/internal/core/auth"
	"taskflow-api/internal/domain"
	"taskflow-api/internal/pagination"
	"taskflow-api/pkg/utils"
)

var userSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"role":      "role",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type UserService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewUserService(users domain.UserRepository, jwter *auth.JWTer) *UserService {
	return &UserService{users: users, jwter: jwter}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailInUse
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// two concurrent registrations can pass the FindByEmail check
		if isDupKey(err) {
			return nil, domain.ErrEmailInUse
		}
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues a short-lived token. Unknown email and
// wrong password fail differently on purpose (404 vs 401, matching the API
// contract).
func (s *UserService) Login(ctx context.Context, email, password string) (domain.UserView, string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return domain.UserView{}, "", err
	}
	if u == nil {
		return domain.UserView{}, "", domain.ErrUserNotFound
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return domain.UserView{}, "", domain.ErrInvalidPassword
	}

	token, err := s.jwter.Issue(auth.Payload{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
	}, s.jwter.LoginTTL)
	if err != nil {
		return domain.UserView{}, "", err
	}
	return u.View(), token, nil
}

func (s *UserService) List(ctx context.Context, opts pagination.Options, sortBy, order string) ([]domain.UserView, pagination.Meta, error) {
	users, total, err := s.users.List(ctx, opts.Offset, opts.Limit,
		sortColumn(userSortColumns, sortBy), sortOrder(order))
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	views := make([]domain.UserView, 0, len(users))
	for i := range users {
		views = append(views, users[i].View())
	}
	meta := pagination.BuildMeta(total, opts.CurrentPage, opts.Limit, len(views))
	return views, meta, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}

func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Password != nil {
		hash, err := utils.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	if err := s.users.Update(ctx, u); err != nil {
		if isDupKey(err) {
			return nil, domain.ErrEmailInUse
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	n, err := s.users.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *UserService) Search(ctx context.Context, q domain.UserSearch) ([]domain.User, int64, error) {
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
	return s.users.Search(ctx, q)
}
