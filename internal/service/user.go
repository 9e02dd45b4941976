package service

import (
	"context"
	"fmt"

	"github.com/JRebertt/Cursos/internal/errs"
	"github.com/JRebertt/Cursos/internal/model"

	"github.com/rs/zerolog"
)

const userAlreadyExistsCode = "USER_ALREADY_EXISTS"

type UserService struct {
	users    UserStore
	activity ActivityRecorder
}

func NewUserService(users UserStore, activity ActivityRecorder) *UserService {
	return &UserService{users: users, activity: activity}
}

// CreateUser stores a user bound to sessionID. Names are unique.
func (s *UserService) CreateUser(ctx context.Context, sessionID string, payload *model.CreateUserPayload) (*model.User, error) {
	logger := zerolog.Ctx(ctx)

	exists, err := s.users.ExistsByName(ctx, payload.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		code := userAlreadyExistsCode
		return nil, errs.NewBadRequestError("User already exists", true, &code, nil)
	}

	user, err := s.users.CreateUser(ctx, payload.Name, sessionID)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.Info().
		Str("event", "user_created").
		Str("user_id", user.ID.String()).
		Msg("User created successfully")

	s.activity.Record(ctx, sessionID, model.ActivityUserCreated, &user.ID)

	return user, nil
}
