package data

import (
	"context"
	"errors"
	"fmt"

	"cinemadia/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepo struct {
	data *Data
	log  *log.Helper
}

// NewUserRepo creates a new user and profile repository
func NewUserRepo(data *Data, logger log.Logger) biz.UserRepo {
	return &userRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *userRepo) CreateUser(ctx context.Context, user *biz.User) error {
	row := &User{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		PasswordHash: user.PasswordHash,
	}
	if err := r.data.DB(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return biz.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.DateJoined = row.DateJoined
	return nil
}

func (r *userRepo) GetUser(ctx context.Context, id string) (*biz.User, error) {
	var row User
	if err := r.data.DB(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, userError(err)
	}
	return modelToUser(&row), nil
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*biz.User, error) {
	var row User
	if err := r.data.DB(ctx).Where("username = ?", username).First(&row).Error; err != nil {
		return nil, userError(err)
	}
	return modelToUser(&row), nil
}

func (r *userRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.data.DB(ctx).Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return count > 0, nil
}

func (r *userRepo) CreateProfile(ctx context.Context, profile *biz.Profile) error {
	row := profileToModel(profile)
	if err := r.data.DB(ctx).Omit("User").Create(row).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	profile.CreatedAt = row.CreatedAt
	return nil
}

func (r *userRepo) GetOrCreateProfile(ctx context.Context, userID string) (*biz.Profile, error) {
	db := r.data.DB(ctx)
	err := db.Omit("User").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&UserProfile{UserID: userID}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, biz.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	var row UserProfile
	if err := db.Where("user_id = ?", userID).First(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return modelToProfile(&row), nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, profile *biz.Profile) error {
	err := r.data.DB(ctx).Model(&UserProfile{}).Where("user_id = ?", profile.UserID).Updates(map[string]interface{}{
		"bio":             profile.Bio,
		"avatar":          profile.Avatar,
		"birth_date":      profile.BirthDate,
		"favorite_genres": profile.FavoriteGenres,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

func userError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return biz.ErrUserNotFound
	}
	return fmt.Errorf("failed to get user: %w", err)
}

func modelToUser(row *User) *biz.User {
	return &biz.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		PasswordHash: row.PasswordHash,
		DateJoined:   row.DateJoined,
	}
}

func profileToModel(p *biz.Profile) *UserProfile {
	return &UserProfile{
		UserID:         p.UserID,
		Bio:            p.Bio,
		Avatar:         p.Avatar,
		BirthDate:      p.BirthDate,
		FavoriteGenres: p.FavoriteGenres,
	}
}

func modelToProfile(row *UserProfile) *biz.Profile {
	return &biz.Profile{
		UserID:         row.UserID,
		Bio:            row.Bio,
		Avatar:         row.Avatar,
		BirthDate:      row.BirthDate,
		FavoriteGenres: row.FavoriteGenres,
		CreatedAt:      row.CreatedAt,
	}
}
