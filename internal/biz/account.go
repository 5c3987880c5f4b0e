package biz

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"cinemadia/internal/conf"
	"cinemadia/internal/metrics"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultSessionTTL = 14 * 24 * time.Hour
	minPasswordLength = 8
	recentActivity    = 5
)

var (
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
	avatarTypes     = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}
)

// ValidUsername reports whether s only holds letters, digits and @.+-_
func ValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// AccountUseCase handles registration, sessions and profiles
type AccountUseCase struct {
	tx         Transaction
	users      UserRepo
	sessions   SessionRepo
	library    LibraryRepo
	reviews    ReviewRepo
	history    HistoryRepo
	media      MediaStore
	sessionTTL time.Duration
	hashCost   int
	log        *log.Helper
}

// NewAccountUseCase creates a new AccountUseCase instance
func NewAccountUseCase(c *conf.Auth, tx Transaction, users UserRepo, sessions SessionRepo, library LibraryRepo, reviews ReviewRepo, history HistoryRepo, media MediaStore, logger log.Logger) *AccountUseCase {
	ttl := defaultSessionTTL
	if c != nil && c.SessionTtl.AsDuration() > 0 {
		ttl = c.SessionTtl.AsDuration()
	}
	return &AccountUseCase{
		tx:         tx,
		users:      users,
		sessions:   sessions,
		library:    library,
		reviews:    reviews,
		history:    history,
		media:      media,
		sessionTTL: ttl,
		hashCost:   bcrypt.DefaultCost,
		log:        log.NewHelper(logger),
	}
}

// Register creates the user and its profile in one transaction and opens a
// session for it.
func (uc *AccountUseCase) Register(ctx context.Context, req *RegisterRequest) (*User, *Session, error) {
	username := strings.TrimSpace(req.Username)
	if err := validateRegistration(username, req); err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password1), uc.hashCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}
	userID, err := uuid.NewV7()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate user ID: %w", err)
	}
	user := &User{
		ID:           userID.String(),
		Username:     username,
		Email:        strings.TrimSpace(req.Email),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: string(hash),
	}

	err = uc.tx.InTx(ctx, func(ctx context.Context) error {
		exists, err := uc.users.UsernameExists(ctx, username)
		if err != nil {
			return err
		}
		if exists {
			return ErrUsernameTaken
		}
		if err := uc.users.CreateUser(ctx, user); err != nil {
			return err
		}
		return uc.users.CreateProfile(ctx, &Profile{UserID: user.ID})
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to register user: %w", err)
	}

	metrics.RegistrationsTotal.Inc()
	session, err := uc.openSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

func validateRegistration(username string, req *RegisterRequest) error {
	fields := map[string]string{}
	switch {
	case username == "":
		fields["username"] = "This field is required."
	case len(username) > 150:
		fields["username"] = "Ensure this value has at most 150 characters."
	case !ValidUsername(username):
		fields["username"] = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	}
	if strings.TrimSpace(req.Email) == "" {
		fields["email"] = "This field is required."
	}
	switch {
	case req.Password1 == "":
		fields["password1"] = "This field is required."
	case len(req.Password1) < minPasswordLength:
		fields["password1"] = fmt.Sprintf("This password is too short. It must contain at least %d characters.", minPasswordLength)
	case strings.Trim(req.Password1, "0123456789") == "":
		fields["password1"] = "This password is entirely numeric."
	}
	if req.Password1 != req.Password2 {
		fields["password2"] = "The two password fields didn't match."
	}
	if len(fields) > 0 {
		return ValidationError(fields)
	}
	return nil
}

// Login checks the credentials and opens a session.
func (uc *AccountUseCase) Login(ctx context.Context, username, password string) (*User, *Session, error) {
	user, err := uc.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	session, err := uc.openSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Logout ends the session; unknown tokens are ignored.
func (uc *AccountUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return uc.sessions.DeleteSession(ctx, token)
}

// Authenticate resolves a session token to the viewer it belongs to.
func (uc *AccountUseCase) Authenticate(ctx context.Context, token string) (*Viewer, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}
	session, err := uc.sessions.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if !session.ExpiresAt.IsZero() && time.Now().After(session.ExpiresAt) {
		_ = uc.sessions.DeleteSession(ctx, token)
		return nil, ErrSessionNotFound
	}
	user, err := uc.users.GetUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return &Viewer{UserID: user.ID, Username: user.Username, Token: token}, nil
}

// SessionTTL is how long new sessions stay valid.
func (uc *AccountUseCase) SessionTTL() time.Duration {
	return uc.sessionTTL
}

func (uc *AccountUseCase) openSession(ctx context.Context, userID string) (*Session, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}
	session := &Session{
		Token:     hex.EncodeToString(buf),
		UserID:    userID,
		ExpiresAt: time.Now().Add(uc.sessionTTL),
	}
	if err := uc.sessions.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// Profile returns the user, its profile (created on first access) and an
// activity summary.
func (uc *AccountUseCase) Profile(ctx context.Context, userID string) (*ProfileOverview, error) {
	if userID == "" {
		return nil, ErrAuthenticationRequired
	}
	user, err := uc.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := uc.users.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	activity := &Activity{}
	if activity.FavoritesCount, err = uc.library.CountForUser(ctx, ListFavorites, userID); err != nil {
		return nil, err
	}
	if activity.WatchlistCount, err = uc.library.CountForUser(ctx, ListWatchlist, userID); err != nil {
		return nil, err
	}
	if activity.ReviewsCount, err = uc.reviews.CountUserReviews(ctx, userID); err != nil {
		return nil, err
	}
	if activity.RecentFavorites, err = uc.library.ListMovies(ctx, ListFavorites, userID, 0, recentActivity); err != nil {
		return nil, err
	}
	if activity.RecentWatchlist, err = uc.library.ListMovies(ctx, ListWatchlist, userID, 0, recentActivity); err != nil {
		return nil, err
	}
	if activity.RecentReviews, err = uc.reviews.ListUserReviews(ctx, userID, recentActivity); err != nil {
		return nil, err
	}
	if activity.RecentHistory, err = uc.history.ListRecent(ctx, userID, recentActivity); err != nil {
		return nil, err
	}

	return &ProfileOverview{User: user, Profile: profile, Activity: activity}, nil
}

// UpdateProfile overwrites the editable profile fields. The avatar is only
// replaced when the request carries one.
func (uc *AccountUseCase) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*Profile, error) {
	if userID == "" {
		return nil, ErrAuthenticationRequired
	}
	profile, err := uc.users.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	profile.Bio = req.Bio
	if req.Avatar != nil {
		profile.Avatar = *req.Avatar
	}
	profile.BirthDate = req.BirthDate
	profile.FavoriteGenres = req.FavoriteGenres
	if err := uc.users.UpdateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// UploadAvatar stores an image and makes it the caller's avatar.
func (uc *AccountUseCase) UploadAvatar(ctx context.Context, userID, filename string, r io.Reader) (*Profile, error) {
	if userID == "" {
		return nil, ErrAuthenticationRequired
	}
	if !avatarTypes[strings.ToLower(filepath.Ext(filename))] {
		return nil, ValidationError(map[string]string{
			"avatar": "Upload a valid image. The file you uploaded was either not an image or a corrupted image.",
		})
	}
	profile, err := uc.users.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	url, err := uc.media.Save(ctx, "avatars", filename, r)
	if err != nil {
		return nil, fmt.Errorf("failed to store avatar: %w", err)
	}
	profile.Avatar = url
	if err := uc.users.UpdateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}
