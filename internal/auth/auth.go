// Package auth implements the identity provider: accounts, sessions and
// notifications when users sign in or out.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

// Observer is notified when a user signs in or out. user is nil on sign-out.
type Observer func(userID string, user *models.User)

// Options configures a Provider.
type Options struct {
	SessionTTL time.Duration    // Lifetime of a session, defaults to 30 days
	Clock      func() time.Time // Defaults to time.Now
	Cost       int              // bcrypt cost, defaults to bcrypt.DefaultCost
}

// Provider manages users and sessions in the database.
type Provider struct {
	db   *gorm.DB
	opts Options

	mu        sync.Mutex
	observers map[int]Observer
	next      int
}

func New(db *gorm.DB, opts Options) *Provider {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 30 * 24 * time.Hour
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Cost == 0 {
		opts.Cost = bcrypt.DefaultCost
	}

	return &Provider{
		db:        db,
		opts:      opts,
		observers: map[int]Observer{},
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates an account and the user's profile document.
func (p *Provider) SignUp(ctx context.Context, email, password, name string) (models.User, error) {
	email = normalizeEmail(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return models.User{}, ErrInvalidEmail
	}

	if len(password) < minPasswordLength {
		return models.User{}, ErrWeakPassword
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, ErrNameRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.opts.Cost)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    p.opts.Clock().UTC(),
	}

	err = p.db.WithContext(ctx).Create(&user).Error
	if errors.Is(err, models.ErrEmailInUse) {
		return models.User{}, ErrEmailInUse
	}
	if err != nil {
		return models.User{}, fmt.Errorf("creating user: %w", err)
	}

	log.Info().Str("user", user.ID).Msg("user signed up")
	return user, nil
}

// SignIn checks the credentials and starts a session.
func (p *Provider) SignIn(ctx context.Context, email, password string) (models.Session, models.User, error) {
	var user models.User
	err := p.db.WithContext(ctx).First(&user, "email = ?", normalizeEmail(email)).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.Session{}, models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Session{}, models.User{}, fmt.Errorf("finding user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return models.Session{}, models.User{}, ErrInvalidCredentials
	}

	now := p.opts.Clock().UTC()
	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(p.opts.SessionTTL),
		CreatedAt: now,
	}

	if err := p.db.WithContext(ctx).Create(&session).Error; err != nil {
		return models.Session{}, models.User{}, fmt.Errorf("creating session: %w", err)
	}

	p.notify(user.ID, &user)
	return session, user, nil
}

// SignOut ends the session.
func (p *Provider) SignOut(ctx context.Context, token string) error {
	session, err := p.session(ctx, token)
	if err != nil {
		return err
	}

	if err := p.db.WithContext(ctx).Delete(&session).Error; err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}

	p.notify(session.UserID, nil)
	return nil
}

// Current returns the user the session belongs to.
func (p *Provider) Current(ctx context.Context, token string) (models.User, error) {
	session, err := p.session(ctx, token)
	if err != nil {
		return models.User{}, err
	}

	if session.Expired(p.opts.Clock()) {
		if err := p.db.WithContext(ctx).Delete(&session).Error; err != nil {
			log.Error().Err(err).Msg("deleting expired session")
		}
		return models.User{}, ErrInvalidSession
	}

	var user models.User
	err = p.db.WithContext(ctx).First(&user, "id = ?", session.UserID).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.User{}, ErrInvalidSession
	}
	if err != nil {
		return models.User{}, fmt.Errorf("finding user: %w", err)
	}

	return user, nil
}

func (p *Provider) session(ctx context.Context, token string) (models.Session, error) {
	if token == "" {
		return models.Session{}, ErrInvalidSession
	}

	var session models.Session
	err := p.db.WithContext(ctx).First(&session, "token = ?", token).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.Session{}, ErrInvalidSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("finding session: %w", err)
	}

	return session, nil
}

// OnAuthStateChanged registers an observer. The returned function removes it.
func (p *Provider) OnAuthStateChanged(o Observer) (unsubscribe func()) {
	p.mu.Lock()
	id := p.next
	p.next++
	p.observers[id] = o
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.observers, id)
		p.mu.Unlock()
	}
}

func (p *Provider) notify(userID string, user *models.User) {
	p.mu.Lock()
	observers := make([]Observer, 0, len(p.observers))
	for _, o := range p.observers {
		observers = append(observers, o)
	}
	p.mu.Unlock()

	for _, o := range observers {
		o(userID, user)
	}
}
