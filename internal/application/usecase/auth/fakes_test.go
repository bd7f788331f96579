package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pitmydoro/backend/internal/application/adapter"
	"github.com/pitmydoro/backend/internal/domain/entity"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
	"github.com/pitmydoro/backend/internal/domain/valueobject"
)

// store is an in-memory account store backing the user, profile and account fakes.
type store struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*entity.User
	profiles map[uuid.UUID]*entity.Profile
	settings map[uuid.UUID]*entity.Settings
}

func newStore() *store {
	return &store{
		users:    make(map[uuid.UUID]*entity.User),
		profiles: make(map[uuid.UUID]*entity.Profile),
		settings: make(map[uuid.UUID]*entity.Settings),
	}
}

func (s *store) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

func (s *store) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *store) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (s *store) Update(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return domainerror.ErrUserNotFound
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *store) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	return nil
}

func (s *store) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.FindByEmail(ctx, email)
	return err == nil, nil
}

func (s *store) CreateAccount(_ context.Context, user *entity.User, p *entity.Profile, st *entity.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	s.profiles[user.ID] = p
	s.settings[user.ID] = st
	return nil
}

func (s *store) DeleteAccount(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, userID)
	delete(s.profiles, userID)
	delete(s.settings, userID)
	return nil
}

// profileStore adapts store to adapter.ProfileRepository.
type profileStore struct{ *store }

func (p profileStore) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Profile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pr, ok := p.profiles[userID]
	if !ok {
		return nil, domainerror.ErrProfileNotFound
	}
	return pr, nil
}

func (p profileStore) Update(_ context.Context, pr *entity.Profile) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.profiles[pr.UserID] = pr
	return nil
}

func (p profileStore) UsernameExists(_ context.Context, username string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, pr := range p.profiles {
		if pr.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// fakePasswordService hashes by prefixing, which keeps assertions readable.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (fakePasswordService) EvaluateStrength(password string) valueobject.PasswordStrength {
	return valueobject.EvaluatePasswordStrength(password)
}

func (f fakePasswordService) ValidatePasswordStrength(password string) error {
	if !f.EvaluateStrength(password).MeetsMinimum() {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type fakeTokenService struct {
	mu        sync.Mutex
	seq       int
	active    map[string]uuid.UUID
	emails    map[string]string
	revoked   map[uuid.UUID]int
	revokeErr error
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		active:  make(map[string]uuid.UUID),
		emails:  make(map[string]string),
		revoked: make(map[uuid.UUID]int),
	}
}

func (f *fakeTokenService) IssueTokenPair(_ context.Context, userID uuid.UUID, email string, _ bool) (*adapter.TokenPair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	refresh := fmt.Sprintf("refresh-%d", f.seq)
	f.active[refresh] = userID
	f.emails[refresh] = email
	return &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", f.seq),
		RefreshToken: refresh,
		ExpiresIn:    15 * time.Minute,
	}, nil
}

func (f *fakeTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !strings.HasPrefix(token, "refresh-") {
		return nil, domainerror.ErrInvalidToken
	}
	return &adapter.TokenClaims{UserID: f.active[token], Email: f.emails[token]}, nil
}

func (f *fakeTokenService) IsRefreshTokenActive(_ context.Context, token string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.active[token]
	return ok, nil
}

func (f *fakeTokenService) RevokeRefreshToken(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.active, token)
	return nil
}

func (f *fakeTokenService) RevokeAllSessions(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.revokeErr != nil {
		return f.revokeErr
	}
	for token, id := range f.active {
		if id == userID {
			delete(f.active, token)
		}
	}
	f.revoked[userID]++
	return nil
}

// fakeResetTokens keeps used tokens around. With staleLookups set, lookups
// also return used tokens, as a request that read before another consumed would.
type fakeResetTokens struct {
	mu           sync.Mutex
	tokens       map[string]*adapter.PasswordResetToken
	used         map[string]bool
	staleLookups bool
}

func newFakeResetTokens() *fakeResetTokens {
	return &fakeResetTokens{
		tokens: make(map[string]*adapter.PasswordResetToken),
		used:   make(map[string]bool),
	}
}

func (f *fakeResetTokens) IssueResetToken(_ context.Context, userID uuid.UUID, email string) (*adapter.PasswordResetToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &adapter.PasswordResetToken{
		Token:     "reset-" + userID.String(),
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	f.tokens[t.Token] = t
	return t, nil
}

func (f *fakeResetTokens) LookupResetToken(_ context.Context, token string) (*adapter.PasswordResetToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tokens[token]
	if !ok || (f.used[token] && !f.staleLookups) {
		return nil, domainerror.ErrInvalidResetToken
	}
	return t, nil
}

func (f *fakeResetTokens) ConsumeResetToken(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tokens[token]; !ok || f.used[token] {
		return domainerror.ErrInvalidResetToken
	}
	f.used[token] = true
	return nil
}

type fakeEmailService struct {
	mu      sync.Mutex
	welcome []adapter.QueueWelcomeInput
	reset   []adapter.QueuePasswordResetInput
	changed []adapter.QueuePasswordChangedInput
}

func (f *fakeEmailService) QueueWelcomeEmail(_ context.Context, input adapter.QueueWelcomeInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.welcome = append(f.welcome, input)
	return nil
}

func (f *fakeEmailService) QueuePasswordResetEmail(_ context.Context, input adapter.QueuePasswordResetInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset = append(f.reset, input)
	return nil
}

func (f *fakeEmailService) QueuePasswordChangedEmail(_ context.Context, input adapter.QueuePasswordChangedInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changed = append(f.changed, input)
	return nil
}

type fixture struct {
	store  *store
	tokens *fakeTokenService
	resets *fakeResetTokens
	emails *fakeEmailService
}

func newFixture() *fixture {
	return &fixture{
		store:  newStore(),
		tokens: newFakeTokenService(),
		resets: newFakeResetTokens(),
		emails: &fakeEmailService{},
	}
}

func (f *fixture) register() *RegisterUserUseCase {
	return NewRegisterUserUseCase(f.store, profileStore{f.store}, f.store, fakePasswordService{}, f.tokens, f.emails, entity.DefaultFavoriteTeam, "https://app.test")
}

// seedUser registers an account through the use case and returns its output.
func (f *fixture) seedUser(email, password string) *RegisterUserOutput {
	out, err := f.register().Execute(context.Background(), RegisterUserInput{
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	})
	if err != nil {
		panic(err)
	}
	return out
}

func authCode(err error) domainerror.AuthErrorCode {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		return authErr.Code
	}
	return ""
}
