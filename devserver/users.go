package devserver

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/gitpulse/gitpulse-go/session"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordMismatch   = errors.New("password mismatch")
	ErrGithubNotCompleted = errors.New("github signup not completed")
)

// User is a development-server account. GithubLogin is set for accounts that
// arrived through the simulated GitHub handoff.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         session.Role
	GithubLogin  string
}

// UserRepo is an in-memory account store keyed by email.
type UserRepo struct {
	mu     sync.Mutex
	byID   map[string]*User
	byMail map[string]*User
}

// NewUserRepo returns an empty repo.
func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:   make(map[string]*User),
		byMail: make(map[string]*User),
	}
}

// Create hashes the password and stores a new user.
func (r *UserRepo) Create(name, email, password string, role session.Role, githubLogin string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "[UserRepo.Create] hash password")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byMail[email]; exists {
		return nil, ErrEmailTaken
	}

	user := &User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		GithubLogin:  githubLogin,
	}
	r.byID[user.ID] = user
	r.byMail[user.Email] = user
	return user, nil
}

// Authenticate checks credentials and returns the matching user.
func (r *UserRepo) Authenticate(email, password string) (*User, error) {
	r.mu.Lock()
	user, ok := r.byMail[email]
	r.mu.Unlock()
	if !ok {
		return nil, ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrPasswordMismatch
	}
	return user, nil
}

// GetByID returns the user with the given ID.
func (r *UserRepo) GetByID(id string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// UpdateProfile mutates name and, when non-empty, email.
func (r *UserRepo) UpdateProfile(id, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return ErrUserNotFound
	}
	user.Name = name
	if email != "" && email != user.Email {
		if _, taken := r.byMail[email]; taken {
			return ErrEmailTaken
		}
		delete(r.byMail, user.Email)
		user.Email = email
		r.byMail[email] = user
	}
	return nil
}

// UpdatePassword verifies the current password and installs the new one.
func (r *UserRepo) UpdatePassword(id, current, updated string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return ErrPasswordMismatch
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(updated), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "[UserRepo.UpdatePassword] hash password")
	}
	user.PasswordHash = string(hash)
	return nil
}

// Seed installs the default demo accounts, one per role. Both use the
// password "gitpulse1".
func (r *UserRepo) Seed() error {
	if _, err := r.Create("Priya Nair", "manager@gitpulse.dev", "gitpulse1", session.RoleManager, ""); err != nil {
		return err
	}
	if _, err := r.Create("Vamshi Krishna", "employee@gitpulse.dev", "gitpulse1", session.RoleEmployee, ""); err != nil {
		return err
	}
	return nil
}
