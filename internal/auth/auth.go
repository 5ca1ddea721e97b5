// Package auth defines the identity capability consumed by presentation
// layers. The core only observes whether a user is signed in; concrete
// providers plug in behind this interface.
package auth

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrEmailTaken         = errors.New("auth: email already registered")
)

// User is the signed-in identity visible to the UI.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// Provider is the injected identity capability.
type Provider interface {
	CurrentUser() (User, bool)
	SignIn(email, password string) (User, error)
	SignUp(email, password, fullName string) (User, error)
	SignOut()
}

type account struct {
	user     User
	password string
}

// StaticProvider is an in-memory Provider for tests and local demos.
type StaticProvider struct {
	mu       sync.Mutex
	accounts map[string]account
	current  *User
	nextID   int
}

// NewStaticProvider creates an empty in-memory provider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{accounts: make(map[string]account)}
}

func (p *StaticProvider) CurrentUser() (User, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return User{}, false
	}
	return *p.current, true
}

func (p *StaticProvider) SignIn(email, password string) (User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	acct, ok := p.accounts[email]
	if !ok || acct.password != password {
		return User{}, ErrInvalidCredentials
	}
	u := acct.user
	p.current = &u
	return u, nil
}

func (p *StaticProvider) SignUp(email, password, fullName string) (User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.accounts[email]; exists {
		return User{}, ErrEmailTaken
	}
	p.nextID++
	u := User{
		ID:       userID(p.nextID),
		Email:    email,
		FullName: fullName,
	}
	p.accounts[email] = account{user: u, password: password}
	p.current = &u
	return u, nil
}

func (p *StaticProvider) SignOut() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = nil
}

func userID(n int) string {
	return fmt.Sprintf("user-%d", n)
}
