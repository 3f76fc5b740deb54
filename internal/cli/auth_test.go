package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/guilhermegsr/password-manager-LP/internal/services"
)

func muteOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func stubInputs(t *testing.T, text string, secret []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		return append([]byte(nil), secret...), nil
	}
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeAuth struct {
	// Register
	regUser string
	regPass []byte
	regErr  error

	// Login
	loginUser    string
	loginPass    []byte
	loginSession *services.Session
	loginErr     error

	// Logout
	logoutCalled bool
}

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte) error {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return f.regErr
}
func (f *fakeAuth) Login(_ context.Context, user string, pass []byte) (*services.Session, error) {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	return f.loginSession, f.loginErr
}
func (f *fakeAuth) Logout(_ context.Context, session *services.Session) error {
	f.logoutCalled = true
	session.Destroy()
	return nil
}

func TestAppRegister_Success(t *testing.T) {
	muteOutput(t)
	f := &fakeAuth{}
	a := &App{authService: f}

	restore := stubInputs(t, "alice", []byte("secret"))
	defer restore()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regUser != "alice" {
		t.Fatalf("Register user mismatch: %q", f.regUser)
	}
	if string(f.regPass) != "secret" {
		t.Fatalf("Register pass mismatch: %q", string(f.regPass))
	}
}

func TestAppLogin_SetsSession(t *testing.T) {
	muteOutput(t)
	session := services.NewSession("alice", "v1", []byte{1, 2, 3})
	f := &fakeAuth{loginSession: session}
	a := &App{authService: f}

	restore := stubInputs(t, "alice", []byte("secret"))
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if a.session != session {
		t.Fatalf("session not stored on app")
	}
	if !a.isLoggedIn() {
		t.Fatalf("expected logged in state")
	}
}

func TestAppLogin_FailureKeepsLoggedOut(t *testing.T) {
	muteOutput(t)
	f := &fakeAuth{loginErr: errors.New("nope")}
	a := &App{authService: f}

	restore := stubInputs(t, "alice", []byte("wrong"))
	defer restore()

	if err := a.Login(context.Background()); err == nil {
		t.Fatalf("want error from Login")
	}
	if a.isLoggedIn() {
		t.Fatalf("must not be logged in after a failed login")
	}
}

func TestAppLogout(t *testing.T) {
	muteOutput(t)
	session := services.NewSession("alice", "v1", []byte{1, 2, 3})
	f := &fakeAuth{}
	a := &App{authService: f, session: session}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatalf("Logout not delegated to the service")
	}
	if a.session != nil {
		t.Fatalf("session not cleared")
	}
	if session.Active() {
		t.Fatalf("session still active after logout")
	}
}
