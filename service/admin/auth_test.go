package admin

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/empregga/eva-portal/internal/redis"
	"github.com/empregga/eva-portal/model/common"
	"github.com/empregga/eva-portal/model/db"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminStore struct {
	admins map[string]*db.Admin
}

func (f *fakeAdminStore) GetByEmail(_ context.Context, email string) (*db.Admin, error) {
	admin, ok := f.admins[email]
	if !ok {
		return nil, nil
	}
	return admin, nil
}

func (f *fakeAdminStore) Insert(_ context.Context, admin *db.Admin) error {
	f.admins[admin.Email] = admin
	return nil
}

func (f *fakeAdminStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.admins)), nil
}

type fakeSessions struct {
	sessions map[string]string
}

func (f *fakeSessions) CreateSession(_ context.Context, token, adminId string, _ time.Duration) error {
	f.sessions[token] = adminId
	return nil
}

func (f *fakeSessions) GetSession(_ context.Context, token string) (string, error) {
	adminId, ok := f.sessions[token]
	if !ok {
		return "", redis.ErrNil
	}
	return adminId, nil
}

func (f *fakeSessions) DeleteSession(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessions) Ping(_ context.Context) error { return nil }
func (f *fakeSessions) Close() error                 { return nil }

func newTestAuthService() (*AuthService, *fakeAdminStore, *fakeSessions) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	store := &fakeAdminStore{admins: map[string]*db.Admin{}}
	sessions := &fakeSessions{sessions: map[string]string{}}
	return &AuthService{
		log:      log,
		admins:   store,
		sessions: sessions,
		ttl:      time.Hour,
	}, store, sessions
}

func TestAuthLoginLogout(t *testing.T) {
	s, store, sessions := newTestAuthService()

	hash, _ := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	store.admins["maria@empregga.com.br"] = &db.Admin{
		Id:       "adm1",
		Email:    "maria@empregga.com.br",
		Password: string(hash),
	}

	token, err := s.Login(context.Background(), &common.LoginRequest{
		Email:    "maria@empregga.com.br",
		Password: "senha-forte",
	})
	if err != nil {
		t.Fatalf("login válido falhou: %v", err)
	}
	if sessions.sessions[token] != "adm1" {
		t.Errorf("sessão não aponta para o admin: %v", sessions.sessions)
	}

	if err = s.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := sessions.sessions[token]; ok {
		t.Error("logout deveria descartar a sessão")
	}
}

func TestAuthLoginRejected(t *testing.T) {
	s, store, _ := newTestAuthService()

	hash, _ := bcrypt.GenerateFromPassword([]byte("certa"), bcrypt.MinCost)
	store.admins["maria@empregga.com.br"] = &db.Admin{Id: "adm1", Email: "maria@empregga.com.br", Password: string(hash)}

	if _, err := s.Login(context.Background(), &common.LoginRequest{
		Email: "maria@empregga.com.br", Password: "errada",
	}); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("senha errada = %v, esperado ErrBadCredentials", err)
	}

	if _, err := s.Login(context.Background(), &common.LoginRequest{
		Email: "ninguem@empregga.com.br", Password: "tanto-faz",
	}); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("email inexistente = %v, esperado ErrBadCredentials", err)
	}
}

func TestAuthSetupOnlyOnce(t *testing.T) {
	s, store, _ := newTestAuthService()

	req := &common.SetupRequest{Email: "maria@empregga.com.br", Password: "senha-forte", Name: "Maria"}
	if err := s.Setup(context.Background(), req); err != nil {
		t.Fatalf("primeiro setup falhou: %v", err)
	}

	created := store.admins[req.Email]
	if created == nil {
		t.Fatal("admin não criado")
	}
	if created.Password == req.Password {
		t.Error("senha deve ser gravada como hash bcrypt, nunca em claro")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte(req.Password)); err != nil {
		t.Errorf("hash não confere com a senha: %v", err)
	}

	if err := s.Setup(context.Background(), req); !errors.Is(err, ErrSetupDone) {
		t.Errorf("segundo setup = %v, esperado ErrSetupDone", err)
	}
}
