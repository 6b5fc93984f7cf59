package admin

import (
	"context"
	"errors"
	"time"

	"github.com/empregga/eva-portal/dao"
	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/internal/redis"
	"github.com/empregga/eva-portal/model/common"
	"github.com/empregga/eva-portal/model/db"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrBadCredentials cobre email inexistente e senha errada; a mensagem
	// não distingue os dois casos de propósito.
	ErrBadCredentials = errors.New("email ou senha inválidos")
	ErrSetupDone      = errors.New("instalação já concluída")
)

type AuthService struct {
	log      *logrus.Logger
	admins   adminStore
	sessions redis.Service
	ttl      time.Duration
}

func NewAuthService() *AuthService {
	return &AuthService{
		log:      global.Log,
		admins:   &dao.App.AdminDb,
		sessions: global.RedisClient,
		ttl:      time.Duration(global.Config.Redis.SessionTTL) * time.Second,
	}
}

// Login valida as credenciais e devolve o token opaco da sessão.
func (s *AuthService) Login(ctx context.Context, req *common.LoginRequest) (string, error) {
	admin, err := s.admins.GetByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if admin == nil {
		return "", ErrBadCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return "", ErrBadCredentials
	}

	token := uuid.NewString()
	if err = s.sessions.CreateSession(ctx, token, admin.Id, s.ttl); err != nil {
		s.log.Errorf("criação de sessão falhou: %v", err)
		return "", errors.New("não foi possível iniciar a sessão")
	}
	return token, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteSession(ctx, token)
}

// Setup cria o primeiro curador. Só funciona com a tabela de admins vazia;
// depois disso novos curadores entram por convite direto no banco.
func (s *AuthService) Setup(ctx context.Context, req *common.SetupRequest) error {
	total, err := s.admins.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return ErrSetupDone
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.admins.Insert(ctx, &db.Admin{
		Id:        uuid.NewString(),
		Email:     req.Email,
		Password:  string(hash),
		Name:      req.Name,
		CreatedAt: time.Now(),
	})
}
