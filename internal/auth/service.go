package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrBadCredentials = errors.New("invalid credentials")
	ErrBadMasterKey   = errors.New("invalid master key")
	ErrAdminNotFound  = errors.New("admin not found")
)

type AdminService struct {
	repo *AdminRepository
}

func NewAdminService(repo *AdminRepository) *AdminService {
	return &AdminService{repo: repo}
}

// RegisterAdmin creates a new admin account. Registration is gated by the
// MASTER_KEY environment variable so the endpoint can stay exposed without
// letting anyone mint admin accounts.
func (s *AdminService) RegisterAdmin(ctx context.Context, req RegisterRequest) error {
	masterKey := os.Getenv("MASTER_KEY")
	if masterKey == "" || subtle.ConstantTimeCompare([]byte(req.MasterKey), []byte(masterKey)) != 1 {
		return ErrBadMasterKey
	}

	existing, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("username already exists")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return err
	}
	admin := &Admin{
		ID:           primitive.NewObjectID(),
		Username:     req.Username,
		PasswordHash: hash,
	}
	return s.repo.CreateAdmin(ctx, admin)
}

func (s *AdminService) AuthenticateAdmin(ctx context.Context, cred Credential) (*LoginResponse, error) {
	admin, err := s.repo.FindByUsername(ctx, cred.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}
	if !CheckPasswordHash(cred.Password, admin.PasswordHash) {
		return nil, ErrBadCredentials
	}

	token, err := GenerateJWT(admin.Username, admin.ID.Hex(), 24*time.Hour)
	if err != nil {
		return nil, errors.New("token not generated")
	}
	return &LoginResponse{Token: token, Username: admin.Username}, nil
}
