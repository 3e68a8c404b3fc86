package service

import (
	"book_quiz_backend/internal/config"
	"book_quiz_backend/internal/model"
	"book_quiz_backend/internal/repository"
	"book_quiz_backend/internal/util"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	AdminRepo *repository.AdminRepository
	Cfg       *config.Config
}

func NewAuthService(adminRepo *repository.AdminRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		AdminRepo: adminRepo,
		Cfg:       cfg,
	}
}

func (s *AuthService) Login(username, password string) (string, *model.Admin, error) {
	admin, err := s.AdminRepo.FindByUsername(username)
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := s.AdminRepo.TouchLastLogin(admin.ID); err != nil {
		return "", nil, err
	}

	token, err := util.GenerateJWT(admin, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

// Verify 校验 token 是否有效（前端刷新页面时调用）
func (s *AuthService) Verify(token string) (*util.Claims, error) {
	return util.ParseJWT(token, s.Cfg.JWT.Secret)
}

func (s *AuthService) GetCurrentAdmin(c *gin.Context) *model.Admin {
	claims := util.GetAdminFromContext(c)
	if claims == nil {
		return nil
	}

	admin, _ := s.AdminRepo.FindByID(claims.AdminID)
	return admin
}

func (s *AuthService) ChangePassword(adminID, oldPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return errors.New("新密码长度至少 8 个字符")
	}

	admin, err := s.AdminRepo.FindByID(adminID)
	if err != nil {
		return util.ErrAdminNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(oldPassword)); err != nil {
		return util.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.AdminRepo.UpdatePassword(adminID, string(hashed))
}

func (s *AuthService) ListBasic() ([]model.AdminBasic, error) {
	return s.AdminRepo.ListBasic()
}

// UpdateNote 仅本人可改自己的笔记
func (s *AuthService) UpdateNote(adminID, note string) error {
	trimmed := strings.TrimSpace(note)
	if len([]rune(trimmed)) > 1000 {
		return util.ErrNoteTooLong
	}
	return s.AdminRepo.UpdateNote(adminID, trimmed)
}
