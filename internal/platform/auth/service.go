package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// 秘密鍵 (本番では環境変数から取得推奨)
var jwtSecret = []byte("your-secret-key")

var ErrAuthFailed = errors.New("authentication failed")

const tokenTTL = 2 * time.Hour

type Service struct {
	store UserStore
}

func NewService(db *sql.DB) *Service {
	return &Service{store: NewStore(db)}
}

func JWTSecret() []byte {
	return jwtSecret
}

// Login: email + パスワードを検証して HS256 トークンとプロフィールを返す。
// 未登録・パスワード不一致は同じエラーに潰す（列挙攻撃対策）。
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	u, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrAuthFailed
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrAuthFailed
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.UserID,
		"email":   u.Email,
		"role_id": u.RoleID,
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	})

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return tokenString, u, nil
}
