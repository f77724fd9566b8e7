package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

type Feature string

const (
	FeatureDashboard Feature = "dashboard"
	FeatureCampaigns Feature = "campaigns"
	FeatureCreatives Feature = "creatives"
	FeatureAILab     Feature = "ai_lab"
	FeatureAdmin     Feature = "admin"
)

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Active       bool       `json:"active"`
	Config       UserConfig `json:"config"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserConfig define o que cada usuário pode ver no painel.
type UserConfig struct {
	AdAccountIDs         []string     `json:"ad_account_ids"`
	AllowedProfiles      []string     `json:"allowed_profiles"`
	AllowedFeatures      []Feature    `json:"allowed_features"`
	HideTotalSpend       bool         `json:"hide_total_spend"`
	SpendMultiplier      float64      `json:"spend_multiplier"`
	GlobalCampaignFilter GlobalFilter `json:"global_campaign_filter"`
	FixedDateStart       *string      `json:"fixed_date_start,omitempty"`
	FixedDateEnd         *string      `json:"fixed_date_end,omitempty"`
	RefreshInterval      int          `json:"refresh_interval"` // minutos, 0 desativa
}

func (c UserConfig) HasFeature(f Feature) bool {
	for _, allowed := range c.AllowedFeatures {
		if allowed == f {
			return true
		}
	}
	return false
}

type CreateUserRequest struct {
	Email    string     `json:"email"`
	Password string     `json:"password"`
	FullName string     `json:"full_name"`
	Role     Role       `json:"role"`
	Config   UserConfig `json:"config"`
}

// CreateUserResponse devolve a senha apenas quando ela foi gerada pelo servidor.
type CreateUserResponse struct {
	User              *User  `json:"user"`
	GeneratedPassword string `json:"generated_password,omitempty"`
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Claims struct {
	UserID    string
	UserEmail string
	UserName  string
	UserRole  Role
	jwt.RegisteredClaims
}
