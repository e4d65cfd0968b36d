package users

import (
	"github.com/jrsteele09/go-gamehub-client/internal/utils"
)

// Role represents a user role on the platform.
type Role string

const (
	RolePlayer    Role = "player"
	RoleCreator   Role = "creator"
	RolePublisher Role = "publisher"
	RoleAdmin     Role = "admin"
)

// capabilities maps each role to the roles it is allowed to act as. Admin is
// a superset role for every capability check.
var capabilities = map[Role][]Role{
	RolePlayer:    {RolePlayer},
	RoleCreator:   {RoleCreator, RolePlayer},
	RolePublisher: {RolePublisher, RolePlayer},
	RoleAdmin:     {RoleAdmin, RoleCreator, RolePublisher, RolePlayer},
}

// Valid reports whether the role is one of the platform's closed set.
func (r Role) Valid() bool {
	_, ok := capabilities[r]
	return ok
}

// HasCapability reports whether a holder of role r may act as role required.
func (r Role) HasCapability(required Role) bool {
	for _, c := range capabilities[r] {
		if c == required {
			return true
		}
	}
	return false
}

// Status represents a user account status.
type Status string

const (
	StatusActive  Status = "active"
	StatusBanned  Status = "banned"
	StatusDeleted Status = "deleted"
)

// Identity is the authenticated user's profile as returned by /users/me/.
type Identity struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
	Role          Role   `json:"role"`
	Status        Status `json:"status"`
	RegisterTime  string `json:"register_time,omitempty"`
	LastLogin     string `json:"last_login,omitempty"`
	LastLoginTime string `json:"last_login_time,omitempty"`
	Bio           string `json:"bio,omitempty"`
	Verified      bool   `json:"verified"`
}

// ProfilePatch carries a partial profile update. Nil fields are left
// untouched by Merge.
type ProfilePatch struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}

// Merge shallow-merges the non-nil patch fields into the identity.
func (id *Identity) Merge(patch ProfilePatch) {
	if patch.Username != nil {
		id.Username = utils.Value(patch.Username)
	}
	if patch.Email != nil {
		id.Email = utils.Value(patch.Email)
	}
	if patch.Phone != nil {
		id.Phone = utils.Value(patch.Phone)
	}
	if patch.Avatar != nil {
		id.Avatar = utils.Value(patch.Avatar)
	}
	if patch.Bio != nil {
		id.Bio = utils.Value(patch.Bio)
	}
}

// LoginForm is the credential pair posted to /auth/login/.
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterForm is posted to /users/ to create an account.
type RegisterForm struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	Role            Role   `json:"role,omitempty"`
}

// PasswordChange is posted to /users/change-password/.
type PasswordChange struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Operation is a single entry from the user operation log.
type Operation struct {
	ID          int64  `json:"id"`
	Action      string `json:"action"`
	TargetType  string `json:"target_type"`
	TargetID    int64  `json:"target_id"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}
