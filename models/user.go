package models

// SessionUser is the user record held by the session store. It is built on
// login, registration completion, or an OAuth callback, overwritten wholesale
// on profile refresh, and destroyed on logout.
type SessionUser struct {
	UserID                string   `json:"userId"`
	Email                 string   `json:"email"`
	FirstName             string   `json:"firstName"`
	LastName              string   `json:"lastName"`
	Phone                 string   `json:"phone"`
	Role                  string   `json:"role"`
	Roles                 []string `json:"roles"`
	TenantID              string   `json:"tenantId"`
	EmailVerified         bool     `json:"emailVerified"`
	ReceiveProductUpdates bool     `json:"receiveProductUpdates"`
	ReferralSource        string   `json:"referralSource"`
}

func (u *SessionUser) FullName() string {
	if u == nil {
		return ""
	}
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type RegisterRequest struct {
	FirstName             string `json:"firstName" binding:"required"`
	LastName              string `json:"lastName" binding:"required"`
	Email                 string `json:"email" binding:"required,email"`
	Password              string `json:"password" binding:"required,min=6"`
	PhoneNumber           string `json:"phoneNumber" binding:"omitempty"`
	ReferralSource        string `json:"referralSource" binding:"omitempty"`
	ReceiveProductUpdates bool   `json:"receiveProductUpdates"`
	AcceptedTerms         bool   `json:"acceptedTerms" binding:"required"`
}

type OtpVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
	Otp   string `json:"otp" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Otp             string `json:"otp" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=NewPassword"`
}

type UpdateProfileRequest struct {
	FirstName             string `json:"firstName"`
	LastName              string `json:"lastName"`
	Phone                 string `json:"phone"`
	ReferralSource        string `json:"referralSource"`
	ReceiveProductUpdates bool   `json:"receiveProductUpdates"`
}

// UpstreamLoginResponse is what the commerce API returns from login,
// verify-otp and refresh.
type UpstreamLoginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UpstreamUser `json:"user"`
}

// UpstreamUser tolerates the flat profile shape as well as the nested login
// shape: some endpoints return userId, others id; some role, others roles.
type UpstreamUser struct {
	UserID                string   `json:"userId"`
	ID                    string   `json:"id"`
	Email                 string   `json:"email"`
	FirstName             string   `json:"firstName"`
	LastName              string   `json:"lastName"`
	Phone                 string   `json:"phone"`
	PhoneNumber           string   `json:"phoneNumber"`
	Role                  string   `json:"role"`
	Roles                 []string `json:"roles"`
	TenantID              string   `json:"tenantId"`
	EmailVerified         bool     `json:"emailVerified"`
	ReceiveProductUpdates bool     `json:"receiveProductUpdates"`
	ReferralSource        string   `json:"referralSource"`
}

// ToSessionUser normalizes the tolerated upstream variants into the session
// record shape.
func (u UpstreamUser) ToSessionUser() SessionUser {
	id := u.UserID
	if id == "" {
		id = u.ID
	}
	phone := u.Phone
	if phone == "" {
		phone = u.PhoneNumber
	}
	role := u.Role
	if role == "" && len(u.Roles) > 0 {
		role = u.Roles[0]
	}
	if role == "" {
		role = RoleCustomer
	}
	roles := u.Roles
	if len(roles) == 0 {
		roles = []string{role}
	}
	return SessionUser{
		UserID:                id,
		Email:                 u.Email,
		FirstName:             u.FirstName,
		LastName:              u.LastName,
		Phone:                 phone,
		Role:                  role,
		Roles:                 roles,
		TenantID:              u.TenantID,
		EmailVerified:         u.EmailVerified,
		ReceiveProductUpdates: u.ReceiveProductUpdates,
		ReferralSource:        u.ReferralSource,
	}
}

const RoleCustomer = "CUSTOMER"

// OAuthCallbackRequest carries the raw URL fragment the provider handed the
// browser. The shell posts it because fragments never reach a server on
// their own.
type OAuthCallbackRequest struct {
	Fragment string `json:"fragment" binding:"required"`
}
