package services

import (
	"errors"
	"net/url"
	"strings"

	"storefront/models"
)

var ErrMissingCallbackParams = errors.New("missing required authentication parameters")

const oauthReferralSource = "google_oauth"

// OAuthService builds the provider redirect and parses the credential bag
// the provider hands back in the URL fragment. The fragment never reaches a
// server on its own; the storefront shell posts the raw string here over
// HTTPS.
type OAuthService struct {
	baseURL  string
	tenantID string
}

func NewOAuthService(upstreamBaseURL, tenantID string) *OAuthService {
	base := strings.TrimRight(upstreamBaseURL, "/")
	base = strings.TrimSuffix(base, "/api")
	return &OAuthService{baseURL: base, tenantID: tenantID}
}

// AuthorizationURL is the upstream OAuth entry for a provider, parameterized
// by the fixed tenant identifier.
func (s *OAuthService) AuthorizationURL(provider string) string {
	return s.baseURL + "/oauth2/authorization/" + url.PathEscape(provider) +
		"?tenantId=" + url.QueryEscape(s.tenantID)
}

// OAuthCallback is a successfully parsed provider redirect. Only an access
// token is present; this flow supplies no refresh token.
type OAuthCallback struct {
	AccessToken string
	User        models.SessionUser
}

// ParseCallbackFragment reads the fragment as a query-encoded parameter bag.
// accessToken, userId, email, firstName and lastName are all required;
// missing any one fails the whole attempt and no session is created.
func (s *OAuthService) ParseCallbackFragment(fragment string) (*OAuthCallback, error) {
	params, err := url.ParseQuery(strings.TrimPrefix(fragment, "#"))
	if err != nil {
		return nil, err
	}

	accessToken := params.Get("accessToken")
	userID := params.Get("userId")
	email := params.Get("email")
	firstName := params.Get("firstName")
	lastName := params.Get("lastName")

	if accessToken == "" || userID == "" || email == "" || firstName == "" || lastName == "" {
		return nil, ErrMissingCallbackParams
	}

	roles := []string{models.RoleCustomer}
	if role := params.Get("roles"); role != "" {
		roles = []string{role}
	}

	return &OAuthCallback{
		AccessToken: accessToken,
		User: models.SessionUser{
			UserID:    userID,
			Email:     email,
			FirstName: firstName,
			LastName:  lastName,
			Phone:     "",
			Role:      roles[0],
			Roles:     roles,
			TenantID:  params.Get("tenantId"),
			// OAuth users arrive pre-verified by the provider.
			EmailVerified:  true,
			ReferralSource: oauthReferralSource,
		},
	}, nil
}
