package oauth

import (
	"time"

	"github.com/feldmann-io/protosnap/internal/common"
	"github.com/feldmann-io/protosnap/internal/identity"
	"github.com/feldmann-io/protosnap/internal/interfaces"
	"github.com/feldmann-io/protosnap/internal/models"
)

// Service drives the grant flows behind the token endpoint. All state lives
// in the credential store; the service itself is stateless and safe for
// concurrent use.
type Service struct {
	store     interfaces.CredentialStore
	directory *identity.Directory
	tokens    *TokenBuilder
	logger    *common.Logger

	codeLifetime    time.Duration
	refreshLifetime time.Duration
	defaultClientID string
	defaultScope    string
}

// NewService wires the grant service.
func NewService(store interfaces.CredentialStore, directory *identity.Directory, tokens *TokenBuilder, logger *common.Logger, codeLifetime, refreshLifetime time.Duration, defaultClientID, defaultScope string) *Service {
	return &Service{
		store:           store,
		directory:       directory,
		tokens:          tokens,
		logger:          logger,
		codeLifetime:    codeLifetime,
		refreshLifetime: refreshLifetime,
		defaultClientID: defaultClientID,
		defaultScope:    defaultScope,
	}
}

// DefaultClientID returns the client id assumed when a request omits one.
func (s *Service) DefaultClientID() string { return s.defaultClientID }

// DefaultScope returns the scope assumed when a request omits one.
func (s *Service) DefaultScope() string { return s.defaultScope }

// AuthorizeRequest captures the parameters of an authorization request that
// survive into the issued code.
type AuthorizeRequest struct {
	ClientID            string
	RedirectURI         string
	Scope               string
	Email               string
	CodeChallenge       string
	CodeChallengeMethod string
	Nonce               string
}

// IssueAuthorizationCode mints a single-use code for the authenticated user
// and records it in the credential store.
func (s *Service) IssueAuthorizationCode(req AuthorizeRequest) string {
	if req.ClientID == "" {
		req.ClientID = s.defaultClientID
	}
	if req.Scope == "" {
		req.Scope = s.defaultScope
	}
	user := s.directory.Resolve(req.Email)

	now := time.Now()
	code := &models.AuthorizationCode{
		Code:                NewOpaqueSecret(16),
		ClientID:            req.ClientID,
		RedirectURI:         req.RedirectURI,
		Scope:               req.Scope,
		UserID:              user.SubjectID,
		Email:               user.UPN,
		DisplayName:         user.DisplayName,
		CodeChallenge:       req.CodeChallenge,
		CodeChallengeMethod: req.CodeChallengeMethod,
		Nonce:               req.Nonce,
		ExpiresAt:           now.Add(s.codeLifetime),
		CreatedAt:           now,
	}
	s.store.PutCode(code)

	s.logger.Debug().
		Str("client_id", code.ClientID).
		Str("user", code.Email).
		Msg("Issued authorization code")
	return code.Code
}

// TokenRequest is the parsed form body of a token-endpoint request.
type TokenRequest struct {
	GrantType    string
	Code         string
	RedirectURI  string
	ClientID     string
	ClientSecret string
	CodeVerifier string
	RefreshToken string
	Scope        string
}

// Exchange runs the grant named by the request and returns either a token
// bundle or a protocol error ready for the wire.
func (s *Service) Exchange(req TokenRequest) (*models.TokenResponse, *Error) {
	switch req.GrantType {
	case "authorization_code":
		return s.redeemAuthorizationCode(req)
	case "refresh_token":
		return s.redeemRefreshToken(req)
	case "client_credentials":
		return s.clientCredentials(req)
	case "":
		return nil, MissingParameter("grant_type")
	default:
		return nil, UnsupportedGrantType(req.GrantType)
	}
}

func (s *Service) redeemAuthorizationCode(req TokenRequest) (*models.TokenResponse, *Error) {
	if req.Code == "" {
		return nil, MissingParameter("code")
	}

	code, ok := s.store.TakeCode(req.Code)
	if !ok {
		s.logger.Warn().Msg("Authorization code unknown or already redeemed")
		return nil, InvalidGrant()
	}
	if time.Now().After(code.ExpiresAt) {
		s.logger.Warn().Str("client_id", code.ClientID).Msg("Authorization code expired")
		return nil, InvalidGrant()
	}

	// PKCE is enforced only when both halves are present. A challenge without
	// a verifier passes, matching the permissive posture of a mock authority
	// that must serve tooling which skips PKCE entirely.
	if code.CodeChallenge != "" && req.CodeVerifier != "" {
		if !VerifyCodeChallenge(code.CodeChallenge, code.CodeChallengeMethod, req.CodeVerifier) {
			s.logger.Warn().Str("client_id", code.ClientID).Msg("PKCE verification failed")
			return nil, PKCEMismatch()
		}
	}

	user := s.directory.Resolve(code.Email)
	return s.issueUserTokens(user, code.ClientID, code.Scope, code.Nonce)
}

func (s *Service) redeemRefreshToken(req TokenRequest) (*models.TokenResponse, *Error) {
	if req.RefreshToken == "" {
		return nil, MissingParameter("refresh_token")
	}

	token, ok := s.store.TakeRefreshToken(req.RefreshToken)
	if !ok {
		s.logger.Warn().Msg("Refresh token unknown or already rotated")
		return nil, InvalidGrant()
	}
	// The take already removed the token, so an expired lineage ends here.
	if time.Now().After(token.ExpiresAt) {
		s.logger.Warn().Str("client_id", token.ClientID).Msg("Refresh token expired")
		return nil, InvalidGrant()
	}

	user := s.directory.Resolve(token.Email)
	return s.issueUserTokens(user, token.ClientID, token.Scope, "")
}

func (s *Service) clientCredentials(req TokenRequest) (*models.TokenResponse, *Error) {
	if req.ClientID == "" || req.ClientSecret == "" {
		return nil, InvalidClient("The request body must contain client_id and client_secret.")
	}

	// Any secret is accepted; the grant never touches the credential store.
	principal := identity.ServicePrincipal(req.ClientID)
	scope := req.Scope
	if scope == "" {
		scope = FilterScopes(s.defaultScope)
	}

	accessToken, err := s.tokens.AccessToken(principal, req.ClientID, scope, "")
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to sign access token")
		return nil, ServerError()
	}

	lifetime := int(s.tokens.AccessLifetime().Seconds())
	return &models.TokenResponse{
		TokenType:    "Bearer",
		Scope:        FilterScopes(scope),
		ExpiresIn:    lifetime,
		ExtExpiresIn: lifetime,
		AccessToken:  accessToken,
	}, nil
}

func (s *Service) issueUserTokens(user models.UserIdentity, clientID, scope, nonce string) (*models.TokenResponse, *Error) {
	accessToken, err := s.tokens.AccessToken(user, clientID, scope, nonce)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to sign access token")
		return nil, ServerError()
	}
	idToken, err := s.tokens.IDToken(user, clientID, nonce)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to sign id token")
		return nil, ServerError()
	}

	now := time.Now()
	refresh := &models.RefreshToken{
		Token:       NewOpaqueSecret(32),
		ClientID:    clientID,
		Scope:       scope,
		UserID:      user.SubjectID,
		Email:       user.UPN,
		DisplayName: user.DisplayName,
		ExpiresAt:   now.Add(s.refreshLifetime),
		CreatedAt:   now,
	}
	s.store.PutRefreshToken(refresh)

	lifetime := int(s.tokens.AccessLifetime().Seconds())
	return &models.TokenResponse{
		TokenType:    "Bearer",
		Scope:        FilterScopes(scope),
		ExpiresIn:    lifetime,
		ExtExpiresIn: lifetime,
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		IDToken:      idToken,
	}, nil
}
