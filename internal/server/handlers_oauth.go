package server

import (
	"net/http"
	"net/url"

	"github.com/feldmann-io/protosnap/internal/oauth"
)

// handleAuthorizeGet starts the interactive flow: parameter validation, then
// the first step of the sign-in page. All OAuth parameters ride along as
// hidden fields from here on.
func (s *Server) handleAuthorizeGet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if rt := q.Get("response_type"); rt != "" && rt != "code" {
		WriteOAuthError(w, r, oauth.UnsupportedResponseType(rt))
		return
	}
	if q.Get("redirect_uri") == "" {
		WriteOAuthError(w, r, oauth.MissingParameter("redirect_uri"))
		return
	}

	renderLoginPage(w, loginPageData{
		Step:                "email",
		Email:               q.Get("login_hint"),
		ClientID:            q.Get("client_id"),
		RedirectURI:         q.Get("redirect_uri"),
		State:               q.Get("state"),
		Scope:               q.Get("scope"),
		ResponseType:        q.Get("response_type"),
		CodeChallenge:       q.Get("code_challenge"),
		CodeChallengeMethod: q.Get("code_challenge_method"),
		Nonce:               q.Get("nonce"),
	})
}

// handleAuthorizePost advances the sign-in flow. The email step renders the
// password page; the password step mints the code and redirects. The password
// itself is never inspected.
func (s *Server) handleAuthorizePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteOAuthError(w, r, oauth.MissingParameter("email"))
		return
	}

	data := loginPageData{
		Step:                r.PostFormValue("step"),
		Email:               r.PostFormValue("email"),
		ClientID:            r.PostFormValue("client_id"),
		RedirectURI:         r.PostFormValue("redirect_uri"),
		State:               r.PostFormValue("state"),
		Scope:               r.PostFormValue("scope"),
		ResponseType:        r.PostFormValue("response_type"),
		CodeChallenge:       r.PostFormValue("code_challenge"),
		CodeChallengeMethod: r.PostFormValue("code_challenge_method"),
		Nonce:               r.PostFormValue("nonce"),
	}

	if data.RedirectURI == "" {
		WriteOAuthError(w, r, oauth.MissingParameter("redirect_uri"))
		return
	}
	if data.Email == "" {
		WriteOAuthError(w, r, oauth.MissingParameter("email"))
		return
	}

	if data.Step == "email" {
		data.Step = "password"
		renderLoginPage(w, data)
		return
	}

	code := s.app.OAuth.IssueAuthorizationCode(oauth.AuthorizeRequest{
		ClientID:            data.ClientID,
		RedirectURI:         data.RedirectURI,
		Scope:               data.Scope,
		Email:               data.Email,
		CodeChallenge:       data.CodeChallenge,
		CodeChallengeMethod: data.CodeChallengeMethod,
		Nonce:               data.Nonce,
	})

	target, err := url.Parse(data.RedirectURI)
	if err != nil {
		WriteOAuthError(w, r, oauth.MissingParameter("redirect_uri"))
		return
	}
	params := target.Query()
	params.Set("code", code)
	if data.State != "" {
		params.Set("state", data.State)
	}
	target.RawQuery = params.Encode()

	http.Redirect(w, r, target.String(), http.StatusFound)
}

// handleToken runs the grant named by the form body and answers with either
// the token bundle or the structured error envelope.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteOAuthError(w, r, oauth.MissingParameter("grant_type"))
		return
	}

	req := oauth.TokenRequest{
		GrantType:    r.PostFormValue("grant_type"),
		Code:         r.PostFormValue("code"),
		RedirectURI:  r.PostFormValue("redirect_uri"),
		ClientID:     r.PostFormValue("client_id"),
		ClientSecret: r.PostFormValue("client_secret"),
		CodeVerifier: r.PostFormValue("code_verifier"),
		RefreshToken: r.PostFormValue("refresh_token"),
		Scope:        r.PostFormValue("scope"),
	}

	// client_secret_basic is accepted alongside client_secret_post.
	if req.ClientID == "" {
		if id, secret, ok := r.BasicAuth(); ok {
			req.ClientID = id
			req.ClientSecret = secret
		}
	}

	resp, oerr := s.app.OAuth.Exchange(req)
	if oerr != nil {
		WriteOAuthError(w, r, oerr)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	WriteJSON(w, http.StatusOK, resp)
}
