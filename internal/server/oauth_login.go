package server

import (
	"html/template"
	"net/http"
)

// loginPageData holds the template data for the sign-in page. The flow is
// two-step like the real authority: email first, then password. Every OAuth
// parameter is echoed through hidden fields so nothing is held server-side.
type loginPageData struct {
	Step                string // "email" or "password"
	Email               string
	ClientID            string
	RedirectURI         string
	State               string
	Scope               string
	ResponseType        string
	CodeChallenge       string
	CodeChallengeMethod string
	Nonce               string
}

var loginTemplate = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Sign in to your account</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:"Segoe UI",-apple-system,BlinkMacSystemFont,Roboto,sans-serif;background:#f2f2f2;min-height:100vh;display:flex;align-items:center;justify-content:center}
.card{background:#fff;box-shadow:0 2px 6px rgba(0,0,0,.2);padding:44px;width:100%;max-width:440px}
.brand{font-size:1.1rem;font-weight:600;color:#d83b01;margin-bottom:1rem}
h1{font-size:1.5rem;font-weight:600;color:#1b1b1b;margin-bottom:1rem}
.hint{font-size:.85rem;color:#666;margin-bottom:1rem}
.identity{font-size:.9rem;color:#1b1b1b;margin-bottom:1rem}
input[type=email],input[type=password]{width:100%;padding:.5rem 0;border:none;border-bottom:1px solid #666;font-size:1rem;margin-bottom:1.5rem}
input:focus{outline:none;border-bottom:2px solid #0067b8}
button{float:right;background:#0067b8;color:#fff;border:none;padding:.5rem 2rem;font-size:.95rem;cursor:pointer}
button:hover{background:#005da6}
</style>
</head>
<body>
<div class="card">
<div class="brand">Contoso</div>
{{if eq .Step "email"}}
<h1>Sign in</h1>
<p class="hint">Any email is accepted; contoso.com accounts carry directory roles.</p>
{{else}}
<div class="identity">{{.Email}}</div>
<h1>Enter password</h1>
<p class="hint">Any password is accepted; it is never checked.</p>
{{end}}
<form method="POST">
{{if eq .Step "email"}}
<input type="email" name="email" value="{{.Email}}" placeholder="someone@contoso.com" required autocomplete="email" autofocus>
<input type="hidden" name="step" value="email">
{{else}}
<input type="password" name="password" placeholder="Password" autocomplete="current-password" autofocus>
<input type="hidden" name="step" value="password">
<input type="hidden" name="email" value="{{.Email}}">
{{end}}
<input type="hidden" name="client_id" value="{{.ClientID}}">
<input type="hidden" name="redirect_uri" value="{{.RedirectURI}}">
<input type="hidden" name="state" value="{{.State}}">
<input type="hidden" name="scope" value="{{.Scope}}">
<input type="hidden" name="response_type" value="{{.ResponseType}}">
<input type="hidden" name="code_challenge" value="{{.CodeChallenge}}">
<input type="hidden" name="code_challenge_method" value="{{.CodeChallengeMethod}}">
<input type="hidden" name="nonce" value="{{.Nonce}}">
<button type="submit">{{if eq .Step "email"}}Next{{else}}Sign in{{end}}</button>
</form>
</div>
</body>
</html>`))

func renderLoginPage(w http.ResponseWriter, data loginPageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := loginTemplate.Execute(w, data); err != nil {
		http.Error(w, "failed to render login page", http.StatusInternalServerError)
	}
}
