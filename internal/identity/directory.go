// Package identity resolves authenticated principals for token issuance.
// There is no password store; any credential pair is accepted upstream and
// the email alone determines the identity.
package identity

import (
	"strings"

	"github.com/google/uuid"

	"github.com/feldmann-io/protosnap/internal/models"
)

// subjectNamespace seeds the deterministic subject ids so the same email
// always resolves to the same oid across restarts.
var subjectNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// Directory maps email addresses to user identities. Unknown addresses are
// synthesized on the fly rather than rejected.
type Directory struct {
	users map[string]models.UserIdentity
}

// NewDirectory builds the fixed tenant directory.
func NewDirectory() *Directory {
	d := &Directory{users: make(map[string]models.UserIdentity)}
	for _, user := range []models.UserIdentity{
		{
			DisplayName: "Jane Smith",
			UPN:         "jane.smith@contoso.com",
			Department:  "Quality Assurance",
			JobTitle:    "QA Lead",
			Roles:       []string{"Protocol.Admin", "Protocol.Read"},
		},
		{
			DisplayName: "Thomas Weber",
			UPN:         "thomas.weber@contoso.com",
			Department:  "Site Operations",
			JobTitle:    "Plant Supervisor",
			Roles:       []string{"Protocol.Read"},
		},
		{
			DisplayName: "Mock Administrator",
			UPN:         "admin@contoso.com",
			Department:  "IT",
			JobTitle:    "Tenant Administrator",
			Roles:       []string{"Protocol.Admin", "Site.Admin"},
		},
	} {
		user.SubjectID = SubjectID(user.UPN)
		d.users[strings.ToLower(user.UPN)] = user
	}
	return d
}

// Resolve returns the identity for email, synthesizing one when the address
// is not in the directory. The zero address still yields a usable identity.
func (d *Directory) Resolve(email string) models.UserIdentity {
	if user, ok := d.users[strings.ToLower(email)]; ok {
		return user
	}
	return Synthesize(email)
}

// Synthesize derives an identity from an arbitrary email address. The display
// name comes from the local part: "erika.musterfrau@example.org" becomes
// "Erika Musterfrau".
func Synthesize(email string) models.UserIdentity {
	if email == "" {
		email = "guest@contoso.com"
	}
	return models.UserIdentity{
		SubjectID:   SubjectID(email),
		DisplayName: displayNameFromEmail(email),
		UPN:         email,
		Roles:       []string{"Protocol.Read"},
	}
}

// ServicePrincipal is the app-only identity used by the client_credentials
// grant. It carries roles instead of delegated scopes.
func ServicePrincipal(clientID string) models.UserIdentity {
	return models.UserIdentity{
		SubjectID:   SubjectID("sp:" + clientID),
		DisplayName: clientID,
		UPN:         clientID,
		Roles:       []string{"Protocol.Read"},
	}
}

// SubjectID derives the stable oid for a directory key.
func SubjectID(key string) string {
	return uuid.NewSHA1(subjectNamespace, []byte(strings.ToLower(key))).String()
}

func displayNameFromEmail(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		local = email[:at]
	}
	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	if len(parts) == 0 {
		return email
	}
	for i, part := range parts {
		parts[i] = strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
	}
	return strings.Join(parts, " ")
}
