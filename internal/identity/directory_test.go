package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKnownUser(t *testing.T) {
	dir := NewDirectory()
	user := dir.Resolve("jane.smith@contoso.com")
	assert.Equal(t, "Jane Smith", user.DisplayName)
	assert.Equal(t, "Quality Assurance", user.Department)
	assert.Contains(t, user.Roles, "Protocol.Admin")
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	dir := NewDirectory()
	user := dir.Resolve("Jane.Smith@Contoso.COM")
	assert.Equal(t, "Jane Smith", user.DisplayName)
}

func TestResolveUnknownSynthesizes(t *testing.T) {
	dir := NewDirectory()
	user := dir.Resolve("erika.musterfrau@example.org")
	assert.Equal(t, "Erika Musterfrau", user.DisplayName)
	assert.Equal(t, "erika.musterfrau@example.org", user.UPN)
	assert.Equal(t, []string{"Protocol.Read"}, user.Roles)
}

func TestSubjectIDIsStable(t *testing.T) {
	dir := NewDirectory()
	first := dir.Resolve("someone@contoso.com")
	second := dir.Resolve("someone@contoso.com")
	assert.Equal(t, first.SubjectID, second.SubjectID)
	assert.Equal(t, first.SubjectID, dir.Resolve("SOMEONE@contoso.com").SubjectID)

	other := dir.Resolve("someone.else@contoso.com")
	assert.NotEqual(t, first.SubjectID, other.SubjectID)
}

func TestSynthesizeEmptyEmail(t *testing.T) {
	user := Synthesize("")
	assert.Equal(t, "guest@contoso.com", user.UPN)
	assert.NotEmpty(t, user.SubjectID)
}

func TestDisplayNameSeparators(t *testing.T) {
	assert.Equal(t, "Max Muster Mann", Synthesize("max_muster-mann@example.org").DisplayName)
	assert.Equal(t, "Admin", Synthesize("admin@example.org").DisplayName)
}

func TestServicePrincipal(t *testing.T) {
	sp := ServicePrincipal("swagger-editor")
	assert.Equal(t, "swagger-editor", sp.DisplayName)
	assert.NotEqual(t, SubjectID("swagger-editor"), sp.SubjectID,
		"app identity must not collide with a user keyed by the same string")
}
