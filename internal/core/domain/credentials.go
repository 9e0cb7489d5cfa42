package domain

// CredentialContext is the shared gateway identity embedded in every signed
// request. Pass it by value; nothing mutates it after construction.
type CredentialContext struct {
	AccessCode string
	Username   string
	Password   string
}

// Complete reports whether all three secrets are present.
func (c CredentialContext) Complete() bool {
	return c.AccessCode != "" && c.Username != "" && c.Password != ""
}
