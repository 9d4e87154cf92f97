package mail

import (
	"fmt"
	"strings"
)

// PasswordResetEmail builds the password reset message for a user. The link
// points at the frontend reset page, which submits the credentials back to
// the API.
func PasswordResetEmail(to, name, frontendURL, userRef, token string) Message {
	link := fmt.Sprintf("%s/reset-password/%s/%s/", strings.TrimRight(frontendURL, "/"), userRef, token)

	if name == "" {
		name = "there"
	}

	body := fmt.Sprintf(`Hi %s,

We received a request to reset the password for your account.

To choose a new password, open the link below:

%s

If you did not request a password reset, you can safely ignore this email.
The link expires automatically and your password will not change.
`, name, link)

	return Message{
		To:      to,
		Subject: "Password reset request",
		Body:    body,
	}
}
