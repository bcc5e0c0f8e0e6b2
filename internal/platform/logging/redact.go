package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveFields is the canonical set of field names that carry upstream
// API credentials and must never reach the diagnostic stream in clear text.
// SPRYKER_CLIENT_SECRET is the main concern: it flows through config and is
// easy to log by accident alongside the rest of the auth settings.
var SensitiveFields = map[string]bool{
	"client_secret": true,
	"authorization": true,
	"password":      true,
	"token":         true,
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values,
// catching access tokens that escape field-name redaction.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name for known credential fields
// and by regex for raw token values.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveFields)+2)

	for name := range SensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		// Prefix-based redaction for variations like "secret_key".
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(bearerPattern),
	)

	return masq.New(opts...)
}
