// Package publish mirrors generated artifacts to Google Workspace:
// test plans and charters become Docs, the test-case table becomes a
// formatted Sheet. Publishing is best effort; a run without credentials
// or with a failing API still produces local files.
package publish

import (
	"context"
	"os"

	"golang.org/x/oauth2/google"

	"github.com/qaforge/qaforge/errors"
	"github.com/qaforge/qaforge/logger"
)

// CredentialsEnvVar holds a full service-account JSON blob; deployments
// without a writable filesystem use it instead of a credentials file.
const CredentialsEnvVar = "GOOGLE_CREDENTIALS"

// scopes cover document, spreadsheet and drive access
var scopes = []string{
	"https://www.googleapis.com/auth/documents",
	"https://www.googleapis.com/auth/drive",
	"https://www.googleapis.com/auth/spreadsheets",
}

// Source identifies where credentials were found
type Source string

const (
	SourceEnv  Source = "env"
	SourceFile Source = "file"
	SourceNone Source = "none"
)

// Credentials bundles resolved Google credentials with their origin
type Credentials struct {
	Source Source
	Google *google.Credentials
}

// Available reports whether usable credentials were resolved
func (c *Credentials) Available() bool {
	return c != nil && c.Source != SourceNone && c.Google != nil
}

// ResolveCredentials loads service-account credentials, preferring the
// GOOGLE_CREDENTIALS environment variable over the configured file. A
// missing source on both paths is not an error; the caller gets a
// Credentials with SourceNone and publishing stays disabled.
func ResolveCredentials(ctx context.Context, credentialsFile string) (*Credentials, error) {
	if blob := os.Getenv(CredentialsEnvVar); blob != "" {
		creds, err := google.CredentialsFromJSON(ctx, []byte(blob), scopes...)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse GOOGLE_CREDENTIALS")
		}
		logger.Infow("Google credentials resolved", "source", SourceEnv, "project", creds.ProjectID)
		return &Credentials{Source: SourceEnv, Google: creds}, nil
	}

	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debugw("No Google credentials found", "file", credentialsFile)
			return &Credentials{Source: SourceNone}, nil
		}
		return nil, errors.Wrapf(err, "failed to read credentials file %s", credentialsFile)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, scopes...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse credentials file %s", credentialsFile)
	}
	logger.Infow("Google credentials resolved", "source", SourceFile, "file", credentialsFile)
	return &Credentials{Source: SourceFile, Google: creds}, nil
}
