package publish

import (
	"context"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/qaforge/qaforge/logger"
)

// Status classifies one publish attempt
type Status string

const (
	// StatusSuccess means the remote document exists and holds the content
	StatusSuccess Status = "success"

	// StatusUnavailable means no credentials were configured; nothing was attempted
	StatusUnavailable Status = "unavailable"

	// StatusFailed means the attempt ran and an API call errored
	StatusFailed Status = "failed"
)

// Result is the outcome of one publish attempt. Failures carry the
// error text instead of propagating; generation never fails because
// publishing did.
type Result struct {
	Status Status
	ID     string
	URL    string
	Title  string
	Err    string
}

// Publisher drives the Docs, Sheets and Drive APIs with one resolved
// credential set. A Publisher built without credentials answers every
// call with StatusUnavailable.
type Publisher struct {
	creds       *Credentials
	shareAnyone bool

	docsSvc   *docs.Service
	sheetsSvc *sheets.Service
	driveSvc  *drive.Service
}

// NewPublisher builds a publisher from resolved credentials. shareAnyone
// grants anyone-with-the-link writer access to each published file.
func NewPublisher(ctx context.Context, creds *Credentials, shareAnyone bool) (*Publisher, error) {
	p := &Publisher{creds: creds, shareAnyone: shareAnyone}
	if !creds.Available() {
		return p, nil
	}

	opt := option.WithCredentials(creds.Google)

	docsSvc, err := docs.NewService(ctx, opt)
	if err != nil {
		return nil, err
	}
	sheetsSvc, err := sheets.NewService(ctx, opt)
	if err != nil {
		return nil, err
	}
	driveSvc, err := drive.NewService(ctx, opt)
	if err != nil {
		return nil, err
	}

	p.docsSvc = docsSvc
	p.sheetsSvc = sheetsSvc
	p.driveSvc = driveSvc
	return p, nil
}

// Available reports whether the publisher holds usable credentials
func (p *Publisher) Available() bool {
	return p.creds.Available()
}

// CredentialSource returns where the publisher's credentials came from
func (p *Publisher) CredentialSource() Source {
	if p.creds == nil {
		return SourceNone
	}
	return p.creds.Source
}

func unavailable(title string) Result {
	return Result{Status: StatusUnavailable, Title: title}
}

func failed(title string, err error) Result {
	logger.Warnw("Publish attempt failed", "title", title, "error", err)
	return Result{Status: StatusFailed, Title: title, Err: err.Error()}
}

// share grants anyone-with-the-link writer access when enabled
func (p *Publisher) share(ctx context.Context, fileID string) error {
	if !p.shareAnyone {
		return nil
	}
	_, err := p.driveSvc.Permissions.Create(fileID, &drive.Permission{
		Type: "anyone",
		Role: "writer",
	}).Fields("id").Context(ctx).Do()
	return err
}
