package publish

import (
	"context"

	"google.golang.org/api/docs/v1"

	"github.com/qaforge/qaforge/errors"
	"github.com/qaforge/qaforge/logger"
)

// PublishDocument creates a Google Doc titled title holding content.
// The flow is create, share, then insert the full text at index 1.
func (p *Publisher) PublishDocument(ctx context.Context, title, content string) Result {
	if !p.Available() {
		return unavailable(title)
	}

	doc, err := p.docsSvc.Documents.Create(&docs.Document{Title: title}).Context(ctx).Do()
	if err != nil {
		return failed(title, errors.Wrap(err, "failed to create document"))
	}
	docID := doc.DocumentId

	if err := p.share(ctx, docID); err != nil {
		return failed(title, errors.Wrapf(err, "failed to share document %s", docID))
	}

	_, err = p.docsSvc.Documents.BatchUpdate(docID, &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{{
			InsertText: &docs.InsertTextRequest{
				Location: &docs.Location{Index: 1},
				Text:     content,
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return failed(title, errors.Wrapf(err, "failed to insert content into document %s", docID))
	}

	logger.Infow("Document published", "id", docID, "title", title)
	return Result{
		Status: StatusSuccess,
		ID:     docID,
		URL:    "https://docs.google.com/document/d/" + docID + "/edit",
		Title:  title,
	}
}

// ReplaceDocument swaps the full body of an existing Doc for content,
// keeping the document ID and its sharing settings stable.
func (p *Publisher) ReplaceDocument(ctx context.Context, documentID, content string) Result {
	if !p.Available() {
		return unavailable(documentID)
	}

	doc, err := p.docsSvc.Documents.Get(documentID).Context(ctx).Do()
	if err != nil {
		return failed(documentID, errors.Wrapf(err, "failed to fetch document %s", documentID))
	}

	// The body always ends with a newline that cannot be deleted
	body := doc.Body.Content
	endIndex := body[len(body)-1].EndIndex - 1

	requests := []*docs.Request{}
	if endIndex > 1 {
		requests = append(requests, &docs.Request{
			DeleteContentRange: &docs.DeleteContentRangeRequest{
				Range: &docs.Range{StartIndex: 1, EndIndex: endIndex},
			},
		})
	}
	requests = append(requests, &docs.Request{
		InsertText: &docs.InsertTextRequest{
			Location: &docs.Location{Index: 1},
			Text:     content,
		},
	})

	_, err = p.docsSvc.Documents.BatchUpdate(documentID, &docs.BatchUpdateDocumentRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return failed(documentID, errors.Wrapf(err, "failed to replace content of document %s", documentID))
	}

	logger.Infow("Document content replaced", "id", documentID)
	return Result{
		Status: StatusSuccess,
		ID:     documentID,
		URL:    "https://docs.google.com/document/d/" + documentID + "/edit",
		Title:  doc.Title,
	}
}
