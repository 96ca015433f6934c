package publish

import (
	"context"

	"github.com/qaforge/qaforge/errors"
	"github.com/qaforge/qaforge/logger"
)

// DriveFile describes one file owned by the service account
type DriveFile struct {
	ID          string
	Name        string
	MimeType    string
	CreatedTime string
	Size        int64
}

// ListFiles returns every file in the service account's Drive. Service
// accounts have their own storage quota; published artifacts pile up
// there until deleted.
func (p *Publisher) ListFiles(ctx context.Context) ([]DriveFile, error) {
	if !p.Available() {
		return nil, errors.Wrap(errors.ErrPublishUnavailable, "no Google credentials configured")
	}

	list, err := p.driveSvc.Files.List().
		PageSize(1000).
		Fields("files(id, name, mimeType, createdTime, size)").
		Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list drive files")
	}

	files := make([]DriveFile, 0, len(list.Files))
	for _, f := range list.Files {
		files = append(files, DriveFile{
			ID:          f.Id,
			Name:        f.Name,
			MimeType:    f.MimeType,
			CreatedTime: f.CreatedTime,
			Size:        f.Size,
		})
	}
	return files, nil
}

// CleanupReport summarizes a DeleteAll run
type CleanupReport struct {
	Deleted int
	Failed  int
	Bytes   int64
}

// DeleteAll removes every file from the service account's Drive. One
// failed deletion does not stop the rest; the report carries the
// per-file tally.
func (p *Publisher) DeleteAll(ctx context.Context, files []DriveFile) CleanupReport {
	var report CleanupReport
	for _, f := range files {
		if err := p.driveSvc.Files.Delete(f.ID).Context(ctx).Do(); err != nil {
			logger.Warnw("Failed to delete drive file", "id", f.ID, "name", f.Name, "error", err)
			report.Failed++
			continue
		}
		logger.Debugw("Deleted drive file", "id", f.ID, "name", f.Name)
		report.Deleted++
		report.Bytes += f.Size
	}
	return report
}
