package drive

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/oauth2/google"
	driveapi "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"possales/internal"
	"possales/internal/config"
)

// Connector reads export workbooks from a raw Drive folder and archives them
// by moving them to the archive folder.
type Connector struct {
	service         *driveapi.Service
	rawFolderID     string
	archiveFolderID string
}

func NewConnector(cfg config.Config) (*Connector, error) {
	if err := cfg.Require("DRIVE_CREDENTIALS_FILE", cfg.DriveCredentialsFile); err != nil {
		return nil, err
	}
	if err := cfg.Require("DRIVE_RAW_FOLDER_ID", cfg.DriveRawFolderID); err != nil {
		return nil, err
	}
	if err := cfg.Require("DRIVE_ARCHIVE_FOLDER_ID", cfg.DriveArchiveFolderID); err != nil {
		return nil, err
	}

	credentials, err := os.ReadFile(cfg.DriveCredentialsFile)
	if err != nil {
		return nil, err
	}
	jwtConfig, err := google.JWTConfigFromJSON(credentials, driveapi.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}

	ctx := context.Background()
	svc, err := driveapi.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		return nil, err
	}

	return &Connector{
		service:         svc,
		rawFolderID:     cfg.DriveRawFolderID,
		archiveFolderID: cfg.DriveArchiveFolderID,
	}, nil
}

func (c *Connector) Provider() string { return "drive" }

func (c *Connector) ListPending() ([]internal.SourceFile, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", c.rawFolderID)
	resp, err := c.service.Files.List().Q(query).Fields("files(id, name)").Do()
	if err != nil {
		return nil, err
	}

	out := make([]internal.SourceFile, 0, len(resp.Files))
	for _, f := range resp.Files {
		out = append(out, internal.SourceFile{ID: f.Id, Name: f.Name})
	}
	return out, nil
}

func (c *Connector) ReadContent(id string) ([]byte, error) {
	resp, err := c.service.Files.Get(id).Download()
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// MarkProcessed moves the file out of the raw folder into the archive.
func (c *Connector) MarkProcessed(id string) error {
	_, err := c.service.Files.Update(id, nil).
		AddParents(c.archiveFolderID).
		RemoveParents(c.rawFolderID).
		Fields("id").
		Do()
	return err
}
