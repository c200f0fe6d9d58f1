package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/emre/alumnihub/internal/pkg/logger"
)

// LocalStorage handles saving uploaded files to the local filesystem.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // URL prefix under which the directory is served
}

// NewLocalStorage creates a new LocalStorage instance.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// Save stores an uploaded file under the given subdirectory and returns the
// public path clients use to fetch it. A nil header is not an error: the
// caller simply uploaded no file.
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	// Unique filename to prevent collisions
	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}

	publicPath := ls.baseURL
	if subPath != "" {
		publicPath += "/" + subPath
	}
	return publicPath + "/" + uniqueFilename, nil
}

// Delete removes a previously stored file given its public path. Missing
// files are ignored.
func (ls *LocalStorage) Delete(publicPath string) error {
	rel, err := filepath.Rel(ls.baseURL, publicPath)
	if err != nil || rel == "" {
		return nil
	}
	err = os.Remove(filepath.Join(ls.basePath, rel))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete stored file: %w", err)
	}
	return nil
}
