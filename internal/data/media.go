package data

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cinemadia/internal/biz"
	"cinemadia/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

const defaultMaxUpload = 5 << 20

type mediaStore struct {
	root      string
	urlPrefix string
	maxBytes  int64
	log       *log.Helper
}

// NewMediaStore creates a store that writes uploads below the media root
func NewMediaStore(c *conf.Media, logger log.Logger) biz.MediaStore {
	s := &mediaStore{
		root:      "media",
		urlPrefix: "/media/",
		maxBytes:  defaultMaxUpload,
		log:       log.NewHelper(logger),
	}
	if c != nil {
		if c.Root != "" {
			s.root = c.Root
		}
		if c.UrlPrefix != "" {
			s.urlPrefix = c.UrlPrefix
		}
		if c.MaxUploadBytes > 0 {
			s.maxBytes = c.MaxUploadBytes
		}
	}
	return s
}

// Save writes r to <root>/<kind>/<uuid><ext> and returns its public URL.
func (s *mediaStore) Save(ctx context.Context, kind, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if kind == "" || strings.ContainsAny(kind, `/\.`) {
		return "", fmt.Errorf("invalid media kind %q", kind)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate file name: %w", err)
	}
	name := id.String() + strings.ToLower(filepath.Ext(filename))

	dir := filepath.Join(s.root, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}
	full := filepath.Join(dir, name)
	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}

	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && n > s.maxBytes {
		err = errTooLarge
	}
	if err != nil {
		_ = os.Remove(full)
		if errors.Is(err, errTooLarge) {
			return "", biz.ValidationError(map[string]string{
				"avatar": fmt.Sprintf("Ensure this file is at most %d bytes.", s.maxBytes),
			})
		}
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	s.log.Infof("stored %s upload %s (%d bytes)", kind, name, n)
	return path.Join(s.urlPrefix, kind, name), nil
}

var errTooLarge = errors.New("upload too large")
