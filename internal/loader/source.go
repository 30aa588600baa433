package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Source fetches the raw bytes of a configuration resource. Implementations
// must be safe for concurrent use.
type Source interface {
	Fetch(ctx context.Context, kind Kind) ([]byte, error)
}

// HTTPSource fetches resources from fixed, well-known URLs.
type HTTPSource struct {
	Client       *http.Client
	RecipesURL   string
	TemplatesURL string
}

// NewHTTPSource creates an HTTPSource with a sane default timeout.
func NewHTTPSource(recipesURL, templatesURL string) *HTTPSource {
	return &HTTPSource{
		Client:       &http.Client{Timeout: 10 * time.Second},
		RecipesURL:   recipesURL,
		TemplatesURL: templatesURL,
	}
}

// Fetch performs a single GET of the resource for the given kind.
func (s *HTTPSource) Fetch(ctx context.Context, kind Kind) ([]byte, error) {
	url, err := s.urlFor(kind)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %d", kind, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (s *HTTPSource) urlFor(kind Kind) (string, error) {
	switch kind {
	case KindRecipes:
		return s.RecipesURL, nil
	case KindStepTemplates:
		return s.TemplatesURL, nil
	default:
		return "", fmt.Errorf("unknown resource kind %q", kind)
	}
}

// FileSource reads resources from the local filesystem. Used in development
// and tests.
type FileSource struct {
	RecipesPath   string
	TemplatesPath string
}

// Fetch reads the resource file for the given kind.
func (s *FileSource) Fetch(ctx context.Context, kind Kind) ([]byte, error) {
	switch kind {
	case KindRecipes:
		return os.ReadFile(s.RecipesPath)
	case KindStepTemplates:
		return os.ReadFile(s.TemplatesPath)
	default:
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}
}

// S3Source fetches resources from an S3 bucket.
type S3Source struct {
	Client       *s3.Client
	Bucket       string
	RecipesKey   string
	TemplatesKey string
}

// Fetch downloads the object for the given kind.
func (s *S3Source) Fetch(ctx context.Context, kind Kind) ([]byte, error) {
	var key string
	switch kind {
	case KindRecipes:
		key = s.RecipesKey
	case KindStepTemplates:
		key = s.TemplatesKey
	default:
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}

	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s from s3: %w", kind, err)
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}
