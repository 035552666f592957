package gcs

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/juju/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"petclinic/internal/domain/photos"
)

const (
	uploadTimeout = 2 * time.Minute
	deleteTimeout = 30 * time.Second
	readTimeout   = 2 * time.Minute
	listTimeout   = 30 * time.Second
)

// Store guarda las fotos como objetos de un bucket, opcionalmente bajo un prefijo.
type Store struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ photos.Store = (*Store)(nil)

type Options struct {
	Bucket string
	Prefix string
	// Endpoint permite apuntar a un emulador (fake-gcs-server).
	Endpoint string
}

// ClientOptionsFromEnv lee GOOGLE_APPLICATION_CREDENTIALS_JSON (json inline)
// o GOOGLE_APPLICATION_CREDENTIALS (path).
func ClientOptionsFromEnv() []option.ClientOption {
	creds := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"))
	if creds == "" {
		creds = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	if creds == "" {
		return nil
	}
	if strings.HasPrefix(creds, "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(creds))}
	}
	return []option.ClientOption{option.WithCredentialsFile(creds)}
}

func New(ctx context.Context, opts Options, clientOpts ...option.ClientOption) (*Store, error) {
	if strings.TrimSpace(opts.Bucket) == "" {
		return nil, errors.NotValidf("empty gcs bucket")
	}

	clientOpts = append(clientOpts, option.WithScopes(storage.ScopeReadWrite))
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint), option.WithoutAuthentication())
	}

	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, errors.Annotate(err, "create storage client")
	}
	return &Store{client: client, bucket: opts.Bucket, prefix: strings.Trim(opts.Prefix, "/")}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Save(ctx context.Context, name, contentType string, r io.Reader) error {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	w := s.object(name).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return errors.Annotatef(err, "write gcs object %s", name)
	}
	if err := w.Close(); err != nil {
		return errors.Annotatef(err, "close gcs writer %s", name)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, name string) (io.ReadCloser, string, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)

	r, err := s.object(name).NewReader(ctx)
	if err != nil {
		cancel()
		return nil, "", mapErr(err, name)
	}

	ct := r.Attrs.ContentType
	if ct == "" {
		ct = photos.ContentType(name)
	}
	return &cancelReader{ReadCloser: r, cancel: cancel}, ct, nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, deleteTimeout)
	defer cancel()

	if err := s.object(name).Delete(ctx); err != nil {
		return mapErr(err, name)
	}
	return nil
}

// Names lista los objetos del prefijo (sin el prefijo).
func (s *Store) Names(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	var q *storage.Query
	if s.prefix != "" {
		q = &storage.Query{Prefix: s.prefix + "/"}
	}

	out := make([]string, 0)
	it := s.client.Bucket(s.bucket).Objects(ctx, q)
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Annotate(err, "list gcs objects")
		}
		out = append(out, strings.TrimPrefix(attrs.Name, s.keyPrefix()))
	}
	return out, nil
}

func (s *Store) object(name string) *storage.ObjectHandle {
	return s.client.Bucket(s.bucket).Object(s.keyPrefix() + name)
}

func (s *Store) keyPrefix() string {
	if s.prefix == "" {
		return ""
	}
	return s.prefix + "/"
}

func mapErr(err error, name string) error {
	if errors.Is(err, storage.ErrObjectNotExist) {
		return errors.Annotatef(photos.ErrNotFound, "%s", name)
	}
	return errors.Annotatef(err, "gcs object %s", name)
}

// cancelReader libera el contexto de la lectura al cerrar.
type cancelReader struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelReader) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
