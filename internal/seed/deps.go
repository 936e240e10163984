package seed

import "context"

// backendClient abstracts the HTTP transport so tests can inject fakes.
type backendClient interface {
	Post(ctx context.Context, path, token string, body any) (Response, error)
}
