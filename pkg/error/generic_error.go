package error

// GenericError is implemented by every error the tool and REST layers know how to render.
type GenericError interface {
	// ErrCode returns the machine readable error kind.
	ErrCode() string
	// StatusCode returns the HTTP status used by the REST surface.
	StatusCode() int
	Error() string
}

// DetailedError is a GenericError that carries contextual fields for the caller.
type DetailedError interface {
	GenericError
	Details() map[string]any
}

type detailed struct {
	GenericError
	details map[string]any
}

// WithDetails attaches contextual fields to err. Later keys win on collision.
func WithDetails(err GenericError, details map[string]any) DetailedError {
	merged := make(map[string]any, len(details))
	if d, ok := err.(DetailedError); ok {
		for k, v := range d.Details() {
			merged[k] = v
		}
	}
	for k, v := range details {
		merged[k] = v
	}
	return &detailed{GenericError: unwrapDetailed(err), details: merged}
}

func unwrapDetailed(err GenericError) GenericError {
	if d, ok := err.(*detailed); ok {
		return d.GenericError
	}
	return err
}

func (d *detailed) Details() map[string]any {
	return d.details
}

func (d *detailed) Unwrap() error {
	return d.GenericError
}
