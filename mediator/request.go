package mediator

// VoidRequest is a request that produces no result.
// Embed Void to satisfy it.
type VoidRequest interface {
	voidRequest()
}

// Request is a request that produces a result of type R.
// Embed Returns[R] to satisfy it.
type Request[R any] interface {
	returns(R)
}

// Void marks a struct as a VoidRequest.
type Void struct{}

func (Void) voidRequest() {}

// Returns marks a struct as a Request[R].
type Returns[R any] struct{}

func (Returns[R]) returns(R) {}
