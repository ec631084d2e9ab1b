package mediator

import "reflect"

// Key identifies a handler slot: the concrete request type and, for typed
// requests, the declared result type. Response is nil for void requests.
type Key struct {
	Request  reflect.Type
	Response reflect.Type
}

// KeyFor returns the key under which handlers for Req producing R live.
func KeyFor[Req Request[R], R any]() Key {
	return Key{Request: reflect.TypeFor[Req](), Response: reflect.TypeFor[R]()}
}

// VoidKeyFor returns the key under which handlers for the void request Req live.
func VoidKeyFor[Req VoidRequest]() Key {
	return Key{Request: reflect.TypeFor[Req]()}
}

// KeyOf returns the key for the runtime type of req and the declared R.
func KeyOf[R any](req Request[R]) Key {
	return Key{Request: reflect.TypeOf(req), Response: reflect.TypeFor[R]()}
}

// VoidKeyOf returns the key for the runtime type of req.
func VoidKeyOf(req VoidRequest) Key {
	return Key{Request: reflect.TypeOf(req)}
}

// IsVoid reports whether the key belongs to a void request.
func (k Key) IsVoid() bool { return k.Response == nil }

// String renders the key as "Request -> Response", or just "Request" for
// void requests.
func (k Key) String() string {
	if k.IsVoid() {
		return TypeName(k.Request)
	}
	return TypeName(k.Request) + " -> " + TypeName(k.Response)
}

// TypeName returns a readable name for t, e.g. "orders.PlaceOrder". The
// package qualifier is kept so that same-named request types from different
// packages stay distinguishable in errors and logs.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// RequestName returns the type name of a request value.
func RequestName(req any) string {
	return TypeName(reflect.TypeOf(req))
}
