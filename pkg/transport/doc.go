// Package transport defines the request-sending capability consumed by the
// watch package and ships a default implementation backed by net/http.
//
// The Transport interface is intentionally small: one Send call that issues a
// single cancellable request and resolves to a fully drained Response.
// Cancellation flows through the context, so an in-flight request is aborted
// by canceling the context that started it.
//
// # Default client
//
// Client is the stock implementation. It pools connections, validates the
// target and method before touching the network, stamps an X-Request-Id
// header on requests that lack one, and treats any non-2xx status as a
// failure, returned as *StatusError with the drained response attached:
//
//	client := transport.NewClient(transport.WithTimeout(10 * time.Second))
//	resp, err := client.Send(ctx, "https://api.example.com/user", transport.Options{})
//	if se, ok := transport.IsStatusError(err); ok {
//	    log.Printf("server said %d: %s", se.Code, se.Response.Text())
//	}
//
// Clients can also be configured from the environment via Config and
// NewClientFromEnv (FETCHSTATE_HTTP_* variables).
//
// # Custom transports
//
// Anything that satisfies Transport plugs into the watch package: wrap the
// default Client to add authentication, or provide a stub in tests built on
// NewResponse. Policies like retries or caching belong in such wrappers, not
// in the lifecycle layer.
package transport
