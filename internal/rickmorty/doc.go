// Package rickmorty provides an HTTP client for the Rick and Morty REST API.
//
// # Overview
//
// The client covers the read-only character, location and episode
// endpoints. Every request goes through a single retrying fetch that owns
// the failure policy, so list and detail calls behave the same way.
//
// # Client Usage
//
//	client, err := rickmorty.New(
//		rickmorty.WithTimeout(5*time.Second),
//		rickmorty.WithRetryAttempts(2),
//	)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	page, err := client.ListCharacters(ctx, rickmorty.CharacterFilter{
//		Name:   "smith",
//		Status: rickmorty.StatusAlive,
//	}, 1)
//
// Default returns a shared client built from DefaultConfig. It is
// constructed once and never mutated.
//
// # API Endpoints
//
//   - GET /character?page=&name=&status=&species=&type=&gender=
//   - GET /character/{id} and /character/{id1,id2,...}
//   - GET /location?page=&name=&type=&dimension=
//   - GET /location/{id} and /location/{id1,id2,...}
//   - GET /episode?page=&name=&episode=
//   - GET /episode/{id} and /episode/{id1,id2,...}
//
// Only non-empty filter fields are sent. Pages below 1 are sent as 1.
//
// # Retry Policy
//
//   - 404 responses fail immediately with an error matching ErrNotFound
//   - Any other failure (transport, timeout, non-2xx, malformed body) is
//     retried up to RetryAttempts more times
//   - The pause after failed attempt n is 2^n seconds (1s, 2s, 4s, ...),
//     capped at MaxBackoff, and never follows the final attempt
//   - When the budget runs out the last cause is returned wrapped in
//     ErrRetriesExhausted
//   - Cancelling the context ends the loop early with ctx.Err()
//
// # Errors
//
//	errors.Is(err, rickmorty.ErrNotFound)          // 404
//	errors.Is(err, rickmorty.ErrMalformedResponse) // body did not decode
//	errors.Is(err, rickmorty.ErrRetriesExhausted)  // gave up
//	var apiErr *rickmorty.APIError                 // status code details
//
// # Thread Safety
//
// Client is safe for concurrent use. Calls share nothing except the
// underlying http.Client; there is no cache.
package rickmorty
