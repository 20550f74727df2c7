/*
Package resilience provides the circuit breaker that guards calls to the store.

# States

- Closed: Normal operation, requests pass through
- Open: Store considered unavailable, requests fail immediately
- Half-Open: Testing if the store recovered, limited requests allowed

	Closed --[failures]-> Open --[timeout]-> Half-Open --[successes]-> Closed
	                                           |
	                                    [failure]
	                                           |
	                                           v
	                                         Open

# Usage

	breaker := resilience.New("playstore", resilience.Settings{
		MaxRequests: 3,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, playstore.ErrNotFound)
		},
	})

	body, err := resilience.Execute(breaker, func() ([]byte, error) {
		return fetch(ctx)
	})
*/
package resilience
