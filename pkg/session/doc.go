// Package session keeps per-visitor gallery view state between requests.
//
// The page is rendered on the server, so the carousel index and the
// highlighted filter chip must survive the round trip of every click.
// Each visitor gets a random session ID (a cookie) and a ViewState stored
// under a deterministic key:
//
//	gallery:session:<id>
//
// Two stores implement Store:
//
//   - RedisStore keeps JSON encoded state in Redis with a TTL derived from
//     ViewState.Expires, so abandoned sessions disappear on their own.
//   - MemoryStore keeps state in process memory, for single instance
//     deployments without Redis and for tests.
//
// # Basic Usage
//
//	store := session.NewRedisStore(redis.NewClient(&redis.Options{
//		Addr: "localhost:6379",
//	}))
//
//	key := session.Key{SessionID: id}
//	state, err := store.Load(ctx, key)
//	if errors.Is(err, session.ErrStateMiss) {
//		state = session.NewViewState(30 * time.Minute)
//	}
//
//	state.CarouselIndex = 2
//	state.Touch(30 * time.Minute)
//	if err := store.Save(ctx, key, state); err != nil {
//		return err
//	}
//
// # Metrics
//
//   - gallery_session_hits_total{store} - State found
//   - gallery_session_misses_total{store} - State absent or expired
//   - gallery_session_errors_total{store, operation} - Store failures
package session
