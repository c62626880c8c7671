package coresdk

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// WithCore manages the core's lifecycle around a callback.
//
// This helper starts the core via a supervisor, creates a client for it,
// executes the callback function, and ensures cleanup when done: the client
// is closed and the core is shut down, concurrently, so a slow core stop
// does not delay releasing the client.
//
// The callback receives a Client that can reach the running core.
// If the callback returns an error, it is returned to the caller.
// Cleanup failures are logged as warnings and do not override the
// callback's error; shutdown is best effort.
//
// Example usage:
//
//	err := coresdk.WithCore(ctx, func(c coresdk.Client) error {
//	    if _, err := c.InitSteam(ctx); err != nil {
//	        return err
//	    }
//	    lobby, err := c.CreateLobby(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println("lobby id:", lobby.LobbyID)
//	    return nil
//	},
//	    coresdk.WithLogger(log),
//	)
func WithCore(ctx context.Context, fn func(Client) error, opts ...Option) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	options := applyOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	sup := NewSupervisor(opts...)
	if st := sup.Start(ctx); !st.Success {
		return fmt.Errorf("failed to start core: %s", st.Message)
	}

	client := NewClient(opts...)

	defer func() {
		var g errgroup.Group
		g.Go(func() error {
			return client.Close()
		})
		g.Go(func() error {
			sup.Shutdown(ctx)
			return nil
		})
		if closeErr := g.Wait(); closeErr != nil {
			log.Warn("failed to close client", "error", closeErr)
		}
	}()

	return fn(client)
}
