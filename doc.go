// Package coresdk provides a Go SDK for the connect-tool core process.
//
// The core is a separate executable (connect-tool-core) that owns the Steam
// lobby and VPN machinery. This SDK manages the core's lifecycle and exposes
// its JSON-RPC surface as typed Go methods over a local endpoint: a unix
// socket on POSIX systems, a named pipe on Windows.
//
// # Basic Usage
//
// Create a client and call the typed methods. No connect step is needed; in
// the default dial-per-call mode every call opens a fresh connection, which
// matches the core's one-request-per-connection serving model:
//
//	ctx := context.Background()
//	client := coresdk.NewClient()
//	defer client.Close()
//
//	if _, err := client.InitSteam(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	lobby, err := client.CreateLobby(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("created lobby", lobby.LobbyID)
//
// # Managing the Core Process
//
// The client assumes the core is already listening. Use a Supervisor to
// spawn and stop it, or WithCore for combined lifecycle management:
//
//	// Using WithCore for automatic start and shutdown
//	err := coresdk.WithCore(ctx, func(c coresdk.Client) error {
//	    if _, err := c.InitSteam(ctx); err != nil {
//	        return err
//	    }
//	    _, err := c.StartVPN(ctx, "10.0.0.2", "255.255.255.0")
//	    return err
//	},
//	    coresdk.WithLogger(slog.Default()),
//	)
//
//	// Or using a Supervisor directly for more control
//	sup := coresdk.NewSupervisor(coresdk.WithLogger(slog.Default()))
//	defer sup.Shutdown(ctx)
//
//	if st := sup.Start(ctx); !st.Success {
//	    log.Fatal(st.Message)
//	}
//
// Supervisor operations report outcomes as Status values rather than errors,
// so results can be relayed to a UI without unwrapping.
//
// # Logging
//
// For detailed operation tracking, use WithLogger:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	client := coresdk.NewClient(
//	    coresdk.WithLogger(logger),
//	)
//
// # Error Handling
//
// The SDK provides typed errors for different failure scenarios:
//
//	ack, err := client.JoinLobby(ctx, lobbyID)
//	if err != nil {
//	    if connErr, ok := errors.AsType[*coresdk.ConnectError](err); ok {
//	        log.Fatalf("core not reachable at %s: %v", connErr.Endpoint, connErr.Err)
//	    }
//	    if rpcErr, ok := errors.AsType[*coresdk.RPCError](err); ok {
//	        log.Fatalf("core rejected %s: %s", rpcErr.Method, rpcErr.Message)
//	    }
//	    log.Fatal(err)
//	}
//
// # Requirements
//
// The supervisor expects the core executable next to the frontend binary,
// named connect-tool-core (connect-tool-core.exe on Windows). You can
// specify a custom path using the WithCorePath option.
package coresdk
