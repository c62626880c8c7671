// Package coretest provides an in-process fake core for testing SDK consumers.
//
// A [Server] listens on a unix socket and answers the core's JSON-RPC
// protocol with scripted handlers. Methods with no handler are rejected the
// way a real core rejects unknown methods, so error paths are exercised for
// free. The server counts connections and per-method calls, which makes the
// difference between dial-per-call and persistent channels observable.
//
// Example usage in a test file:
//
//	srv := coretest.Start(t)
//	srv.Handle("init_steam", coretest.Ack("steam initialized"))
//	srv.Handle("create_lobby", coretest.Result(coresdk.CreateLobbyResult{LobbyID: "109775241"}))
//
//	client := coresdk.NewClient(coresdk.WithEndpoint(srv.Endpoint()))
//	defer client.Close()
//
//	if _, err := client.InitSteam(ctx); err != nil {
//	    t.Fatal(err)
//	}
package coretest
