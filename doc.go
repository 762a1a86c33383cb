// Package condor2nav provides the path-addressed file access layer of the
// Condor flight-plan translator. A single path string selects one of two
// incompatible storage backends: the local filesystem, or a paired
// navigation device reachable only through a connection-oriented
// device-sync channel.
//
// The backend is chosen purely from the path prefix:
//
//	\\server\share\dir\file   network share (UNC)
//	\MyDevice\dir\file        remote device (single leading separator)
//	C:\dir\file, dir\file     local filesystem
//
// Both `\` and `/` are accepted as segment separators.
//
// # Basic Usage
//
//	import (
//	    condor2nav "github.com/flyasky/Condor2Nav"
//	    "github.com/flyasky/Condor2Nav/driver/local"
//	    "github.com/flyasky/Condor2Nav/driver/memchan"
//	)
//
//	ch := memchan.New()
//	router := condor2nav.NewRouter(local.New(), condor2nav.NewDeviceBackend(ch))
//
//	ctx := context.Background()
//
//	// Read a file from whichever backend owns the path
//	buf, err := router.OpenForRead(ctx, `\MyDevice\config\task.fpl`)
//
//	// Create every directory level, idempotently
//	err = router.EnsureDirectory(ctx, `output\targets\xcsoar`)
//
//	// Existence check that never fails
//	ok := router.Exists(ctx, `scenery\landscape.trn`)
//
// Alternatively, build the router from environment configuration with the
// registered backend and channel factories:
//
//	import (
//	    _ "github.com/flyasky/Condor2Nav/driver/local"
//	    _ "github.com/flyasky/Condor2Nav/driver/memchan"
//	)
//
//	if err := condor2nav.Init(); err != nil { ... }
//	router, err := condor2nav.Default()
//
// # Error Handling
//
// Failures are typed and carried entirely in the returned error value; the
// package never logs:
//
//	_, err := router.OpenForRead(ctx, path)
//	if condor2nav.IsNotExist(err) { ... }
//
//	var chErr *condor2nav.ChannelError
//	if errors.As(err, &chErr) { ... } // the device side failed
//
// # Concurrency
//
// The execution model is single-threaded and synchronous. The device-sync
// channel is a shared process-wide resource and the local read path
// temporarily changes the process working directory, so callers must
// serialize access to a Router; the package adds no internal locking around
// operations.
package condor2nav
