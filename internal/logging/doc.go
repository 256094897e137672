// Package logging provides structured logging for mascotas-admin.
//
// It wraps a package-level zap logger. Logging is silent until Initialize is
// called with a level (or MASCOTAS_LOG_LEVEL is set), so CLI output and the
// admin panel are never interleaved with log lines by accident.
//
//	if err := logging.Initialize("debug", "/tmp/mascotas-admin.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.Error("Failed to load pets", zap.Error(err))
//
// The interactive panel owns the terminal, so it should always be given a
// file as output. Console outputs ("stdout", "stderr") use the colourised
// console encoder; file outputs are written as JSON lines.
//
// All functions are safe for concurrent use.
package logging
