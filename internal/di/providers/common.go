package providers

import "time"

// shutdownTimeout bounds graceful shutdown of the HTTP server and any
// other Shutdownable handles.
const shutdownTimeout = 30 * time.Second
