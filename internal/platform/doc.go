package platform

// Package platform contains OS integration glue: filesystem helpers and
// opening/revealing saved files with the system file manager or default app.
