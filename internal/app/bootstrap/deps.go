// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/genielearn/genielearn/internal/appwrite"
)

// Deps holds back-end dependencies for the app. The service holds no
// durable state of its own; everything flows through the remote store
// client.
type Deps struct {
	Remote *appwrite.Client
}
