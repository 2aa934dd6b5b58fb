package contracts

import "github.com/julienschmidt/httprouter"

// Handler is implemented by every HTTP handler group that can be mounted
// on a service router.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}
