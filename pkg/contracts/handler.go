package contracts

import "github.com/julienschmidt/httprouter"

// Handler is implemented by every domain handler so the application can
// mount them on a shared router.
type Handler interface {
	RegisterRoutes(router *httprouter.Router)
}
