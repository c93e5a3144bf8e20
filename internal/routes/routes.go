package routes

import (
	"errors"
	"net/http"

	carthandler "shopapi/internal/handlers/cart"
	itemhandler "shopapi/internal/handlers/item"
	orderhandler "shopapi/internal/handlers/order"
	userhandler "shopapi/internal/handlers/user"
	"shopapi/pkg/lib/urlparser"
)

type Routes struct {
	userHandler  *userhandler.Handler
	itemHandler  *itemhandler.Handler
	cartHandler  *carthandler.Handler
	orderHandler *orderhandler.Handler
}

func New(
	userHandler *userhandler.Handler,
	itemHandler *itemhandler.Handler,
	cartHandler *carthandler.Handler,
	orderHandler *orderhandler.Handler,
) *Routes {
	return &Routes{
		userHandler:  userHandler,
		itemHandler:  itemHandler,
		cartHandler:  cartHandler,
		orderHandler: orderHandler,
	}
}

func (r *Routes) Register(mux *http.ServeMux) {
	// POST /api/user/create
	mux.HandleFunc("/api/user/create", r.createUser)
	mux.HandleFunc("/api/user/", r.userPath)
	// GET /api/item
	mux.HandleFunc("/api/item", r.listItems)
	mux.HandleFunc("/api/item/", r.itemPath)
	// POST /api/cart/addToCart
	mux.HandleFunc("/api/cart/addToCart", r.addToCart)
	// POST /api/cart/removeFromCart
	mux.HandleFunc("/api/cart/removeFromCart", r.removeFromCart)
	mux.HandleFunc("/api/order/", r.orderPath)
}

func (r *Routes) createUser(ww http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.NotFound(ww, req)
		return
	}
	r.userHandler.Create(ww, req)
}

func (r *Routes) userPath(ww http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		http.NotFound(ww, req)
		return
	}

	params, err := urlparser.ParseUserPath(req.URL.Path)
	if err != nil {
		writeParseError(ww, req, err)
		return
	}

	switch {
	case params.ById:
		// GET /api/user/id/{id}
		r.userHandler.FindById(ww, req, params.Id)
	default:
		// GET /api/user/{username}
		r.userHandler.FindByUsername(ww, req, params.Username)
	}
}

func (r *Routes) listItems(ww http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		http.NotFound(ww, req)
		return
	}
	r.itemHandler.List(ww, req)
}

func (r *Routes) itemPath(ww http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		http.NotFound(ww, req)
		return
	}

	params, err := urlparser.ParseItemPath(req.URL.Path)
	if err != nil {
		writeParseError(ww, req, err)
		return
	}

	switch {
	case params.ByName:
		// GET /api/item/name/{name}
		r.itemHandler.GetByName(ww, req, params.Name)
	default:
		// GET /api/item/{id}
		r.itemHandler.GetById(ww, req, params.Id)
	}
}

func (r *Routes) addToCart(ww http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.NotFound(ww, req)
		return
	}
	r.cartHandler.AddToCart(ww, req)
}

func (r *Routes) removeFromCart(ww http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.NotFound(ww, req)
		return
	}
	r.cartHandler.RemoveFromCart(ww, req)
}

func (r *Routes) orderPath(ww http.ResponseWriter, req *http.Request) {
	params, err := urlparser.ParseOrderPath(req.URL.Path)
	if err != nil {
		writeParseError(ww, req, err)
		return
	}

	switch {
	case params.Submit && req.Method == http.MethodPost:
		// POST /api/order/submit/{username}
		r.orderHandler.Submit(ww, req, params.Username)
	case !params.Submit && req.Method == http.MethodGet:
		// GET /api/order/history/{username}
		r.orderHandler.History(ww, req, params.Username)
	default:
		http.NotFound(ww, req)
	}
}

func writeParseError(ww http.ResponseWriter, req *http.Request, err error) {
	if errors.Is(err, urlparser.ErrUnknownPath) {
		http.NotFound(ww, req)
		return
	}
	http.Error(ww, err.Error(), http.StatusBadRequest)
}
