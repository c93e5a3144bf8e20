package urlparser

import (
	"errors"
	"strconv"
	"strings"
)

var ErrUnknownPath = errors.New("unknown path")

type UserPath struct {
	ById     bool
	Id       int
	Username string
}

// ParseUserPath handles /api/user/id/{id} and /api/user/{username}.
func ParseUserPath(path string) (UserPath, error) {
	parts := split(path)

	switch {
	case len(parts) == 4 && parts[2] == "id":
		id, err := strconv.Atoi(parts[3])
		if err != nil {
			return UserPath{}, errors.New("invalid user id, must be int")
		}
		return UserPath{ById: true, Id: id}, nil
	case len(parts) == 3 && parts[2] != "":
		return UserPath{Username: parts[2]}, nil
	default:
		return UserPath{}, ErrUnknownPath
	}
}

type ItemPath struct {
	ByName bool
	Id     int
	Name   string
}

// ParseItemPath handles /api/item/{id} and /api/item/name/{name}.
func ParseItemPath(path string) (ItemPath, error) {
	parts := split(path)

	switch {
	case len(parts) == 4 && parts[2] == "name":
		return ItemPath{ByName: true, Name: parts[3]}, nil
	case len(parts) == 3 && parts[2] != "":
		id, err := strconv.Atoi(parts[2])
		if err != nil {
			return ItemPath{}, errors.New("invalid item id, must be int")
		}
		return ItemPath{Id: id}, nil
	default:
		return ItemPath{}, ErrUnknownPath
	}
}

type OrderPath struct {
	Submit   bool
	Username string
}

// ParseOrderPath handles /api/order/submit/{username} and
// /api/order/history/{username}.
func ParseOrderPath(path string) (OrderPath, error) {
	parts := split(path)

	if len(parts) != 4 || parts[3] == "" {
		return OrderPath{}, ErrUnknownPath
	}

	switch parts[2] {
	case "submit":
		return OrderPath{Submit: true, Username: parts[3]}, nil
	case "history":
		return OrderPath{Username: parts[3]}, nil
	default:
		return OrderPath{}, ErrUnknownPath
	}
}

func split(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}
