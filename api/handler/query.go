package handler

import (
	"fmt"
	"strconv"

	"github.com/valyala/fasthttp"

	"github.com/taskdesk/backend/domain"
)

// Typed query-argument parsing with the same first-failure contract as the
// payload validation: the first offending parameter is named in the error.

func queryBool(args *fasthttp.Args, name string) (*bool, error) {
	raw := args.Peek(name)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.ParseBool(string(raw))
	if err != nil {
		return nil, domain.BadRequest(name, "value could not be parsed to a boolean")
	}
	return &v, nil
}

func queryInt(args *fasthttp.Args, name string) (*int, error) {
	raw := args.Peek(name)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.Atoi(string(raw))
	if err != nil {
		return nil, domain.BadRequest(name, "value is not a valid integer")
	}
	return &v, nil
}

func queryInt64(args *fasthttp.Args, name string) (*int64, error) {
	raw := args.Peek(name)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return nil, domain.BadRequest(name, "value is not a valid integer")
	}
	return &v, nil
}

func queryDate(args *fasthttp.Args, name string) (*domain.Date, error) {
	raw := args.Peek(name)
	if raw == nil {
		return nil, nil
	}
	v, err := domain.ParseDate(string(raw))
	if err != nil {
		return nil, domain.BadRequest(name, "invalid isoformat")
	}
	return &v, nil
}

func querySpace(args *fasthttp.Args, name string) (*domain.Space, error) {
	v, err := queryInt(args, name)
	if err != nil || v == nil {
		return nil, err
	}
	space := domain.Space(*v)
	if !space.Valid() {
		return nil, domain.BadRequest(name, fmt.Sprintf("%d is not a valid Space", *v))
	}
	return &space, nil
}

// queryLimit parses the page size: default max, bounded by (0, max].
func queryLimit(args *fasthttp.Args, max int) (int, error) {
	v, err := queryInt(args, "limit")
	if err != nil {
		return 0, err
	}
	if v == nil {
		return max, nil
	}
	if *v <= 0 {
		return 0, domain.BadRequest("limit", "ensure this value is greater than 0")
	}
	if *v > max {
		return 0, domain.BadRequest("limit", fmt.Sprintf("ensure this value is less than or equal to %d", max))
	}
	return *v, nil
}

// queryOffset parses the page offset: default 0, non-negative.
func queryOffset(args *fasthttp.Args) (int, error) {
	v, err := queryInt(args, "offset")
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, nil
	}
	if *v < 0 {
		return 0, domain.BadRequest("offset", "ensure this value is greater than or equal to 0")
	}
	return *v, nil
}
