package handler

import (
	"testing"

	"github.com/valyala/fasthttp"

	"github.com/taskdesk/backend/domain"
)

func parseArgs(query string) *fasthttp.Args {
	args := &fasthttp.Args{}
	args.Parse(query)
	return args
}

func TestQueryBool(t *testing.T) {
	v, err := queryBool(parseArgs("completed=true"), "completed")
	if err != nil || v == nil || !*v {
		t.Errorf("got %v, %v", v, err)
	}

	v, err = queryBool(parseArgs(""), "completed")
	if err != nil || v != nil {
		t.Errorf("absent parameter must yield nil, got %v, %v", v, err)
	}

	_, err = queryBool(parseArgs("completed=maybe"), "completed")
	if err == nil || err.Error() != "completed value could not be parsed to a boolean" {
		t.Errorf("got %v", err)
	}
}

func TestQuerySpace(t *testing.T) {
	v, err := querySpace(parseArgs("space=2"), "space")
	if err != nil || v == nil || *v != domain.SpaceWork {
		t.Errorf("got %v, %v", v, err)
	}

	_, err = querySpace(parseArgs("space=0"), "space")
	if err == nil || err.Error() != "space 0 is not a valid Space" {
		t.Errorf("got %v", err)
	}

	_, err = querySpace(parseArgs("space=work"), "space")
	if err == nil || err.Error() != "space value is not a valid integer" {
		t.Errorf("got %v", err)
	}
}

func TestQueryDate(t *testing.T) {
	v, err := queryDate(parseArgs("due_from=2026-09-01"), "due_from")
	if err != nil || v == nil {
		t.Fatalf("got %v, %v", v, err)
	}
	if v.String() != "2026-09-01" {
		t.Errorf("date = %s", v)
	}

	_, err = queryDate(parseArgs("due_from=01.09.2026"), "due_from")
	if err == nil || err.Error() != "due_from invalid isoformat" {
		t.Errorf("got %v", err)
	}
}

func TestQueryLimit(t *testing.T) {
	limit, err := queryLimit(parseArgs(""), 50)
	if err != nil || limit != 50 {
		t.Errorf("default limit = %d, %v", limit, err)
	}

	limit, err = queryLimit(parseArgs("limit=10"), 50)
	if err != nil || limit != 10 {
		t.Errorf("limit = %d, %v", limit, err)
	}

	_, err = queryLimit(parseArgs("limit=0"), 50)
	if err == nil || err.Error() != "limit ensure this value is greater than 0" {
		t.Errorf("got %v", err)
	}

	_, err = queryLimit(parseArgs("limit=51"), 50)
	if err == nil || err.Error() != "limit ensure this value is less than or equal to 50" {
		t.Errorf("got %v", err)
	}
}

func TestQueryOffset(t *testing.T) {
	offset, err := queryOffset(parseArgs(""))
	if err != nil || offset != 0 {
		t.Errorf("default offset = %d, %v", offset, err)
	}

	offset, err = queryOffset(parseArgs("offset=100"))
	if err != nil || offset != 100 {
		t.Errorf("offset = %d, %v", offset, err)
	}

	_, err = queryOffset(parseArgs("offset=-1"))
	if err == nil || err.Error() != "offset ensure this value is greater than or equal to 0" {
		t.Errorf("got %v", err)
	}
}
