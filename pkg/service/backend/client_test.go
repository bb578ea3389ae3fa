package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/domain/types"
	"github.com/secmon-lab/roster/pkg/service/backend"
)

type recordedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   string
}

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *[]recordedRequest) {
	var recorded []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		recorded = append(recorded, recordedRequest{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Auth:   r.Header.Get("Authorization"),
			Body:   string(body),
		})
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &recorded
}

func TestListDepartments(t *testing.T) {
	srv, recorded := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Sales"},{"id":2,"name":"Ops"}]`))
	})

	client, err := backend.New(srv.URL, backend.WithBearerToken("secret"))
	gt.NoError(t, err).Required()

	departments, err := client.ListDepartments(context.Background())
	gt.NoError(t, err).Required()
	gt.Equal(t, departments, []model.Department{{ID: 1, Name: "Sales"}, {ID: 2, Name: "Ops"}})

	gt.Equal(t, len(*recorded), 1)
	gt.Equal(t, (*recorded)[0].Method, http.MethodGet)
	gt.Equal(t, (*recorded)[0].Path, "/departments")
	gt.Equal(t, (*recorded)[0].Auth, "Bearer secret")
}

func TestGetEmployee(t *testing.T) {
	srv, recorded := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":42,"name":"Maria","email":"maria@example.com","department":[{"id":3,"name":"HR"}]}`))
	})

	client, err := backend.New(srv.URL + "/")
	gt.NoError(t, err).Required()

	employee, err := client.GetEmployee(context.Background(), "42")
	gt.NoError(t, err).Required()
	gt.Equal(t, employee.ID, types.EmployeeID("42"))
	gt.Equal(t, employee.Name, "Maria")
	gt.Equal(t, employee.Department, []model.Department{{ID: 3, Name: "HR"}})

	gt.Equal(t, (*recorded)[0].Path, "/employees/42")
	gt.Equal(t, (*recorded)[0].Auth, "")
}

func TestGetEmployeeEscapesID(t *testing.T) {
	srv, recorded := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"a/b","name":"x","email":"x@y.z","department":[]}`))
	})

	client, err := backend.New(srv.URL)
	gt.NoError(t, err).Required()

	_, err = client.GetEmployee(context.Background(), "a/b")
	gt.NoError(t, err)
	gt.Equal(t, (*recorded)[0].Path, "/employees/a%2Fb")
}

func TestCreateAndUpdateEmployee(t *testing.T) {
	values := model.EmployeeValues{
		Name:       "Maria",
		Email:      "maria@example.com",
		Department: []model.Department{{ID: 1, Name: "Sales"}},
	}

	t.Run("create posts to the collection without id", func(t *testing.T) {
		srv, recorded := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":7,"name":"Maria","email":"maria@example.com","department":[{"id":1,"name":"Sales"}]}`))
		})
		client, err := backend.New(srv.URL)
		gt.NoError(t, err).Required()

		created, err := client.CreateEmployee(context.Background(), values)
		gt.NoError(t, err).Required()
		gt.Equal(t, created.ID, types.EmployeeID("7"))

		req := (*recorded)[0]
		gt.Equal(t, req.Method, http.MethodPost)
		gt.Equal(t, req.Path, "/employees")

		var body map[string]any
		gt.NoError(t, json.Unmarshal([]byte(req.Body), &body)).Required()
		gt.Equal(t, len(body), 3)
		gt.Equal(t, body["name"], any("Maria"))
		_, hasID := body["id"]
		gt.False(t, hasID)
	})

	t.Run("update puts to the record", func(t *testing.T) {
		srv, recorded := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		client, err := backend.New(srv.URL)
		gt.NoError(t, err).Required()

		updated, err := client.UpdateEmployee(context.Background(), "42", values)
		gt.NoError(t, err).Required()
		gt.Equal(t, updated.ID, types.EmployeeID("42"))

		gt.Equal(t, (*recorded)[0].Method, http.MethodPut)
		gt.Equal(t, (*recorded)[0].Path, "/employees/42")
	})
}

func TestErrors(t *testing.T) {
	t.Run("non-2xx is a server error and is not retried", func(t *testing.T) {
		srv, recorded := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`down`))
		})
		client, err := backend.New(srv.URL)
		gt.NoError(t, err).Required()

		_, err = client.CreateEmployee(context.Background(), model.EmployeeValues{})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrBackendServer))
		gt.Equal(t, len(*recorded), 1)
	})

	t.Run("undecodable body is a server error", func(t *testing.T) {
		srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		})
		client, err := backend.New(srv.URL)
		gt.NoError(t, err).Required()

		_, err = client.ListDepartments(context.Background())
		gt.True(t, errors.Is(err, model.ErrBackendServer))
	})

	t.Run("unreachable backend is a network error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		client, err := backend.New(url)
		gt.NoError(t, err).Required()

		_, err = client.ListDepartments(context.Background())
		gt.True(t, errors.Is(err, model.ErrBackendNetwork))
	})

	t.Run("timeout is a network error", func(t *testing.T) {
		srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		})
		client, err := backend.New(srv.URL, backend.WithTimeout(20*time.Millisecond))
		gt.NoError(t, err).Required()

		_, err = client.GetEmployee(context.Background(), "1")
		gt.True(t, errors.Is(err, model.ErrBackendNetwork))
	})

	t.Run("invalid base URL", func(t *testing.T) {
		_, err := backend.New("ftp://example.com")
		gt.Error(t, err)
	})
}
