package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
)

func (e *TestEnv) Login(t *testing.T) {
	t.Helper()

	body := map[string]string{"email": e.AdminEmail, "password": e.AdminPass}
	e.do(t, http.MethodPost, "/auth/login", body, http.StatusNoContent, nil)
}

func (e *TestEnv) Logout(t *testing.T) {
	t.Helper()

	e.do(t, http.MethodPost, "/auth/logout", nil, http.StatusNoContent, nil)
}

// do performs a JSON request, asserts the status code and decodes the
// response into out when given.
func (e *TestEnv) do(t *testing.T, method, path string, body any, want int, out any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("%s %s: encoding body: %v", method, path, err)
		}
	}

	r, err := http.NewRequest(method, e.URL+path, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	w, err := e.Client().Do(r)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer w.Body.Close()

	if w.StatusCode != want {
		t.Fatalf("%s %s: status code %s, want %d", method, path, w.Status, want)
	}

	if out != nil {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decoding response: %v", method, path, err)
		}
	}
}
