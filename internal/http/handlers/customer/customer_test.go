package customer

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/sim-verify/internal/storage"
	"github.com/aanand-mishra/sim-verify/internal/storage/storagetest"
	"github.com/aanand-mishra/sim-verify/internal/validation"
)

func validateCustomer(t *testing.T, store storage.Storage, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/validate-customer", strings.NewReader(body))
	rec := httptest.NewRecorder()

	Validate(store, validation.New())(rec, req)

	var out map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return rec.Code, out
}

func TestValidateCustomerRejectsBeforeStore(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"empty body", ``, errFieldsMissing},
		{"missing email", `{"date_of_birth":"1990-05-17"}`, errFieldsMissing},
		{"missing dob", `{"email_address":"jane@example.com"}`, errFieldsMissing},
		{"bad dob shape", `{"email_address":"jane@example.com","date_of_birth":"17-05-1990"}`, errBadDate},
		{"impossible dob", `{"email_address":"jane@example.com","date_of_birth":"1990-02-30"}`, errBadDate},
		{"bad email", `{"email_address":"jane@example.co.uk","date_of_birth":"1990-05-17"}`, errBadEmail},
		// date is checked before email
		{"both bad", `{"email_address":"jane","date_of_birth":"1990-5-17"}`, errBadDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &storagetest.Stub{}
			code, out := validateCustomer(t, store, tt.body)

			require.Equal(t, http.StatusBadRequest, code)
			require.Equal(t, tt.wantErr, out["error"])
			require.False(t, store.Called(), "store must not be touched")
		})
	}
}

func TestValidateCustomerFound(t *testing.T) {
	store := &storagetest.Stub{Rows: []storage.Row{
		{"email_address": "jane@example.com", "date_of_birth": "1990-05-17", "full_name": "Jane Doe"},
		{"email_address": "jane@example.com", "date_of_birth": "1990-05-17", "full_name": "Jane Duplicate"},
	}}

	code, out := validateCustomer(t, store, `{"email_address":"jane@example.com","date_of_birth":"1990-05-17"}`)

	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "Customer validated successfully", out["message"])
	require.Equal(t, "Jane Doe", out["customer"].(map[string]any)["full_name"])

	calls := store.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, storagetest.Call{
		Method: "FindCustomer",
		Args:   []string{"jane@example.com", "1990-05-17"},
	}, calls[0])
}

func TestValidateCustomerNotFound(t *testing.T) {
	store := &storagetest.Stub{}

	code, out := validateCustomer(t, store, `{"email_address":"jane@example.com","date_of_birth":"1990-05-17"}`)

	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, errNotFound, out["error"])
}

func TestValidateCustomerStoreErrorIsGeneric(t *testing.T) {
	store := &storagetest.Stub{Err: errors.New("connection refused")}

	code, out := validateCustomer(t, store, `{"email_address":"jane@example.com","date_of_birth":"1990-05-17"}`)

	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, map[string]any{"error": "Internal server error"}, out)
}
