package request

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/sim-verify/internal/types"
)

func TestDecodeJSON(t *testing.T) {
	t.Run("empty body leaves zero value", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var otp types.OtpDetail
		require.NoError(t, DecodeJSON(httptest.NewRecorder(), r, &otp))
		require.Empty(t, otp.Otp)
	})

	t.Run("malformed body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{otp:"))
		var otp types.OtpDetail
		err := DecodeJSON(httptest.NewRecorder(), r, &otp)
		require.ErrorIs(t, err, ErrInvalidBody)
	})

	t.Run("truthy scalars", func(t *testing.T) {
		body := `{"service_number": 712345678, "sim_number": "8923", "sim_status": true}`
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		var sim types.SimDetail
		require.NoError(t, DecodeJSON(httptest.NewRecorder(), r, &sim))
		require.Equal(t, types.Text("712345678"), sim.ServiceNumber)
		require.Equal(t, types.Text("8923"), sim.SimNumber)
		require.Equal(t, types.Text("true"), sim.SimStatus)
	})

	t.Run("falsy scalars decode empty", func(t *testing.T) {
		body := `{"service_number": 0, "sim_number": null, "sim_status": false}`
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		var sim types.SimDetail
		require.NoError(t, DecodeJSON(httptest.NewRecorder(), r, &sim))
		require.Empty(t, sim.ServiceNumber)
		require.Empty(t, sim.SimNumber)
		require.Empty(t, sim.SimStatus)
	})
}
