package ipchecker

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	checker, err := New("")
	require.NoError(t, err)
	assert.True(t, checker.IsTrustedSubnetEmpty())

	checker, err = New("10.0.0.0/8")
	require.NoError(t, err)
	assert.False(t, checker.IsTrustedSubnetEmpty())

	_, err = New("not-a-cidr")
	assert.Error(t, err)
}

func TestGetClientIP(t *testing.T) {
	checker, err := New("10.0.0.0/8")
	require.NoError(t, err)

	testCases := []struct {
		name       string
		realIP     string
		forwarded  string
		remoteAddr string
		want       string
	}{
		{name: "x-real-ip wins", realIP: "10.1.2.3", forwarded: "192.168.0.1", remoteAddr: "127.0.0.1:5000", want: "10.1.2.3"},
		{name: "first forwarded entry", forwarded: "192.168.0.1, 10.0.0.1", remoteAddr: "127.0.0.1:5000", want: "192.168.0.1"},
		{name: "remote addr", remoteAddr: "127.0.0.1:5000", want: "127.0.0.1"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.RemoteAddr = testCase.remoteAddr
			if testCase.realIP != "" {
				request.Header.Set("X-Real-IP", testCase.realIP)
			}
			if testCase.forwarded != "" {
				request.Header.Set("X-Forwarded-For", testCase.forwarded)
			}

			ip, err := checker.GetClientIP(request)
			require.NoError(t, err)
			assert.True(t, net.ParseIP(testCase.want).Equal(ip))
		})
	}
}

func TestTrustedSubnetOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	testCases := []struct {
		name          string
		trustedSubnet string
		realIP        string
		wantCode      int
	}{
		{name: "inside subnet", trustedSubnet: "10.0.0.0/8", realIP: "10.20.30.40", wantCode: http.StatusOK},
		{name: "outside subnet", trustedSubnet: "10.0.0.0/8", realIP: "192.168.1.1", wantCode: http.StatusForbidden},
		{name: "no subnet configured", trustedSubnet: "", realIP: "10.20.30.40", wantCode: http.StatusForbidden},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			checker, err := New(testCase.trustedSubnet)
			require.NoError(t, err)

			request := httptest.NewRequest(http.MethodPut, "/", nil)
			request.Header.Set("X-Real-IP", testCase.realIP)
			recorder := httptest.NewRecorder()

			checker.TrustedSubnetOnly(next).ServeHTTP(recorder, request)

			assert.Equal(t, testCase.wantCode, recorder.Code)
		})
	}
}
