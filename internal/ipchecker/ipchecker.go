// Package ipchecker guards internal endpoints by the client's address: only
// requests originating from the configured trusted subnet get through.
package ipchecker

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/patric-chuzhbe/mobileappws/internal/logger"
	"github.com/patric-chuzhbe/mobileappws/internal/models"
)

// IPChecker extracts the client address of a request and matches it
// against the trusted subnet.
type IPChecker struct {
	trustedSubnet *net.IPNet
}

// New creates an IPChecker for trustedSubnet in CIDR notation, e.g.
// "192.168.1.0/24". An empty trustedSubnet yields a checker that trusts
// nobody.
func New(trustedSubnet string) (*IPChecker, error) {
	if trustedSubnet == "" {
		return &IPChecker{}, nil
	}

	_, allowedNet, err := net.ParseCIDR(trustedSubnet)
	if err != nil {
		return nil, fmt.Errorf("in internal/ipchecker/ipchecker.go/New(): error while `net.ParseCIDR()` calling: %w", err)
	}

	return &IPChecker{trustedSubnet: allowedNet}, nil
}

// Check reports whether clientIP belongs to the trusted subnet.
func (checker *IPChecker) Check(clientIP net.IP) bool {
	return checker.trustedSubnet != nil && clientIP != nil && checker.trustedSubnet.Contains(clientIP)
}

// GetClientIP returns the client address: the X-Real-IP header when set by
// a fronting proxy, the first X-Forwarded-For entry, or RemoteAddr.
func (checker *IPChecker) GetClientIP(request *http.Request) (net.IP, error) {
	if ip := net.ParseIP(strings.TrimSpace(request.Header.Get("X-Real-IP"))); ip != nil {
		return ip, nil
	}

	if xff := request.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip, nil
		}
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return nil, fmt.Errorf("in internal/ipchecker/ipchecker.go/GetClientIP(): error while `net.SplitHostPort()` calling: %w", err)
	}

	return net.ParseIP(host), nil
}

// IsTrustedSubnetEmpty reports whether no trusted subnet is configured.
func (checker *IPChecker) IsTrustedSubnetEmpty() bool {
	return checker.trustedSubnet == nil
}

// TrustedSubnetOnly is an HTTP middleware answering 403 to every request
// whose client address is outside the trusted subnet.
func (checker *IPChecker) TrustedSubnetOnly(h http.Handler) http.Handler {
	middleware := func(response http.ResponseWriter, request *http.Request) {
		clientIP, err := checker.GetClientIP(request)
		if err != nil {
			logger.Log.Debugw("error while `checker.GetClientIP()` calling", "error", err)
		}

		if checker.IsTrustedSubnetEmpty() || !checker.Check(clientIP) {
			response.Header().Set("Content-Type", "application/json")
			response.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(response).Encode(models.ErrorResponse{Error: models.ErrForbidden.Error()})
			return
		}

		h.ServeHTTP(response, request)
	}

	return http.HandlerFunc(middleware)
}
