package config

import "os"

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Stock read surface is public: dealers browse availability without keys
	return []string{"/api/stock/engines", "/api/stock/engines/:id", "/api/stock/gearboxes"}
}

// PortalCryptKey returns the shared HMAC key portal clients sign their
// requests with. Empty disables signature checks.
func PortalCryptKey() string {
	return os.Getenv("PORTAL_CRYPT_KEY")
}
