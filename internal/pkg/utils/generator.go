package utils

import (
	"fmt"
	"medilink-service/internal/pkg/constvars"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateLockValue() string {
	return uuid.NewString()
}

// GenerateCartID builds the gateway cart identifier carrying the
// consultation ID, e.g. "cons_662f1d4e9b3c".
func GenerateCartID(consultationID string) string {
	return fmt.Sprintf("%s_%s", constvars.CartIDPrefix, consultationID)
}

// ParseCartID extracts the consultation ID from a gateway cart identifier.
func ParseCartID(cartID string) (string, error) {
	parts := strings.SplitN(cartID, "_", 2)
	if len(parts) != 2 || parts[0] != constvars.CartIDPrefix || parts[1] == "" {
		return "", fmt.Errorf("malformed cart id %q", cartID)
	}
	return parts[1], nil
}
