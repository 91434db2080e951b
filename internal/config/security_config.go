// config/security_config.go
package config

type SecurityLevel int

const (
	SecurityPublic   SecurityLevel = iota // No authentication
	SecurityOperator                      // Operator access token required
)

// EndpointSecurityConfig maps HTTP route names to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	"Health": SecurityPublic,

	// Fleet
	"ListScooters":  SecurityPublic,
	"GetScooter":    SecurityPublic,
	"AddScooter":    SecurityOperator,
	"RemoveScooter": SecurityOperator,

	// Rentals
	"StartRent": SecurityPublic,
	"EndRent":   SecurityPublic,

	// Reports
	"CalculateIncome": SecurityOperator,
	"ListOpenRentals": SecurityOperator,
}

// GetSecurityLevel returns the security level for a given route
func GetSecurityLevel(route string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[route]; exists {
		return level
	}
	// Default to highest security for unknown routes
	return SecurityOperator
}
