package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
	Group  string        // Endpoints in the same group share one bucket per client
}

// GroupAnalyze is shared by every entry point that runs a full assessment.
const GroupAnalyze = "analyze"

// MethodAnalyze is the pseudo-method charged for each analyze event on an open /ws connection.
const MethodAnalyze = "ANALYZE"

// LoadConfig builds the limiter configuration. enabled comes from the application
// config; RATE_LIMIT_ENABLED=false in the environment still turns limiting off.
// Limits, window, cleanup interval and IP lists are read from RATE_LIMIT_* variables.
func LoadConfig(enabled bool) *Config {
	if !enabled || !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(getEnvInt("RATE_LIMIT_ANALYZE_LIMIT", 30)),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific limits. analyzeLimit caps
// assessments per minute per client: POST /api/analyze, POST /api/analyze/stream and
// each analyze event on /ws all draw from the same bucket. The /ws upgrade itself
// uses the default limit.
func DefaultEndpointConfigs(analyzeLimit int) []EndpointConfig {
	burst := max(analyzeLimit/6, 1)
	return []EndpointConfig{
		{Path: "/api/analyze", Method: "POST", Limit: analyzeLimit, Window: time.Minute, Burst: burst, Group: GroupAnalyze},
		{Path: "/api/analyze/stream", Method: "POST", Limit: analyzeLimit, Window: time.Minute, Burst: burst, Group: GroupAnalyze},
		{Path: "/ws", Method: MethodAnalyze, Limit: analyzeLimit, Window: time.Minute, Burst: burst, Group: GroupAnalyze},
		// Question reads use the default limit; health checks are unlimited (see MatchEndpoint).
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	ips := lo.FilterMap(strings.Split(list, ","), func(ip string, _ int) (string, bool) {
		ip = strings.TrimSpace(ip)
		return ip, ip != ""
	})
	return lo.Associate(ips, func(ip string) (string, bool) {
		return ip, true
	})
}
