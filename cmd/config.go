package cmd

// Config carries everything the service reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	TokenSecret   string
	AdminEmail    string
	AdminPassword string

	// CancelWindowMinutes is how long after placement a customer may
	// still cancel an order.
	CancelWindowMinutes int

	// StoreLat and StoreLng locate the store all delivery distances are
	// measured from.
	StoreLat float64
	StoreLng float64

	// RoutingBaseURL points at an OSRM-compatible routing service. Empty
	// means distances come from the great-circle fallback only.
	RoutingBaseURL string

	SMTPHost     string
	SMTPPort     int
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	// PublicBaseURL is the externally reachable address used to build
	// verification and reset links in outgoing mail.
	PublicBaseURL string
}
