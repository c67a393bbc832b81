package chordload

import (
	"errors"
	"fmt"
	"time"
)

// LoadConfig contains all parameters needed for one load run.
type LoadConfig struct {
	// CatalogPath is the root of the catalog (provider/item) source tree.
	CatalogPath string

	// EventsPath is the root of the activity log source tree.
	EventsPath string

	// LedgerPath is the rejection ledger file. Defaults to
	// DefaultLedgerPath when empty.
	LedgerPath string

	// ConnectionString is the PostgreSQL connection string (URI or
	// keyword=value format) for the target database.
	ConnectionString string

	// Timeout is the global timeout for the entire run. Zero means no
	// timeout.
	Timeout time.Duration

	// Verbose enables detailed logging.
	Verbose bool

	// AuthMethod indicates the authentication mechanism to use.
	AuthMethod AuthMethod

	// Azure Entra ID parameters (AuthMethodAzureEntraID). If all three are
	// set, Service Principal authentication is used; otherwise the
	// DefaultAzureCredential chain applies.
	AzureTenantID     string
	AzureClientID     string
	AzureClientSecret string

	// AWSRegion is required for AuthMethodAWSIAM.
	AWSRegion string

	// GoogleInstance is the Cloud SQL instance connection name
	// (project:region:instance) for AuthMethodGoogleIAM.
	GoogleInstance string
}

// Validate checks that the LoadConfig has all required fields and valid
// values. It returns a multi-error if multiple validation failures occur.
func (c *LoadConfig) Validate() error {
	var errs []error

	if c.CatalogPath == "" && c.EventsPath == "" {
		errs = append(errs, fmt.Errorf("at least one of CatalogPath and EventsPath is required: %w", ErrInvalidConfig))
	}

	if c.ConnectionString == "" {
		errs = append(errs, fmt.Errorf("ConnectionString is required: %w", ErrInvalidConfig))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	if c.AuthMethod == AuthMethodAWSIAM && c.AWSRegion == "" {
		errs = append(errs, fmt.Errorf("AWS IAM auth requires a region: %w", ErrInvalidConfig))
	}

	if c.AuthMethod == AuthMethodGoogleIAM && c.GoogleInstance == "" {
		errs = append(errs, fmt.Errorf("Google IAM auth requires an instance connection name: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// ConnectionConfig represents parsed connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string

	// AuthMethod indicates the authentication mechanism to use.
	AuthMethod AuthMethod

	AppName          string
	ConnectTimeout   time.Duration
	AdditionalParams map[string]string

	// Azure Entra ID authentication parameters.
	AzureTenantID     string
	AzureClientID     string
	AzureClientSecret string

	// AWSRegion for RDS IAM token acquisition.
	AWSRegion string

	// GoogleInstance is the Cloud SQL instance connection name.
	GoogleInstance string
}

// AuthMethod represents the type of authentication to use.
type AuthMethod int

const (
	AuthMethodStandard      AuthMethod = iota // Username/Password
	AuthMethodAWSIAM                          // AWS RDS IAM token
	AuthMethodGoogleIAM                       // Google Cloud SQL IAM
	AuthMethodAzureEntraID                    // Azure Entra ID token
)

// String returns the human-readable name of the auth method.
func (m AuthMethod) String() string {
	switch m {
	case AuthMethodStandard:
		return "standard"
	case AuthMethodAWSIAM:
		return "aws-iam"
	case AuthMethodGoogleIAM:
		return "google-iam"
	case AuthMethodAzureEntraID:
		return "azure-entra-id"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}
