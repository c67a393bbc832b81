package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vireodata/chordload/internal/config"
	"github.com/vireodata/chordload/internal/db"
	"github.com/vireodata/chordload/pkg/chordload"
)

// connectionStringFromEnv returns the first non-empty connection string
// from CHORDLOAD_CONNECTION_STRING or DATABASE_URL.
func connectionStringFromEnv() string {
	if s := os.Getenv("CHORDLOAD_CONNECTION_STRING"); s != "" {
		return s
	}
	return os.Getenv("DATABASE_URL")
}

// resolveConnection builds the connection configuration from, in
// precedence order: the --connection flag, connection string environment
// variables, granular flags, PG* environment variables, the project
// config file, and defaults.
func resolveConnection(flags *loadFlagValues, projectCfg *config.ProjectConfig) (*chordload.ConnectionConfig, error) {
	connString := flags.connection
	if connString == "" {
		connString = connectionStringFromEnv()
	}

	var connConfig *chordload.ConnectionConfig
	if connString != "" {
		parsed, err := db.ParseConnectionString(connString)
		if err != nil {
			return nil, fmt.Errorf("invalid connection string: %w", err)
		}
		connConfig = parsed
	} else {
		connConfig = &chordload.ConnectionConfig{
			Host:             "localhost",
			Port:             5432,
			Database:         "postgres",
			SSLMode:          "prefer",
			AdditionalParams: make(map[string]string),
		}
		applyProjectConnection(connConfig, projectCfg)
		applyEnvironment(connConfig)
	}

	applyGranularFlags(connConfig, flags)

	if connConfig.Password == "" {
		connConfig.Password = os.Getenv("PGPASSWORD")
	}

	if err := applyAuthFlags(connConfig, flags, projectCfg); err != nil {
		return nil, err
	}

	return connConfig, nil
}

func applyProjectConnection(c *chordload.ConnectionConfig, projectCfg *config.ProjectConfig) {
	if projectCfg == nil {
		return
	}
	pc := projectCfg.Connection
	if pc.Host != "" {
		c.Host = pc.Host
	}
	if pc.Port != 0 {
		c.Port = pc.Port
	}
	if pc.Username != "" {
		c.Username = pc.Username
	}
	if pc.Database != "" {
		c.Database = pc.Database
	}
	if pc.SSLMode != "" {
		c.SSLMode = pc.SSLMode
	}
}

func applyEnvironment(c *chordload.ConnectionConfig) {
	if host := os.Getenv("PGHOST"); host != "" {
		c.Host = host
	}
	if port := os.Getenv("PGPORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Port = p
		}
	}
	if user := os.Getenv("PGUSER"); user != "" {
		c.Username = user
	}
	if database := os.Getenv("PGDATABASE"); database != "" {
		c.Database = database
	}
	if sslMode := os.Getenv("PGSSLMODE"); sslMode != "" {
		c.SSLMode = sslMode
	}
}

func applyGranularFlags(c *chordload.ConnectionConfig, flags *loadFlagValues) {
	if flags.host != "" {
		c.Host = flags.host
	}
	if flags.port != 0 {
		c.Port = flags.port
	}
	if flags.username != "" {
		c.Username = flags.username
	}
	if flags.database != "" {
		c.Database = flags.database
	}
	if flags.sslMode != "" {
		c.SSLMode = flags.sslMode
	}
}

func applyAuthFlags(c *chordload.ConnectionConfig, flags *loadFlagValues, projectCfg *config.ProjectConfig) error {
	methods := 0
	if flags.azure {
		methods++
		c.AuthMethod = chordload.AuthMethodAzureEntraID
	}
	if flags.awsIAM {
		methods++
		c.AuthMethod = chordload.AuthMethodAWSIAM
	}
	if flags.googleIAM {
		methods++
		c.AuthMethod = chordload.AuthMethodGoogleIAM
	}
	if methods > 1 {
		return fmt.Errorf("at most one of --azure, --aws-iam, --google-iam may be set: %w", chordload.ErrInvalidConfig)
	}

	if methods == 0 && projectCfg != nil {
		switch projectCfg.Connection.AuthMethod {
		case "", "standard":
		case "azure-entra-id":
			c.AuthMethod = chordload.AuthMethodAzureEntraID
		case "aws-iam":
			c.AuthMethod = chordload.AuthMethodAWSIAM
		case "google-iam":
			c.AuthMethod = chordload.AuthMethodGoogleIAM
		default:
			return fmt.Errorf("unknown auth_method %q in %s: %w", projectCfg.Connection.AuthMethod, config.ConfigFileName, chordload.ErrInvalidConfig)
		}
	}

	c.AzureTenantID = firstNonEmpty(flags.azureTenantID, os.Getenv("AZURE_TENANT_ID"))
	c.AzureClientID = firstNonEmpty(flags.azureClientID, os.Getenv("AZURE_CLIENT_ID"))
	c.AzureClientSecret = os.Getenv("AZURE_CLIENT_SECRET")
	c.AWSRegion = firstNonEmpty(flags.awsRegion, os.Getenv("AWS_REGION"))
	c.GoogleInstance = flags.googleInstance

	if projectCfg != nil {
		pc := projectCfg.Connection
		c.AzureTenantID = firstNonEmpty(c.AzureTenantID, pc.AzureTenantID)
		c.AzureClientID = firstNonEmpty(c.AzureClientID, pc.AzureClientID)
		c.AWSRegion = firstNonEmpty(c.AWSRegion, pc.AWSRegion)
		c.GoogleInstance = firstNonEmpty(c.GoogleInstance, pc.GoogleInstance)
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
