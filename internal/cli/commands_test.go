package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["load"], "load command registered")
	assert.True(t, names["version"], "version command registered")
}

func TestLoadCommand_Flags(t *testing.T) {
	for _, flag := range []string{
		"catalog-path", "events-path", "ledger",
		"connection", "host", "port", "username", "database", "sslmode",
		"azure", "azure-tenant-id", "azure-client-id",
		"aws-iam", "aws-region",
		"google-iam", "google-instance",
		"timeout",
	} {
		require.NotNil(t, loadCmd.Flags().Lookup(flag), "flag --%s", flag)
	}
}

func TestLoadCommand_RejectsPositionalArgs(t *testing.T) {
	err := loadCmd.Args(loadCmd, []string{"unexpected"})
	assert.Error(t, err)
}

func TestRootCommand_VerboseFlag(t *testing.T) {
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
}
