package servers_test

import (
	"testing"

	"loanaudit/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	t.Run("should load a valid document", func(t *testing.T) {
		swagger, err := servers.GetSwagger()

		require.NoError(t, err)
		assert.Equal(t, "Loan Audit", swagger.Info.Title)
		for _, path := range []string{
			"/api/v1/orders",
			"/api/v1/orders/{id}",
			"/api/v1/orders/{id}/actions",
			"/api/v1/inbox",
			"/api/v1/stats",
		} {
			assert.NotNil(t, swagger.Paths.Find(path), path)
		}
	})

	t.Run("should return independent documents", func(t *testing.T) {
		first, err := servers.GetSwagger()
		require.NoError(t, err)
		second, err := servers.GetSwagger()
		require.NoError(t, err)

		first.Info.Title = "changed"

		assert.Equal(t, "Loan Audit", second.Info.Title)
	})
}
