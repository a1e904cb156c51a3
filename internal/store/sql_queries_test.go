package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_buildListReferralsQuery_SQLContainsParts(t *testing.T) {
	ctx := context.Background()
	referrerID := int64(42)

	query, args, err := buildListReferralsQuery(ctx, referrerID)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, referrerID, args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from users")
	require.Contains(t, q, "where")
	require.Contains(t, q, "referred_by")
	require.Contains(t, q, "order by created_at")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// projection columns
	require.Contains(t, q, "username")
	require.Contains(t, q, "email")
	require.Contains(t, q, "created_at")
}
