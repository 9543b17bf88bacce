package postgres

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/Temutjin2k/solotrip-connect/pkg/trm"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\x`, escapeLike(`c:\x`))
	assert.Equal(t, "Barcelona", escapeLike("Barcelona"))
}

func TestMigrationsEmbedded(t *testing.T) {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	body, err := migrations.ReadFile(names[0])
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "CREATE TABLE IF NOT EXISTS trips"))
}

type fakeTx struct {
	pgx.Tx
}

func TestTxorDB(t *testing.T) {
	var pool Querier
	tx := &fakeTx{}

	assert.Nil(t, TxorDB(context.Background(), pool))

	ctx := context.WithValue(context.Background(), trm.TxKey, pgx.Tx(tx))
	assert.Same(t, tx, TxorDB(ctx, pool))
}
