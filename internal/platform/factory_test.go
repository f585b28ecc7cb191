package platform

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/silt/pkg/core"
)

func TestNewDefaultsToMemory(t *testing.T) {
	svc, err := New()
	require.NoError(t, err)

	ctx := context.Background()
	key := core.NewKey("User", "u1")
	doc := core.NewDocument(key)
	doc.SetValue("name", "Ann")

	require.NoError(t, svc.PutEntity(ctx, doc.Seal()))
	got, err := svc.GetEntity(ctx, key)
	require.NoError(t, err)
	name, _ := got.Value("name")
	assert.Equal(t, "Ann", name)
}

func TestNewSqliteAdapter(t *testing.T) {
	svc, err := New(
		WithAdapter("sqlite"),
		WithDSN(filepath.Join(t.TempDir(), "silt.db")),
	)
	require.NoError(t, err)
	defer svc.Close()

	doc := core.NewDocument(core.NewKey("User", "u1"))
	doc.SetValue("name", "Ann")
	require.NoError(t, svc.PutEntity(context.Background(), doc.Seal()))
}

func TestNewUnknownAdapter(t *testing.T) {
	_, err := New(WithAdapter("s3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3")
}

func TestLoadSchemas(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.yaml"),
		[]byte("table: User\nproperties:\n  id: key\n  name: string\n"), 0644))

	reg, err := LoadSchemas(WithSchemaDir(dir))
	require.NoError(t, err)
	assert.Equal(t, []string{"User"}, reg.Names())

	// No schema dir configured yields an empty registry, not an error.
	empty, err := LoadSchemas()
	require.NoError(t, err)
	assert.Empty(t, empty.Names())
}
