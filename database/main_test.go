package database

import (
	"context"
	"log"
	"testing"

	"github.com/siherrmann/lexgraph/helper"
	loadSql "github.com/siherrmann/lexgraph/sql"
	"github.com/stretchr/testify/require"
)

var containerPort string

// TestMain runs every test in this package against one shared pgvector
// container; each test opens its own connection via initDB. The nodes
// table is shared, so tests use distinct node identifiers.
func TestMain(m *testing.M) {
	teardown, port, err := helper.MustStartPostgresContainer()
	if err != nil {
		log.Fatalf("error starting postgres container: %v", err)
	}
	containerPort = port

	m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Fatalf("error tearing down postgres container: %v", err)
		}
	}
}

func initDB(t *testing.T) *helper.Database {
	helper.SetTestDatabaseConfigEnvs(t, containerPort)

	dbConfig, err := helper.NewDatabaseConfiguration()
	require.NoError(t, err, "failed to create database configuration")

	database := helper.NewTestDatabase(dbConfig)
	t.Cleanup(func() { database.Close() })

	err = loadSql.Init(database.Instance)
	require.NoError(t, err, "failed to initialize database extensions")

	return database
}
