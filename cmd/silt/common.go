package main

import (
	"log/slog"

	"github.com/aretw0/silt"
)

func openService() *silt.Service {
	service, err := silt.New(
		silt.WithAdapter(adapter),
		silt.WithDSN(dsn),
		silt.WithMongoNamespace(mongoDB, mongoColl),
		silt.WithLogger(slog.Default()),
	)
	if err != nil {
		fatal("Failed to initialize silt", err)
	}
	return service
}

func loadRegistry() *silt.Registry {
	registry, err := silt.LoadSchemas(silt.WithSchemaDir(schemaDir))
	if err != nil {
		fatal("Failed to load schemas", err)
	}
	return registry
}
