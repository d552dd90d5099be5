package repository

import (
	"FurnishDesk/entity"
	"FurnishDesk/internal/lib/sl"
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

const maxStatusCollections = 10

// Status reports best-effort connectivity for the diagnostics endpoint.
// It never returns an error: failures are folded into the status text.
func (m *MongoDB) Status(ctx context.Context) entity.StorageStatus {
	status := entity.StorageStatus{
		Backend:          "running",
		Database:         "not available",
		DatabaseName:     m.database,
		ConnectionStatus: "not connected",
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	connection, err := m.connect(ctx)
	if err != nil {
		m.log.With(sl.Err(err)).Warn("status connect")
		return status
	}
	defer m.disconnect(ctx, connection)

	status.Database = "available"

	names, err := connection.Database(m.database).ListCollectionNames(ctx, bson.D{})
	if err != nil {
		m.log.With(sl.Err(err)).Warn("status list collections")
		status.ConnectionStatus = "connected with errors"
		return status
	}

	if len(names) > maxStatusCollections {
		names = names[:maxStatusCollections]
	}
	status.Database = "connected"
	status.ConnectionStatus = "connected"
	status.Collections = names
	return status
}
