package repository

import (
	"FurnishDesk/entity"
	"context"
	"fmt"
)

// SaveEnquiry writes one enquiry to the submissions collection.
func (m *MongoDB) SaveEnquiry(ctx context.Context, enquiry *entity.Enquiry) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	connection, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer m.disconnect(ctx, connection)

	collection := connection.Database(m.database).Collection(enquiriesCollection)
	_, err = collection.InsertOne(ctx, enquiry)
	if err != nil {
		return fmt.Errorf("mongodb insert enquiry: %w", err)
	}
	return nil
}
