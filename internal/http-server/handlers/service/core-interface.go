package service

import (
	"FurnishDesk/entity"
	"context"
)

type Service interface {
	StorageStatus(ctx context.Context) entity.StorageStatus
}
