package enquiry

import (
	"FurnishDesk/entity"
	"context"
)

type Core interface {
	SubmitEnquiry(ctx context.Context, enquiry *entity.Enquiry) entity.SubmissionOutcome
}
