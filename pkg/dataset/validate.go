package dataset

import (
	"fmt"
	"time"

	"github.com/ajxudir/creatordash/pkg/creators"
	"github.com/ajxudir/creatordash/pkg/errors"
)

// DateLayout is the expected createdAt form. RFC 3339 timestamps are also accepted.
const DateLayout = "2006-01-02"

// Validate checks a record set before it enters the pipeline.
//
// Checks:
//   - ids are unique
//   - names are not empty
//   - followers and revenue are not negative
//   - createdAt parses as 2006-01-02 or RFC 3339
//
// Returns:
//   - error: nil, or every *errors.ValidationError joined
func Validate(records []creators.Creator) error {
	result := errors.NewValidationResult()
	seen := make(map[int]int, len(records))

	for i, c := range records {
		field := func(name string) string {
			return fmt.Sprintf("creators[%d].%s", i, name)
		}

		if first, dup := seen[c.ID]; dup {
			verr := errors.NewDatasetValidationError(field("id"), fmt.Sprintf("duplicate id %d (first used by creators[%d])", c.ID, first))
			verr.Expected = "unique integer"
			result.AddError(verr)
		} else {
			seen[c.ID] = i
		}

		if c.Name == "" {
			result.AddError(errors.NewDatasetValidationError(field("name"), "must not be empty"))
		}
		if c.Followers < 0 {
			result.AddError(errors.NewDatasetValidationError(field("followers"), fmt.Sprintf("must not be negative, got %d", c.Followers)))
		}
		if c.Revenue < 0 {
			result.AddError(errors.NewDatasetValidationError(field("revenue"), fmt.Sprintf("must not be negative, got %g", c.Revenue)))
		}
		if !validDate(c.CreatedAt) {
			verr := errors.NewDatasetValidationError(field("createdAt"), fmt.Sprintf("invalid date %q", c.CreatedAt))
			verr.Expected = "YYYY-MM-DD or RFC 3339 timestamp"
			result.AddError(verr)
		}
	}

	return result.Err()
}

func validDate(s string) bool {
	if _, err := time.Parse(DateLayout, s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}
