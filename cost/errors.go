package cost

import (
	"fmt"

	"bap/backend/model"
)

func errCategoryNotPriced(table string, cat model.Category) error {
	return fmt.Errorf("cost: no %s cost configured for category %s", table, cat)
}
